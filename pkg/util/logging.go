package util

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Logger zerolog.Logger

func init() {
	Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// RedirectLogger points the package logger at out. The spinner redraw
// loop logs through Logger, so programs animating on stdout should
// redirect it elsewhere to keep log lines off the animated line.
func RedirectLogger(out io.Writer) {
	Logger = log.Output(zerolog.ConsoleWriter{Out: out})
}
