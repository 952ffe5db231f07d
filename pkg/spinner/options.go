package spinner

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Option configures a Spinner during construction.
type Option func(*Spinner) error

// Position controls whether the frame glyph precedes or follows the label.
type Position int

const (
	Front Position = iota
	End
)

var validColors = map[string][]color.Attribute{
	"black":     {color.FgBlack},
	"red":       {color.FgRed},
	"green":     {color.FgGreen},
	"yellow":    {color.FgYellow},
	"blue":      {color.FgBlue},
	"magenta":   {color.FgMagenta},
	"cyan":      {color.FgCyan},
	"white":     {color.FgWhite},
	"fgHiBlack": {color.FgHiBlack},
	"fgHiRed":   {color.FgHiRed},
	"fgHiGreen": {color.FgHiGreen},
	"fgHiCyan":  {color.FgHiCyan},
	"fgHiWhite": {color.FgHiWhite},
}

// WithLabel sets the text shown alongside the animation.
func WithLabel(label string) Option {
	return func(s *Spinner) error {
		s.label = label
		return nil
	}
}

// WithCompletionText sets the text printed once the spinner stops.
func WithCompletionText(text string) Option {
	return func(s *Spinner) error {
		s.completion = text
		return nil
	}
}

// WithDelay sets the pause between animation frames.
func WithDelay(delay time.Duration) Option {
	return func(s *Spinner) error {
		s.delay = delay
		return nil
	}
}

// WithPosition places the frame glyph before (Front) or after (End) the label.
func WithPosition(position Position) Option {
	return func(s *Spinner) error {
		s.position = position
		return nil
	}
}

// WithWriter redirects spinner output away from stdout.
func WithWriter(out io.Writer) Option {
	return func(s *Spinner) error {
		s.out = out
		return nil
	}
}

// WithColor renders the frame glyph in the named color, e.g. "fgHiCyan".
func WithColor(name string) Option {
	return func(s *Spinner) error {
		attrs, ok := validColors[name]
		if !ok {
			return &ConfigError{Reason: fmt.Sprintf("unknown color %q", name)}
		}

		s.colorFn = color.New(attrs...).SprintFunc()
		return nil
	}
}
