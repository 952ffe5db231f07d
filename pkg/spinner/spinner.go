// Package spinner implements the animated console progress indicator
// used around long-running Falkon operations. The redraw loop runs in a
// background goroutine bracketed by Start and Stop; Stop erases the
// animation, prints the completion line and joins the loop before
// returning, so no stray frame can corrupt the terminal afterwards.
package spinner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/logrusorgru/aurora"
	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/blazingnet/falkon/pkg/util"
)

// MARKER is the glyph printed in front of the completion text.
const MARKER = "●"

// Spinner is an animated terminal status indicator. The zero value is
// not usable; construct one with New.
type Spinner struct {
	frames     []string
	label      string
	completion string
	delay      time.Duration
	position   Position
	out        io.Writer
	colorFn    func(a ...interface{}) string
	plain      bool

	mu          sync.Mutex
	stopped     bool
	active      bool
	interrupted bool
	interrupt   chan struct{}
	done        chan struct{}
	maxWidth    int
}

// New builds an idle Spinner for the given style. Defaults: label
// "Loading...", completion text "Done!", 100ms frame delay, glyph in
// Front position, output to stdout. No background activity starts until
// Start is called.
func New(style Style, opts ...Option) (*Spinner, error) {
	frames, err := Frames(style)
	if err != nil {
		return nil, err
	}

	s := &Spinner{
		frames:     frames,
		label:      "Loading...",
		completion: "Done!",
		delay:      100 * time.Millisecond,
		position:   Front,
		out:        colorable.NewColorableStdout(),
		stopped:    true,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.position != Front && s.position != End {
		return nil, &ConfigError{Reason: fmt.Sprintf("invalid position %d, choose either Front or End", s.position)}
	}

	if len(s.frames) == 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("style %q has no animation frames", style)}
	}

	if s.delay <= 0 {
		return nil, &ConfigError{Reason: "frame delay must be positive"}
	}

	// Frames aren't repainted when output goes to a non-terminal file,
	// only the completion line is printed.
	if f, ok := s.out.(*os.File); ok {
		s.plain = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}

	return s, nil
}

// Start launches the redraw loop and returns immediately. Each Start
// opens a fresh scope: the stop flag is reset, so a spinner can be
// reused after Stop. The caller must guarantee Stop runs on every exit
// path, typically via defer or Run.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}

	s.stopped = false
	s.active = true
	s.interrupted = false
	s.interrupt = make(chan struct{})
	s.done = make(chan struct{})
	s.maxWidth = 0

	go s.animate(s.interrupt, s.done)
}

// Active reports whether the redraw loop has been started and not yet
// stopped.
func (s *Spinner) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active
}

// Run starts the spinner around f and stops it on every exit path,
// returning f's error.
func (s *Spinner) Run(f func() error) error {
	s.Start()
	defer s.Stop()

	return f()
}

// Interrupt makes the redraw loop exit immediately without touching the
// terminal, the treatment a user-initiated abort gets. Wire it to a
// signal handler; a later Stop still erases the line, prints the
// completion text and joins the loop.
func (s *Spinner) Interrupt() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active && !s.interrupted {
		s.interrupted = true
		close(s.interrupt)
	}
}

// Stop halts the animation. It erases the animated line, prints the
// completion line, then blocks until the loop goroutine has exited.
// Once Stop returns this spinner writes nothing further. Stopping an
// idle spinner is a no-op.
func (s *Spinner) Stop() {
	s.mu.Lock()

	if !s.active {
		s.mu.Unlock()
		return
	}

	s.stopped = true
	s.active = false
	done := s.done

	if !s.plain {
		// Erase with the widest line actually drawn. The label+first-frame
		// width is kept as a floor for a stop before the first repaint.
		width := runewidth.StringWidth(s.label) + runewidth.StringWidth(s.frames[0]) + 1
		if s.maxWidth > width {
			width = s.maxWidth
		}

		fmt.Fprintf(s.out, "\r%s", strings.Repeat(" ", width))
	}

	fmt.Fprintf(s.out, "\r%s\n", aurora.Green(MARKER+" "+s.completion).String())
	s.mu.Unlock()

	<-done
}

func (s *Spinner) animate(interrupt <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer func() {
		// The animation must never take down the host process. Faults end
		// the loop; Stop still cleans the terminal up afterwards.
		if fault := recover(); fault != nil {
			util.Logger.Error().Msgf("Animation fault: %v", fault)
		}
	}()

	for step := 0; ; step = (step + 1) % len(s.frames) {
		if s.repaint(step) {
			return
		}

		select {
		case <-time.After(s.delay):
		case <-interrupt:
			return
		}
	}
}

// repaint draws the frame for step over the previous line and reports
// whether the loop should exit. The write happens under the lock so a
// late frame can never interleave with Stop's completion line.
func (s *Spinner) repaint(step int) (stop bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return true
	}

	frame := s.frames[step]

	line := frame + " " + s.label
	if s.position == End {
		line = s.label + " " + frame
	}

	if w := runewidth.StringWidth(line); w > s.maxWidth {
		s.maxWidth = w
	}

	if s.plain {
		return false
	}

	if s.colorFn != nil {
		if s.position == End {
			line = s.label + " " + s.colorFn(frame)
		} else {
			line = s.colorFn(frame) + " " + s.label
		}
	}

	fmt.Fprintf(s.out, "\r%s", line)

	return false
}
