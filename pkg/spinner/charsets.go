package spinner

import "fmt"

// Style selects a named animation frame set from CharSets.
type Style string

const (
	Simple      Style = "simple"
	Line        Style = "line"
	Growth      Style = "growth"
	Circle      Style = "circle"
	Pulse       Style = "pulse"
	OOO         Style = "ooo"
	Wait        Style = "wait"
	Rocket      Style = "rocket"
	Star        Style = "star"
	Stars       Style = "stars"
	CircleDigit Style = "circleDigit"
	Hourglass   Style = "hourglass"
	Clock       Style = "clock"
	Arrow       Style = "arrow"
	Atomic      Style = "atomic"
	Digit       Style = "digit"
	Bounce      Style = "bounce"
	Dot         Style = "dot"
	Bar         Style = "bar"
)

// CharSets holds the frame sequence for each style. Frames are pure data
// and every sequence must be non-empty.
var CharSets = map[Style][]string{
	Simple: {"|", "/", "+", "-", "\\"},
	Line:   {"⢿", "⣻", "⣽", "⣾", "⣷", "⣯", "⣟", "⡿"},
	Growth: {"·", "•", "●", "•", "·"},
	Circle: {"◓", "◑", "◒", "◐"},
	Pulse:  {"•", "○", "•", "·", "●", "·"},
	OOO:    {"0", "O", "o", "+", "·"},
	Wait:   {"W", "A", "I", "T"},
	Rocket: {"|", "/", "^", "-", "\\", "|", "_"},
	Star:   {"✶", "✷", "✸", "✹", "✺"},
	Stars: {
		"✩", "✪", "✫", "✬", "✭", "✯", "✰", "★", "✱", "✲", "✳", "✴",
		"✵", "✶", "✷", "✸", "✹", "✺", "✻", "✼", "✽", "✾", "✿", "❀",
		"❁", "❂", "❃", "❄", "❅", "❆", "❇", "❈", "❉", "❊", "❋",
	},
	CircleDigit: {"➀", "➁", "➂", "➃", "➄", "➅", "➆", "➇", "➈", "➉"},
	Hourglass:   {"⌛", "⌛", "⌛", "⏳", "⏳", "⏳"},
	Clock:       {"⏲", "⌚"},
	Arrow:       {"▶", "▷", "►", "▻", "▸", "▹"},
	Atomic:      {"☊", "☋", "☌", "☍"},
	Digit:       {"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
	Bounce:      {"<• ", "<•>", " •>", " • "},
	Dot:         {"·", "•", "••", "•••", "••••", "•••", "••", "•"},
	Bar:         {"_", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█", "▇", "▆", "▅", "▄", "▃", "▂", "▁", "_"},
}

// Frames returns the frame sequence registered for style.
func Frames(style Style) ([]string, error) {
	frames, ok := CharSets[style]
	if !ok {
		return nil, &ConfigError{Reason: fmt.Sprintf("unknown style %q", style)}
	}

	return frames, nil
}
