package spinner

import (
	"testing"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestEveryStyleHasRenderableFrames(t *testing.T) {
	for style, frames := range CharSets {
		assert.NotEmpty(t, frames, "style %q has no frames", style)

		for i, frame := range frames {
			assert.GreaterOrEqual(t, runewidth.StringWidth(frame), 1, "style %q frame %d renders to nothing", style, i)
		}
	}
}

func TestFramesLookup(t *testing.T) {
	frames, err := Frames(Line)

	assert.NoError(t, err)
	assert.Equal(t, CharSets[Line], frames)
}

func TestFramesLookupUnknownStyle(t *testing.T) {
	frames, err := Frames(Style("wobble"))

	assert.Nil(t, frames)
	assert.IsType(t, &ConfigError{}, err)
}
