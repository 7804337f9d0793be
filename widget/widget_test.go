package widget

import (
	"testing"

	"github.com/jsphweid/pianolab/audio"
	"github.com/jsphweid/pianolab/clock"
	"github.com/jsphweid/pianolab/logging"
	"github.com/jsphweid/pianolab/pitch"
	"github.com/stretchr/testify/assert"
)

func newTestOptions() (Options, *clock.Fake, *audio.Recorder) {
	c := clock.NewFake(0)
	r := audio.NewRecorder(nil)
	return Options{Clock: c, Emitter: r, Logger: logging.NoOpLogger{}}, c, r
}

func TestKeyboardIndices(t *testing.T) {
	kb := Keyboard{Start: 48, Keys: 36}
	assert.Equal(t, []int{0, 12, 35}, kb.Indices([]pitch.Pitch{48, 60, 83, 84, 47}))
	assert.True(t, kb.Contains(83))
	assert.False(t, kb.Contains(84))
}

func TestKeyboardRender(t *testing.T) {
	img := LadderKeyboard.Render([]int{0, 4, 7})
	assert.Greater(t, img.Bounds().Dx(), 0)
}
