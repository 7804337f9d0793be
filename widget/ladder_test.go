package widget

import (
	"testing"

	"github.com/jsphweid/pianolab/chord"
	"github.com/jsphweid/pianolab/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLadderDefaults(t *testing.T) {
	opts, _, _ := newTestOptions()
	l := NewToneLadder(opts)

	v := l.View()
	assert.Equal(t, "C major", v.Name)
	assert.Equal(t, []int{0, 2, 4, 5, 7, 9, 11}, v.ScaleKeys)
	assert.Equal(t, 0, v.RootKey)
	assert.Equal(t, []string{"Major", "Minor", "Minor", "Major", "Major", "Minor", "Diminished"}, v.Qualities)
	assert.Nil(t, v.Selected)
}

func TestLadderSelectDegree(t *testing.T) {
	opts, _, _ := newTestOptions()
	l := NewToneLadder(opts)

	dv, err := l.SelectDegree(4)
	require.NoError(t, err)
	assert.Equal(t, "V", dv.Roman)
	assert.Equal(t, "Major", dv.Quality)
	assert.Equal(t, []string{"G", "B", "D"}, dv.Notes)
	assert.Equal(t, []int{7, 11, 14}, dv.Keys)
	require.NotNil(t, l.View().Selected)

	_, err = l.SelectDegree(7)
	assert.ErrorIs(t, err, scale.ErrUnknownScale)

	l.ClearSelection()
	assert.Nil(t, l.View().Selected)
}

func TestLadderKeyChangeClearsSelection(t *testing.T) {
	opts, _, _ := newTestOptions()
	l := NewToneLadder(opts)
	_, err := l.SelectDegree(0)
	require.NoError(t, err)

	require.NoError(t, l.SetKey("F", chord.Major))
	v := l.View()
	assert.Nil(t, v.Selected)
	assert.Equal(t, []int{5, 7, 9, 10, 12, 14, 16}, v.ScaleKeys)
	assert.Equal(t, 5, v.RootKey)
	assert.Equal(t, "1 2 3 4 1 2 3 4", v.RightHand)

	assert.ErrorIs(t, l.SetKey("F#", chord.Major), scale.ErrUnknownScale)
}
