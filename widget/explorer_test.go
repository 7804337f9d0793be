package widget

import (
	"testing"

	"github.com/jsphweid/pianolab/chord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplorerDefaults(t *testing.T) {
	opts, _, _ := newTestOptions()
	e := NewChordExplorer(opts)

	v := e.View()
	assert.Equal(t, "C", v.Symbol)
	assert.Equal(t, []string{"C", "E", "G"}, v.Notes)
	assert.Equal(t, []int{0, 4, 7}, v.Keys)
	assert.Equal(t, "Root position", v.InversionName)
	assert.Equal(t, 2, v.MaxInversion)
}

func TestExplorerHalfDiminishedInversion(t *testing.T) {
	opts, _, _ := newTestOptions()
	e := NewChordExplorer(opts)
	require.NoError(t, e.SetRoot("Bb"))
	require.NoError(t, e.SetQuality("m7b5"))
	require.NoError(t, e.SetInversion(1))

	v := e.View()
	assert.Equal(t, "Bbø7", v.Symbol)
	assert.Equal(t, []string{"Db", "E", "Ab", "Bb"}, v.Notes)
	assert.Equal(t, []int{13, 16, 20, 22}, v.Keys)
	assert.Equal(t, []string{"b3", "b5", "b7", "1"}, v.Degrees)
	assert.Equal(t, "1st inversion", v.InversionName)
	assert.Equal(t, "1 - b3 - b5 - b7", v.Formula)
}

func TestExplorerInversionLimits(t *testing.T) {
	opts, _, _ := newTestOptions()
	e := NewChordExplorer(opts)

	assert.ErrorIs(t, e.SetInversion(3), chord.ErrInvalidInversion)
	require.NoError(t, e.SetQuality("dom7"))
	require.NoError(t, e.SetInversion(3))
	assert.Equal(t, "3rd inversion", e.View().InversionName)

	require.NoError(t, e.SetQuality("sus4"))
	assert.Equal(t, 0, e.View().Inversion)

	require.NoError(t, e.SetInversion(2))
	require.NoError(t, e.SetQuality("min"))
	assert.Equal(t, 2, e.View().Inversion)

	assert.ErrorIs(t, e.SetQuality("maj13"), chord.ErrUnknownQuality)
	assert.Error(t, e.SetRoot("X"))
}

func TestExplorerReset(t *testing.T) {
	opts, _, _ := newTestOptions()
	e := NewChordExplorer(opts)
	require.NoError(t, e.SetRoot("F#"))
	require.NoError(t, e.SetQuality("dim7"))
	require.NoError(t, e.SetInversion(2))

	e.Reset()
	req := e.Request()
	assert.Equal(t, "C", req.Root.Name)
	assert.Equal(t, "maj", req.Quality.Key)
	assert.Equal(t, 0, req.Inversion)
}
