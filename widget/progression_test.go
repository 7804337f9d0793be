package widget

import (
	"testing"
	"time"

	"github.com/jsphweid/pianolab/chord"
	"github.com/jsphweid/pianolab/pitch"
	"github.com/jsphweid/pianolab/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressionDefaultView(t *testing.T) {
	opts, _, _ := newTestOptions()
	p := NewProgressionTrainer(opts)

	v, err := p.View()
	require.NoError(t, err)
	assert.Equal(t, "C", v.Key)
	assert.Equal(t, "major", v.Mode)
	assert.Equal(t, "mid", v.Voicing)
	assert.Equal(t, 0, v.Step)
	assert.Equal(t, 3, v.Steps)
	assert.Equal(t, 1.0, v.Bars)
	assert.Equal(t, "ii", v.Roman)
	assert.Equal(t, "Dm7", v.Symbol)
	assert.Equal(t, "1 - b3 - 5 - b7", v.Formula)
	assert.Equal(t, []string{"D", "C", "D", "F", "A"}, v.Tones)
	assert.Equal(t, "D", v.LeftHand)
	assert.Equal(t, []string{"C", "D", "F", "A"}, v.RightHand)
	assert.Equal(t, []int{14, 24, 26, 29, 33}, v.Keys)
}

func TestProgressionStepping(t *testing.T) {
	opts, _, _ := newTestOptions()
	p := NewProgressionTrainer(opts)

	p.Previous()
	v, err := p.View()
	require.NoError(t, err)
	assert.Equal(t, 2, v.Step)
	assert.Equal(t, "Cmaj7", v.Symbol)
	assert.Equal(t, 2.0, v.Bars)

	p.Next()
	p.Next()
	v, _ = p.View()
	assert.Equal(t, 1, v.Step)
	assert.Equal(t, "G7", v.Symbol)
}

func TestProgressionMinorSpelling(t *testing.T) {
	opts, _, _ := newTestOptions()
	p := NewProgressionTrainer(opts)
	require.NoError(t, p.SetKey("Eb"))
	require.NoError(t, p.SetMode(chord.Minor))

	v, err := p.View()
	require.NoError(t, err)
	assert.Equal(t, "Fø7", v.Symbol)
	assert.Equal(t, "iiø", v.Roman)
	assert.Equal(t, []string{"F", "Eb", "F", "Ab", "B"}, v.Tones)
}

func TestProgressionStructuralChangesReset(t *testing.T) {
	opts, _, _ := newTestOptions()
	p := NewProgressionTrainer(opts)

	p.Next()
	require.NoError(t, p.Play())
	require.NoError(t, p.SetVoicing("rootless"))

	v, err := p.View()
	require.NoError(t, err)
	assert.False(t, v.IsPlaying)
	assert.Equal(t, 0, v.Step)
	assert.Equal(t, "rootless", v.Voicing)

	assert.Error(t, p.SetVoicing("spread"))
	assert.Error(t, p.SetKey("H"))
	assert.Error(t, p.SetMode("dorian"))
}

func TestProgressionPlaybackLoops(t *testing.T) {
	opts, c, r := newTestOptions()
	p := NewProgressionTrainer(opts)
	require.NoError(t, p.Play())

	first := r.Tones()
	require.Len(t, first, 5)
	assert.Equal(t, 0.3, first[0].Shape.Sustain)
	for _, tn := range first[1:] {
		assert.Equal(t, 0.1, tn.Shape.Sustain)
		assert.Equal(t, 0.05, tn.Shape.Attack)
		assert.Equal(t, scheduler.ReleaseDecay, tn.Shape.Release)
	}
	// one bar at 70 BPM
	assert.InDelta(t, 4*60.0/70, first[0].Duration, 1e-9)

	c.Advance(3500 * time.Millisecond)
	v, _ := p.View()
	assert.Equal(t, 1, v.Step)
	assert.True(t, v.IsPlaying)

	c.Advance(10500 * time.Millisecond)
	v, _ = p.View()
	assert.Equal(t, 0, v.Step)

	p.Next()
	v, _ = p.View()
	assert.False(t, v.IsPlaying)
	assert.Equal(t, 1, v.Step)
}

func TestProgressionPlayStartsAtCurrentStep(t *testing.T) {
	opts, _, r := newTestOptions()
	p := NewProgressionTrainer(opts)
	p.Previous()
	require.NoError(t, p.Play())

	tones, err := PlaceStep(mustRoot(t, "C"), chord.MajorTwoFiveOne[2], "mid")
	require.NoError(t, err)
	var want []int
	for _, tn := range tones {
		want = append(want, int(tn))
	}
	assert.Equal(t, want, r.Keys())
}

func TestProgressionTempoRange(t *testing.T) {
	opts, _, _ := newTestOptions()
	p := NewProgressionTrainer(opts)
	assert.ErrorIs(t, p.SetTempo(39), scheduler.ErrInvalidTempo)
	assert.ErrorIs(t, p.SetTempo(181), scheduler.ErrInvalidTempo)
	require.NoError(t, p.SetTempo(180))
	v, _ := p.View()
	assert.Equal(t, 180.0, v.BPM)
}

func mustRoot(t *testing.T, name string) pitch.Root {
	t.Helper()
	r, err := pitch.LookupRoot(name)
	require.NoError(t, err)
	return r
}
