package voicing

import (
	"testing"

	"github.com/jsphweid/pianolab/chord"
	"github.com/jsphweid/pianolab/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func place(t *testing.T, quality string, rootClass int, policy Policy) Voicing {
	t.Helper()
	v, err := Place(chord.MustLookup(quality), Anchor(rootClass), policy)
	require.NoError(t, err)
	return v
}

func TestRootlessDominantOnC(t *testing.T) {
	v := place(t, "dom7", 0, Rootless)

	assert := assert.New(t)
	assert.Equal([]pitch.Pitch{64, 69, 70, 74}, v.Tones)
	assert.Equal([]string{"E", "A", "Bb", "D"}, pitch.Names(v.Tones, true))
	assert.Equal(pitch.Pitch(48), v.Bass)
	assert.NotContains(v.Tones, v.Bass)
}

func TestRootlessStaysInBandWithoutDuplicateClasses(t *testing.T) {
	for _, quality := range []string{"maj7", "min7", "dom7", "m7b5"} {
		for class := 0; class < 12; class++ {
			v := place(t, quality, class, Rootless)
			seen := map[int]bool{}
			for _, p := range v.Tones {
				assert.GreaterOrEqual(t, p, RootlessBand.Min)
				assert.LessOrEqual(t, p, RootlessBand.Max)
				assert.False(t, seen[pitch.Class(p)], "%s on %d repeats class %d", quality, class, pitch.Class(p))
				seen[pitch.Class(p)] = true
			}
			assert.Less(t, v.Bass, pitch.MiddleC)
		}
	}
}

func TestRootlessFallbackDropsRoot(t *testing.T) {
	v := place(t, "maj", 0, Rootless)
	assert.Equal(t, []pitch.Pitch{64, 67}, v.Tones)
}

func TestCloseBands(t *testing.T) {
	cases := []struct {
		policy Policy
		want   []pitch.Pitch
	}{
		{CloseLow, []pitch.Pitch{55, 59, 60, 64}},
		{CloseMid, []pitch.Pitch{60, 64, 67, 71}},
		{CloseHigh, []pitch.Pitch{67, 71, 72, 76}},
	}
	for _, c := range cases {
		t.Run(string(c.policy), func(t *testing.T) {
			v := place(t, "maj7", 0, c.policy)
			assert.Equal(t, c.want, v.Tones)
			for _, p := range v.Tones {
				assert.GreaterOrEqual(t, p, Bands[c.policy].Min)
				assert.LessOrEqual(t, p, Bands[c.policy].Max)
			}
		})
	}
}

func TestFoldKeepsBoundaryTones(t *testing.T) {
	b := Band{Min: 60, Max: 77}
	assert.Equal(t, pitch.Pitch(60), b.Fold(60))
	assert.Equal(t, pitch.Pitch(77), b.Fold(77))
	assert.Equal(t, pitch.Pitch(71), b.Fold(59))
	assert.Equal(t, pitch.Pitch(66), b.Fold(78))
	assert.Equal(t, pitch.Pitch(65), b.Fold(5))
}

func TestDropVoicings(t *testing.T) {
	assert.Equal(t, []pitch.Pitch{67, 72, 76, 83}, place(t, "maj7", 0, Drop2).Tones)
	assert.Equal(t, []pitch.Pitch{64, 72, 79, 83}, place(t, "maj7", 0, Drop3).Tones)
	// triads lower their bottom voice for drop 3
	assert.Equal(t, []pitch.Pitch{60, 76, 79}, place(t, "maj", 0, Drop3).Tones)
}

func TestAllPrependsBassSortedAndDeduplicated(t *testing.T) {
	v := Voicing{Bass: 48, Tones: []pitch.Pitch{64, 60, 64}}
	assert.Equal(t, []pitch.Pitch{48, 60, 64}, v.All())

	v = place(t, "min7", 2, CloseMid)
	all := v.All()
	assert.Equal(t, v.Bass, all[0])
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1], all[i])
	}
}

func TestNewRequest(t *testing.T) {
	r, err := NewRequest("dom7", 7, "drop2")
	require.NoError(t, err)
	assert.Equal(t, pitch.Pitch(55), r.Anchor)

	v, err := r.Place()
	require.NoError(t, err)
	assert.Len(t, v.Tones, 4)

	_, err = NewRequest("dom9", 7, "drop2")
	assert.ErrorIs(t, err, chord.ErrUnknownQuality)
	_, err = NewRequest("dom7", 7, "drop4")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestPlaceRejectsEmptyQuality(t *testing.T) {
	_, err := Place(chord.Quality{Key: "bogus"}, 48, CloseMid)
	assert.ErrorIs(t, err, chord.ErrUnknownQuality)
}
