package chord

import (
	"fmt"
	"testing"

	"github.com/jsphweid/pianolab/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityTableIsConsistent(t *testing.T) {
	for _, key := range QualityKeys {
		t.Run(key, func(t *testing.T) {
			q := MustLookup(key)
			assert := assert.New(t)
			assert.Equal(key, q.Key)
			assert.Contains([]int{3, 4}, len(q.Offsets))
			assert.Equal(len(q.Offsets), len(q.Degrees))
			assert.Equal(0, q.Offsets[0])
			for i := 1; i < len(q.Offsets); i++ {
				assert.Greater(q.Offsets[i], q.Offsets[i-1])
			}
		})
	}
}

func TestLookupUnknownQuality(t *testing.T) {
	_, err := Lookup("maj13")
	assert.ErrorIs(t, err, ErrUnknownQuality)
	assert.Panics(t, func() { MustLookup("nope") })
}

func TestMajor7TonesForEveryRoot(t *testing.T) {
	for r := pitch.Pitch(0); r <= 115; r++ {
		got := Tones([]int{0, 4, 7, 11}, r)
		assert.Equal(t, []pitch.Pitch{r, r + 4, r + 7, r + 11}, got)
	}
}

func TestInvertTriad(t *testing.T) {
	tones := Tones([]int{0, 4, 7}, 60)

	assert := assert.New(t)
	assert.Equal([]pitch.Pitch{60, 64, 67}, Invert(tones, 0))
	assert.Equal([]pitch.Pitch{64, 67, 72}, Invert(tones, 1))
	assert.Equal([]pitch.Pitch{67, 72, 76}, Invert(tones, 2))
	// clamped
	assert.Equal([]pitch.Pitch{67, 72, 76}, Invert(tones, 3))
	assert.Equal([]pitch.Pitch{60, 64, 67}, Invert(tones, -1))
	// input untouched
	assert.Equal([]pitch.Pitch{60, 64, 67}, tones)
}

func TestInvertSeventh(t *testing.T) {
	tones := Tones(MustLookup("dom7").Offsets, 55)
	assert.Equal(t, []pitch.Pitch{65, 67, 71, 74}, Invert(tones, 3))
}

func TestRotateDegrees(t *testing.T) {
	degrees := []string{"1", "b3", "5", "b7"}
	assert.Equal(t, []string{"1", "b3", "5", "b7"}, RotateDegrees(degrees, 0))
	assert.Equal(t, []string{"5", "b7", "1", "b3"}, RotateDegrees(degrees, 2))
	assert.Empty(t, RotateDegrees(nil, 2))
}

func TestNewRequestGatesInversionByChordSize(t *testing.T) {
	cases := []struct {
		quality   string
		inversion int
		ok        bool
	}{
		{"maj", 2, true},
		{"maj", 3, false},
		{"maj7", 3, true},
		{"maj7", 4, false},
		{"min", -1, false},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%s/%d", c.quality, c.inversion), func(t *testing.T) {
			_, err := NewRequest("C", c.quality, c.inversion)
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidInversion)
			}
		})
	}
}

func TestRequestLabels(t *testing.T) {
	r, err := NewRequest("Bb", "m7b5", 1)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("Bbø7", r.Symbol())
	assert.Equal([]string{"b3", "b5", "b7", "1"}, r.Degrees())
	assert.Equal([]pitch.Pitch{61, 64, 68, 70}, r.Tones(3))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "60-64-67", Key([]pitch.Pitch{67, 60, 64}))
	assert.Equal(t, "", Key(nil))
}

func TestTwoFiveOneSymbols(t *testing.T) {
	key, err := pitch.LookupRoot("Eb")
	require.NoError(t, err)

	var symbols []string
	for _, s := range TwoFiveOne(Major) {
		symbols = append(symbols, s.Symbol(key))
	}
	assert.Equal(t, []string{"Fm7", "Bb7", "Ebmaj7"}, symbols)

	symbols = symbols[:0]
	for _, s := range TwoFiveOne(Minor) {
		symbols = append(symbols, s.Symbol(key))
	}
	assert.Equal(t, []string{"Fø7", "Bb7", "Ebm7"}, symbols)
}
