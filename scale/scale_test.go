package scale

import (
	"strings"
	"testing"

	"github.com/jsphweid/pianolab/chord"
	"github.com/jsphweid/pianolab/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableMatchesNoteNames(t *testing.T) {
	for _, tonic := range Tonics {
		for _, mode := range []chord.Mode{chord.Major, chord.Minor} {
			d := MustLookup(tonic, mode)
			t.Run(d.Name, func(t *testing.T) {
				for i, name := range d.Notes {
					p, err := pitch.Parse(name + "4")
					require.NoError(t, err)
					assert.Equal(t, d.Classes[i], pitch.Class(p), "member %d (%s)", i, name)
				}
			})
		}
	}
}

func TestDegreeQualitiesMatchRomanNumerals(t *testing.T) {
	for _, tonic := range Tonics {
		for _, mode := range []chord.Mode{chord.Major, chord.Minor} {
			d := MustLookup(tonic, mode)
			t.Run(d.Name, func(t *testing.T) {
				for i, q := range d.TriadQualities() {
					roman := d.Degrees[i]
					switch {
					case strings.HasSuffix(roman, "°"):
						assert.Equal(t, "dim", q.Key, roman)
					case strings.ToUpper(roman) == roman:
						assert.Equal(t, "maj", q.Key, roman)
					default:
						assert.Equal(t, "min", q.Key, roman)
					}
				}
			})
		}
	}
}

func TestContinuousIndices(t *testing.T) {
	d := MustLookup("F", chord.Major)
	assert.Equal(t, []int{5, 7, 9, 10, 12, 14, 16}, d.ContinuousIndices())
	assert.Equal(t, [7]pitch.Pitch{65, 67, 69, 70, 72, 74, 76}, d.Pitches(4))
}

func TestDegreeChordWrapsIntoNextOctave(t *testing.T) {
	d := MustLookup("C", chord.Major)

	q, tones, err := d.DegreeChord(6)
	require.NoError(t, err)
	assert.Equal(t, "dim", q.Key)
	assert.Equal(t, []pitch.Pitch{71, 74, 77}, tones)

	q, tones, err = d.DegreeChord(4)
	require.NoError(t, err)
	assert.Equal(t, "maj", q.Key)
	assert.Equal(t, []pitch.Pitch{67, 71, 74}, tones)

	_, _, err = d.DegreeChord(7)
	assert.ErrorIs(t, err, ErrUnknownScale)
}

func TestInferTriad(t *testing.T) {
	_, err := InferTriad([]pitch.Pitch{60, 62, 67})
	assert.ErrorIs(t, err, chord.ErrUnknownQuality)

	q, err := InferTriad([]pitch.Pitch{60, 64, 68})
	require.NoError(t, err)
	assert.Equal(t, "aug", q.Key)
}

func TestDisplayTriadIsStrictlyAscending(t *testing.T) {
	for _, tonic := range Tonics {
		for _, mode := range []chord.Mode{chord.Major, chord.Minor} {
			d := MustLookup(tonic, mode)
			for degree := 0; degree < 7; degree++ {
				keys, err := d.DisplayTriad(degree)
				require.NoError(t, err)
				assert.Less(t, keys[0], keys[1], "%s degree %d", d.Name, degree)
				assert.Less(t, keys[1], keys[2], "%s degree %d", d.Name, degree)
				assert.GreaterOrEqual(t, keys[0], d.Classes[0])
			}
		}
	}
}

func TestDisplayTriadExamples(t *testing.T) {
	cases := []struct {
		tonic  string
		mode   chord.Mode
		degree int
		want   []int
	}{
		{"C", chord.Major, 0, []int{0, 4, 7}},
		{"C", chord.Major, 6, []int{11, 14, 17}},
		{"F", chord.Major, 4, []int{12, 16, 19}},
		{"G", chord.Major, 3, []int{12, 16, 19}},
		{"A", chord.Minor, 1, []int{11, 14, 17}},
	}
	for _, c := range cases {
		d := MustLookup(c.tonic, c.mode)
		keys, err := d.DisplayTriad(c.degree)
		require.NoError(t, err)
		assert.Equal(t, c.want, keys, "%s degree %d", d.Name, c.degree)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("F#", chord.Major)
	assert.ErrorIs(t, err, ErrUnknownScale)
}
