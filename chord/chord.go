package chord

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/pianolab/pitch"
)

var (
	ErrUnknownQuality   = errors.New("unknown chord quality")
	ErrInvalidInversion = errors.New("invalid inversion")
)

type Quality struct {
	Key     string
	Name    string
	Offsets []int
	Degrees []string
	Suffix  string
}

func (q Quality) IsSeventh() bool {
	return len(q.Offsets) == 4
}

// MaxInversion is 2 for triads and 3 for seventh chords.
func (q Quality) MaxInversion() int {
	return len(q.Offsets) - 1
}

// Formula is the degree list joined for display, e.g. "1 - b3 - 5 - b7".
func (q Quality) Formula() string {
	return strings.Join(q.Degrees, " - ")
}

// QualityKeys keeps the display order of the quality table.
var QualityKeys = []string{"maj", "min", "dim", "aug", "sus2", "sus4", "maj7", "min7", "dom7", "m7b5", "dim7"}

var qualities = map[string]Quality{
	"maj":  {Key: "maj", Name: "Major", Offsets: []int{0, 4, 7}, Degrees: []string{"1", "3", "5"}, Suffix: ""},
	"min":  {Key: "min", Name: "Minor", Offsets: []int{0, 3, 7}, Degrees: []string{"1", "b3", "5"}, Suffix: "m"},
	"dim":  {Key: "dim", Name: "Diminished", Offsets: []int{0, 3, 6}, Degrees: []string{"1", "b3", "b5"}, Suffix: "dim"},
	"aug":  {Key: "aug", Name: "Augmented", Offsets: []int{0, 4, 8}, Degrees: []string{"1", "3", "#5"}, Suffix: "aug"},
	"sus2": {Key: "sus2", Name: "Sus2", Offsets: []int{0, 2, 7}, Degrees: []string{"1", "2", "5"}, Suffix: "sus2"},
	"sus4": {Key: "sus4", Name: "Sus4", Offsets: []int{0, 5, 7}, Degrees: []string{"1", "4", "5"}, Suffix: "sus4"},
	"maj7": {Key: "maj7", Name: "Major 7", Offsets: []int{0, 4, 7, 11}, Degrees: []string{"1", "3", "5", "7"}, Suffix: "maj7"},
	"min7": {Key: "min7", Name: "Minor 7", Offsets: []int{0, 3, 7, 10}, Degrees: []string{"1", "b3", "5", "b7"}, Suffix: "m7"},
	"dom7": {Key: "dom7", Name: "Dominant 7", Offsets: []int{0, 4, 7, 10}, Degrees: []string{"1", "3", "5", "b7"}, Suffix: "7"},
	"m7b5": {Key: "m7b5", Name: "Half-diminished", Offsets: []int{0, 3, 6, 10}, Degrees: []string{"1", "b3", "b5", "b7"}, Suffix: "ø7"},
	"dim7": {Key: "dim7", Name: "Diminished 7", Offsets: []int{0, 3, 6, 9}, Degrees: []string{"1", "b3", "b5", "bb7"}, Suffix: "dim7"},
}

func Lookup(key string) (Quality, error) {
	q, ok := qualities[key]
	if !ok {
		return Quality{}, fmt.Errorf("%w: %q", ErrUnknownQuality, key)
	}
	return q, nil
}

func MustLookup(key string) Quality {
	q, err := Lookup(key)
	if err != nil {
		panic(err)
	}
	return q
}

// Tones places each offset above root, keeping the quality's canonical order.
func Tones(offsets []int, root pitch.Pitch) []pitch.Pitch {
	res := make([]pitch.Pitch, 0, len(offsets))
	for _, o := range offsets {
		res = append(res, root+pitch.Pitch(o))
	}
	return res
}

// Invert raises the current lowest tone by an octave n times and returns the
// tones sorted ascending. n is clamped to [0, len(tones)-1].
func Invert(tones []pitch.Pitch, n int) []pitch.Pitch {
	res := make([]pitch.Pitch, len(tones))
	copy(res, tones)
	if len(res) == 0 {
		return res
	}
	if n < 0 {
		n = 0
	}
	if n > len(res)-1 {
		n = len(res) - 1
	}
	for k := 0; k < n; k++ {
		sortPitches(res)
		res[0] += 12
	}
	sortPitches(res)
	return res
}

// RotateDegrees moves the first label to the end once per inversion.
func RotateDegrees(degrees []string, n int) []string {
	res := make([]string, 0, len(degrees))
	if len(degrees) == 0 {
		return res
	}
	n = ((n % len(degrees)) + len(degrees)) % len(degrees)
	res = append(res, degrees[n:]...)
	return append(res, degrees[:n]...)
}

var inversionNames = []string{"Root position", "1st inversion", "2nd inversion", "3rd inversion"}

func InversionName(n int) string {
	if n < 0 || n >= len(inversionNames) {
		return ""
	}
	return inversionNames[n]
}

// Symbol builds a chord symbol such as "Dm7" or "Bbmaj7".
func Symbol(rootName string, q Quality) string {
	return rootName + q.Suffix
}

// Key identifies a sonority by its sorted pitches, e.g. "60-64-67".
func Key(notes []pitch.Pitch) string {
	sorted := make([]pitch.Pitch, len(notes))
	copy(sorted, notes)
	sortPitches(sorted)

	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", int(note))
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

func sortPitches(ps []pitch.Pitch) {
	sort.Slice(ps, func(i, j int) bool {
		return ps[i] < ps[j]
	})
}
