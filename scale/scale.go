package scale

import (
	"errors"
	"fmt"

	"github.com/jsphweid/pianolab/chord"
	"github.com/jsphweid/pianolab/pitch"
)

var ErrUnknownScale = errors.New("unknown scale")

type Fingering struct {
	RH string
	LH string
}

// Definition is a diatonic scale from the static key table.
type Definition struct {
	Name      string
	Tonic     string
	Mode      chord.Mode
	Notes     [7]string
	Classes   [7]int
	Degrees   [7]string
	Fingering Fingering
}

var Tonics = []string{"C", "G", "D", "A", "E", "B", "F"}

var (
	majorDegrees = [7]string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}
	minorDegrees = [7]string{"i", "ii°", "III", "iv", "v", "VI", "VII"}

	standardFingering = Fingering{RH: "1 2 3 1 2 3 4 5", LH: "5 4 3 2 1 3 2 1"}
	bFingering        = Fingering{RH: "1 2 3 1 2 3 4 5", LH: "4 3 2 1 4 3 2 1"}
	fFingering        = Fingering{RH: "1 2 3 4 1 2 3 4", LH: "5 4 3 2 1 3 2 1"}
)

type tableKey struct {
	tonic string
	mode  chord.Mode
}

var table = map[tableKey]Definition{
	{"C", chord.Major}: {Notes: [7]string{"C", "D", "E", "F", "G", "A", "B"}, Classes: [7]int{0, 2, 4, 5, 7, 9, 11}, Fingering: standardFingering},
	{"C", chord.Minor}: {Notes: [7]string{"C", "D", "Eb", "F", "G", "Ab", "Bb"}, Classes: [7]int{0, 2, 3, 5, 7, 8, 10}, Fingering: standardFingering},
	{"G", chord.Major}: {Notes: [7]string{"G", "A", "B", "C", "D", "E", "F#"}, Classes: [7]int{7, 9, 11, 0, 2, 4, 6}, Fingering: standardFingering},
	{"G", chord.Minor}: {Notes: [7]string{"G", "A", "Bb", "C", "D", "Eb", "F"}, Classes: [7]int{7, 9, 10, 0, 2, 3, 5}, Fingering: standardFingering},
	{"D", chord.Major}: {Notes: [7]string{"D", "E", "F#", "G", "A", "B", "C#"}, Classes: [7]int{2, 4, 6, 7, 9, 11, 1}, Fingering: standardFingering},
	{"D", chord.Minor}: {Notes: [7]string{"D", "E", "F", "G", "A", "Bb", "C"}, Classes: [7]int{2, 4, 5, 7, 9, 10, 0}, Fingering: standardFingering},
	{"A", chord.Major}: {Notes: [7]string{"A", "B", "C#", "D", "E", "F#", "G#"}, Classes: [7]int{9, 11, 1, 2, 4, 6, 8}, Fingering: standardFingering},
	{"A", chord.Minor}: {Notes: [7]string{"A", "B", "C", "D", "E", "F", "G"}, Classes: [7]int{9, 11, 0, 2, 4, 5, 7}, Fingering: standardFingering},
	{"E", chord.Major}: {Notes: [7]string{"E", "F#", "G#", "A", "B", "C#", "D#"}, Classes: [7]int{4, 6, 8, 9, 11, 1, 3}, Fingering: standardFingering},
	{"E", chord.Minor}: {Notes: [7]string{"E", "F#", "G", "A", "B", "C", "D"}, Classes: [7]int{4, 6, 7, 9, 11, 0, 2}, Fingering: standardFingering},
	{"B", chord.Major}: {Notes: [7]string{"B", "C#", "D#", "E", "F#", "G#", "A#"}, Classes: [7]int{11, 1, 3, 4, 6, 8, 10}, Fingering: bFingering},
	{"B", chord.Minor}: {Notes: [7]string{"B", "C#", "D", "E", "F#", "G", "A"}, Classes: [7]int{11, 1, 2, 4, 6, 7, 9}, Fingering: bFingering},
	{"F", chord.Major}: {Notes: [7]string{"F", "G", "A", "Bb", "C", "D", "E"}, Classes: [7]int{5, 7, 9, 10, 0, 2, 4}, Fingering: fFingering},
	{"F", chord.Minor}: {Notes: [7]string{"F", "G", "Ab", "Bb", "C", "Db", "Eb"}, Classes: [7]int{5, 7, 8, 10, 0, 1, 3}, Fingering: fFingering},
}

func Lookup(tonic string, mode chord.Mode) (Definition, error) {
	d, ok := table[tableKey{tonic, mode}]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s %s", ErrUnknownScale, tonic, mode)
	}
	d.Tonic = tonic
	d.Mode = mode
	if mode == chord.Minor {
		d.Name = tonic + " minor"
		d.Degrees = minorDegrees
	} else {
		d.Name = tonic + " major"
		d.Degrees = majorDegrees
	}
	return d, nil
}

func MustLookup(tonic string, mode chord.Mode) Definition {
	d, err := Lookup(tonic, mode)
	if err != nil {
		panic(err)
	}
	return d
}

// Pitches transposes the scale to start at the tonic in the given octave and
// ascend without wrapping.
func (d Definition) Pitches(octave int) [7]pitch.Pitch {
	var res [7]pitch.Pitch
	base := pitch.Pitch((octave + 1) * 12)
	for i, index := range d.ContinuousIndices() {
		res[i] = base + pitch.Pitch(index)
	}
	return res
}

// ContinuousIndices places every member at or above the tonic's class, pushing
// classes below the tonic into the next octave. F major gives 5 7 9 10 12 14 16.
func (d Definition) ContinuousIndices() []int {
	root := d.Classes[0]
	res := make([]int, 0, len(d.Classes))
	for _, class := range d.Classes {
		if class < root {
			res = append(res, class+12)
		} else {
			res = append(res, class)
		}
	}
	return res
}

// DegreeChord stacks the 1st, 3rd and 5th members from degree (0..6), wrapping
// into the next octave past the 7th member, and infers the triad quality.
func (d Definition) DegreeChord(degree int) (chord.Quality, []pitch.Pitch, error) {
	if degree < 0 || degree > 6 {
		return chord.Quality{}, nil, fmt.Errorf("%w: degree %d", ErrUnknownScale, degree)
	}
	pitches := d.Pitches(4)
	tones := make([]pitch.Pitch, 0, 3)
	for _, step := range []int{0, 2, 4} {
		idx := degree + step
		tones = append(tones, pitches[idx%7]+pitch.Pitch(12*(idx/7)))
	}
	q, err := InferTriad(tones)
	return q, tones, err
}

// TriadQualities lists the triad quality implied at each degree.
func (d Definition) TriadQualities() [7]chord.Quality {
	var res [7]chord.Quality
	for i := range res {
		q, _, err := d.DegreeChord(i)
		if err != nil {
			panic(err)
		}
		res[i] = q
	}
	return res
}

// InferTriad names a stacked triad from its two semitone gaps.
func InferTriad(tones []pitch.Pitch) (chord.Quality, error) {
	if len(tones) != 3 {
		return chord.Quality{}, fmt.Errorf("%w: need 3 tones, got %d", chord.ErrUnknownQuality, len(tones))
	}
	gaps := [2]int{int(tones[1] - tones[0]), int(tones[2] - tones[1])}
	switch gaps {
	case [2]int{4, 3}:
		return chord.MustLookup("maj"), nil
	case [2]int{3, 4}:
		return chord.MustLookup("min"), nil
	case [2]int{3, 3}:
		return chord.MustLookup("dim"), nil
	case [2]int{4, 4}:
		return chord.MustLookup("aug"), nil
	}
	return chord.Quality{}, fmt.Errorf("%w: gaps %v", chord.ErrUnknownQuality, gaps)
}
