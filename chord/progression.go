package chord

import "github.com/jsphweid/pianolab/pitch"

type Mode string

const (
	Major Mode = "major"
	Minor Mode = "minor"
)

// Step is one chord of a progression template.
type Step struct {
	Roman        string
	DegreeOffset int
	Quality      string
	Beats        float64
}

// ii-V-I: one bar, one bar, two bars in 4/4.
var (
	MajorTwoFiveOne = []Step{
		{Roman: "ii", DegreeOffset: 2, Quality: "min7", Beats: 4},
		{Roman: "V", DegreeOffset: 7, Quality: "dom7", Beats: 4},
		{Roman: "I", DegreeOffset: 0, Quality: "maj7", Beats: 8},
	}
	MinorTwoFiveOne = []Step{
		{Roman: "iiø", DegreeOffset: 2, Quality: "m7b5", Beats: 4},
		{Roman: "V", DegreeOffset: 7, Quality: "dom7", Beats: 4},
		{Roman: "i", DegreeOffset: 0, Quality: "min7", Beats: 8},
	}
)

func TwoFiveOne(mode Mode) []Step {
	if mode == Minor {
		return MinorTwoFiveOne
	}
	return MajorTwoFiveOne
}

// ProgressionKeys are the keys offered by the 2-5-1 trainer.
var ProgressionKeys = []string{"C", "Db", "D", "Eb", "E", "F", "F#", "Gb", "G", "Ab", "A", "Bb", "B"}

// RootClass is the pitch class of the step's chord root in the given key.
func (s Step) RootClass(key pitch.Root) int {
	return (key.Class + s.DegreeOffset) % 12
}

func (s Step) Symbol(key pitch.Root) string {
	return Symbol(pitch.ClassName(s.RootClass(key), key.PreferFlats), MustLookup(s.Quality))
}
