package staff

import (
	"fmt"

	"github.com/jsphweid/pianolab/pitch"
)

type Clef string

const (
	Treble Clef = "treble"
	Bass   Clef = "bass"
)

func ParseClef(s string) (Clef, error) {
	switch Clef(s) {
	case Treble, Bass:
		return Clef(s), nil
	}
	return "", fmt.Errorf("unknown clef %q", s)
}

// CenterLine is the pitch on the middle line of the five-line staff.
func (c Clef) CenterLine() pitch.Pitch {
	if c == Bass {
		return 50 // D3
	}
	return 71 // B4
}

// letterSteps maps a pitch class to its diatonic letter, sharps sharing the
// step of the natural below.
var letterSteps = [12]int{0, 0, 1, 1, 2, 3, 3, 4, 4, 5, 5, 6}

// Step counts diatonic steps from C-1.
func Step(p pitch.Pitch) int {
	return pitch.Octave(p)*7 + letterSteps[pitch.Class(p)]
}

// Position is where a note head sits. Offset counts half line-spaces above
// the centre line; the staff lines are at -4, -2, 0, 2 and 4.
type Position struct {
	Pitch  pitch.Pitch
	Clef   Clef
	Offset int
	// Ledger holds the offsets of the ledger lines the note needs, nearest
	// the staff first.
	Ledger []int
	Sharp  bool
}

func Place(p pitch.Pitch, clef Clef) Position {
	offset := Step(p) - Step(clef.CenterLine())
	pos := Position{Pitch: p, Clef: clef, Offset: offset, Sharp: pitch.IsBlackKey(p)}
	for l := 6; l <= offset; l += 2 {
		pos.Ledger = append(pos.Ledger, l)
	}
	for l := -6; l >= offset; l -= 2 {
		pos.Ledger = append(pos.Ledger, l)
	}
	return pos
}

// OnLine reports whether the head sits on a line rather than in a space.
func (p Position) OnLine() bool {
	return p.Offset%2 == 0
}
