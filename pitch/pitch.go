package pitch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidNoteName = errors.New("invalid note name")

// Pitch is an absolute semitone index. 60 is middle C (C4), 69 is A4.
type Pitch int

const (
	MiddleC Pitch = 60
	A4      Pitch = 69
)

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var letterClasses = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

var accidentalShifts = map[string]int{
	"":  0,
	"#": 1,
	"b": -1,
	"♯": 1,
	"♭": -1,
}

type NoteName struct {
	Letter     string
	Accidental string
	Octave     int
}

func (n NoteName) String() string {
	return fmt.Sprintf("%s%s%d", n.Letter, n.Accidental, n.Octave)
}

// Class is the spelled name without octave, e.g. "Eb".
func (n NoteName) Class() string {
	return n.Letter + n.Accidental
}

func (n NoteName) Pitch() (Pitch, error) {
	return ToPitch(n.Letter, n.Accidental, n.Octave)
}

// ToPitch converts a spelled note to a Pitch. Octaves start at C, so B#3 and C4
// are the same pitch while Cb4 is B3.
func ToPitch(letter, accidental string, octave int) (Pitch, error) {
	class, ok := letterClasses[strings.ToUpper(letter)]
	if !ok {
		return 0, fmt.Errorf("%w: letter %q", ErrInvalidNoteName, letter)
	}
	shift, ok := accidentalShifts[accidental]
	if !ok {
		return 0, fmt.Errorf("%w: accidental %q", ErrInvalidNoteName, accidental)
	}
	return Pitch((octave+1)*12 + class + shift), nil
}

func MustToPitch(letter, accidental string, octave int) Pitch {
	p, err := ToPitch(letter, accidental, octave)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseNoteName reads names such as "C4", "F#3", "Bb-1".
func ParseNoteName(s string) (NoteName, error) {
	if len(s) < 2 {
		return NoteName{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}
	letter := strings.ToUpper(s[:1])
	if _, ok := letterClasses[letter]; !ok {
		return NoteName{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}

	rest := s[1:]
	octStart := strings.IndexFunc(rest, func(r rune) bool {
		return r == '-' || (r >= '0' && r <= '9')
	})
	if octStart < 0 {
		return NoteName{}, fmt.Errorf("%w: %q has no octave", ErrInvalidNoteName, s)
	}
	accidental := rest[:octStart]
	if _, ok := accidentalShifts[accidental]; !ok {
		return NoteName{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}
	octave, err := strconv.Atoi(rest[octStart:])
	if err != nil {
		return NoteName{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}
	return NoteName{Letter: letter, Accidental: accidental, Octave: octave}, nil
}

// Parse is ParseNoteName followed by ToPitch.
func Parse(s string) (Pitch, error) {
	n, err := ParseNoteName(s)
	if err != nil {
		return 0, err
	}
	return n.Pitch()
}

func MustParse(s string) Pitch {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Class returns p mod 12 in [0,11], also for negative pitches.
func Class(p Pitch) int {
	return ((int(p) % 12) + 12) % 12
}

func Octave(p Pitch) int {
	return floorDiv(int(p), 12) - 1
}

// Spell names p from the fixed sharp or flat table.
func Spell(p Pitch, preferFlats bool) NoteName {
	name := ClassName(Class(p), preferFlats)
	n := NoteName{Letter: name[:1], Octave: Octave(p)}
	if len(name) > 1 {
		n.Accidental = name[1:]
	}
	return n
}

// ClassName spells a pitch class without octave.
func ClassName(class int, preferFlats bool) string {
	class = ((class % 12) + 12) % 12
	if preferFlats {
		return flatNames[class]
	}
	return sharpNames[class]
}

func Names(ps []Pitch, preferFlats bool) []string {
	res := make([]string, 0, len(ps))
	for _, p := range ps {
		res = append(res, ClassName(Class(p), preferFlats))
	}
	return res
}

// IsBlackKey reports whether p falls on a black piano key.
func IsBlackKey(p Pitch) bool {
	return strings.Contains(sharpNames[Class(p)], "#")
}

// Frequency uses equal temperament with A4 = 440 Hz.
func Frequency(p Pitch) float64 {
	return 440 * math.Pow(2, float64(p-A4)/12)
}

// FromFrequency returns the pitch nearest to hz.
func FromFrequency(hz float64) Pitch {
	return Pitch(math.Round(float64(A4) + 12*math.Log2(hz/440)))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
