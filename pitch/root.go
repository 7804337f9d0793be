package pitch

import "fmt"

// Root is a selectable key or chord root. The spelling preference belongs to the
// root, not to the pitches it produces.
type Root struct {
	Name        string
	Class       int
	PreferFlats bool
}

var Roots = []Root{
	{Name: "C", Class: 0},
	{Name: "C#", Class: 1},
	{Name: "Db", Class: 1, PreferFlats: true},
	{Name: "D", Class: 2},
	{Name: "Eb", Class: 3, PreferFlats: true},
	{Name: "E", Class: 4},
	{Name: "F", Class: 5, PreferFlats: true},
	{Name: "F#", Class: 6},
	{Name: "Gb", Class: 6, PreferFlats: true},
	{Name: "G", Class: 7},
	{Name: "Ab", Class: 8, PreferFlats: true},
	{Name: "A", Class: 9},
	{Name: "Bb", Class: 10, PreferFlats: true},
	{Name: "B", Class: 11},
}

func LookupRoot(name string) (Root, error) {
	for _, r := range Roots {
		if r.Name == name {
			return r, nil
		}
	}
	return Root{}, fmt.Errorf("%w: unknown root %q", ErrInvalidNoteName, name)
}

// Spell names p using the root's preference.
func (r Root) Spell(p Pitch) string {
	return ClassName(Class(p), r.PreferFlats)
}

// In returns the root's pitch in the given octave.
func (r Root) In(octave int) Pitch {
	return Pitch((octave+1)*12 + r.Class)
}
