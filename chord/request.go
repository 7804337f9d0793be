package chord

import (
	"fmt"

	"github.com/jsphweid/pianolab/pitch"
)

// Request is a validated chord selection.
type Request struct {
	Root      pitch.Root
	Quality   Quality
	Inversion int
}

func NewRequest(rootName, qualityKey string, inversion int) (Request, error) {
	root, err := pitch.LookupRoot(rootName)
	if err != nil {
		return Request{}, err
	}
	q, err := Lookup(qualityKey)
	if err != nil {
		return Request{}, err
	}
	if inversion < 0 || inversion > q.MaxInversion() {
		return Request{}, fmt.Errorf("%w: %d for %s (max %d)", ErrInvalidInversion, inversion, q.Key, q.MaxInversion())
	}
	return Request{Root: root, Quality: q, Inversion: inversion}, nil
}

// Tones returns the inverted chord with its root in the given octave.
func (r Request) Tones(octave int) []pitch.Pitch {
	return Invert(Tones(r.Quality.Offsets, r.Root.In(octave)), r.Inversion)
}

func (r Request) Symbol() string {
	return Symbol(r.Root.Name, r.Quality)
}

func (r Request) Degrees() []string {
	return RotateDegrees(r.Quality.Degrees, r.Inversion)
}
