package voicing

import (
	"errors"
	"fmt"

	"github.com/jsphweid/pianolab/chord"
	"github.com/jsphweid/pianolab/pitch"
	"golang.org/x/exp/slices"
)

var ErrUnknownPolicy = errors.New("unknown voicing policy")

type Policy string

const (
	CloseLow  Policy = "low"
	CloseMid  Policy = "mid"
	CloseHigh Policy = "high"
	Drop2     Policy = "drop2"
	Drop3     Policy = "drop3"
	Rootless  Policy = "rootless"
)

var Policies = []Policy{CloseMid, CloseLow, CloseHigh, Drop2, Drop3, Rootless}

func ParsePolicy(s string) (Policy, error) {
	for _, p := range Policies {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

type Band struct {
	Min pitch.Pitch
	Max pitch.Pitch
}

// Fold moves p by octaves until it lies inside the band. Tones already on a
// boundary stay put.
func (b Band) Fold(p pitch.Pitch) pitch.Pitch {
	for p < b.Min {
		p += 12
	}
	for p > b.Max {
		p -= 12
	}
	return p
}

var (
	Bands = map[Policy]Band{
		CloseLow:  {Min: 53, Max: 70},
		CloseMid:  {Min: 60, Max: 77},
		CloseHigh: {Min: 67, Max: 84},
	}
	RootlessBand = Band{Min: 60, Max: 79}
)

// AnchorOctave is the octave the bass anchor sits in (C3..B3).
const AnchorOctave = 3

// DropStackOctaves is how far above the anchor the drop voicings build their
// close stack before lowering a voice. It is two octaves rather than one, so
// the lowered voice stays out of the bass's own octave.
const DropStackOctaves = 2

// bassCeiling: the reported bass is always below middle C.
const bassCeiling = pitch.MiddleC

// rootless swaps the root for upper extensions.
var rootless = map[string][]int{
	"maj7": {4, 7, 11, 14}, // 3 5 7 9
	"min7": {3, 7, 10, 14}, // b3 5 b7 9
	"dom7": {4, 9, 10, 14}, // 3 13 b7 9
	"m7b5": {3, 6, 10, 12}, // b3 b5 b7 8
}

// RootlessOffsets returns the rootless interval set for a quality. Qualities
// without an extension table drop the root and keep their other tones.
func RootlessOffsets(q chord.Quality) []int {
	if offsets, ok := rootless[q.Key]; ok {
		return offsets
	}
	return q.Offsets[1:]
}

// Anchor places a root pitch class in the anchor octave.
func Anchor(rootClass int) pitch.Pitch {
	return pitch.Pitch((AnchorOctave+1)*12) + pitch.Pitch(((rootClass%12)+12)%12)
}

type Voicing struct {
	Bass  pitch.Pitch
	Tones []pitch.Pitch
}

// All is the bass plus the tones, sorted ascending without duplicates.
func (v Voicing) All() []pitch.Pitch {
	res := make([]pitch.Pitch, 0, len(v.Tones)+1)
	res = append(res, v.Bass)
	res = append(res, v.Tones...)
	return sortedSet(res)
}

// Request is a validated placement request.
type Request struct {
	Quality chord.Quality
	Anchor  pitch.Pitch
	Policy  Policy
}

func NewRequest(qualityKey string, rootClass int, policy string) (Request, error) {
	q, err := chord.Lookup(qualityKey)
	if err != nil {
		return Request{}, err
	}
	p, err := ParsePolicy(policy)
	if err != nil {
		return Request{}, err
	}
	return Request{Quality: q, Anchor: Anchor(rootClass), Policy: p}, nil
}

func (r Request) Place() (Voicing, error) {
	return Place(r.Quality, r.Anchor, r.Policy)
}

// Place maps every chord offset above anchor to one concrete pitch according
// to policy.
func Place(q chord.Quality, anchor pitch.Pitch, policy Policy) (Voicing, error) {
	if len(q.Offsets) == 0 {
		return Voicing{}, fmt.Errorf("%w: %q", chord.ErrUnknownQuality, q.Key)
	}

	var tones []pitch.Pitch
	switch policy {
	case CloseLow, CloseMid, CloseHigh:
		band := Bands[policy]
		for _, p := range chord.Tones(q.Offsets, anchor) {
			tones = append(tones, band.Fold(p))
		}
	case Drop2, Drop3:
		stack := chord.Tones(q.Offsets, anchor+pitch.Pitch(12*DropStackOctaves))
		slices.Sort(stack)
		drop := 2
		if policy == Drop3 {
			drop = 3
		}
		if len(stack) >= drop {
			stack[len(stack)-drop] -= 12
		}
		tones = stack
	case Rootless:
		for _, p := range chord.Tones(RootlessOffsets(q), anchor) {
			tones = append(tones, RootlessBand.Fold(p))
		}
	default:
		return Voicing{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}

	bass := anchor
	for bass >= bassCeiling {
		bass -= 12
	}
	return Voicing{Bass: bass, Tones: sortedSet(tones)}, nil
}

func sortedSet(ps []pitch.Pitch) []pitch.Pitch {
	res := make([]pitch.Pitch, len(ps))
	copy(res, ps)
	slices.Sort(res)
	return slices.Compact(res)
}
