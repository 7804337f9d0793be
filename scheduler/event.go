package scheduler

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTempo    = errors.New("invalid tempo")
	ErrInvalidDuration = errors.New("invalid event duration")
)

type ReleaseMode int

const (
	// ReleaseDecay ramps exponentially from the sustain level to silence over
	// the whole tone.
	ReleaseDecay ReleaseMode = iota
	// ReleaseTail holds the sustain level and decays only in the final 100 ms.
	ReleaseTail
)

func (m ReleaseMode) String() string {
	if m == ReleaseTail {
		return "tail"
	}
	return "decay"
}

// Envelope is the amplitude shape of one tone.
type Envelope struct {
	Attack  float64 // seconds from silence to Sustain
	Sustain float64 // 0..1
	Release ReleaseMode
}

// ToneEmitter turns tone requests into sound. ScheduleTone is fire and forget;
// start is an absolute time on the scheduler's clock.
type ToneEmitter interface {
	// EnsureReady creates or resumes the audio backend. It is idempotent.
	EnsureReady() error
	ScheduleTone(frequency, start, duration float64, shape Envelope)
}

// Sound is one tone inside an event.
type Sound struct {
	Frequency float64
	Shape     Envelope
	// Length in seconds. Zero sounds for the whole event.
	Length float64
}

// Event is one timed entry of a performance. Offset and Duration are in beats.
type Event struct {
	Offset   float64
	Duration float64
	Sounds   []Sound
	Payload  any
}

type Sequence []Event

// Append adds an event starting where the last one ends.
func (s Sequence) Append(duration float64, payload any, sounds ...Sound) Sequence {
	return append(s, Event{
		Offset:   s.Beats(),
		Duration: duration,
		Sounds:   sounds,
		Payload:  payload,
	})
}

// Beats is the total length of the sequence.
func (s Sequence) Beats() float64 {
	if len(s) == 0 {
		return 0
	}
	last := s[len(s)-1]
	return last.Offset + last.Duration
}

// Request is a validated playback request.
type Request struct {
	Sequence Sequence
	Tempo    float64
	Loop     bool
}

func NewRequest(seq Sequence, tempo float64, loop bool) (Request, error) {
	req := Request{Sequence: seq, Tempo: tempo, Loop: loop}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Validate checks the tempo and that every event moves time forward.
func (r Request) Validate() error {
	if r.Tempo <= 0 {
		return fmt.Errorf("%w: %v bpm", ErrInvalidTempo, r.Tempo)
	}
	for i, ev := range r.Sequence {
		if ev.Duration <= 0 {
			return fmt.Errorf("%w: event %d lasts %v beats", ErrInvalidDuration, i, ev.Duration)
		}
	}
	return nil
}

// BeatSeconds converts beats to seconds at tempo.
func BeatSeconds(beats, tempo float64) float64 {
	return beats * 60 / tempo
}
