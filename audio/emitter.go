package audio

import (
	"math"
	"sync"

	"github.com/jsphweid/pianolab/clock"
	"github.com/jsphweid/pianolab/logging"
	"github.com/jsphweid/pianolab/pitch"
	"github.com/jsphweid/pianolab/scheduler"
	"gitlab.com/gomidi/midi/v2"
)

// MIDIEmitter plays tones as note on/off pairs on an Engine. The envelope's
// sustain level becomes the velocity; attack and release shapes are left to
// the receiving instrument.
type MIDIEmitter struct {
	engine  *Engine
	clock   clock.Clock
	channel uint8
	log     logging.Logger

	mu sync.Mutex
	// strikes counts note ons per key. A note off only goes out while its
	// key has not been struck again.
	strikes map[uint8]int
}

func NewMIDIEmitter(engine *Engine, c clock.Clock, channel uint8, logger logging.Logger) *MIDIEmitter {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &MIDIEmitter{engine: engine, clock: c, channel: channel, log: logger, strikes: map[uint8]int{}}
}

func (m *MIDIEmitter) EnsureReady() error {
	return m.engine.EnsureReady()
}

func (m *MIDIEmitter) ScheduleTone(frequency, start, duration float64, shape scheduler.Envelope) {
	key, ok := Key(frequency)
	if !ok {
		m.log.Warn("Tone outside the MIDI range", logging.Fields{"frequency": frequency})
		return
	}
	vel := Velocity(shape.Sustain)
	now := m.clock.Now()

	var (
		strike   int
		sounded  bool
		released bool
	)
	m.clock.AfterFunc(clock.Seconds(start-now), func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if released {
			return
		}
		m.strikes[key]++
		strike, sounded = m.strikes[key], true
		m.send(midi.NoteOn(m.channel, key, vel))
	})
	m.clock.AfterFunc(clock.Seconds(start+duration-now), func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		released = true
		if !sounded || m.strikes[key] != strike {
			return
		}
		m.send(midi.NoteOff(m.channel, key))
	})
}

func (m *MIDIEmitter) send(msg midi.Message) {
	if err := m.engine.Send(msg); err != nil {
		m.log.Error(err, "Could not send MIDI message", logging.Fields{"message": msg.String()})
	}
}

// Key is the MIDI key nearest to frequency.
func Key(frequency float64) (uint8, bool) {
	if frequency <= 0 {
		return 0, false
	}
	p := pitch.FromFrequency(frequency)
	if p < 0 || p > 127 {
		return 0, false
	}
	return uint8(p), true
}

// Velocity maps a 0..1 level onto 1..127.
func Velocity(level float64) uint8 {
	v := math.Round(level * 127)
	if v < 1 {
		return 1
	}
	if v > 127 {
		return 127
	}
	return uint8(v)
}

// Tone is one request seen by a Recorder.
type Tone struct {
	Frequency float64
	Start     float64
	Duration  float64
	Shape     scheduler.Envelope
}

// Recorder is an emitter without sound. It keeps every tone it is handed and
// logs it when a logger is set.
type Recorder struct {
	mu    sync.Mutex
	tones []Tone
	log   logging.Logger
	// ReadyErr is returned from EnsureReady.
	ReadyErr error
}

func NewRecorder(logger logging.Logger) *Recorder {
	return &Recorder{log: logger}
}

func (r *Recorder) EnsureReady() error {
	return r.ReadyErr
}

func (r *Recorder) ScheduleTone(frequency, start, duration float64, shape scheduler.Envelope) {
	r.mu.Lock()
	r.tones = append(r.tones, Tone{frequency, start, duration, shape})
	r.mu.Unlock()

	if r.log != nil {
		name := "?"
		if key, ok := Key(frequency); ok {
			name = pitch.Spell(pitch.Pitch(key), false).String()
		}
		r.log.Info("Tone", logging.Fields{"note": name, "at": start, "seconds": duration, "level": shape.Sustain})
	}
}

func (r *Recorder) Tones() []Tone {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]Tone, len(r.tones))
	copy(res, r.tones)
	return res
}

// Keys returns the MIDI key of every recorded tone.
func (r *Recorder) Keys() []int {
	var keys []int
	for _, t := range r.Tones() {
		k, _ := Key(t.Frequency)
		keys = append(keys, int(k))
	}
	return keys
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tones = nil
}
