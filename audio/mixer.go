package audio

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/jsphweid/pianolab/scheduler"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	// frameBytes is one stereo frame of little endian float32 samples.
	frameBytes = ChannelCount * 4
)

type voice struct {
	frequency float64
	start     float64
	duration  float64
	shape     scheduler.Envelope
}

func (v voice) sample(t float64) float64 {
	at := t - v.start
	g := Gain(v.shape, at, v.duration)
	if g == 0 {
		return 0
	}
	return g * math.Sin(2*math.Pi*v.frequency*at)
}

// Mixer renders scheduled sine tones as an endless stream of stereo float32
// frames. Frame zero plays at clock time origin.
type Mixer struct {
	mu     sync.Mutex
	origin float64
	frames int64
	voices []voice
}

func NewMixer(origin float64) *Mixer {
	return &Mixer{origin: origin}
}

func (m *Mixer) Add(frequency, start, duration float64, shape scheduler.Envelope) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.voices = append(m.voices, voice{frequency, start, duration, shape})
}

// Now is the clock time of the next frame Read will render.
func (m *Mixer) Now() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now()
}

func (m *Mixer) now() float64 {
	return m.origin + float64(m.frames)/SampleRate
}

// Align moves the stream so its next frame plays at clock time t. Used after
// the output was paused while the clock kept running.
func (m *Mixer) Align(t float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.origin = t - float64(m.frames)/SampleRate
}

// Voices is the number of tones that have not finished yet.
func (m *Mixer) Voices() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// Sample is the mixed level at clock time t, limited to -1..1.
func (m *Mixer) Sample(t float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sample(t)
}

func (m *Mixer) sample(t float64) float64 {
	var sum float64
	for _, v := range m.voices {
		sum += v.sample(t)
	}
	return math.Tanh(sum)
}

// Read fills p with whole frames. It never returns io.EOF.
func (m *Mixer) Read(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(p) / frameBytes
	for i := 0; i < n; i++ {
		t := m.origin + float64(m.frames+int64(i))/SampleRate
		bits := math.Float32bits(float32(m.sample(t)))
		for ch := 0; ch < ChannelCount; ch++ {
			binary.LittleEndian.PutUint32(p[i*frameBytes+ch*4:], bits)
		}
	}
	m.frames += int64(n)

	now := m.now()
	live := m.voices[:0]
	for _, v := range m.voices {
		if v.start+v.duration > now {
			live = append(live, v)
		}
	}
	m.voices = live
	return n * frameBytes, nil
}
