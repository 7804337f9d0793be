package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/jsphweid/pianolab/clock"
	"github.com/jsphweid/pianolab/logging"
	"github.com/jsphweid/pianolab/pitch"
	"github.com/jsphweid/pianolab/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
)

type fakePort struct {
	open    bool
	opens   int
	openErr error
	sent    []midi.Message
}

func (p *fakePort) Open() error {
	if p.openErr != nil {
		return p.openErr
	}
	p.opens++
	p.open = true
	return nil
}

func (p *fakePort) IsOpen() bool { return p.open }

func (p *fakePort) Send(data []byte) error {
	p.sent = append(p.sent, midi.Message(data))
	return nil
}

func TestEngineCreatesLazilyAndOnce(t *testing.T) {
	port := &fakePort{}
	created := 0
	e := NewEngine(func() (Port, error) {
		created++
		return port, nil
	}, logging.NoOpLogger{})

	assert.Equal(t, 0, created)
	require.NoError(t, e.EnsureReady())
	require.NoError(t, e.EnsureReady())
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, port.opens)

	// a suspended backend is resumed
	port.open = false
	require.NoError(t, e.EnsureReady())
	assert.Equal(t, 1, created)
	assert.Equal(t, 2, port.opens)
}

func TestEngineUnavailable(t *testing.T) {
	e := NewEngine(func() (Port, error) {
		return nil, errors.New("no ports")
	}, logging.NoOpLogger{})
	assert.ErrorIs(t, e.EnsureReady(), ErrBackendUnavailable)
	assert.ErrorIs(t, e.Send(midi.NoteOn(0, 60, 1)), ErrBackendUnavailable)

	port := &fakePort{openErr: errors.New("busy")}
	e = NewEngine(func() (Port, error) { return port, nil }, logging.NoOpLogger{})
	assert.ErrorIs(t, e.EnsureReady(), ErrBackendUnavailable)

	assert.ErrorIs(t, NewEngine(nil, logging.NoOpLogger{}).EnsureReady(), ErrBackendUnavailable)
}

func TestMIDIEmitterSendsAtScheduledTimes(t *testing.T) {
	c := clock.NewFake(10)
	port := &fakePort{}
	e := NewEngine(func() (Port, error) { return port, nil }, logging.NoOpLogger{})
	m := NewMIDIEmitter(e, c, 0, logging.NoOpLogger{})
	require.NoError(t, m.EnsureReady())

	m.ScheduleTone(pitch.Frequency(69), 10.5, 0.25, scheduler.Envelope{Sustain: 0.5})
	c.Advance(400 * time.Millisecond)
	assert.Empty(t, port.sent)

	c.Advance(200 * time.Millisecond)
	require.Len(t, port.sent, 1)
	var ch, key, vel uint8
	require.True(t, port.sent[0].GetNoteOn(&ch, &key, &vel))
	assert.Equal(t, uint8(69), key)
	assert.Equal(t, uint8(64), vel)

	c.Advance(200 * time.Millisecond)
	require.Len(t, port.sent, 2)
	assert.True(t, port.sent[1].GetNoteOff(&ch, &key, &vel))
	assert.Equal(t, uint8(69), key)
}

func TestMIDIEmitterKeepsRestruckKeySounding(t *testing.T) {
	c := clock.NewFake(0)
	port := &fakePort{}
	e := NewEngine(func() (Port, error) { return port, nil }, logging.NoOpLogger{})
	m := NewMIDIEmitter(e, c, 0, logging.NoOpLogger{})
	require.NoError(t, m.EnsureReady())

	// the second strike is armed first, so its note on lands ahead of the
	// first tone's note off at the shared instant
	m.ScheduleTone(pitch.Frequency(60), 0.5, 0.5, scheduler.Envelope{Sustain: 1})
	m.ScheduleTone(pitch.Frequency(60), 0, 0.5, scheduler.Envelope{Sustain: 1})

	c.AdvanceTo(0.5)
	var ch, key, vel uint8
	require.Len(t, port.sent, 2)
	assert.True(t, port.sent[0].GetNoteOn(&ch, &key, &vel))
	assert.True(t, port.sent[1].GetNoteOn(&ch, &key, &vel))

	c.AdvanceTo(1)
	require.Len(t, port.sent, 3)
	assert.True(t, port.sent[2].GetNoteOff(&ch, &key, &vel))
	assert.Equal(t, uint8(60), key)
}

func TestMIDIEmitterSkipsToneReleasedBeforeItSounded(t *testing.T) {
	c := clock.NewFake(0)
	port := &fakePort{}
	e := NewEngine(func() (Port, error) { return port, nil }, logging.NoOpLogger{})
	m := NewMIDIEmitter(e, c, 0, logging.NoOpLogger{})
	require.NoError(t, m.EnsureReady())

	// a stalled timer can deliver the note off first; neither message goes out
	m.ScheduleTone(pitch.Frequency(60), 0.2, 0.1, scheduler.Envelope{Sustain: 1})
	var fired []func()
	stalled := &stallClock{Fake: c, held: &fired}
	m.clock = stalled
	m.ScheduleTone(pitch.Frequency(62), 0.2, 0.1, scheduler.Envelope{Sustain: 1})
	require.Len(t, fired, 2)
	fired[1]()
	fired[0]()

	c.AdvanceTo(1)
	var ch, key, vel uint8
	require.Len(t, port.sent, 2)
	require.True(t, port.sent[0].GetNoteOn(&ch, &key, &vel))
	assert.Equal(t, uint8(60), key)
	require.True(t, port.sent[1].GetNoteOff(&ch, &key, &vel))
	assert.Equal(t, uint8(60), key)
}

// stallClock holds timer callbacks so a test can run them in any order.
type stallClock struct {
	*clock.Fake
	held *[]func()
}

func (s *stallClock) AfterFunc(_ time.Duration, f func()) clock.Timer {
	*s.held = append(*s.held, f)
	return stoppedTimer{}
}

type stoppedTimer struct{}

func (stoppedTimer) Stop() bool { return false }

func TestMIDIEmitterDropsUnplayableTones(t *testing.T) {
	c := clock.NewFake(0)
	m := NewMIDIEmitter(NewEngine(nil, logging.NoOpLogger{}), c, 0, logging.NoOpLogger{})
	m.ScheduleTone(0, 0, 1, scheduler.Envelope{})
	m.ScheduleTone(40000, 0, 1, scheduler.Envelope{})
	assert.Equal(t, 0, c.Pending())
}

func TestVelocity(t *testing.T) {
	assert.Equal(t, uint8(127), Velocity(1))
	assert.Equal(t, uint8(127), Velocity(3))
	assert.Equal(t, uint8(1), Velocity(0))
	assert.Equal(t, uint8(13), Velocity(0.1))
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(nil)
	require.NoError(t, r.EnsureReady())
	r.ScheduleTone(pitch.Frequency(60), 1, 2, scheduler.Envelope{Sustain: 0.3})
	r.ScheduleTone(pitch.Frequency(64), 1, 2, scheduler.Envelope{Sustain: 0.1})

	assert.Equal(t, []int{60, 64}, r.Keys())
	assert.Equal(t, 0.3, r.Tones()[0].Shape.Sustain)

	r.Reset()
	assert.Empty(t, r.Tones())
}
