package audio

import (
	"fmt"
	"io"
	"sync"

	"github.com/jsphweid/pianolab/clock"
	"github.com/jsphweid/pianolab/logging"
	"github.com/jsphweid/pianolab/scheduler"
)

// Speaker plays a stream of stereo float32 frames. oto's Player satisfies it.
type Speaker interface {
	Play()
	IsPlaying() bool
}

// SpeakerOpener starts an output device pulling from stream.
type SpeakerOpener func(stream io.Reader) (Speaker, error)

// Synth is an oscillator emitter: every tone is a sine wave shaped by its
// envelope and mixed into one output stream.
type Synth struct {
	mu      sync.Mutex
	open    SpeakerOpener
	clock   clock.Clock
	mixer   *Mixer
	speaker Speaker
	log     logging.Logger
}

func NewSynth(open SpeakerOpener, c clock.Clock, logger logging.Logger) *Synth {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &Synth{open: open, clock: c, log: logger}
}

func (s *Synth) EnsureReady() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.speaker == nil {
		if s.open == nil {
			return ErrBackendUnavailable
		}
		mixer := NewMixer(s.clock.Now())
		sp, err := s.open(mixer)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		s.mixer, s.speaker = mixer, sp
		s.log.Info("Audio backend created", logging.Fields{"sampleRate": SampleRate})
	}
	if !s.speaker.IsPlaying() {
		s.mixer.Align(s.clock.Now())
		s.speaker.Play()
		s.log.Info("Audio backend resumed")
	}
	return nil
}

func (s *Synth) ScheduleTone(frequency, start, duration float64, shape scheduler.Envelope) {
	s.mu.Lock()
	mixer := s.mixer
	s.mu.Unlock()

	if mixer == nil {
		s.log.Warn("Tone scheduled before the synth was ready", logging.Fields{"frequency": frequency})
		return
	}
	if frequency <= 0 || frequency >= SampleRate/2 {
		s.log.Warn("Tone outside the audible range", logging.Fields{"frequency": frequency})
		return
	}
	mixer.Add(frequency, start, duration, shape)
}
