package scheduler

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jsphweid/pianolab/clock"
	"github.com/jsphweid/pianolab/constants"
	"github.com/jsphweid/pianolab/logging"
)

// TransportState is the playback position of one scheduler.
type TransportState struct {
	Tempo     float64
	IsPlaying bool
	// CurrentEventIndex is the next event to hand to the emitter, -1 when stopped.
	CurrentEventIndex int
	// NextEventTime is the absolute start time of CurrentEventIndex.
	NextEventTime float64
	// ActiveIndex is the event sounding right now, -1 when none.
	ActiveIndex int
}

type Options struct {
	Clock   clock.Clock
	Emitter ToneEmitter
	Logger  logging.Logger

	// OnEvent fires when an event becomes audible.
	OnEvent func(index int, ev Event)
	// OnFinish fires when the last event of a one-shot sequence has finished
	// sounding.
	OnFinish func()
	// OnError receives backend failures hit while running. Playback has
	// already stopped when it is called.
	OnError func(err error)
}

// Scheduler plays a sequence by handing tones to its emitter a short horizon
// before they are due, polling on a fixed wall-clock interval. Every instance
// owns its transport; nothing is shared between schedulers.
type Scheduler struct {
	id   string
	opts Options
	log  logging.Logger

	mu    sync.Mutex
	state TransportState
	seq   Sequence
	loop  bool
	timer clock.Timer
	// gen changes on every Start and Stop. Callbacks armed under an older
	// generation do nothing.
	gen int
}

func New(opts Options) *Scheduler {
	if opts.Clock == nil {
		opts.Clock = clock.NewWall()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	id := uuid.New().String()
	return &Scheduler{
		id:    id,
		opts:  opts,
		log:   logger.WithFields(logging.Fields{"scheduler": id}),
		state: TransportState{CurrentEventIndex: -1, ActiveIndex: -1},
	}
}

func (s *Scheduler) ID() string {
	return s.id
}

func (s *Scheduler) State() TransportState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Scheduler) IsPlaying() bool {
	return s.State().IsPlaying
}

// Start begins playback of req from its first event. A running sequence is
// replaced. An empty sequence leaves the scheduler stopped.
func (s *Scheduler) Start(req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	s.Stop()

	if len(req.Sequence) == 0 {
		s.log.Debug("Empty sequence, nothing to play")
		return nil
	}
	if s.opts.Emitter == nil {
		return fmt.Errorf("scheduler has no tone emitter")
	}
	if err := s.opts.Emitter.EnsureReady(); err != nil {
		s.log.Error(err, "Audio backend not ready, playback disabled")
		return err
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.seq = req.Sequence
	s.loop = req.Loop
	s.state = TransportState{
		Tempo:             req.Tempo,
		IsPlaying:         true,
		CurrentEventIndex: 0,
		NextEventTime:     s.opts.Clock.Now() + constants.StartDelay,
		ActiveIndex:       -1,
	}
	s.mu.Unlock()

	s.log.Info("Playback started", logging.Fields{"events": len(req.Sequence), "bpm": req.Tempo, "loop": req.Loop})
	s.tick(gen)
	return nil
}

// Stop cancels the pending tick. Tones already handed to the emitter play out.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.halt()
	s.state.ActiveIndex = -1
}

// SetTempo applies from the next event scheduled on. Committed tones keep
// their timing.
func (s *Scheduler) SetTempo(bpm float64) error {
	if bpm <= 0 {
		return fmt.Errorf("%w: %v bpm", ErrInvalidTempo, bpm)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tempo = bpm
	return nil
}

func (s *Scheduler) halt() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state.IsPlaying = false
	s.state.CurrentEventIndex = -1
}

func (s *Scheduler) tick(gen int) {
	s.mu.Lock()
	if gen != s.gen || !s.state.IsPlaying {
		s.mu.Unlock()
		return
	}

	if s.state.NextEventTime < s.opts.Clock.Now()+constants.ScheduleAhead {
		if err := s.opts.Emitter.EnsureReady(); err != nil {
			s.gen++
			s.halt()
			s.state.ActiveIndex = -1
			s.mu.Unlock()
			s.log.Error(err, "Audio backend lost, playback stopped")
			if s.opts.OnError != nil {
				s.opts.OnError(err)
			}
			return
		}
	}

	s.scheduleDue(gen)
	if s.state.IsPlaying {
		s.timer = s.opts.Clock.AfterFunc(constants.LookaheadPoll, func() {
			s.tick(gen)
		})
	}
	s.mu.Unlock()
}

// scheduleDue hands every event starting inside the look-ahead horizon to the
// emitter at its exact start time. Callers hold s.mu.
func (s *Scheduler) scheduleDue(gen int) {
	c := s.opts.Clock
	for s.state.IsPlaying && s.state.NextEventTime < c.Now()+constants.ScheduleAhead {
		index := s.state.CurrentEventIndex
		ev := s.seq[index]
		at := s.state.NextEventTime
		dur := BeatSeconds(ev.Duration, s.state.Tempo)

		for _, snd := range ev.Sounds {
			length := snd.Length
			if length <= 0 {
				length = dur
			}
			s.opts.Emitter.ScheduleTone(snd.Frequency, at, length, snd.Shape)
		}
		c.AfterFunc(clock.Seconds(at-c.Now()), func() {
			s.show(gen, index, ev)
		})
		s.log.Debug("Scheduled event", logging.Fields{"index": index, "at": at, "seconds": dur})

		s.state.NextEventTime = at + dur
		next := index + 1
		if next >= len(s.seq) {
			if !s.loop {
				end := s.state.NextEventTime
				s.halt()
				c.AfterFunc(clock.Seconds(end-c.Now()), func() {
					s.finish(gen)
				})
				return
			}
			next = 0
		}
		s.state.CurrentEventIndex = next
	}
}

func (s *Scheduler) show(gen, index int, ev Event) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.state.ActiveIndex = index
	cb := s.opts.OnEvent
	s.mu.Unlock()

	if cb != nil {
		cb(index, ev)
	}
}

func (s *Scheduler) finish(gen int) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.state.ActiveIndex = -1
	cb := s.opts.OnFinish
	s.mu.Unlock()

	s.log.Info("Playback finished")
	if cb != nil {
		cb()
	}
}
