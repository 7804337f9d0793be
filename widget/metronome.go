package widget

import (
	"fmt"
	"math"
	"sync"

	"github.com/jsphweid/pianolab/clock"
	"github.com/jsphweid/pianolab/constants"
	"github.com/jsphweid/pianolab/logging"
	"github.com/jsphweid/pianolab/report"
	"github.com/jsphweid/pianolab/scheduler"
	"github.com/jsphweid/pianolab/util"
	"golang.org/x/exp/slices"
)

const (
	DefaultBPM             = 100.0
	DefaultBeatsPerMeasure = 4

	downbeatHz = 1200
	beatHz     = 800
	clickSecs  = 0.05
)

var BeatsPerMeasureChoices = []int{2, 3, 4, 6}

type MetronomeView struct {
	ID              string  `json:"id"`
	BPM             float64 `json:"bpm"`
	BeatsPerMeasure int     `json:"beats_per_measure"`
	CurrentBeat     int     `json:"current_beat"`
	IsPlaying       bool    `json:"is_playing"`
}

type Metronome struct {
	mu    sync.Mutex
	id    string
	log   logging.Logger
	clock clock.Clock
	sched *scheduler.Scheduler
	tap   scheduler.TapTempo

	bpm     float64
	beats   int
	current int
	onBeat  func(beat int)
}

// NewMetronome builds a stopped metronome. onBeat, when set, is called as each
// click becomes audible.
func NewMetronome(opts Options, onBeat func(beat int)) *Metronome {
	if opts.Clock == nil {
		opts.Clock = clock.NewWall()
	}
	m := &Metronome{clock: opts.Clock, bpm: DefaultBPM, beats: DefaultBeatsPerMeasure, onBeat: onBeat}
	m.id, m.log = opts.logger("metronome")
	m.sched = opts.scheduler(m.log, m.handleBeat, nil)
	return m
}

// ClickSequence is one measure of clicks, accented on the downbeat.
func ClickSequence(beats int) scheduler.Sequence {
	var seq scheduler.Sequence
	for i := 0; i < beats; i++ {
		snd := scheduler.Sound{
			Frequency: beatHz,
			Shape:     scheduler.Envelope{Sustain: 0.5, Release: scheduler.ReleaseDecay},
			Length:    clickSecs,
		}
		if i == 0 {
			snd.Frequency = downbeatHz
			snd.Shape.Sustain = 1
		}
		seq = seq.Append(1, i, snd)
	}
	return seq
}

func (m *Metronome) handleBeat(_ int, ev scheduler.Event) {
	beat := ev.Payload.(int)
	m.mu.Lock()
	m.current = beat
	cb := m.onBeat
	m.mu.Unlock()

	if cb != nil {
		cb(beat)
	}
}

func (m *Metronome) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.start()
}

func (m *Metronome) start() error {
	m.current = 0
	req, err := scheduler.NewRequest(ClickSequence(m.beats), m.bpm, true)
	if err != nil {
		return err
	}
	if err := m.sched.Start(req); err != nil {
		report.Notice(err, "Could not start the metronome")
		return err
	}
	return nil
}

// Stop silences future clicks and returns the beat display to the downbeat.
func (m *Metronome) Stop() {
	m.sched.Stop()
	m.mu.Lock()
	m.current = 0
	m.mu.Unlock()
}

func (m *Metronome) Toggle() error {
	if m.sched.IsPlaying() {
		m.Stop()
		return nil
	}
	return m.Start()
}

// SetTempo takes effect from the next click.
func (m *Metronome) SetTempo(bpm float64) error {
	if err := scheduler.ValidateTapTempo(bpm); err != nil {
		return err
	}
	m.mu.Lock()
	m.bpm = bpm
	m.mu.Unlock()
	return m.sched.SetTempo(bpm)
}

// Nudge moves the tempo by delta BPM, staying inside the playable range. On
// error the tempo is unchanged and returned.
func (m *Metronome) Nudge(delta float64) (float64, error) {
	m.mu.Lock()
	old := m.bpm
	m.mu.Unlock()

	bpm := old + delta
	if !math.IsNaN(bpm) {
		bpm = util.Clamp(bpm, constants.MinBPM, constants.MaxBPM)
	}
	if err := m.SetTempo(bpm); err != nil {
		return old, err
	}
	return bpm, nil
}

// SetBeatsPerMeasure restarts a running metronome on the downbeat.
func (m *Metronome) SetBeatsPerMeasure(n int) error {
	if !slices.Contains(BeatsPerMeasureChoices, n) {
		return fmt.Errorf("beats per measure must be one of %v, got %d", BeatsPerMeasureChoices, n)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.beats = n
	if m.sched.IsPlaying() {
		return m.start()
	}
	return nil
}

// Tap records a tap now. Once enough taps have arrived the tempo follows
// them; taps implying a tempo out of range are ignored.
func (m *Metronome) Tap() (float64, error) {
	return m.TapAt(m.clock.Now() * 1000)
}

func (m *Metronome) TapAt(ms float64) (float64, error) {
	m.mu.Lock()
	bpm, err := m.tap.Tap(ms)
	m.mu.Unlock()
	if err != nil {
		return 0, err
	}
	m.log.Debug("Tapped tempo", logging.Fields{"bpm": bpm})
	return bpm, m.SetTempo(bpm)
}

func (m *Metronome) View() MetronomeView {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MetronomeView{
		ID:              m.id,
		BPM:             m.bpm,
		BeatsPerMeasure: m.beats,
		CurrentBeat:     m.current,
		IsPlaying:       m.sched.IsPlaying(),
	}
}
