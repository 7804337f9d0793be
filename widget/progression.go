package widget

import (
	"fmt"
	"sync"

	"github.com/jsphweid/pianolab/chord"
	"github.com/jsphweid/pianolab/logging"
	"github.com/jsphweid/pianolab/pitch"
	"github.com/jsphweid/pianolab/report"
	"github.com/jsphweid/pianolab/scheduler"
	"github.com/jsphweid/pianolab/voicing"
)

const (
	DefaultProgressionBPM = 70.0
	MinProgressionBPM     = 40.0
	MaxProgressionBPM     = 180.0

	bassLevel   = 0.3
	upperLevel  = 0.1
	chordAttack = 0.05
)

// ProgressionKeyboard spans C2 to B5 so drop and rootless voicings fit.
var ProgressionKeyboard = Keyboard{Start: 36, Keys: 48}

type ProgressionView struct {
	ID        string   `json:"id"`
	Key       string   `json:"key"`
	Mode      string   `json:"mode"`
	Voicing   string   `json:"voicing"`
	BPM       float64  `json:"bpm"`
	Step      int      `json:"step"`
	Steps     int      `json:"steps"`
	Bars      float64  `json:"bars"`
	Roman     string   `json:"roman"`
	Symbol    string   `json:"symbol"`
	Tones     []string `json:"tones"`
	Formula   string   `json:"formula"`
	LeftHand  string   `json:"left_hand"`
	RightHand []string `json:"right_hand"`
	Keys      []int    `json:"keys"`
	IsPlaying bool     `json:"is_playing"`
}

// ProgressionTrainer loops a ii-V-I in any key with a chosen voicing.
type ProgressionTrainer struct {
	mu    sync.Mutex
	id    string
	log   logging.Logger
	sched *scheduler.Scheduler

	key    pitch.Root
	mode   chord.Mode
	policy voicing.Policy
	bpm    float64
	step   int
}

func NewProgressionTrainer(opts Options) *ProgressionTrainer {
	key, _ := pitch.LookupRoot("C")
	p := &ProgressionTrainer{key: key, mode: chord.Major, policy: voicing.CloseMid, bpm: DefaultProgressionBPM}
	p.id, p.log = opts.logger("progression")
	p.sched = opts.scheduler(p.log, p.handleStep, nil)
	return p
}

func (p *ProgressionTrainer) handleStep(_ int, ev scheduler.Event) {
	p.mu.Lock()
	p.step = ev.Payload.(int)
	p.mu.Unlock()
}

// PlaceStep voices one step of the template in key.
func PlaceStep(key pitch.Root, step chord.Step, policy voicing.Policy) ([]pitch.Pitch, error) {
	q, err := chord.Lookup(step.Quality)
	if err != nil {
		return nil, err
	}
	v, err := voicing.Place(q, voicing.Anchor(step.RootClass(key)), policy)
	if err != nil {
		return nil, err
	}
	return v.All(), nil
}

// sequence is the looped progression starting from step. Callers hold p.mu.
func (p *ProgressionTrainer) sequence(from int) (scheduler.Sequence, error) {
	steps := chord.TwoFiveOne(p.mode)
	var seq scheduler.Sequence
	for i := range steps {
		idx := (from + i) % len(steps)
		tones, err := PlaceStep(p.key, steps[idx], p.policy)
		if err != nil {
			return nil, err
		}
		sounds := make([]scheduler.Sound, 0, len(tones))
		for j, t := range tones {
			shape := scheduler.Envelope{Attack: chordAttack, Sustain: upperLevel, Release: scheduler.ReleaseDecay}
			if j == 0 {
				shape.Sustain = bassLevel
			}
			sounds = append(sounds, tone(t, shape))
		}
		seq = seq.Append(steps[idx].Beats, idx, sounds...)
	}
	return seq, nil
}

// Play loops the progression from the current step.
func (p *ProgressionTrainer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	seq, err := p.sequence(p.step)
	if err != nil {
		return err
	}
	req, err := scheduler.NewRequest(seq, p.bpm, true)
	if err != nil {
		return err
	}
	if err := p.sched.Start(req); err != nil {
		report.Notice(err, "Could not play the progression")
		return err
	}
	return nil
}

func (p *ProgressionTrainer) Stop() {
	p.sched.Stop()
}

func (p *ProgressionTrainer) Toggle() error {
	if p.sched.IsPlaying() {
		p.Stop()
		return nil
	}
	return p.Play()
}

func (p *ProgressionTrainer) Next() {
	p.move(1)
}

func (p *ProgressionTrainer) Previous() {
	p.move(-1)
}

func (p *ProgressionTrainer) move(delta int) {
	p.sched.Stop()
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(chord.TwoFiveOne(p.mode))
	p.step = ((p.step+delta)%n + n) % n
}

// reset stops playback and returns to the first step. Callers hold p.mu.
func (p *ProgressionTrainer) reset() {
	p.sched.Stop()
	p.step = 0
}

func (p *ProgressionTrainer) SetKey(name string) error {
	key, err := pitch.LookupRoot(name)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.key = key
	p.reset()
	return nil
}

func (p *ProgressionTrainer) SetMode(mode chord.Mode) error {
	if mode != chord.Major && mode != chord.Minor {
		return fmt.Errorf("unknown mode %q", mode)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
	p.reset()
	return nil
}

func (p *ProgressionTrainer) SetVoicing(name string) error {
	policy, err := voicing.ParsePolicy(name)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.policy = policy
	p.reset()
	return nil
}

// SetTempo takes effect from the next chord.
func (p *ProgressionTrainer) SetTempo(bpm float64) error {
	if bpm < MinProgressionBPM || bpm > MaxProgressionBPM {
		return fmt.Errorf("%w: %v bpm outside [%v, %v]", scheduler.ErrInvalidTempo, bpm, MinProgressionBPM, MaxProgressionBPM)
	}
	p.mu.Lock()
	p.bpm = bpm
	p.mu.Unlock()
	return p.sched.SetTempo(bpm)
}

func (p *ProgressionTrainer) View() (ProgressionView, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	steps := chord.TwoFiveOne(p.mode)
	step := steps[p.step]
	tones, err := PlaceStep(p.key, step, p.policy)
	if err != nil {
		return ProgressionView{}, err
	}
	names := make([]string, len(tones))
	for i, t := range tones {
		names[i] = p.key.Spell(t)
	}
	return ProgressionView{
		ID:        p.id,
		Key:       p.key.Name,
		Mode:      string(p.mode),
		Voicing:   string(p.policy),
		BPM:       p.bpm,
		Step:      p.step,
		Steps:     len(steps),
		Bars:      step.Beats / 4,
		Roman:     step.Roman,
		Symbol:    step.Symbol(p.key),
		Tones:     names,
		Formula:   chord.MustLookup(step.Quality).Formula(),
		LeftHand:  names[0],
		RightHand: names[1:],
		Keys:      ProgressionKeyboard.Indices(tones),
		IsPlaying: p.sched.IsPlaying(),
	}, nil
}
