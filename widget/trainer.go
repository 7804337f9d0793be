package widget

import (
	"math/rand"
	"sync"
	"time"

	"github.com/jsphweid/pianolab/clock"
	"github.com/jsphweid/pianolab/logging"
	"github.com/jsphweid/pianolab/pitch"
	"github.com/jsphweid/pianolab/staff"
)

const (
	correctPoints = 10
	wrongPenalty  = 5

	nextNoteDelay      = 800 * time.Millisecond
	clearFeedbackDelay = 500 * time.Millisecond
)

type Feedback string

const (
	NoFeedback Feedback = ""
	Correct    Feedback = "correct"
	Wrong      Feedback = "wrong"
)

type TrainerSettings struct {
	Clef        staff.Clef `json:"clef"`
	Accidentals bool       `json:"accidentals"`
	Ledger      bool       `json:"ledger"`
	// CPositions restricts notes to the beginner C hand positions and
	// overrides the other two options.
	CPositions bool `json:"c_positions"`
}

var cPositions = map[staff.Clef][]pitch.Pitch{
	staff.Treble: {60, 62, 64, 65, 67},
	staff.Bass:   {48, 50, 52, 53, 55, 57, 59, 60},
}

// Range is the inclusive span notes are drawn from.
func (s TrainerSettings) Range() (lo, hi pitch.Pitch) {
	if s.Clef == staff.Bass {
		if s.Ledger {
			return 40, 60
		}
		return 43, 57
	}
	if s.Ledger {
		return 60, 81
	}
	return 64, 77
}

type TrainerView struct {
	ID       string          `json:"id"`
	Settings TrainerSettings `json:"settings"`
	Score    int             `json:"score"`
	Feedback Feedback        `json:"feedback"`
	Note     string          `json:"note"`
	Pitch    int             `json:"pitch"`
	Offset   int             `json:"offset"`
	Ledger   []int           `json:"ledger"`
	Sharp    bool            `json:"sharp"`
}

// NoteTrainer shows one note on a staff at a time and scores answers given by
// pitch class.
type NoteTrainer struct {
	mu    sync.Mutex
	id    string
	log   logging.Logger
	clock clock.Clock
	rng   *rand.Rand

	settings TrainerSettings
	score    int
	feedback Feedback
	current  pitch.Pitch
	timer    clock.Timer
	// gen changes with every new note and every armed timer. A callback that
	// already fired when its timer was stopped sees a different gen and
	// does nothing.
	gen uint64
}

func NewNoteTrainer(opts Options, rng *rand.Rand) *NoteTrainer {
	if opts.Clock == nil {
		opts.Clock = clock.NewWall()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	t := &NoteTrainer{clock: opts.Clock, rng: rng, settings: TrainerSettings{Clef: staff.Treble}}
	t.id, t.log = opts.logger("trainer")
	t.mu.Lock()
	t.generate()
	t.mu.Unlock()
	return t
}

// Configure changes the options and draws a new note. The score is kept.
func (t *NoteTrainer) Configure(s TrainerSettings) error {
	if _, err := staff.ParseClef(string(s.Clef)); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.settings = s
	t.generate()
	return nil
}

// Next draws a new note and clears any feedback.
func (t *NoteTrainer) Next() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generate()
}

// generate picks the next note. Callers hold t.mu.
func (t *NoteTrainer) generate() {
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	s := t.settings
	var p pitch.Pitch
	if s.CPositions {
		allowed := cPositions[s.Clef]
		p = allowed[t.rng.Intn(len(allowed))]
	} else {
		lo, hi := s.Range()
		p = lo + pitch.Pitch(t.rng.Intn(int(hi-lo)+1))
		if !s.Accidentals && pitch.IsBlackKey(p) {
			p++
		}
	}
	t.current = p
	t.feedback = NoFeedback
	t.log.Debug("New note", logging.Fields{"pitch": int(p)})
}

// Answer scores a key press. Presses are ignored while feedback is showing;
// accepted reports whether this one counted.
func (t *NoteTrainer) Answer(p pitch.Pitch) (fb Feedback, accepted bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.feedback != NoFeedback {
		return t.feedback, false
	}

	t.gen++
	gen := t.gen
	if pitch.Class(p) == pitch.Class(t.current) {
		t.score += correctPoints
		t.feedback = Correct
		t.timer = t.clock.AfterFunc(nextNoteDelay, func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			if t.gen != gen {
				return
			}
			t.timer = nil
			t.generate()
		})
	} else {
		t.score -= wrongPenalty
		if t.score < 0 {
			t.score = 0
		}
		t.feedback = Wrong
		t.timer = t.clock.AfterFunc(clearFeedbackDelay, func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			if t.gen != gen {
				return
			}
			t.timer = nil
			t.feedback = NoFeedback
		})
	}
	return t.feedback, true
}

func (t *NoteTrainer) Current() pitch.Pitch {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *NoteTrainer) Position() staff.Position {
	t.mu.Lock()
	defer t.mu.Unlock()
	return staff.Place(t.current, t.settings.Clef)
}

func (t *NoteTrainer) View() TrainerView {
	t.mu.Lock()
	defer t.mu.Unlock()
	pos := staff.Place(t.current, t.settings.Clef)
	return TrainerView{
		ID:       t.id,
		Settings: t.settings,
		Score:    t.score,
		Feedback: t.feedback,
		Note:     pitch.ClassName(pitch.Class(t.current), false),
		Pitch:    int(t.current),
		Offset:   pos.Offset,
		Ledger:   pos.Ledger,
		Sharp:    pos.Sharp,
	}
}
