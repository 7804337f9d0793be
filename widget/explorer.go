package widget

import (
	"sync"

	"github.com/jsphweid/pianolab/chord"
	"github.com/jsphweid/pianolab/logging"
	"github.com/jsphweid/pianolab/pitch"
)

// ExplorerKeyboard is three octaves from C3. Chords are built on its first C.
var ExplorerKeyboard = Keyboard{Start: 48, Keys: 36}

const explorerOctave = 3

type ChordView struct {
	Root          string   `json:"root"`
	Quality       string   `json:"quality"`
	QualityName   string   `json:"quality_name"`
	Symbol        string   `json:"symbol"`
	Inversion     int      `json:"inversion"`
	InversionName string   `json:"inversion_name"`
	MaxInversion  int      `json:"max_inversion"`
	Notes         []string `json:"notes"`
	Degrees       []string `json:"degrees"`
	Formula       string   `json:"formula"`
	Keys          []int    `json:"keys"`
}

// NewChordView describes req placed on the explorer keyboard.
func NewChordView(req chord.Request) ChordView {
	tones := req.Tones(explorerOctave)
	notes := make([]string, len(tones))
	for i, t := range tones {
		notes[i] = req.Root.Spell(t)
	}
	return ChordView{
		Root:          req.Root.Name,
		Quality:       req.Quality.Key,
		QualityName:   req.Quality.Name,
		Symbol:        req.Symbol(),
		Inversion:     req.Inversion,
		InversionName: chord.InversionName(req.Inversion),
		MaxInversion:  req.Quality.MaxInversion(),
		Notes:         notes,
		Degrees:       req.Degrees(),
		Formula:       req.Quality.Formula(),
		Keys:          ExplorerKeyboard.Indices(tones),
	}
}

// ChordExplorer browses chord qualities and inversions over any root.
type ChordExplorer struct {
	mu  sync.Mutex
	log logging.Logger
	req chord.Request
}

func NewChordExplorer(opts Options) *ChordExplorer {
	e := &ChordExplorer{}
	_, e.log = opts.logger("explorer")
	e.Reset()
	return e
}

// Reset goes back to C major in root position.
func (e *ChordExplorer) Reset() {
	req, err := chord.NewRequest("C", "maj", 0)
	if err != nil {
		panic(err)
	}
	e.mu.Lock()
	e.req = req
	e.mu.Unlock()
}

func (e *ChordExplorer) SetRoot(name string) error {
	root, err := pitch.LookupRoot(name)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.req.Root = root
	return nil
}

// SetQuality keeps the inversion when the new quality allows it and falls back
// to root position otherwise.
func (e *ChordExplorer) SetQuality(key string) error {
	q, err := chord.Lookup(key)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.req.Quality = q
	if e.req.Inversion > q.MaxInversion() {
		e.log.Debug("Inversion not available, back to root position", logging.Fields{"quality": key})
		e.req.Inversion = 0
	}
	return nil
}

func (e *ChordExplorer) SetInversion(n int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	req, err := chord.NewRequest(e.req.Root.Name, e.req.Quality.Key, n)
	if err != nil {
		return err
	}
	e.req = req
	return nil
}

func (e *ChordExplorer) Request() chord.Request {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.req
}

func (e *ChordExplorer) View() ChordView {
	return NewChordView(e.Request())
}
