package widget

import (
	"sync"

	"github.com/jsphweid/pianolab/chord"
	"github.com/jsphweid/pianolab/logging"
	"github.com/jsphweid/pianolab/scale"
)

// LadderKeyboard is two octaves from middle C.
var LadderKeyboard = Keyboard{Start: 60, Keys: 24}

type DegreeView struct {
	Degree  int      `json:"degree"`
	Roman   string   `json:"roman"`
	Quality string   `json:"quality"`
	Notes   []string `json:"notes"`
	Keys    []int    `json:"keys"`
}

type LadderView struct {
	Name      string      `json:"name"`
	Tonic     string      `json:"tonic"`
	Mode      string      `json:"mode"`
	Notes     []string    `json:"notes"`
	Degrees   []string    `json:"degrees"`
	Qualities []string    `json:"qualities"`
	RightHand string      `json:"right_hand"`
	LeftHand  string      `json:"left_hand"`
	ScaleKeys []int       `json:"scale_keys"`
	RootKey   int         `json:"root_key"`
	Selected  *DegreeView `json:"selected,omitempty"`
}

// NewDegreeView describes the chord on one scale degree.
func NewDegreeView(def scale.Definition, degree int) (DegreeView, error) {
	keys, err := def.DisplayTriad(degree)
	if err != nil {
		return DegreeView{}, err
	}
	q := def.TriadQualities()[degree]
	return DegreeView{
		Degree:  degree,
		Roman:   def.Degrees[degree],
		Quality: q.Name,
		Notes:   []string{def.Notes[degree], def.Notes[(degree+2)%7], def.Notes[(degree+4)%7]},
		Keys:    keys,
	}, nil
}

func NewLadderView(def scale.Definition, selected *DegreeView) LadderView {
	var qualities []string
	for _, q := range def.TriadQualities() {
		qualities = append(qualities, q.Name)
	}
	keys := def.ContinuousIndices()
	return LadderView{
		Name:      def.Name,
		Tonic:     def.Tonic,
		Mode:      string(def.Mode),
		Notes:     def.Notes[:],
		Degrees:   def.Degrees[:],
		Qualities: qualities,
		RightHand: def.Fingering.RH,
		LeftHand:  def.Fingering.LH,
		ScaleKeys: keys,
		RootKey:   keys[0],
		Selected:  selected,
	}
}

// ToneLadder shows a scale and the triad built on a chosen degree.
type ToneLadder struct {
	mu       sync.Mutex
	log      logging.Logger
	def      scale.Definition
	selected *DegreeView
}

func NewToneLadder(opts Options) *ToneLadder {
	l := &ToneLadder{def: scale.MustLookup("C", chord.Major)}
	_, l.log = opts.logger("ladder")
	return l
}

// SetKey switches scale and clears the selected degree.
func (l *ToneLadder) SetKey(tonic string, mode chord.Mode) error {
	def, err := scale.Lookup(tonic, mode)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.def = def
	l.selected = nil
	return nil
}

func (l *ToneLadder) SelectDegree(degree int) (DegreeView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	dv, err := NewDegreeView(l.def, degree)
	if err != nil {
		return DegreeView{}, err
	}
	l.selected = &dv
	l.log.Debug("Degree selected", logging.Fields{"scale": l.def.Name, "degree": dv.Roman})
	return dv, nil
}

func (l *ToneLadder) ClearSelection() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.selected = nil
}

func (l *ToneLadder) View() LadderView {
	l.mu.Lock()
	defer l.mu.Unlock()
	return NewLadderView(l.def, l.selected)
}
