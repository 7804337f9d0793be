// Package widget holds the practice tools. Each widget owns its own state and,
// when it makes sound, its own scheduler; nothing is shared between instances.
package widget

import (
	"image"

	"github.com/google/uuid"
	"github.com/jsphweid/pianolab/clock"
	"github.com/jsphweid/pianolab/logging"
	"github.com/jsphweid/pianolab/pitch"
	"github.com/jsphweid/pianolab/report"
	"github.com/jsphweid/pianolab/scheduler"
	"github.com/jsphweid/pianolab/staff"
	"github.com/jsphweid/pianolab/util"
)

// Options are the collaborators shared by the sounding widgets.
type Options struct {
	Clock   clock.Clock
	Emitter scheduler.ToneEmitter
	Logger  logging.Logger
}

func (o Options) logger(widget string) (string, logging.Logger) {
	l := o.Logger
	if l == nil {
		l = logging.GetGlobalLogger()
	}
	id := uuid.New().String()
	return id, l.WithFields(logging.Fields{"widget": widget, "id": id})
}

func (o Options) scheduler(log logging.Logger, onEvent func(int, scheduler.Event), onFinish func()) *scheduler.Scheduler {
	return scheduler.New(scheduler.Options{
		Clock:    o.Clock,
		Emitter:  o.Emitter,
		Logger:   log,
		OnEvent:  onEvent,
		OnFinish: onFinish,
		OnError: func(err error) {
			report.Notice(err, "Audio stopped")
		},
	})
}

// Keyboard is the visible key range of a widget.
type Keyboard struct {
	Start pitch.Pitch
	Keys  int
}

// Indices maps pitches to key positions, dropping the ones off the keyboard.
func (k Keyboard) Indices(ps []pitch.Pitch) []int {
	return util.Relative(ps, k.Start, k.Keys)
}

func (k Keyboard) Contains(p pitch.Pitch) bool {
	return p >= k.Start && int(p-k.Start) < k.Keys
}

// Render draws the keyboard with the given key indices pressed.
func (k Keyboard) Render(indices []int) image.Image {
	pressed := map[pitch.Pitch]bool{}
	for _, i := range indices {
		pressed[k.Start+pitch.Pitch(i)] = true
	}
	return staff.RenderKeyboard(k.Start, k.Keys, pressed)
}

func tone(p pitch.Pitch, shape scheduler.Envelope) scheduler.Sound {
	return scheduler.Sound{Frequency: pitch.Frequency(p), Shape: shape}
}
