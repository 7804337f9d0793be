package scheduler

import (
	"errors"
	"fmt"
	"math"

	"github.com/jsphweid/pianolab/constants"
	"gonum.org/v1/gonum/stat"
)

var ErrTooFewTaps = errors.New("need at least two taps")

// TapTempo derives a tempo from the last few tap timestamps.
type TapTempo struct {
	taps []float64
}

// Tap records a tap at ms (milliseconds on any monotonic base) and returns the
// tempo implied by the recent taps, rounded to a whole BPM. A gap longer than
// the reset window starts a new session.
func (t *TapTempo) Tap(ms float64) (float64, error) {
	if n := len(t.taps); n > 0 && ms-t.taps[n-1] > constants.TapReset {
		t.taps = t.taps[:0]
	}
	t.taps = append(t.taps, ms)
	if len(t.taps) > constants.TapHistory {
		t.taps = t.taps[len(t.taps)-constants.TapHistory:]
	}

	if len(t.taps) < 2 {
		return 0, ErrTooFewTaps
	}
	intervals := make([]float64, 0, len(t.taps)-1)
	for i := 1; i < len(t.taps); i++ {
		intervals = append(intervals, t.taps[i]-t.taps[i-1])
	}
	bpm := math.Round(60000 / stat.Mean(intervals, nil))
	if err := ValidateTapTempo(bpm); err != nil {
		return 0, err
	}
	return bpm, nil
}

func (t *TapTempo) Taps() []float64 {
	res := make([]float64, len(t.taps))
	copy(res, t.taps)
	return res
}

func (t *TapTempo) Reset() {
	t.taps = t.taps[:0]
}

// ValidateTapTempo accepts tempos in the playable range.
func ValidateTapTempo(bpm float64) error {
	if math.IsNaN(bpm) || bpm < constants.MinBPM || bpm > constants.MaxBPM {
		return fmt.Errorf("%w: %v bpm outside [%v, %v]", ErrInvalidTempo, bpm, constants.MinBPM, constants.MaxBPM)
	}
	return nil
}
