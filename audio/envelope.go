package audio

import (
	"math"

	"github.com/jsphweid/pianolab/scheduler"
)

const (
	// Silence is where exponential releases end; a ramp can never reach zero.
	Silence = 0.001
	// TailSeconds is how long a ReleaseTail tone takes to die away.
	TailSeconds = 0.1
)

// Gain is the level of a tone shaped by shape, t seconds after it started.
// The attack ramps linearly from silence to the sustain level. A ReleaseDecay
// tone then falls exponentially to Silence at the end of the tone; a
// ReleaseTail tone holds until the final TailSeconds before falling.
func Gain(shape scheduler.Envelope, t, duration float64) float64 {
	if t < 0 || t >= duration || shape.Sustain <= 0 {
		return 0
	}
	attack := math.Min(math.Max(shape.Attack, 0), duration)
	if t < attack {
		return shape.Sustain * t / attack
	}

	from := attack
	if shape.Release == scheduler.ReleaseTail {
		from = math.Max(attack, duration-TailSeconds)
	}
	if t <= from {
		return shape.Sustain
	}
	if shape.Sustain <= Silence {
		return shape.Sustain
	}
	p := (t - from) / (duration - from)
	return shape.Sustain * math.Pow(Silence/shape.Sustain, p)
}
