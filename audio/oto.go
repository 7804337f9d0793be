package audio

import (
	"io"

	"github.com/hajimehoshi/oto/v2"
)

// formatFloat32LE is oto.FormatFloat32LE.
const formatFloat32LE = 0

// OpenOto starts the system audio output on stream. oto allows one context
// per process, so this is called at most once by a Synth.
func OpenOto(stream io.Reader) (Speaker, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, formatFloat32LE)
	if err != nil {
		return nil, err
	}
	<-ready
	return ctx.NewPlayer(stream), nil
}
