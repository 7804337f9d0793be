package staff

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/jsphweid/pianolab/pitch"
)

const (
	keyW  = 24.0
	keyH  = 120.0
	bKeyW = 14.0
	bKeyH = 75.0
	pad   = 10.0
)

// RenderKeyboard draws keys from start, highlighting the pressed ones.
func RenderKeyboard(start pitch.Pitch, keys int, pressed map[pitch.Pitch]bool) image.Image {
	end := start + pitch.Pitch(keys)
	col := func(p pitch.Pitch) float64 {
		return float64(Step(p)-Step(start))*keyW + pad
	}

	dc := gg.NewContext(int(col(end-1)+keyW+pad), int(keyH+2*pad))
	dc.SetRGB(0.17, 0.17, 0.17)
	dc.Clear()

	for p := start; p < end; p++ {
		if pitch.IsBlackKey(p) {
			continue
		}
		dc.DrawRectangle(col(p), pad, keyW, keyH)
		if pressed[p] {
			dc.SetRGB(0.3, 0.6, 1)
		} else {
			dc.SetRGB(1, 1, 1)
		}
		dc.FillPreserve()
		dc.SetRGBA(0, 0, 0, 1)
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	for p := start; p < end; p++ {
		if !pitch.IsBlackKey(p) {
			continue
		}
		x := col(p) + keyW - bKeyW/2
		dc.DrawRectangle(x, pad, bKeyW, bKeyH)
		if pressed[p] {
			dc.SetRGB(0.2, 0.45, 0.8)
		} else {
			dc.SetRGB(0.13, 0.13, 0.13)
		}
		dc.FillPreserve()
		dc.SetRGBA(0, 0, 0, 1)
		dc.SetLineWidth(1)
		dc.Stroke()
	}
	return dc.Image()
}
