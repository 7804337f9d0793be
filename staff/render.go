package staff

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	Width       = 400
	Height      = 256
	lineSpacing = 16.0
	staffWidth  = 200.0
)

func face(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// Render draws the staff with one note head on a white card.
func Render(pos Position) (image.Image, error) {
	dc := gg.NewContext(Width, Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	cx, cy := float64(Width)/2, float64(Height)/2

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	for i := -2; i <= 2; i++ {
		y := cy + float64(i)*lineSpacing
		dc.DrawLine(cx-staffWidth/2, y, cx+staffWidth/2, y)
	}
	dc.Stroke()

	ff, err := face(40)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(ff)
	clef := "G"
	clefLine := lineSpacing // G line, second from the bottom
	if pos.Clef == Bass {
		clef = "F"
		clefLine = -lineSpacing
	}
	dc.DrawStringAnchored(clef, cx-staffWidth/2+30, cy+clefLine, 0.5, 0.5)

	x := cx + 20
	y := cy - float64(pos.Offset)*lineSpacing/2
	for _, l := range pos.Ledger {
		ly := cy - float64(l)*lineSpacing/2
		dc.DrawLine(x-16, ly, x+16, ly)
	}
	dc.Stroke()

	dc.DrawEllipse(x, y, 10, 8)
	dc.Fill()

	if pos.Sharp {
		sf, err := face(24)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(sf)
		dc.DrawStringAnchored("#", x-25, y, 0.5, 0.5)
	}
	return dc.Image(), nil
}

func WritePNG(w io.Writer, pos Position) error {
	img, err := Render(pos)
	if err != nil {
		return err
	}
	return gg.NewContextForImage(img).EncodePNG(w)
}

func SavePNG(path string, pos Position) error {
	img, err := Render(pos)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
