package staff

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/jsphweid/pianolab/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenterLines(t *testing.T) {
	assert.Equal(t, "B4", pitch.Spell(Treble.CenterLine(), false).String())
	assert.Equal(t, "D3", pitch.Spell(Bass.CenterLine(), false).String())
}

func TestStepSharesLetterWithSharp(t *testing.T) {
	assert.Equal(t, Step(60), Step(61))
	assert.Equal(t, Step(60)+7, Step(72))
	assert.Equal(t, Step(64)+1, Step(65))
}

func TestPlaceTreble(t *testing.T) {
	cases := []struct {
		note   string
		offset int
		ledger []int
	}{
		{"B4", 0, nil},
		{"E4", -4, nil},
		{"F5", 4, nil},
		{"C4", -6, []int{-6}},
		{"A5", 6, []int{6}},
		{"C6", 8, []int{6, 8}},
		{"D4", -5, nil},
	}
	for _, c := range cases {
		pos := Place(pitch.MustParse(c.note), Treble)
		assert.Equal(t, c.offset, pos.Offset, c.note)
		assert.Equal(t, c.ledger, pos.Ledger, c.note)
	}
}

func TestPlaceBass(t *testing.T) {
	pos := Place(pitch.MustParse("G2"), Bass)
	assert.Equal(t, -4, pos.Offset)
	assert.True(t, pos.OnLine())

	pos = Place(pitch.MustParse("C4"), Bass)
	assert.Equal(t, 6, pos.Offset)
	assert.Equal(t, []int{6}, pos.Ledger)

	pos = Place(pitch.MustParse("E2"), Bass)
	assert.Equal(t, []int{-6}, pos.Ledger)
}

func TestSharpFlag(t *testing.T) {
	assert.True(t, Place(pitch.MustParse("F#4"), Treble).Sharp)
	assert.False(t, Place(pitch.MustParse("F4"), Treble).Sharp)
	assert.Equal(t, Place(pitch.MustParse("F4"), Treble).Offset, Place(pitch.MustParse("F#4"), Treble).Offset)
}

func TestParseClef(t *testing.T) {
	c, err := ParseClef("bass")
	require.NoError(t, err)
	assert.Equal(t, Bass, c)
	_, err = ParseClef("alto")
	assert.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, Place(pitch.MustParse("C#4"), Treble)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Width, img.Bounds().Dx())
	assert.Equal(t, Height, img.Bounds().Dy())
}

func TestRenderKeyboard(t *testing.T) {
	img := RenderKeyboard(48, 36, map[pitch.Pitch]bool{60: true, 64: true})
	// 21 white keys
	assert.Equal(t, int(21*keyW+2*pad), img.Bounds().Dx())
}
