package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurfaceImageSharesBuffer(t *testing.T) {
	s := NewSurface(3, 2)
	red := color.RGBA{R: 255, A: 255}
	s.Set(2, 1, red)
	s.Set(9, 9, red)

	img := s.Image()
	assert.Equal(t, red, img.RGBAAt(2, 1))
	assert.Equal(t, color.RGBA{}, s.At(-1, 0))
	assert.Len(t, s.Pix, 3*2*BytesPerPixel)
}

func TestDrawLineHitsEndpoints(t *testing.T) {
	s := NewSurface(10, 10)
	c := color.RGBA{G: 255, A: 255}

	drawLine(s, 1, 8, 7, 2, c)

	assert.Equal(t, c, s.At(1, 8))
	assert.Equal(t, c, s.At(7, 2))
	assert.Equal(t, c, s.At(4, 5))
	assert.Equal(t, color.RGBA{}, s.At(8, 8))
}

func TestFillPaletteClampsToLastEntry(t *testing.T) {
	buf := make([]byte, 3*4)
	pal := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}

	fillPaletteRGBA(buf, []uint8{0, 1, 7}, pal)

	assert.Equal(t, []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}, buf)
}
