// Package render turns traced rays into RGBA pixels.
package render

import (
	"image"
	"image/color"
)

// BytesPerPixel is the stride of one RGBA8 pixel.
const BytesPerPixel = 4

// Surface is a row-major RGBA8 pixel buffer with a top-left origin.
type Surface struct {
	W, H int
	Pix  []byte
}

// NewSurface allocates a w*h surface.
func NewSurface(w, h int) *Surface {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Surface{W: w, H: h, Pix: make([]byte, w*h*BytesPerPixel)}
}

// At returns the pixel at (x, y). Out-of-range coordinates return transparent black.
func (s *Surface) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return color.RGBA{}
	}
	i := (y*s.W + x) * BytesPerPixel
	return color.RGBA{R: s.Pix[i], G: s.Pix[i+1], B: s.Pix[i+2], A: s.Pix[i+3]}
}

// Set writes c at (x, y). Out-of-range writes are dropped.
func (s *Surface) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return
	}
	i := (y*s.W + x) * BytesPerPixel
	s.Pix[i+0] = c.R
	s.Pix[i+1] = c.G
	s.Pix[i+2] = c.B
	s.Pix[i+3] = c.A
}

// Fill paints every pixel with c.
func (s *Surface) Fill(c color.RGBA) {
	for i := 0; i < len(s.Pix); i += BytesPerPixel {
		s.Pix[i+0] = c.R
		s.Pix[i+1] = c.G
		s.Pix[i+2] = c.B
		s.Pix[i+3] = c.A
	}
}

// Image wraps the buffer as an *image.RGBA without copying.
func (s *Surface) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    s.Pix,
		Stride: s.W * BytesPerPixel,
		Rect:   image.Rect(0, 0, s.W, s.H),
	}
}
