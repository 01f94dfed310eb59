package render

import "image/color"

// fillColumn paints rows [y0, y1) of column x.
func fillColumn(s *Surface, x, y0, y1 int, c color.RGBA) {
	if y0 < 0 {
		y0 = 0
	}
	if y1 > s.H {
		y1 = s.H
	}
	stride := s.W * BytesPerPixel
	base := y0*stride + x*BytesPerPixel
	for y := y0; y < y1; y++ {
		s.Pix[base+0] = c.R
		s.Pix[base+1] = c.G
		s.Pix[base+2] = c.B
		s.Pix[base+3] = c.A
		base += stride
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Codes past the end of palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// drawLine rasterises a line with Bresenham's algorithm, clipping per pixel.
func drawLine(s *Surface, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillDisc paints a filled circle of radius r centred on (cx, cy).
func fillDisc(s *Surface, cx, cy, r int, c color.RGBA) {
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			s.Set(cx+dx, cy+dy, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
