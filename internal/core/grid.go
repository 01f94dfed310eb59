package core

// Cell codes understood by the renderer and the movement controller.
const (
	// CellOpen marks traversable floor.
	CellOpen uint8 = 0
	// CellBorder is the fixed-colour wall used for the outer ring.
	CellBorder uint8 = 1
	// CellWallMin and CellWallMax bound the palette-coloured wall variants.
	CellWallMin uint8 = 2
	CellWallMax uint8 = 8
)

// Grid stores a 2D grid of cell codes in row-major order. Row index is y,
// column index is x.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an open grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// NewFilledGrid allocates a grid with every cell set to code.
func NewFilledGrid(w, h int, code uint8) *Grid {
	g := NewGrid(w, h)
	g.Fill(code)
	return g
}

// GridFromRows copies a rectangular row slice into a Grid. Short rows are
// padded with CellBorder so the result stays rectangular.
func GridFromRows(rows [][]uint8) *Grid {
	h := len(rows)
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	g := NewFilledGrid(w, h, CellBorder)
	for y, row := range rows {
		copy(g.data[y*g.W:], row)
	}
	return g
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Interior reports whether (x, y) lies strictly inside the outer ring.
func (g *Grid) Interior(x, y int) bool {
	return x > 0 && y > 0 && x < g.W-1 && y < g.H-1
}

// At returns the cell code at (x, y) and whether the coordinates were in
// bounds. Out-of-bounds reads yield CellBorder.
func (g *Grid) At(x, y int) (uint8, bool) {
	if !g.InBounds(x, y) {
		return CellBorder, false
	}
	return g.data[y*g.W+x], true
}

// Open reports whether (x, y) is in bounds and traversable.
func (g *Grid) Open(x, y int) bool {
	code, ok := g.At(x, y)
	return ok && code == CellOpen
}

// Set writes code at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, code uint8) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] = code
}

// Fill sets every cell to code.
func (g *Grid) Fill(code uint8) {
	for i := range g.data {
		g.data[i] = code
	}
}

// StampBorder writes code onto the outermost ring.
func (g *Grid) StampBorder(code uint8) {
	for x := 0; x < g.W; x++ {
		g.data[x] = code
		g.data[(g.H-1)*g.W+x] = code
	}
	for y := 0; y < g.H; y++ {
		g.data[y*g.W] = code
		g.data[y*g.W+g.W-1] = code
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// String renders the grid as ASCII, one row per line: '.' for open cells,
// '#' for the border code and the digit for wall variants.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.W+1)*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			switch c := g.data[y*g.W+x]; c {
			case CellOpen:
				buf = append(buf, '.')
			case CellBorder:
				buf = append(buf, '#')
			default:
				if c <= 9 {
					buf = append(buf, '0'+c)
				} else {
					buf = append(buf, '?')
				}
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
