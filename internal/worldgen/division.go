package worldgen

import "gridcaster/internal/core"

const (
	divisionMaxDepth = 5
	divisionMinSpan  = 3
)

func recursiveDivision(w, h int, rng *core.RNG) *core.Grid {
	g := core.NewGrid(w, h)
	g.StampBorder(core.CellBorder)
	divide(g, rng, 1, 1, w-2, h-2, 0)
	clearCenter(g)
	return g
}

// divide splits the region (x, y, w, h) with one wall that keeps a single
// gap, then recurses into both halves. Taller regions split horizontally,
// wider ones vertically, squares at random.
func divide(g *core.Grid, rng *core.RNG, x, y, w, h, depth int) {
	if w < divisionMinSpan || h < divisionMinSpan || depth > divisionMaxDepth {
		return
	}

	horizontal := h > w || (h == w && rng.Bool())
	if horizontal {
		wallY := y + 1 + rng.IntN(h-2)
		gap := x + rng.IntN(w)
		for i := x; i < x+w; i++ {
			if i != gap {
				g.Set(i, wallY, core.CellWallMin)
			}
		}
		divide(g, rng, x, y, w, wallY-y, depth+1)
		divide(g, rng, x, wallY+1, w, y+h-wallY-1, depth+1)
	} else {
		wallX := x + 1 + rng.IntN(w-2)
		gap := y + rng.IntN(h)
		for i := y; i < y+h; i++ {
			if i != gap {
				g.Set(wallX, i, core.CellWallMin)
			}
		}
		divide(g, rng, x, y, wallX-x, h, depth+1)
		divide(g, rng, wallX+1, y, x+w-wallX-1, h, depth+1)
	}

	// Deeper regions sometimes get a second gap so the result has loops.
	if depth >= 2 && rng.Chance(0.5) {
		px := x + rng.IntN(w)
		py := y + rng.IntN(h)
		if g.Interior(px, py) {
			g.Set(px, py, core.CellOpen)
		}
	}
}
