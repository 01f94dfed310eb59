package worldgen

import "gridcaster/internal/core"

// FindSpawn returns the open cell nearest the grid centre by Chebyshev
// distance, scanning each ring in row-major order. When no open cell exists
// the centre itself is returned.
func FindSpawn(g *core.Grid) core.Point {
	cx, cy := g.W/2, g.H/2
	limit := max(g.W, g.H)
	for r := 0; r <= limit; r++ {
		for y := cy - r; y <= cy+r; y++ {
			edgeRow := y == cy-r || y == cy+r
			for x := cx - r; x <= cx+r; x++ {
				if !edgeRow && x != cx-r && x != cx+r {
					continue
				}
				if g.Open(x, y) {
					return core.Point{X: x, Y: y}
				}
			}
		}
	}
	return core.Point{X: cx, Y: cy}
}
