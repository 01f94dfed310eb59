package worldgen

import "gridcaster/internal/core"

const (
	caveWallChance    = 0.35
	caveIterations    = 3
	caveWallSurvive   = 4
	caveOpenCollapses = 6
)

// cave seeds random rock and smooths it with a Moore-neighbourhood automaton.
// Pockets that end up sealed off are left as they are.
func cave(w, h int, rng *core.RNG) *core.Grid {
	cur := core.NewGrid(w, h)
	cells := cur.Cells()
	for i := range cells {
		if rng.Chance(caveWallChance) {
			cells[i] = core.CellBorder
		}
	}
	cur.StampBorder(core.CellBorder)

	nxt := cur.Clone()
	for i := 0; i < caveIterations; i++ {
		stepCave(cur, nxt, rng)
		cur, nxt = nxt, cur
	}

	clearCenter(cur)
	return cur
}

// stepCave writes one automaton generation of cur into nxt. Only interior
// cells change; both buffers must already carry the border.
func stepCave(cur, nxt *core.Grid, rng *core.RNG) {
	w, h := cur.W, cur.H
	src, dst := cur.Cells(), nxt.Cells()
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			walls := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if src[(y+dy)*w+x+dx] != core.CellOpen {
						walls++
					}
				}
			}
			idx := y*w + x
			threshold := caveOpenCollapses
			if src[idx] != core.CellOpen {
				threshold = caveWallSurvive
			}
			dst[idx] = core.CellOpen
			if walls >= threshold {
				dst[idx] = rng.WallCode()
			}
		}
	}
}
