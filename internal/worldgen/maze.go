package worldgen

import "gridcaster/internal/core"

const (
	mazeEdgeOpenChance = 0.3
	mazeQuadrantHoles  = 8
	mazeCornerPath     = 3
)

var mazeSteps = [4]core.Point{{X: 0, Y: -2}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: -2, Y: 0}}

// dfsMaze carves a recursive-backtracker maze on odd coordinates, then
// punches extra holes to soften the odd/even bias: the last column and row
// when the size is even, random quadrant holes and short paths from each
// corner. The result is not guaranteed to be fully connected.
func dfsMaze(w, h int, rng *core.RNG) *core.Grid {
	g := core.NewFilledGrid(w, h, core.CellBorder)

	lastX := w - 2
	if w%2 == 0 {
		lastX = w - 3
	}
	lastY := h - 2
	if h%2 == 0 {
		lastY = h - 3
	}
	for y := 1; y <= lastY; y += 2 {
		for x := 1; x <= lastX; x += 2 {
			g.Set(x, y, core.CellOpen)
		}
	}

	for y := 1; y < h-1; y += 2 {
		if rng.Chance(mazeEdgeOpenChance) {
			g.Set(w-2, y, core.CellOpen)
		}
	}
	for x := 1; x < w-1; x += 2 {
		if rng.Chance(mazeEdgeOpenChance) {
			g.Set(x, h-2, core.CellOpen)
		}
	}

	carveMaze(g, rng, lastX, lastY)
	clearCenter(g)
	openQuadrants(g, rng)
	openCorners(g)
	return g
}

func carveMaze(g *core.Grid, rng *core.RNG, lastX, lastY int) {
	visited := make([]bool, g.W*g.H)
	start := core.Point{X: 1, Y: 1}
	stack := []core.Point{start}
	visited[g.Index(start.X, start.Y)] = true

	limit := g.W * g.H * 2
	neighbors := make([]core.Point, 0, len(mazeSteps))
	for iter := 0; len(stack) > 0 && iter < limit; iter++ {
		cur := stack[len(stack)-1]

		neighbors = neighbors[:0]
		for _, d := range mazeSteps {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx < 1 || nx > lastX || ny < 1 || ny > lastY {
				continue
			}
			if visited[g.Index(nx, ny)] {
				continue
			}
			neighbors = append(neighbors, core.Point{X: nx, Y: ny})
		}

		if len(neighbors) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := neighbors[rng.IntN(len(neighbors))]
		g.Set(cur.X+(next.X-cur.X)/2, cur.Y+(next.Y-cur.Y)/2, core.CellOpen)
		g.Set(next.X, next.Y, core.CellOpen)
		visited[g.Index(next.X, next.Y)] = true
		stack = append(stack, next)
	}
}

func openQuadrants(g *core.Grid, rng *core.RNG) {
	w, h := g.W, g.H
	spanX := float64(w)/2 - 2
	spanY := float64(h)/2 - 2
	for i := 0; i < mazeQuadrantHoles; i++ {
		offX := int(rng.Float64() * spanX)
		offY := int(rng.Float64() * spanY)
		x, y := 1+offX, 1+offY
		switch rng.IntN(4) {
		case 1:
			x = w/2 + offX
		case 2:
			y = h/2 + offY
		case 3:
			x, y = w/2+offX, h/2+offY
		}
		if !g.Interior(x, y) {
			continue
		}
		g.Set(x, y, core.CellOpen)
		for _, d := range [4]core.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}} {
			if rng.Chance(0.5) && g.Interior(x+d.X, y+d.Y) {
				g.Set(x+d.X, y+d.Y, core.CellOpen)
			}
		}
	}
}

func openCorners(g *core.Grid) {
	w, h := g.W, g.H
	corners := [4]core.Point{{X: 2, Y: 2}, {X: w - 3, Y: 2}, {X: 2, Y: h - 3}, {X: w - 3, Y: h - 3}}
	for _, c := range corners {
		g.Set(c.X, c.Y, core.CellOpen)
		dx, dy := -1, -1
		if 2*c.X < w {
			dx = 1
		}
		if 2*c.Y < h {
			dy = 1
		}
		for i := 1; i <= mazeCornerPath; i++ {
			x, y := c.X+dx*i, c.Y+dy*i
			if g.Interior(x, y) {
				g.Set(x, y, core.CellOpen)
			}
		}
	}
}
