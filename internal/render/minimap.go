package render

import (
	"image/color"
	"math"

	"gridcaster/internal/core"
	"gridcaster/internal/player"
	"gridcaster/internal/raycast"
	"gridcaster/internal/vec"
)

// DefaultRayStep is the cameraX spacing of the rays drawn on the minimap.
const DefaultRayStep = 0.01

// Minimap colours.
var (
	MinimapBackground = color.RGBA{A: 0}
	MinimapCellColor  = color.RGBA{R: 200, G: 200, B: 200, A: 77}
	MinimapGridColor  = color.RGBA{A: 255}
	MinimapPlayer     = color.RGBA{G: 128, A: 255}
	MinimapRayColor   = color.RGBA{G: 255, B: 65, A: 255}
)

// Segment is one minimap ray in grid units, from the player to the wall face
// it hit.
type Segment struct {
	From, To vec.Vec2
	Hit      raycast.Hit
}

// MinimapRays traces a fan of rays for cameraX from -1 to 1 in increments of
// step, the last ray clamped to 1. Non-positive steps use DefaultRayStep.
func MinimapRays(g *core.Grid, p player.Player, step float64) []Segment {
	if !(step > 0) {
		step = DefaultRayStep
	}
	n := int(math.Floor(2/step)) + 1
	out := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		cameraX := math.Min(-1+float64(i)*step, 1)
		dir := p.RayDirection(cameraX)
		hit := raycast.Trace(g, p.Position, dir)
		out = append(out, Segment{From: p.Position, To: hit.Point(p.Position, dir), Hit: hit})
	}
	return out
}

// Minimap draws a top-down debug view of the grid, the player and the rays
// the renderer would trace.
type Minimap struct {
	RayStep float64
	cells   []uint8
}

// NewMinimap returns a Minimap with the default ray spacing.
func NewMinimap() *Minimap {
	return &Minimap{RayStep: DefaultRayStep}
}

// Draw overwrites surf with the top-down view.
func (m *Minimap) Draw(surf *Surface, g *core.Grid, p player.Player) {
	cellW := float64(surf.W) / float64(g.W)
	cellH := float64(surf.H) / float64(g.H)

	total := surf.W * surf.H
	if cap(m.cells) < total {
		m.cells = make([]uint8, total)
	}
	m.cells = m.cells[:total]
	for y := 0; y < surf.H; y++ {
		gy := int(float64(y) / cellH)
		for x := 0; x < surf.W; x++ {
			gx := int(float64(x) / cellW)
			code, _ := g.At(gx, gy)
			m.cells[y*surf.W+x] = code
		}
	}
	fillPaletteRGBA(surf.Pix, m.cells, []color.RGBA{MinimapBackground, MinimapCellColor})

	for gx := 0; gx <= g.W; gx++ {
		px := int(float64(gx) * cellW)
		if px >= surf.W {
			px = surf.W - 1
		}
		drawLine(surf, px, 0, px, surf.H-1, MinimapGridColor)
	}
	for gy := 0; gy <= g.H; gy++ {
		py := int(float64(gy) * cellH)
		if py >= surf.H {
			py = surf.H - 1
		}
		drawLine(surf, 0, py, surf.W-1, py, MinimapGridColor)
	}

	toPixel := func(v vec.Vec2) (int, int) {
		return int(v.X * cellW), int(v.Y * cellH)
	}
	px, py := toPixel(p.Position)
	for _, seg := range MinimapRays(g, p, m.RayStep) {
		if seg.Hit.OutOfBounds || math.IsInf(seg.Hit.Distance, 0) || math.IsNaN(seg.Hit.Distance) {
			continue
		}
		tx, ty := toPixel(seg.To)
		drawLine(surf, px, py, tx, ty, MinimapRayColor)
	}
	fillDisc(surf, px, py, 4, MinimapPlayer)
}
