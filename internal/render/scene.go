package render

import (
	"math"

	"gridcaster/internal/core"
	"gridcaster/internal/player"
	"gridcaster/internal/raycast"
)

// Scene draws the first-person view: one traced ray per screen column.
type Scene struct {
	palette *Palette
}

// NewScene returns a Scene colouring walls with palette.
func NewScene(palette *Palette) *Scene {
	return &Scene{palette: palette}
}

// Render overwrites every pixel of surf with the view from p into g.
func (s *Scene) Render(g *core.Grid, p player.Player, surf *Surface) {
	w, h := surf.W, surf.H
	for x := 0; x < w; x++ {
		cameraX := 2*float64(x)/float64(w) - 1
		hit := raycast.Trace(g, p.Position, p.RayDirection(cameraX))

		start, end := wallSpan(hit.Distance, h)
		wall := s.palette.ColorFor(hit.Code, hit.Side)

		fillColumn(surf, x, 0, start, CeilingColor)
		fillColumn(surf, x, start, end+1, wall)
		fillColumn(surf, x, end+1, h, FloorColor)
	}
}

// wallSpan returns the inclusive row range covered by a wall at the given
// perpendicular distance, clamped to [0, h-1].
func wallSpan(distance float64, h int) (int, int) {
	if !(distance > 0) {
		return 0, h - 1
	}
	half := float64(h) / 2
	lineHeight := math.Floor(float64(h) / distance)
	start := math.Floor(-lineHeight/2 + half)
	end := math.Floor(lineHeight/2 + half)
	return clampRow(start, h), clampRow(end, h)
}

func clampRow(v float64, h int) int {
	if v < 0 {
		return 0
	}
	if v > float64(h-1) {
		return h - 1
	}
	return int(v)
}
