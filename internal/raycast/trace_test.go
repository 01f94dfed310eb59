package raycast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcaster/internal/core"
	"gridcaster/internal/vec"
)

func borderedGrid(w, h int) *core.Grid {
	g := core.NewGrid(w, h)
	g.StampBorder(core.CellBorder)
	return g
}

func TestTraceCenterColumnOfSmallRoom(t *testing.T) {
	g := borderedGrid(5, 5)

	hit := Trace(g, vec.New(2.5, 2.5), vec.New(-1, 0))

	assert.Equal(t, SideX, hit.Side)
	assert.Equal(t, core.Point{X: 0, Y: 2}, hit.Cell)
	assert.Equal(t, core.CellBorder, hit.Code)
	assert.False(t, hit.OutOfBounds)
	// The wall cell spans x in [0,1]; its near face is 1.5 cells away.
	assert.InDelta(t, 1.5, hit.Distance, 1e-12)
}

func TestTraceAxisAlignedWalls(t *testing.T) {
	g := borderedGrid(9, 9)
	for y := 1; y < 8; y++ {
		g.Set(6, y, 3) // vertical wall at x=6
	}
	for x := 1; x < 6; x++ {
		g.Set(x, 2, 5) // horizontal wall at y=2
	}
	origin := vec.New(3.5, 5.5)

	tests := []struct {
		name string
		dir  vec.Vec2
		side Side
		cell core.Point
		code uint8
		dist float64
	}{
		{"east hits vertical wall", vec.New(1, 0), SideX, core.Point{X: 6, Y: 5}, 3, 2.5},
		{"north hits horizontal wall", vec.New(0, -1), SideY, core.Point{X: 3, Y: 2}, 5, 2.5},
		{"south hits border", vec.New(0, 1), SideY, core.Point{X: 3, Y: 8}, core.CellBorder, 2.5},
		{"west hits border", vec.New(-1, 0), SideX, core.Point{X: 0, Y: 5}, core.CellBorder, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := Trace(g, origin, tt.dir)
			assert.Equal(t, tt.side, hit.Side)
			assert.Equal(t, tt.cell, hit.Cell)
			assert.Equal(t, tt.code, hit.Code)
			assert.InDelta(t, tt.dist, hit.Distance, 1e-12)
		})
	}
}

func TestTraceDistanceIsPerpendicular(t *testing.T) {
	g := borderedGrid(12, 12)
	origin := vec.New(6.5, 6.5)
	dir := vec.New(-1, 0)
	plane := vec.New(0, 0.66)

	for _, cameraX := range []float64{-1, -0.5, 0.5, 1} {
		ray := dir.Add(plane.Scale(cameraX))
		hit := Trace(g, origin, ray)
		if hit.Side != SideX {
			continue
		}
		// Every x-side hit on the flat west wall sits at the same depth.
		assert.InDelta(t, 5.5, hit.Distance, 1e-9, "cameraX %f", cameraX)
	}
}

func TestTraceWithoutBorderDoesNotEscape(t *testing.T) {
	g := core.NewGrid(4, 4)

	hit := Trace(g, vec.New(1.5, 1.5), vec.New(1, 0.3))

	assert.True(t, hit.OutOfBounds)
	assert.Equal(t, core.CellBorder, hit.Code)
	assert.False(t, g.InBounds(hit.Cell.X, hit.Cell.Y))
	assert.False(t, math.IsNaN(hit.Distance))
}

func TestTraceZeroDirectionTerminates(t *testing.T) {
	g := core.NewGrid(3, 3)

	hit := Trace(g, vec.New(1.5, 1.5), vec.New(0, 0))

	require.True(t, hit.OutOfBounds)
	assert.Equal(t, SideY, hit.Side)
}

func TestHitPointLandsOnWallFace(t *testing.T) {
	g := borderedGrid(10, 10)
	origin := vec.New(4.25, 5.75)
	dir := vec.New(0.8, -0.35)

	hit := Trace(g, origin, dir)
	p := hit.Point(origin, dir)

	require.Equal(t, SideX, hit.Side)
	assert.InDelta(t, float64(hit.Cell.X), p.X, 1e-9)
	assert.Equal(t, hit.Cell.Y, int(math.Floor(p.Y)))
}
