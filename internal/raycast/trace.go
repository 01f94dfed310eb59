// Package raycast walks rays through a cell grid with Digital Differential
// Analysis: the ray advances one cell at a time along whichever axis reaches
// its next cell boundary first.
package raycast

import (
	"math"

	"gridcaster/internal/core"
	"gridcaster/internal/vec"
)

// Side identifies which family of grid lines a ray crossed when it hit a wall.
type Side uint8

const (
	// SideX means the ray crossed a vertical grid line (x-facing wall face).
	SideX Side = 0
	// SideY means the ray crossed a horizontal grid line (y-facing wall face).
	SideY Side = 1
)

// Hit describes where a traced ray stopped.
type Hit struct {
	// Distance is measured along the camera direction, not along the ray,
	// so projected columns form flat walls.
	Distance float64
	Cell     core.Point
	Side     Side
	// Code is the wall code of Cell, or core.CellBorder when the ray left
	// the grid.
	Code        uint8
	OutOfBounds bool
}

// Point returns the world position where the ray meets the wall face.
func (h Hit) Point(origin, dir vec.Vec2) vec.Vec2 {
	return origin.Add(dir.Scale(h.Distance))
}

// Trace casts a ray from origin along dir and returns the first non-open cell
// it enters. A zero component of dir is valid: that axis gets an infinite
// delta distance and is never stepped. Leaving the grid counts as a hit on a
// border wall so malformed grids cannot make the walk run forever.
func Trace(g *core.Grid, origin, dir vec.Vec2) Hit {
	mapX, mapY := origin.Floor()

	deltaX := math.Abs(1 / dir.X)
	deltaY := math.Abs(1 / dir.Y)

	stepX, stepY := 1, 1
	var sideDistX, sideDistY float64
	if dir.X < 0 {
		stepX = -1
		sideDistX = (origin.X - float64(mapX)) * deltaX
	} else {
		sideDistX = (float64(mapX) + 1 - origin.X) * deltaX
	}
	if dir.Y < 0 {
		stepY = -1
		sideDistY = (origin.Y - float64(mapY)) * deltaY
	} else {
		sideDistY = (float64(mapY) + 1 - origin.Y) * deltaY
	}

	hit := Hit{}
	for {
		if sideDistX < sideDistY {
			sideDistX += deltaX
			mapX += stepX
			hit.Side = SideX
		} else {
			sideDistY += deltaY
			mapY += stepY
			hit.Side = SideY
		}
		code, ok := g.At(mapX, mapY)
		if !ok {
			hit.Code = core.CellBorder
			hit.OutOfBounds = true
			break
		}
		if code != core.CellOpen {
			hit.Code = code
			break
		}
	}

	hit.Cell = core.Point{X: mapX, Y: mapY}
	if hit.Side == SideX {
		hit.Distance = (float64(mapX) - origin.X + float64(1-stepX)/2) / dir.X
	} else {
		hit.Distance = (float64(mapY) - origin.Y + float64(1-stepY)/2) / dir.Y
	}
	return hit
}
