// Package player holds the camera model and the per-tick movement controller.
package player

import "gridcaster/internal/vec"

// Player is the camera: where it stands, where it looks, and the camera plane
// whose length sets the horizontal field of view.
type Player struct {
	Position  vec.Vec2
	Direction vec.Vec2
	Plane     vec.Vec2
}

// Default returns the player used with the built-in map.
func Default() Player {
	return Player{
		Position:  vec.New(22, 12),
		Direction: vec.New(-1, 0),
		Plane:     vec.New(0, 0.90),
	}
}

// At returns a player standing in the middle of cell (x, y) with the default
// heading and field of view.
func At(x, y int) Player {
	p := Default()
	p.Position = vec.New(float64(x)+0.5, float64(y)+0.5)
	return p
}

// Rotate turns both the view direction and the camera plane by angle
// radians, keeping their magnitudes and relative angle.
func (p *Player) Rotate(angle float64) {
	p.Direction = p.Direction.Rotate(angle)
	p.Plane = p.Plane.Rotate(angle)
}

// RayDirection returns the ray for a screen position cameraX in [-1, 1].
func (p Player) RayDirection(cameraX float64) vec.Vec2 {
	return p.Direction.Add(p.Plane.Scale(cameraX))
}
