package player

import (
	"math"

	"gridcaster/internal/core"
	"gridcaster/internal/vec"
)

const (
	// DefaultMoveSpeed is cells per second.
	DefaultMoveSpeed = 5.0
	// DefaultRotSpeed is radians per second.
	DefaultRotSpeed = 3.0

	// FOVStep is the change applied to Plane.Y per tick.
	FOVStep = 0.01
	// MinFOV and MaxFOV bound Plane.Y.
	MinFOV = 0.30
	MaxFOV = 0.90
)

// Controller applies held intents to a Player once per tick.
type Controller struct {
	MoveSpeed float64
	RotSpeed  float64
}

// NewController returns a Controller using the default speeds.
func NewController() *Controller {
	return &Controller{MoveSpeed: DefaultMoveSpeed, RotSpeed: DefaultRotSpeed}
}

// Tick moves, turns and refocuses p for elapsed seconds of held intents.
// Collision is checked per axis against g, so a blocked axis does not stop
// sliding along the other one.
func (c *Controller) Tick(p *Player, elapsed float64, g *core.Grid, intents Intents) {
	if elapsed < 0 || math.IsNaN(elapsed) {
		elapsed = 0
	}
	move := elapsed * c.MoveSpeed
	rot := elapsed * c.RotSpeed

	if intents.Has(MoveForward) {
		translate(p, g, p.Direction.Scale(move))
	}
	if intents.Has(MoveBackward) {
		translate(p, g, p.Direction.Scale(-move))
	}
	if intents.Has(RotateLeft) {
		p.Rotate(rot)
	}
	if intents.Has(RotateRight) {
		p.Rotate(-rot)
	}
	if intents.Has(IncreaseFOV) {
		AdjustFOV(p, FOVStep)
	}
	if intents.Has(DecreaseFOV) {
		AdjustFOV(p, -FOVStep)
	}
}

func translate(p *Player, g *core.Grid, delta vec.Vec2) {
	next := p.Position.Add(delta)
	if g.Open(floor(next.X), floor(p.Position.Y)) {
		p.Position.X = next.X
	}
	if g.Open(floor(p.Position.X), floor(next.Y)) {
		p.Position.Y = next.Y
	}
}

// AdjustFOV steps Plane.Y by delta toward [MinFOV, MaxFOV]: an increase
// only applies below MaxFOV and stops there, a decrease only applies above
// MinFOV and stops there. Plane.X is rescaled to keep the plane's x/y ratio
// and sign. With Plane.Y at zero the ratio is undefined and Plane.X is kept.
func AdjustFOV(p *Player, delta float64) {
	y := p.Plane.Y
	var next float64
	switch {
	case delta > 0 && y < MaxFOV:
		next = math.Min(y+delta, MaxFOV)
	case delta < 0 && y > MinFOV:
		next = math.Max(y+delta, MinFOV)
	default:
		return
	}
	if y != 0 {
		ratio := math.Abs(p.Plane.X / y)
		p.Plane.X = math.Copysign(next*ratio, p.Plane.X)
	}
	p.Plane.Y = next
}

func floor(v float64) int { return int(math.Floor(v)) }
