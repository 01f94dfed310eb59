package render

import (
	"image/color"
	"sync"
	"time"

	"gridcaster/internal/core"
	"gridcaster/internal/raycast"
)

const (
	// RefreshInterval is how long a batch of wall colours stays on screen.
	RefreshInterval = 3000 * time.Millisecond
	// SideShade dims walls hit on their y-facing side.
	SideShade = 0.7

	colorVariation = 20
)

// Fixed colours.
var (
	BorderColor  = color.RGBA{R: 204, G: 102, B: 0, A: 255}
	FloorColor   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	CeilingColor = color.RGBA{R: 135, G: 206, B: 235, A: 255}
)

var baseColors = []color.RGBA{
	{R: 204, G: 0, B: 0, A: 255},
	{R: 153, G: 51, B: 153, A: 255},
	{R: 204, G: 153, B: 0, A: 255},
	{R: 102, G: 51, B: 0, A: 255},
	{R: 153, G: 0, B: 76, A: 255},
	{R: 102, G: 0, B: 102, A: 255},
}

// Palette assigns colours to wall codes. Every RefreshInterval of wall-clock
// time all dynamic codes are re-rolled together, so the whole map drifts in
// sync regardless of frame rate. Safe for concurrent use.
type Palette struct {
	mu     sync.Mutex
	clock  core.Clock
	rng    *core.RNG
	last   time.Time
	colors map[uint8]color.RGBA
}

// NewPalette creates a palette timed by clock and coloured by rng. The first
// refresh happens RefreshInterval after construction.
func NewPalette(clock core.Clock, rng *core.RNG) *Palette {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if rng == nil {
		rng = core.NewRNG(time.Now().UnixNano())
	}
	return &Palette{
		clock:  clock,
		rng:    rng,
		last:   clock.Now(),
		colors: make(map[uint8]color.RGBA),
	}
}

// ColorFor returns the colour of a wall with the given code as seen from side.
func (p *Palette) ColorFor(code uint8, side raycast.Side) color.RGBA {
	if code == core.CellBorder {
		return BorderColor
	}

	p.mu.Lock()
	if now := p.clock.Now(); now.Sub(p.last) > RefreshInterval {
		p.last = now
		p.refreshLocked()
	}
	c, ok := p.colors[code]
	if !ok {
		c = p.randomColor()
		p.colors[code] = c
	}
	p.mu.Unlock()

	if side == raycast.SideY {
		return shade(c, SideShade)
	}
	return c
}

func (p *Palette) refreshLocked() {
	for code := core.CellWallMin; code <= core.CellWallMax; code++ {
		p.colors[code] = p.randomColor()
	}
}

func (p *Palette) randomColor() color.RGBA {
	base := baseColors[p.rng.IntN(len(baseColors))]
	return color.RGBA{
		R: p.jitter(base.R),
		G: p.jitter(base.G),
		B: p.jitter(base.B),
		A: 255,
	}
}

func (p *Palette) jitter(v uint8) uint8 {
	n := int(v) + p.rng.IntN(colorVariation*2) - colorVariation
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func shade(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
