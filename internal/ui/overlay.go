//go:build ebiten

package ui

import (
	"gridcaster/internal/core"
	"gridcaster/internal/player"
	"gridcaster/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type worldProvider interface {
	Grid() *core.Grid
	Player() player.Player
}

// Overlay draws the top-down minimap in the corner of the 3D view. M
// toggles it.
type Overlay struct {
	world   worldProvider
	size    int
	visible bool

	minimap *render.Minimap
	surface *render.Surface
	img     *ebiten.Image
	buf     []byte
}

// NewOverlay constructs a minimap overlay of size x size pixels.
func NewOverlay(world worldProvider, size int) *Overlay {
	return &Overlay{
		world:   world,
		size:    size,
		minimap: render.NewMinimap(),
		surface: render.NewSurface(size, size),
		img:     ebiten.NewImage(size, size),
		buf:     make([]byte, size*size*render.BytesPerPixel),
	}
}

// Visible reports whether the minimap is shown.
func (o *Overlay) Visible() bool { return o.visible }

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.visible = !o.visible
	}
}

// Draw renders the minimap onto the top-left corner of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || o.size <= 0 {
		return
	}
	o.minimap.Draw(o.surface, o.world.Grid(), o.world.Player())

	// ebiten images hold premultiplied alpha.
	for i := 0; i+3 < len(o.surface.Pix); i += render.BytesPerPixel {
		a := uint16(o.surface.Pix[i+3])
		o.buf[i] = uint8(uint16(o.surface.Pix[i]) * a / 255)
		o.buf[i+1] = uint8(uint16(o.surface.Pix[i+1]) * a / 255)
		o.buf[i+2] = uint8(uint16(o.surface.Pix[i+2]) * a / 255)
		o.buf[i+3] = uint8(a)
	}
	o.img.WritePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(overlayMargin, overlayMargin)
	screen.DrawImage(o.img, op)
}

const overlayMargin = 8
