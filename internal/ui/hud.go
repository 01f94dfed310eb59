//go:build ebiten

package ui

import (
	"image/color"

	"gridcaster/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the 3D view.
type HUD struct {
	source     parameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
	face       text.Face
}

// NewHUD constructs a HUD reading from source with the given panel width.
func NewHUD(source parameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{
		source: source,
		width:  width,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached lines from the parameter source.
func (h *HUD) Update(fps float64) {
	if h == nil || h.source == nil {
		return
	}
	h.lines = StatusLines(h.source.Parameters(), fps)
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)

	for i, line := range h.lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(panelPadding, float64(panelPadding+i*lineHeight))
		op.ColorScale.ScaleWithColor(lineColor(line))
		text.Draw(h.panel, line, h.face, op)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func lineColor(line string) color.Color {
	if len(line) > 0 && line[0] == ' ' {
		return valueText
	}
	return headerText
}

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerText      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueText       = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding = 12
	lineHeight   = 16
)
