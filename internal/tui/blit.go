package tui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"gridcaster/internal/render"
)

// upperHalf draws the top pixel in the foreground colour and the bottom
// pixel in the background colour.
const upperHalf = '▀'

// Canvas is the part of tcell.Screen the blitter writes to.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Blit draws surf onto dst starting at the top-left cell. Each terminal cell
// shows two vertically stacked pixels.
func Blit(dst Canvas, surf *render.Surface) {
	for row := 0; row*2 < surf.H; row++ {
		top := row * 2
		for x := 0; x < surf.W; x++ {
			style := tcell.StyleDefault.Foreground(rgb(surf.At(x, top)))
			if top+1 < surf.H {
				style = style.Background(rgb(surf.At(x, top+1)))
			}
			dst.SetContent(x, row, upperHalf, nil, style)
		}
	}
}

// DrawText writes s on row y from column x, clipped at width.
func DrawText(dst Canvas, x, y, width int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= width {
			return
		}
		dst.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		dst.SetContent(x, y, ' ', nil, style)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
