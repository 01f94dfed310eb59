//go:build ebiten

package app

import (
	"gridcaster/internal/core"
	"gridcaster/internal/player"
	"gridcaster/internal/session"
	"gridcaster/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

const (
	hudWidth    = 200
	minimapSize = 192
)

var regenKeys = []struct {
	key   ebiten.Key
	digit rune
}{
	{ebiten.KeyDigit1, '1'},
	{ebiten.KeyDigit2, '2'},
	{ebiten.KeyDigit3, '3'},
	{ebiten.KeyDigit4, '4'},
}

// Game adapts a raycaster session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	timer   *core.FrameTimer
	frame   *ebiten.Image
	hud     *ui.HUD
	overlay *ui.Overlay
	log     zerolog.Logger

	scale int
	keys  []ebiten.Key
	names []string
}

// New constructs a Game driving s. The window shows the frame buffer scaled
// by scale with the HUD panel to its right.
func New(s *session.Session, scale int, log zerolog.Logger) *Game {
	if scale < 1 {
		scale = 1
	}
	surf := s.Surface()
	return &Game{
		session: s,
		timer:   core.NewFrameTimer(nil),
		frame:   ebiten.NewImage(surf.W, surf.H),
		hud:     ui.NewHUD(s, hudWidth),
		overlay: ui.NewOverlay(s, minimapSize),
		log:     log,
		scale:   scale,
	}
}

// Update handles per-frame input and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.ResetDefault()
	}
	for _, hk := range regenKeys {
		if !inpututil.IsKeyJustPressed(hk.key) {
			continue
		}
		alg, _ := session.HotkeyAlgorithm(hk.digit)
		if _, err := g.session.RegenerateNext(alg); err != nil {
			g.log.Error().Err(err).Msg("regenerate")
		}
	}
	g.overlay.Update()

	elapsed := g.timer.Tick()
	g.session.Tick(elapsed, g.intents())
	g.hud.Update(g.timer.FPS())
	return nil
}

// intents collects the movement intents of every key currently held.
func (g *Game) intents() player.Intents {
	g.keys = inpututil.AppendPressedKeys(g.keys[:0])
	g.names = g.names[:0]
	for _, k := range g.keys {
		g.names = append(g.names, k.String())
	}
	return player.IntentsFromKeys(g.names)
}

// Draw uploads the frame buffer and draws the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	surf := g.session.Surface()
	g.frame.WritePixels(surf.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.frame, op)

	g.overlay.Draw(screen)
	g.hud.Draw(screen, surf.W*g.scale, surf.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.WindowSize()
	return w, h
}

// WindowSize is the unscaled window size: the scaled view plus the HUD.
func (g *Game) WindowSize() (int, int) {
	surf := g.session.Surface()
	return surf.W*g.scale + g.hud.Width(), surf.H * g.scale
}
