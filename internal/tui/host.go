// Package tui runs the raycaster inside a terminal using tcell, drawing two
// pixels per character cell.
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"gridcaster/internal/core"
	"gridcaster/internal/player"
	"gridcaster/internal/session"
	"gridcaster/internal/ui"
)

// Options configures a Host.
type Options struct {
	TPS    int
	Clock  core.Clock
	Logger zerolog.Logger
}

// Host owns the terminal screen and drives a session from its events.
type Host struct {
	screen  tcell.Screen
	session *session.Session
	hold    *KeyHold
	timer   *core.FrameTimer
	tick    time.Duration
	log     zerolog.Logger

	width, height int
	showStatus    bool
}

// New returns a Host drawing s on screen. The screen must already be
// initialised.
func New(screen tcell.Screen, s *session.Session, opts Options) *Host {
	tps := opts.TPS
	if tps <= 0 {
		tps = 60
	}
	h := &Host{
		screen:     screen,
		session:    s,
		hold:       NewKeyHold(opts.Clock),
		timer:      core.NewFrameTimer(opts.Clock),
		tick:       time.Second / time.Duration(tps),
		log:        opts.Logger.With().Str("component", "tui").Logger(),
		showStatus: true,
	}
	h.resize()
	return h
}

// Run polls terminal events and renders one frame per tick until ctx is
// cancelled or the user quits.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(h.screen, events, done)

	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}

// pollEvents forwards screen events until the screen is finalised, which
// closes events, or until done is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		h.resize()
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		h.press("ArrowUp")
	case tcell.KeyDown:
		h.press("ArrowDown")
	case tcell.KeyLeft:
		h.press("ArrowLeft")
	case tcell.KeyRight:
		h.press("ArrowRight")
	case tcell.KeyRune:
		h.handleRune(r)
	}
	return true
}

func (h *Host) handleRune(r rune) {
	if alg, ok := session.HotkeyAlgorithm(r); ok {
		h.hold.Clear()
		if _, err := h.session.RegenerateNext(alg); err != nil {
			h.log.Error().Err(err).Msg("regenerate")
		}
		return
	}
	switch r {
	case 'r', 'R':
		h.hold.Clear()
		h.session.ResetDefault()
	case 'h', 'H':
		h.showStatus = !h.showStatus
		h.resize()
	default:
		h.press(string(r))
	}
}

func (h *Host) press(key string) {
	if intent, ok := player.IntentForKey(key); ok {
		h.hold.Press(intent)
	}
}

// resize fits the session frame buffer to the terminal, keeping one row for
// the status line when it is shown.
func (h *Host) resize() {
	h.width, h.height = h.screen.Size()
	rows := h.height
	if h.showStatus {
		rows--
	}
	if h.width <= 0 || rows <= 0 {
		return
	}
	if err := h.session.Resize(h.width, rows*2); err != nil {
		h.log.Warn().Err(err).Msg("resize")
	}
}

// Frame advances the session by the real elapsed time and redraws.
func (h *Host) Frame() {
	elapsed := h.timer.Tick()
	surf := h.session.Tick(elapsed, h.hold.Active())
	Blit(h.screen, surf)
	if h.showStatus && h.height > 0 {
		line := ui.StatusLine(h.session.Parameters(), h.timer.FPS())
		DrawText(h.screen, 0, h.height-1, h.width, line, statusStyle)
	}
	h.screen.Show()
}

var statusStyle = tcell.StyleDefault.
	Foreground(tcell.NewRGBColor(200, 200, 210)).
	Background(tcell.NewRGBColor(16, 16, 20))
