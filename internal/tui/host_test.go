package tui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcaster/internal/core"
	"gridcaster/internal/player"
	"gridcaster/internal/session"
)

func newTestHost(t *testing.T) (*Host, *session.Session, *core.ManualClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 13)

	clock := &core.ManualClock{T: time.Unix(100, 0)}
	s, err := session.New(session.Options{
		Width:     8,
		Height:    8,
		Seed:      3,
		MapWidth:  15,
		MapHeight: 11,
		Clock:     clock,
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)

	return New(screen, s, Options{TPS: 30, Clock: clock}), s, clock
}

func TestHostSizesSurfaceToTerminal(t *testing.T) {
	h, s, _ := newTestHost(t)

	assert.Equal(t, 40, s.Surface().W)
	assert.Equal(t, 24, s.Surface().H, "12 rows of half blocks above the status line")

	h.handleKey(tcell.KeyRune, 'h')
	assert.Equal(t, 26, s.Surface().H)
}

func TestHostHeldKeyMovesPlayer(t *testing.T) {
	h, s, clock := newTestHost(t)

	assert.True(t, h.handleKey(tcell.KeyRune, 'W'))
	h.Frame()
	assert.Equal(t, player.Default().Position, s.Player().Position, "first frame has no elapsed time")

	clock.Advance(100 * time.Millisecond)
	h.Frame()
	assert.InDelta(t, 21.5, s.Player().Position.X, 1e-9)

	clock.Advance(200 * time.Millisecond)
	h.Frame()
	assert.InDelta(t, 21.5, s.Player().Position.X, 1e-9, "key released after the hold window")
}

func TestHostArrowKeysRotate(t *testing.T) {
	h, s, clock := newTestHost(t)
	h.Frame()

	h.handleKey(tcell.KeyLeft, 0)
	clock.Advance(100 * time.Millisecond)
	h.Frame()

	assert.NotEqual(t, player.Default().Direction, s.Player().Direction)
	assert.Equal(t, player.Default().Position, s.Player().Position)
}

func TestHostHotkeys(t *testing.T) {
	h, s, _ := newTestHost(t)

	assert.True(t, h.handleKey(tcell.KeyRune, '3'))
	assert.Equal(t, core.Size{W: 15, H: 11}, s.Grid().Size())
	algo, _ := s.Parameters().Lookup("world.algorithm")
	assert.Equal(t, "cellular", algo.Value)

	assert.True(t, h.handleKey(tcell.KeyRune, 'r'))
	assert.Equal(t, core.Size{W: 24, H: 24}, s.Grid().Size())

	assert.False(t, h.handleKey(tcell.KeyEscape, 0))
	assert.False(t, h.handleKey(tcell.KeyCtrlC, 0))
}

func TestPollEventsReturnsWhenDoneWithPendingEvent(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))

	events := make(chan tcell.Event)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		pollEvents(screen, events, done)
		close(finished)
	}()

	close(done)
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("event pump still blocked after done was closed")
	}
}

func TestHostRunStopsOnCancel(t *testing.T) {
	h, _, _ := newTestHost(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, h.Run(ctx), context.Canceled)
}
