package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gridcaster/internal/core"
	"gridcaster/internal/player"
)

func TestKeyHoldWindow(t *testing.T) {
	clock := &core.ManualClock{T: time.Unix(10, 0)}
	hold := NewKeyHold(clock)

	hold.Press(player.MoveForward)
	clock.Advance(100 * time.Millisecond)
	hold.Press(player.RotateLeft)

	assert.Equal(t, player.NewIntents(player.MoveForward, player.RotateLeft), hold.Active())

	clock.Advance(50 * time.Millisecond)
	assert.True(t, hold.Active().Has(player.MoveForward), "exactly at the window edge")

	clock.Advance(time.Millisecond)
	assert.Equal(t, player.NewIntents(player.RotateLeft), hold.Active())

	clock.Advance(HoldWindow)
	assert.True(t, hold.Active().Empty())
}

func TestKeyHoldRepeatExtends(t *testing.T) {
	clock := &core.ManualClock{T: time.Unix(10, 0)}
	hold := NewKeyHold(clock)

	for i := 0; i < 5; i++ {
		hold.Press(player.MoveBackward)
		clock.Advance(100 * time.Millisecond)
		assert.True(t, hold.Active().Has(player.MoveBackward), "repeat %d", i)
	}

	hold.Clear()
	assert.True(t, hold.Active().Empty())
}
