package tui

import (
	"time"

	"gridcaster/internal/core"
	"gridcaster/internal/player"
)

// HoldWindow is how long an intent stays active after its last key event.
// Terminals report key repeats but never key releases.
const HoldWindow = 150 * time.Millisecond

// KeyHold turns a stream of key-press events into a set of held intents.
type KeyHold struct {
	clock  core.Clock
	window time.Duration
	last   map[player.Intent]time.Time
}

// NewKeyHold returns a KeyHold using HoldWindow. A nil clock uses the system
// clock.
func NewKeyHold(clock core.Clock) *KeyHold {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &KeyHold{
		clock:  clock,
		window: HoldWindow,
		last:   make(map[player.Intent]time.Time),
	}
}

// Press records a key event for intent.
func (k *KeyHold) Press(intent player.Intent) {
	k.last[intent] = k.clock.Now()
}

// Active returns every intent pressed within the hold window. Expired
// entries are forgotten.
func (k *KeyHold) Active() player.Intents {
	now := k.clock.Now()
	var set player.Intents
	for intent, at := range k.last {
		if now.Sub(at) > k.window {
			delete(k.last, intent)
			continue
		}
		set = set.With(intent)
	}
	return set
}

// Clear drops every held intent.
func (k *KeyHold) Clear() {
	clear(k.last)
}
