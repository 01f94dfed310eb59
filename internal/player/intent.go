package player

import (
	"strings"
	"unicode/utf8"
)

// Intent is a logical action the host may request for a tick.
type Intent uint8

const (
	MoveForward Intent = iota
	MoveBackward
	RotateLeft
	RotateRight
	IncreaseFOV
	DecreaseFOV
	intentCount
)

var intentNames = [...]string{
	MoveForward:  "move-forward",
	MoveBackward: "move-backward",
	RotateLeft:   "rotate-left",
	RotateRight:  "rotate-right",
	IncreaseFOV:  "increase-fov",
	DecreaseFOV:  "decrease-fov",
}

func (i Intent) String() string {
	if i < intentCount {
		return intentNames[i]
	}
	return "unknown"
}

// Intents is a set of intents packed into a bitmask. The zero value is empty.
type Intents uint8

// NewIntents builds a set from the given intents.
func NewIntents(list ...Intent) Intents {
	var s Intents
	for _, i := range list {
		s = s.With(i)
	}
	return s
}

// With returns the set with i added.
func (s Intents) With(i Intent) Intents {
	if i >= intentCount {
		return s
	}
	return s | 1<<i
}

// Has reports whether i is in the set.
func (s Intents) Has(i Intent) bool {
	return i < intentCount && s&(1<<i) != 0
}

// Empty reports whether no intent is active.
func (s Intents) Empty() bool { return s == 0 }

// List returns the active intents in declaration order.
func (s Intents) List() []Intent {
	var out []Intent
	for i := Intent(0); i < intentCount; i++ {
		if s.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

var keyIntents = map[string]Intent{
	"w":          MoveForward,
	"ArrowUp":    MoveForward,
	"s":          MoveBackward,
	"ArrowDown":  MoveBackward,
	"a":          RotateLeft,
	"ArrowLeft":  RotateLeft,
	"d":          RotateRight,
	"ArrowRight": RotateRight,
	"e":          IncreaseFOV,
	"q":          DecreaseFOV,
}

// NormalizeKey lower-cases single ASCII letters and leaves named keys alone.
func NormalizeKey(key string) string {
	if utf8.RuneCountInString(key) != 1 {
		return key
	}
	c := key[0]
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return strings.ToLower(key)
	}
	return key
}

// IntentForKey maps a host key name to an intent.
func IntentForKey(key string) (Intent, bool) {
	i, ok := keyIntents[NormalizeKey(key)]
	return i, ok
}

// IntentsFromKeys maps the currently held keys to an intent set. Unknown
// keys are ignored.
func IntentsFromKeys(keys []string) Intents {
	var s Intents
	for _, k := range keys {
		if i, ok := IntentForKey(k); ok {
			s = s.With(i)
		}
	}
	return s
}
