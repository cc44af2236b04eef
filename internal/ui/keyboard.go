package ui

import (
	"time"

	"github.com/diegok/pongsim/internal/game"
)

// DefaultHoldWindow is how long a key counts as held after its last press
// or repeat event. Terminals report no key releases.
const DefaultHoldWindow = 150 * time.Millisecond

// Keyboard turns terminal key presses into held-key state
type Keyboard struct {
	hold     time.Duration
	lastSeen map[game.Key]time.Time
	now      func() time.Time
}

func NewKeyboard(hold time.Duration) *Keyboard {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Keyboard{
		hold:     hold,
		lastSeen: make(map[game.Key]time.Time),
		now:      time.Now,
	}
}

// Press records a press or auto-repeat of key
func (k *Keyboard) Press(key game.Key) {
	if key == "" {
		return
	}
	k.lastSeen[key] = k.now()
}

// Release forgets key immediately
func (k *Keyboard) Release(key game.Key) {
	delete(k.lastSeen, key)
}

// IsPressed reports whether key was seen within the hold window
func (k *Keyboard) IsPressed(key game.Key) bool {
	t, ok := k.lastSeen[key]
	if !ok {
		return false
	}
	if k.now().Sub(t) >= k.hold {
		delete(k.lastSeen, key)
		return false
	}
	return true
}
