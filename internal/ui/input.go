package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pongsim/internal/game"
)

// KeyName converts a terminal key event to a logical key.
// Unknown keys map to the empty key.
func KeyName(key tcell.Key, r rune) game.Key {
	if IsQuitKey(key, r) {
		return game.KeyEscape
	}
	switch key {
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.KeyW
		case 's', 'S':
			return game.KeyS
		case 'a', 'A':
			return game.KeyA
		case 'd', 'D':
			return game.KeyD
		}
	}
	return ""
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}
