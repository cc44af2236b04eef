package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pongsim/internal/game"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		rune rune
		want game.Key
	}{
		{tcell.KeyUp, 0, game.KeyUp},
		{tcell.KeyDown, 0, game.KeyDown},
		{tcell.KeyLeft, 0, game.KeyLeft},
		{tcell.KeyRight, 0, game.KeyRight},
		{tcell.KeyRune, 'w', game.KeyW},
		{tcell.KeyRune, 'W', game.KeyW},
		{tcell.KeyRune, 's', game.KeyS},
		{tcell.KeyRune, 'S', game.KeyS},
		{tcell.KeyRune, 'a', game.KeyA},
		{tcell.KeyRune, 'd', game.KeyD},
		{tcell.KeyEscape, 0, game.KeyEscape},
		{tcell.KeyRune, 'q', game.KeyEscape},
		{tcell.KeyRune, 'x', ""},
		{tcell.KeyEnter, 0, ""},
	}

	for _, tt := range tests {
		got := KeyName(tt.key, tt.rune)
		if got != tt.want {
			t.Errorf("KeyName(%v, %c) = %q, want %q", tt.key, tt.rune, got, tt.want)
		}
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.KeyRune, 'q') {
		t.Error("'q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyRune, 'Q') {
		t.Error("'Q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyEscape, 0) {
		t.Error("Escape should be quit key")
	}
	if !IsQuitKey(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl+C should be quit key")
	}
	if IsQuitKey(tcell.KeyRune, 'x') {
		t.Error("'x' should not be quit key")
	}
}
