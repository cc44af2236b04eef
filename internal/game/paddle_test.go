package game

import (
	"testing"

	"github.com/diegok/pongsim/internal/geom"
)

func TestPaddle_MoveUp(t *testing.T) {
	paddle := NewPaddle(geom.V(20, 120), geom.V(20, 300))

	d := paddle.Move(ActionUp, 0.1)

	if paddle.Position.Y != 250 {
		t.Errorf("expected Y=250, got %f", paddle.Position.Y)
	}
	if d != geom.V(0, -50) {
		t.Errorf("expected displacement (0,-50), got %v", d)
	}
}

func TestPaddle_MoveDown(t *testing.T) {
	paddle := NewPaddle(geom.V(20, 120), geom.V(20, 300))

	paddle.Move(ActionDown, 0.1)

	if paddle.Position.Y != 350 {
		t.Errorf("expected Y=350, got %f", paddle.Position.Y)
	}
	if paddle.Position.X != 20 {
		t.Errorf("expected X unchanged, got %f", paddle.Position.X)
	}
}

func TestPaddle_MoveHorizontal(t *testing.T) {
	paddle := NewPaddle(geom.V(20, 120), geom.V(20, 300))

	paddle.Move(ActionRight, 0.1)
	if paddle.Position.X != 70 {
		t.Errorf("expected X=70, got %f", paddle.Position.X)
	}
	paddle.Move(ActionLeft, 0.2)
	if paddle.Position.X != -30 {
		t.Errorf("expected X=-30, got %f", paddle.Position.X)
	}
	paddle.Move(ActionNone, 1)
	if paddle.Position != geom.V(-30, 300) {
		t.Errorf("expected no movement for ActionNone, got %v", paddle.Position)
	}
}

func TestPaddle_Slope(t *testing.T) {
	paddle := NewPaddle(geom.V(20, 120), geom.V(20, 300))

	if got := paddle.Slope(); got != 6 {
		t.Errorf("expected self slope 6, got %f", got)
	}
	if got := paddle.SlopeTo(geom.V(30, 320)); got != 2 {
		t.Errorf("expected slope 2, got %f", got)
	}
	if got := paddle.SlopeTo(geom.V(20, 0)); got != 0 {
		t.Errorf("expected guarded slope 0 straight above, got %f", got)
	}
}

func TestPaddle_Score(t *testing.T) {
	paddle := NewPaddle(geom.V(20, 120), geom.V(20, 300))
	paddle.AddPoint()
	paddle.AddPoint()
	if paddle.Score != 2 {
		t.Errorf("expected score 2, got %d", paddle.Score)
	}
}

func TestPaddle_Bind(t *testing.T) {
	paddle := NewPaddle(geom.V(20, 120), geom.V(20, 300))
	paddle.Bind(KeyW, ActionUp)
	paddle.Bind(KeyS, ActionDown)
	paddle.Bind(KeyA, ActionLeft)

	if len(paddle.Bindings()) != 3 {
		t.Fatalf("expected 3 bindings, got %d", len(paddle.Bindings()))
	}

	// Rebinding keeps the slot, ActionNone removes it
	paddle.Bind(KeyW, ActionRight)
	paddle.Bind(KeyS, ActionNone)

	got := paddle.Bindings()
	if len(got) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(got))
	}
	if got[0].Key != KeyW || got[0].Action != ActionRight {
		t.Errorf("expected w->right first, got %+v", got[0])
	}
	if got[1].Key != KeyA || got[1].Action != ActionLeft {
		t.Errorf("expected a->left second, got %+v", got[1])
	}

	paddle.Bind(KeyD, ActionNone)
	if len(paddle.Bindings()) != 2 {
		t.Error("binding ActionNone to an unbound key should be a no-op")
	}
}

func TestPaddle_Sample(t *testing.T) {
	paddle := NewPaddle(geom.V(20, 120), geom.V(20, 300))
	paddle.Bind(KeyW, ActionUp)
	paddle.Bind(KeyS, ActionDown)

	held := map[Key]bool{KeyW: true}
	paddle.Sample(func(k Key) bool { return held[k] })

	if !paddle.Pressed(KeyW) {
		t.Error("expected w pressed")
	}
	if paddle.Pressed(KeyS) {
		t.Error("expected s released")
	}

	// No debouncing: releasing is seen on the next sample
	held[KeyW] = false
	paddle.Sample(func(k Key) bool { return held[k] })
	if paddle.Pressed(KeyW) {
		t.Error("expected w released after resample")
	}
	if paddle.Pressed(KeyUp) {
		t.Error("unbound key should never be pressed")
	}
}

func TestAction_String(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "none"},
		{ActionUp, "up"},
		{ActionDown, "down"},
		{ActionLeft, "left"},
		{ActionRight, "right"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}
