package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/diegok/pongsim/internal/geom"
)

func TestBall_Integrate(t *testing.T) {
	ball := NewBall(5, geom.V(10, 20), geom.V(1, -0.5), rand.New(rand.NewSource(1)))

	ball.Integrate()

	if ball.Position.X != 11.0 {
		t.Errorf("expected X=11.0, got %f", ball.Position.X)
	}
	if ball.Position.Y != 19.5 {
		t.Errorf("expected Y=19.5, got %f", ball.Position.Y)
	}
}

func TestBall_BounceY(t *testing.T) {
	ball := NewBall(5, geom.V(10, 20), geom.V(0.5, 3), rand.New(rand.NewSource(1)))
	ball.Direction = Direction{X: true, Y: true}

	ball.BounceY()

	if ball.Velocity.X != 0.5 || !ball.Direction.X {
		t.Errorf("expected x axis unchanged, got v=%f dir=%v", ball.Velocity.X, ball.Direction.X)
	}
	if ball.Velocity.Y != -3 {
		t.Errorf("expected VY=-3, got %f", ball.Velocity.Y)
	}
	if ball.Direction.Y {
		t.Error("expected y direction to flip to false")
	}
}

func TestBall_BounceX(t *testing.T) {
	ball := NewBall(5, geom.V(10, 20), geom.V(-2, 1), rand.New(rand.NewSource(1)))
	ball.Direction = Direction{X: false, Y: true}

	ball.BounceX()

	if ball.Velocity.X != 2 || !ball.Direction.X {
		t.Errorf("expected VX=2 heading positive, got v=%f dir=%v", ball.Velocity.X, ball.Direction.X)
	}
	if ball.Velocity.Y != 1 || !ball.Direction.Y {
		t.Error("expected y axis unchanged")
	}
}

func TestBall_AccelerateClamps(t *testing.T) {
	max := geom.V(5, 5)
	ball := NewBall(5, geom.V(0, 0), geom.V(4.9, -4.9), rand.New(rand.NewSource(1)))
	ball.Direction = Direction{X: true, Y: false}

	ball.Accelerate(0.5, max)

	if ball.Velocity.X != 5 {
		t.Errorf("expected VX clamped to 5, got %f", ball.Velocity.X)
	}
	if ball.Velocity.Y != -5 {
		t.Errorf("expected VY clamped to -5, got %f", ball.Velocity.Y)
	}
}

func TestBall_AccelerateDeceleratesAfterFlip(t *testing.T) {
	// A flipped flag ramps the velocity back through zero over several ticks
	ball := NewBall(5, geom.V(0, 0), geom.V(5, 0), rand.New(rand.NewSource(1)))
	ball.Direction = Direction{X: false, Y: true}

	ball.Accelerate(1, geom.V(5, 5))
	if ball.Velocity.X != 4 {
		t.Errorf("expected VX=4 after one tick, got %f", ball.Velocity.X)
	}
	for i := 0; i < 20; i++ {
		ball.Accelerate(1, geom.V(5, 5))
	}
	if ball.Velocity.X != -5 {
		t.Errorf("expected VX=-5 once ramped, got %f", ball.Velocity.X)
	}
}

func TestBall_VelocityNeverExceedsMax(t *testing.T) {
	max := geom.V(5, 3)
	r := rand.New(rand.NewSource(7))
	ball := NewBall(5, geom.V(0, 0), geom.Vec2{}, r)

	for i := 0; i < 10000; i++ {
		switch r.Intn(4) {
		case 0:
			ball.BounceX()
		case 1:
			ball.BounceY()
		}
		ball.Accelerate(r.Float64(), max)
		if math.Abs(ball.Velocity.X) > max.X || math.Abs(ball.Velocity.Y) > max.Y {
			t.Fatalf("tick %d: velocity %v exceeds %v", i, ball.Velocity, max)
		}
	}
}

func TestBall_Reset(t *testing.T) {
	ball := NewBall(5, geom.V(900, 20), geom.V(3, -3), rand.New(rand.NewSource(1)))

	ball.Reset(geom.V(400, 300), rand.New(rand.NewSource(2)))

	if ball.Position != geom.V(400, 300) {
		t.Errorf("expected ball at center, got %v", ball.Position)
	}
	if !ball.Velocity.IsZero() {
		t.Errorf("expected zero velocity, got %v", ball.Velocity)
	}
}

func TestBall_DirectionIsSeeded(t *testing.T) {
	for seed := int64(0); seed < 16; seed++ {
		a := NewBall(5, geom.Vec2{}, geom.Vec2{}, rand.New(rand.NewSource(seed)))
		b := NewBall(5, geom.Vec2{}, geom.Vec2{}, rand.New(rand.NewSource(seed)))
		if a.Direction != b.Direction {
			t.Errorf("seed %d: directions differ: %v vs %v", seed, a.Direction, b.Direction)
		}
	}
}

func TestBall_BoundsAroundCenter(t *testing.T) {
	ball := NewBall(25, geom.V(400, 300), geom.Vec2{}, rand.New(rand.NewSource(1)))
	b := ball.Bounds()
	if b.Min != geom.V(375, 275) || b.Max() != geom.V(425, 325) {
		t.Errorf("unexpected bounds %+v", b)
	}
	if _, ok := ball.Shape().(geom.Circle); !ok {
		t.Errorf("expected ball to draw as a circle, got %T", ball.Shape())
	}
}
