package game

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pongsim/internal/geom"
)

// Direction holds, per axis, whether the ball accelerates toward the positive end
type Direction struct {
	X, Y bool
}

type Ball struct {
	Position  geom.Vec2 // center
	Velocity  geom.Vec2 // court units per update tick
	Direction Direction
	Radius    float64
	Color     colorful.Color
}

// NewBall creates a ball with both direction flags drawn from rng
func NewBall(radius float64, position, velocity geom.Vec2, rng *rand.Rand) *Ball {
	b := &Ball{
		Position: position,
		Velocity: velocity,
		Radius:   radius,
		Color:    colorful.Color{R: 1, G: 1, B: 1},
	}
	b.Direction = randomDirection(rng)
	return b
}

func (b *Ball) Bounds() geom.Rect {
	return b.circle().Bounds()
}

// Reset puts the ball back at center at rest with fresh random direction flags
func (b *Ball) Reset(center geom.Vec2, rng *rand.Rand) {
	b.Direction = randomDirection(rng)
	b.Velocity = geom.Vec2{}
	b.Position = center
}

// Accelerate ramps each velocity component by step toward the side its
// direction flag points to, capped at max
func (b *Ball) Accelerate(step float64, max geom.Vec2) {
	b.Velocity.X = ramp(b.Velocity.X, step, max.X, b.Direction.X)
	b.Velocity.Y = ramp(b.Velocity.Y, step, max.Y, b.Direction.Y)
}

func ramp(v, step, max float64, positive bool) float64 {
	if positive {
		v += step
		if v > max {
			v = max
		}
		return v
	}
	v -= step
	if v < -max {
		v = -max
	}
	return v
}

// Integrate advances the position by one velocity step
func (b *Ball) Integrate() {
	b.Move(b.Velocity)
}

func (b *Ball) Move(d geom.Vec2) {
	b.Position = b.Position.Add(d)
}

// BounceX reverses horizontal travel
func (b *Ball) BounceX() {
	b.Direction.X = !b.Direction.X
	b.Velocity.X = -b.Velocity.X
}

// BounceY reverses vertical travel
func (b *Ball) BounceY() {
	b.Direction.Y = !b.Direction.Y
	b.Velocity.Y = -b.Velocity.Y
}

func (b *Ball) circle() geom.Circle {
	return geom.Circle{Center: b.Position, Radius: b.Radius}
}

func (b *Ball) Shape() geom.Shape {
	return b.circle()
}

func (b *Ball) Fill() colorful.Color {
	return b.Color
}

func randomDirection(rng *rand.Rand) Direction {
	return Direction{X: rng.Intn(2) == 1, Y: rng.Intn(2) == 1}
}
