package game

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pongsim/internal/geom"
)

// PaddleSpeed is the paddle travel in court units per second
const PaddleSpeed = 500.0

type Paddle struct {
	Position geom.Vec2 // center
	Size     geom.Vec2
	Score    uint
	Color    colorful.Color
	bindings []Binding
}

func NewPaddle(size, position geom.Vec2) *Paddle {
	return &Paddle{
		Size:     size,
		Position: position,
		Color:    colorful.Color{R: 1, G: 1, B: 1},
	}
}

func (p *Paddle) Bounds() geom.Rect {
	return geom.RectAround(p.Position, p.Size)
}

// Move translates the paddle along the action's axis by scale seconds of
// travel and returns the displacement applied
func (p *Paddle) Move(a Action, scale float64) geom.Vec2 {
	d := a.Vector().Scale(scale * PaddleSpeed)
	p.Position = p.Position.Add(d)
	return d
}

// Translate moves the paddle by d
func (p *Paddle) Translate(d geom.Vec2) {
	p.Position = p.Position.Add(d)
}

// AddPoint increments the score
func (p *Paddle) AddPoint() {
	p.Score++
}

// Slope is the slope from the paddle's local (0,0) corner to its origin.
// For a rectangle this is the slope of its diagonal, half height over half width.
func (p *Paddle) Slope() float64 {
	return geom.Slope(p.origin(), geom.Vec2{})
}

// SlopeTo is the slope from the paddle's position to point
func (p *Paddle) SlopeTo(point geom.Vec2) float64 {
	return geom.Slope(p.Position, point)
}

// origin is the pivot in local coordinates
func (p *Paddle) origin() geom.Vec2 {
	return p.Size.Scale(0.5)
}

func (p *Paddle) Shape() geom.Shape {
	return p.Bounds()
}

func (p *Paddle) Fill() colorful.Color {
	return p.Color
}
