package game

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pongsim/internal/geom"
)

// Wall is a static obstacle
type Wall struct {
	Position geom.Vec2 // center
	Size     geom.Vec2
	Color    colorful.Color
}

func NewWall(size, position geom.Vec2) *Wall {
	return &Wall{
		Size:     size,
		Position: position,
		Color:    colorful.Color{R: 0.5, G: 0.5, B: 0.5},
	}
}

func (w *Wall) Bounds() geom.Rect {
	return geom.RectAround(w.Position, w.Size)
}

func (w *Wall) Shape() geom.Shape {
	return w.Bounds()
}

func (w *Wall) Fill() colorful.Color {
	return w.Color
}
