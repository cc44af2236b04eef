// Package geom provides the float geometry used for collision: vectors,
// axis-aligned rectangles, circles and the closed set of drawable shapes.
package geom

// Vec2 is a 2D point or vector in court units
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// IsZero reports whether both components are zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Slope returns the slope of the line from a to b.
// A vertical line has no finite slope; 0 is returned instead.
func Slope(from, to Vec2) float64 {
	dx := to.X - from.X
	if dx == 0 {
		return 0
	}
	return (to.Y - from.Y) / dx
}

// Shape is a drawable geometry. The set is closed: Rect and Circle.
type Shape interface {
	Bounds() Rect
	shape()
}

// Rect is an axis-aligned bounding box anchored at its top-left corner
type Rect struct {
	Min  Vec2
	Size Vec2
}

// RectAround creates a rectangle of the given size centred on center
func RectAround(center, size Vec2) Rect {
	return Rect{Min: center.Sub(size.Scale(0.5)), Size: size}
}

func (r Rect) Max() Vec2 {
	return r.Min.Add(r.Size)
}

func (r Rect) Center() Vec2 {
	return r.Min.Add(r.Size.Scale(0.5))
}

// Intersects reports whether the rectangles overlap with non-zero area.
// Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	rMax, oMax := r.Max(), o.Max()
	if r.Min.X >= oMax.X || o.Min.X >= rMax.X {
		return false
	}
	if r.Min.Y >= oMax.Y || o.Min.Y >= rMax.Y {
		return false
	}
	return true
}

// Contains reports whether p lies inside the rectangle
func (r Rect) Contains(p Vec2) bool {
	m := r.Max()
	return p.X >= r.Min.X && p.X < m.X && p.Y >= r.Min.Y && p.Y < m.Y
}

func (r Rect) Bounds() Rect { return r }
func (Rect) shape()         {}

// Circle is a disc around Center
type Circle struct {
	Center Vec2
	Radius float64
}

// Bounds returns the square that encloses the circle
func (c Circle) Bounds() Rect {
	d := 2 * c.Radius
	return RectAround(c.Center, Vec2{X: d, Y: d})
}

// Contains reports whether p lies inside the disc
func (c Circle) Contains(p Vec2) bool {
	d := p.Sub(c.Center)
	return d.X*d.X+d.Y*d.Y <= c.Radius*c.Radius
}

func (Circle) shape() {}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
