package game

import (
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pongsim/internal/geom"
)

// Constants for the reference court
const (
	DefaultWidth       = 800.0
	DefaultHeight      = 600.0
	DefaultBallRadius  = 25.0
	DefaultMaxSpeed    = 5.0 // per axis, court units per update tick
	MaxSeparationSteps = 256 // bound on the push-out loop after a paddle hit
)

// Events reports what happened during a Step
type Events uint8

const (
	EventWallBounce Events = 1 << iota
	EventPaddleHit
	EventScore
)

// Has reports whether all bits of f are set
func (e Events) Has(f Events) bool {
	return e&f == f
}

// Drawable is the renderable contract: a shape and its fill color
type Drawable interface {
	Shape() geom.Shape
	Fill() colorful.Color
}

// Layout describes the court built at startup
type Layout struct {
	Width       float64
	Height      float64
	BallRadius  float64
	Balls       int
	MaxSpeed    geom.Vec2
	BallColor   colorful.Color
	PaddleColor colorful.Color
	WallColor   colorful.Color
}

// DefaultLayout is an 800x600 court with one ball
func DefaultLayout() Layout {
	return Layout{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		BallRadius:  DefaultBallRadius,
		Balls:       1,
		MaxSpeed:    geom.V(DefaultMaxSpeed, DefaultMaxSpeed),
		BallColor:   colorful.Color{R: 1, G: 1, B: 1},
		PaddleColor: colorful.Color{R: 1, G: 1, B: 1},
		WallColor:   colorful.Color{R: 0.5, G: 0.5, B: 0.5},
	}
}

// Court owns every entity of a match and advances them one update at a time
type Court struct {
	Screen   geom.Rect
	Paddles  [2]*Paddle
	Walls    [2]*Wall
	Balls    []*Ball
	MaxSpeed geom.Vec2
	rng      *rand.Rand
}

// NewCourt builds the reference scenario: paddles at the left and right
// edges, walls along the top and bottom, balls resting in the middle.
func NewCourt(l Layout, rng *rand.Rand) *Court {
	screen := geom.Rect{Size: geom.V(l.Width, l.Height)}

	paddleSize := geom.V(l.Width/40, l.Height/5)
	left := NewPaddle(paddleSize, geom.V(paddleSize.X, l.Height/2))
	right := NewPaddle(paddleSize, geom.V(l.Width-paddleSize.X, l.Height/2))
	left.Bind(KeyW, ActionUp)
	left.Bind(KeyS, ActionDown)
	right.Bind(KeyUp, ActionUp)
	right.Bind(KeyDown, ActionDown)

	wallSize := geom.V(l.Width, l.Height/50)
	top := NewWall(wallSize, geom.V(l.Width/2, 0))
	bottom := NewWall(wallSize, geom.V(l.Width/2, l.Height))

	c := &Court{
		Screen:   screen,
		Paddles:  [2]*Paddle{left, right},
		Walls:    [2]*Wall{top, bottom},
		MaxSpeed: l.MaxSpeed,
		rng:      rng,
	}

	for i := 0; i < l.Balls; i++ {
		b := NewBall(l.BallRadius, c.Center(), geom.Vec2{}, rng)
		b.Color = l.BallColor
		c.Balls = append(c.Balls, b)
	}
	for _, p := range c.Paddles {
		p.Color = l.PaddleColor
	}
	for _, w := range c.Walls {
		w.Color = l.WallColor
	}

	return c
}

// Center returns the middle of the screen
func (c *Court) Center() geom.Vec2 {
	return c.Screen.Center()
}

// Sample refreshes every paddle binding from the platform's pressed state
func (c *Court) Sample(pressed func(Key) bool) {
	for _, p := range c.Paddles {
		p.Sample(pressed)
	}
}

// Step advances the court by one update. dt is the accumulated update time
// in seconds; it scales paddle travel and the ball velocity ramp.
func (c *Court) Step(dt float64) Events {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	var ev Events
	for _, p := range c.Paddles {
		c.movePaddle(p, dt)
	}
	for _, b := range c.Balls {
		ev |= c.updateBall(b, dt)
	}
	return ev
}

// movePaddle applies every held action. An action that pushes the paddle
// into a wall is undone.
func (c *Court) movePaddle(p *Paddle, dt float64) {
	for _, in := range p.bindings {
		if !in.Pressed {
			continue
		}
		d := p.Move(in.Action, dt)
		if c.hitsWall(p.Bounds()) {
			p.Translate(d.Scale(-1))
		}
	}
}

func (c *Court) hitsWall(r geom.Rect) bool {
	for _, w := range c.Walls {
		if r.Intersects(w.Bounds()) {
			return true
		}
	}
	return false
}

func (c *Court) updateBall(b *Ball, dt float64) Events {
	var ev Events

	// Out of the screen: the paddle on the far side of the exit scores
	if !b.Bounds().Intersects(c.Screen) {
		if b.Position.X > c.Screen.Size.X/2 {
			c.Paddles[0].AddPoint()
		} else {
			c.Paddles[1].AddPoint()
		}
		b.Reset(c.Center(), c.rng)
		ev |= EventScore
	}

	// Each wall flips independently; touching both is a net no-op
	for _, w := range c.Walls {
		if b.Bounds().Intersects(w.Bounds()) {
			b.BounceY()
			ev |= EventWallBounce
		}
	}

	for _, p := range c.Paddles {
		if !b.Bounds().Intersects(p.Bounds()) {
			continue
		}
		if math.Abs(p.Slope()) > math.Abs(p.SlopeTo(b.Position)) {
			b.BounceX()
		} else {
			b.BounceY()
		}
		separate(b, p)
		ev |= EventPaddleHit
	}

	b.Accelerate(dt, c.MaxSpeed)
	b.Integrate()

	return ev
}

// separate pushes the ball along its velocity until it clears the paddle
func separate(b *Ball, p *Paddle) {
	if b.Velocity.IsZero() {
		return
	}
	for i := 0; i < MaxSeparationSteps && b.Bounds().Intersects(p.Bounds()); i++ {
		b.Move(b.Velocity)
	}
}

// Drawables returns every entity in render order: paddles, balls, walls
func (c *Court) Drawables() []Drawable {
	out := make([]Drawable, 0, len(c.Paddles)+len(c.Balls)+len(c.Walls))
	for _, p := range c.Paddles {
		out = append(out, p)
	}
	for _, b := range c.Balls {
		out = append(out, b)
	}
	for _, w := range c.Walls {
		out = append(out, w)
	}
	return out
}

// Scores returns the left and right paddle scores
func (c *Court) Scores() [2]uint {
	return [2]uint{c.Paddles[0].Score, c.Paddles[1].Score}
}
