package game

import "github.com/diegok/pongsim/internal/geom"

// Action is a logical paddle movement
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	}
	return "none"
}

// Vector returns the unit displacement of the action in screen space (y grows downward)
func (a Action) Vector() geom.Vec2 {
	switch a {
	case ActionUp:
		return geom.V(0, -1)
	case ActionDown:
		return geom.V(0, 1)
	case ActionLeft:
		return geom.V(-1, 0)
	case ActionRight:
		return geom.V(1, 0)
	}
	return geom.Vec2{}
}

// Key is a platform-neutral key name. Platforms translate their own key
// events into these names.
type Key string

const (
	KeyW      Key = "w"
	KeyS      Key = "s"
	KeyA      Key = "a"
	KeyD      Key = "d"
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
	KeyEscape Key = "escape"
)

// Binding maps a key to a paddle action and holds whether it is currently held
type Binding struct {
	Key     Key
	Action  Action
	Pressed bool
}

// Bind maps key to action. Binding ActionNone removes the key.
func (p *Paddle) Bind(key Key, action Action) {
	for i, b := range p.bindings {
		if b.Key != key {
			continue
		}
		if action == ActionNone {
			p.bindings = append(p.bindings[:i], p.bindings[i+1:]...)
			return
		}
		p.bindings[i] = Binding{Key: key, Action: action}
		return
	}
	if action != ActionNone {
		p.bindings = append(p.bindings, Binding{Key: key, Action: action})
	}
}

// Bindings returns the paddle's bindings in the order they were added
func (p *Paddle) Bindings() []Binding {
	return p.bindings
}

// Sample refreshes every binding from the platform's pressed state
func (p *Paddle) Sample(pressed func(Key) bool) {
	for i := range p.bindings {
		p.bindings[i].Pressed = pressed(p.bindings[i].Key)
	}
}

// Pressed reports whether key is bound and currently held
func (p *Paddle) Pressed(key Key) bool {
	for _, b := range p.bindings {
		if b.Key == key {
			return b.Pressed
		}
	}
	return false
}
