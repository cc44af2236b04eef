package ui

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pongsim/internal/game"
	"github.com/diegok/pongsim/internal/geom"
	"github.com/diegok/pongsim/internal/loop"
)

// Terminal is the tcell platform: it polls key events, tracks held keys
// and presents frames
type Terminal struct {
	screen   *Screen
	renderer *Renderer
	keys     *Keyboard

	events chan tcell.Event
	quit   chan struct{}

	closed    atomic.Bool
	closeOnce sync.Once
}

// NewTerminal starts reading events from screen in the background
func NewTerminal(screen *Screen, court geom.Vec2, keys *Keyboard) *Terminal {
	t := &Terminal{
		screen:   screen,
		renderer: NewRenderer(screen, court),
		keys:     keys,
		events:   make(chan tcell.Event, 64),
		quit:     make(chan struct{}),
	}
	go t.readEvents()
	return t
}

func (t *Terminal) readEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Poll drains pending events without blocking
func (t *Terminal) Poll() bool {
	for {
		select {
		case ev := <-t.events:
			t.handle(ev)
		default:
			return t.closed.Load()
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.keys.Press(KeyName(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// RequestClose makes the next Poll report the platform as closed. Safe to
// call from any goroutine.
func (t *Terminal) RequestClose() {
	t.closed.Store(true)
}

func (t *Terminal) IsPressed(key game.Key) bool {
	return t.keys.IsPressed(key)
}

func (t *Terminal) Present(f loop.Frame) {
	t.renderer.RenderFrame(f)
}

// Close stops the event reader and restores the terminal
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		close(t.quit)
		t.screen.Fini()
	})
	return nil
}
