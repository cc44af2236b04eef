// Package loop drives the court at independent print, update, draw and
// sleep rates against a variable wall-clock delta.
package loop

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/diegok/pongsim/internal/game"
	"github.com/diegok/pongsim/internal/timing"
)

// State of the loop. Stopped is terminal.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Frame is the snapshot handed to the platform on every draw
type Frame struct {
	Drawables []game.Drawable
	Scores    [2]uint
}

// Platform is the window/terminal collaborator
type Platform interface {
	// Poll drains pending platform events and reports whether the user closed the window
	Poll() (closed bool)
	// IsPressed reports whether key is currently held
	IsPressed(key game.Key) bool
	// Present shows a frame
	Present(f Frame)
	// Close releases platform resources
	Close() error
}

// Sounds plays feedback for court events
type Sounds interface {
	Play(ev game.Events)
}

type nopSounds struct{}

func (nopSounds) Play(game.Events) {}

// Option configures a Loop
type Option func(*Loop)

// WithSounds sets the sound sink
func WithSounds(s Sounds) Option {
	return func(l *Loop) { l.sounds = s }
}

// WithLogger sets the telemetry logger
func WithLogger(log zerolog.Logger) Option {
	return func(l *Loop) { l.log = log }
}

// WithSleeper replaces time.Sleep, mainly for tests
func WithSleeper(sleep func(time.Duration)) Option {
	return func(l *Loop) { l.sleep = sleep }
}

// WithQuitKey changes the key that stops the loop
func WithQuitKey(k game.Key) Option {
	return func(l *Loop) { l.quitKey = k }
}

// Loop owns the court and runs poll, update, draw and sleep phases
type Loop struct {
	court    *game.Court
	platform Platform
	clock    timing.Clock
	acc      *timing.Accumulator
	sounds   Sounds
	log      zerolog.Logger
	sleep    func(time.Duration)
	quitKey  game.Key
	state    State

	// counters since the last telemetry line
	frames  int
	updates int
}

// New creates a loop in the Running state
func New(court *game.Court, platform Platform, clock timing.Clock, rates timing.Rates, opts ...Option) *Loop {
	l := &Loop{
		court:    court,
		platform: platform,
		clock:    clock,
		acc:      timing.NewAccumulator(rates),
		sounds:   nopSounds{},
		log:      zerolog.Nop(),
		sleep:    time.Sleep,
		quitKey:  game.KeyEscape,
		state:    Running,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) State() State {
	return l.state
}

func (l *Loop) Court() *game.Court {
	return l.court
}

// Accumulator exposes the cadences, for inspection
func (l *Loop) Accumulator() *timing.Accumulator {
	return l.acc
}

// Run iterates until the platform closes or the quit key is held, then
// releases the platform
func (l *Loop) Run() error {
	l.log.Debug().Msg("loop started")
	for l.state == Running {
		l.Step()
	}
	l.log.Debug().Msg("loop stopped")
	if err := l.platform.Close(); err != nil {
		return errors.Wrap(err, "close platform")
	}
	return nil
}

// Step runs a single iteration of the loop
func (l *Loop) Step() {
	if l.state != Running {
		return
	}

	l.acc.Tick(l.clock.Elapsed())

	if l.poll() {
		l.state = Stopped
		return
	}

	if l.acc.Ready(timing.Print) {
		l.report()
		l.acc.Drain(timing.Print)
	}

	if l.acc.Ready(timing.Update) {
		// The whole backlog is one physics step
		dt := l.acc.Get(timing.Update).Accumulated
		ev := l.court.Step(dt)
		l.updates++
		if ev != 0 {
			l.sounds.Play(ev)
			if ev.Has(game.EventScore) {
				s := l.court.Scores()
				l.log.Debug().Uint("left", s[0]).Uint("right", s[1]).Msg("point scored")
			}
		}
		l.acc.Drain(timing.Update)
	}

	if l.acc.Ready(timing.Draw) {
		l.platform.Present(Frame{
			Drawables: l.court.Drawables(),
			Scores:    l.court.Scores(),
		})
		l.frames++
		l.acc.Drain(timing.Draw)
	}

	sleep := l.acc.Get(timing.Sleep)
	sleep.Drain()
	l.sleep(time.Duration(sleep.Remaining() * float64(time.Second)))
}

// poll drains platform events and resamples every paddle binding
func (l *Loop) poll() bool {
	if l.platform.Poll() || l.platform.IsPressed(l.quitKey) {
		return true
	}
	l.court.Sample(l.platform.IsPressed)
	return false
}

func (l *Loop) report() {
	ev := l.log.Info().
		Int("frames", l.frames).
		Int("updates", l.updates)
	s := l.court.Scores()
	ev = ev.Uint("left", s[0]).Uint("right", s[1])
	if len(l.court.Balls) > 0 {
		b := l.court.Balls[0]
		ev = ev.Float64("ball_x", b.Position.X).Float64("ball_y", b.Position.Y)
	}
	ev.Msg("telemetry")

	l.frames = 0
	l.updates = 0
}
