package app

import (
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/diegok/pongsim/internal/audio"
	"github.com/diegok/pongsim/internal/config"
	"github.com/diegok/pongsim/internal/game"
	"github.com/diegok/pongsim/internal/geom"
	"github.com/diegok/pongsim/internal/loop"
	"github.com/diegok/pongsim/internal/timing"
	"github.com/diegok/pongsim/internal/ui"
)

// App wires the configuration, the terminal platform, sounds and logging
// around a simulation loop.
type App struct {
	cfg *config.Config
	log zerolog.Logger

	logFile io.Closer
	player  *audio.Player
	sigChan chan os.Signal
	done    chan struct{}
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		log:  zerolog.Nop(),
		done: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes logging, sound and the screen, then runs the loop until
// the player quits or a signal arrives.
func (a *App) Run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	log, closer, err := NewLogger(a.cfg.LogPath, a.cfg.Debug)
	if err != nil {
		return err
	}
	a.log, a.logFile = log, closer
	defer a.cleanup()

	seed := a.cfg.SeedOrNow(time.Now())
	a.log.Info().Int64("seed", seed).Int("balls", a.cfg.Balls).Msg("starting")

	// Sound is optional: the game works without it
	if !a.cfg.Mute {
		if a.player, err = audio.Init(); err != nil {
			a.log.Warn().Err(err).Msg("audio disabled")
			a.player = nil
		}
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return errors.Wrap(err, "failed to initialize screen")
	}
	layout := a.cfg.Layout()
	platform := ui.NewTerminal(screen, geom.V(layout.Width, layout.Height), ui.NewKeyboard(ui.DefaultHoldWindow))

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go watchSignals(a.sigChan, platform, a.done)

	var sounds loop.Sounds
	if a.player != nil {
		sounds = a.player
	}
	l := NewLoop(a.cfg, platform, timing.NewSystemClock(), a.log, sounds, rand.New(rand.NewSource(seed)))
	if err := l.Run(); err != nil {
		return err
	}

	scores := l.Court().Scores()
	a.log.Info().Uint("left", scores[0]).Uint("right", scores[1]).Msg("finished")
	return nil
}

// NewLoop builds the court described by cfg and a loop driving it on platform.
// A nil sounds plays nothing.
func NewLoop(cfg *config.Config, platform loop.Platform, clock timing.Clock, log zerolog.Logger, sounds loop.Sounds, rng *rand.Rand, extra ...loop.Option) *loop.Loop {
	court := game.NewCourt(cfg.Layout(), rng)
	opts := []loop.Option{loop.WithLogger(log)}
	if sounds != nil {
		opts = append(opts, loop.WithSounds(sounds))
	}
	return loop.New(court, platform, clock, cfg.Rates(), append(opts, extra...)...)
}

// NewLogger opens path for console-formatted log output. An empty path
// disables logging. The returned closer is never nil.
func NewLogger(path string, debug bool) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), errors.Wrap(err, "open log file")
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.RFC3339}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), f, nil
}

// closeRequester is the part of the platform a signal needs
type closeRequester interface {
	RequestClose()
}

// watchSignals asks the platform to close on the first signal
func watchSignals(sig <-chan os.Signal, p closeRequester, done <-chan struct{}) {
	select {
	case <-sig:
		p.RequestClose()
	case <-done:
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	close(a.done)

	// Stop signal handling
	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}

	// Close audio
	if a.player != nil {
		a.player.Close()
	}

	_ = a.logFile.Close()
}
