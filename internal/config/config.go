package config

import (
	"flag"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/diegok/pongsim/internal/game"
	"github.com/diegok/pongsim/internal/timing"
)

// Default values for configuration
const (
	DefaultUpdateRate = 120
	DefaultDrawRate   = 60
	DefaultSleepRate  = 240
	DefaultPrintRate  = 1
	DefaultBalls      = 1

	DefaultBallColor   = "#ffffff"
	DefaultPaddleColor = "#ffffff"
	DefaultWallColor   = "#808080"
)

// Config holds the application configuration
type Config struct {
	UpdateRate float64
	DrawRate   float64
	SleepRate  float64
	PrintRate  float64
	Balls      int
	Seed       int64
	Mute       bool
	LogPath    string
	Debug      bool

	BallColor   colorful.Color
	PaddleColor colorful.Color
	WallColor   colorful.Color
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pongsim", flag.ContinueOnError)

	ups := fs.Float64("ups", DefaultUpdateRate, "physics updates per second (>0)")
	dps := fs.Float64("dps", DefaultDrawRate, "frames drawn per second (>0)")
	sps := fs.Float64("sps", DefaultSleepRate, "sleep cadence per second (>0)")
	pps := fs.Float64("pps", DefaultPrintRate, "telemetry lines per second (>0)")
	balls := fs.Int("balls", DefaultBalls, "number of balls (>=1)")
	seed := fs.Int64("seed", 0, "random seed (0 picks one from the clock)")
	mute := fs.Bool("mute", false, "disable sound effects")
	logPath := fs.String("log", "", "write telemetry to this file")
	debug := fs.Bool("debug", false, "log score events")
	ballColor := fs.String("ball-color", DefaultBallColor, "ball color (hex)")
	paddleColor := fs.String("paddle-color", DefaultPaddleColor, "paddle color (hex)")
	wallColor := fs.String("wall-color", DefaultWallColor, "wall color (hex)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Validate rates
	for _, r := range []struct {
		name string
		v    float64
	}{{"ups", *ups}, {"dps", *dps}, {"sps", *sps}, {"pps", *pps}} {
		if !(r.v > 0) {
			return nil, errors.Errorf("%s must be greater than 0, got %v", r.name, r.v)
		}
	}

	// Validate balls
	if *balls < 1 {
		return nil, errors.Errorf("balls must be at least 1, got %d", *balls)
	}

	cfg := &Config{
		UpdateRate: *ups,
		DrawRate:   *dps,
		SleepRate:  *sps,
		PrintRate:  *pps,
		Balls:      *balls,
		Seed:       *seed,
		Mute:       *mute,
		LogPath:    *logPath,
		Debug:      *debug,
	}

	var err error
	if cfg.BallColor, err = parseColor("ball-color", *ballColor); err != nil {
		return nil, err
	}
	if cfg.PaddleColor, err = parseColor("paddle-color", *paddleColor); err != nil {
		return nil, err
	}
	if cfg.WallColor, err = parseColor("wall-color", *wallColor); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseColor(name, hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, errors.Wrapf(err, "invalid %s", name)
	}
	return c, nil
}

// Rates returns the loop cadences
func (c *Config) Rates() timing.Rates {
	return timing.Rates{
		Print:  c.PrintRate,
		Update: c.UpdateRate,
		Draw:   c.DrawRate,
		Sleep:  c.SleepRate,
	}
}

// Layout returns the reference court with the configured ball count and colors
func (c *Config) Layout() game.Layout {
	l := game.DefaultLayout()
	l.Balls = c.Balls
	l.BallColor = c.BallColor
	l.PaddleColor = c.PaddleColor
	l.WallColor = c.WallColor
	return l
}

// SeedOrNow returns the configured seed, or one taken from now when unset
func (c *Config) SeedOrNow(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
