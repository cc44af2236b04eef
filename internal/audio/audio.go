package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"

	"github.com/diegok/pongsim/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Player plays a short effect for each court event
type Player struct {
	play func(beep.Streamer)
	stop func()
}

// Init opens the speaker and returns a player bound to it
func Init() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	return &Player{
		play: func(s beep.Streamer) { speaker.Play(s) },
		stop: speaker.Close,
	}, nil
}

// Close shuts down the speaker
func (p *Player) Close() {
	if p.stop != nil {
		p.stop()
	}
}

// Play queues the effect for every event in ev.
// A score takes precedence over the bounces of the same tick.
func (p *Player) Play(ev game.Events) {
	if s := Effect(ev); s != nil {
		p.play(s)
	}
}

// Effect returns the streamer for ev, or nil when there is nothing to play
func Effect(ev game.Events) beep.Streamer {
	switch {
	case ev.Has(game.EventScore):
		// Descending tone for score
		return beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 150*time.Millisecond),
		)
	case ev.Has(game.EventPaddleHit):
		// High-pitched short beep
		return squareWave(880, 50*time.Millisecond)
	case ev.Has(game.EventWallBounce):
		// Medium-pitched short beep
		return squareWave(440, 30*time.Millisecond)
	}
	return nil
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			// Square wave: positive or negative based on phase
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
