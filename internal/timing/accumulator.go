package timing

import "math"

// Kind identifies one of the loop cadences
type Kind int

const (
	Print Kind = iota
	Update
	Draw
	Sleep
	numKinds
)

func (k Kind) String() string {
	switch k {
	case Print:
		return "print"
	case Update:
		return "update"
	case Draw:
		return "draw"
	case Sleep:
		return "sleep"
	}
	return "unknown"
}

// Cadence tracks elapsed time against the period of one rate.
// Accumulated is the debt not yet consumed by the cadence's phase.
type Cadence struct {
	Accumulated float64
	Threshold   float64
}

// NewCadence creates a cadence that becomes ready rate times per second
func NewCadence(rate float64) Cadence {
	return Cadence{Threshold: 1 / rate}
}

// Tick adds elapsed seconds. Negative and NaN values are ignored.
func (c *Cadence) Tick(elapsed float64) {
	if elapsed <= 0 || math.IsNaN(elapsed) || math.IsInf(elapsed, 0) {
		return
	}
	c.Accumulated += elapsed
}

// Ready reports whether a whole period has accumulated
func (c *Cadence) Ready() bool {
	return c.Threshold > 0 && c.Accumulated >= c.Threshold
}

// Drain subtracts whole periods until the cadence is no longer ready and
// returns how many were removed. The fractional remainder is kept for the
// next frame.
func (c *Cadence) Drain() int {
	n := 0
	for c.Ready() {
		c.Accumulated -= c.Threshold
		n++
	}
	return n
}

// Remaining returns the time left until the cadence is next ready
func (c *Cadence) Remaining() float64 {
	r := c.Threshold - c.Accumulated
	if r < 0 {
		return 0
	}
	return r
}

// Rates holds the per-second frequency of each cadence
type Rates struct {
	Print  float64
	Update float64
	Draw   float64
	Sleep  float64
}

// DefaultRates matches the reference loop: telemetry once per second,
// 120 updates, 60 draws and 240 sleeps per second.
var DefaultRates = Rates{Print: 1, Update: 120, Draw: 60, Sleep: 240}

// Accumulator owns the four independent cadences of the loop
type Accumulator struct {
	cadences [numKinds]Cadence
}

// NewAccumulator creates an accumulator for the given rates
func NewAccumulator(r Rates) *Accumulator {
	a := &Accumulator{}
	a.cadences[Print] = NewCadence(r.Print)
	a.cadences[Update] = NewCadence(r.Update)
	a.cadences[Draw] = NewCadence(r.Draw)
	a.cadences[Sleep] = NewCadence(r.Sleep)
	return a
}

// Tick feeds elapsed seconds to every cadence
func (a *Accumulator) Tick(elapsed float64) {
	for i := range a.cadences {
		a.cadences[i].Tick(elapsed)
	}
}

// Get returns the cadence of the given kind
func (a *Accumulator) Get(k Kind) *Cadence {
	return &a.cadences[k]
}

func (a *Accumulator) Ready(k Kind) bool {
	return a.cadences[k].Ready()
}

func (a *Accumulator) Drain(k Kind) int {
	return a.cadences[k].Drain()
}
