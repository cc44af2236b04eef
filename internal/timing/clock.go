package timing

import (
	"sync"
	"time"
)

// Clock reports the monotonic time since it was last sampled
type Clock interface {
	Elapsed() float64
}

// SystemClock samples the real monotonic clock
type SystemClock struct {
	last time.Time
	now  func() time.Time
}

// NewSystemClock creates a clock whose first sample measures from now
func NewSystemClock() *SystemClock {
	return &SystemClock{last: time.Now(), now: time.Now}
}

// Elapsed returns seconds since the previous call and restarts the clock
func (c *SystemClock) Elapsed() float64 {
	now := c.now()
	d := now.Sub(c.last)
	c.last = now
	return d.Seconds()
}

// ManualClock is a controllable clock for tests
type ManualClock struct {
	mu      sync.Mutex
	pending time.Duration
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Advance adds time that the next Elapsed call will report
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending += d
}

// AdvanceSeconds is Advance for fractional seconds
func (m *ManualClock) AdvanceSeconds(s float64) {
	m.Advance(time.Duration(s * float64(time.Second)))
}

func (m *ManualClock) Elapsed() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.pending.Seconds()
	m.pending = 0
	return s
}
