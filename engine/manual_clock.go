package engine

import (
	"sync"
	"time"
)

// ManualClock is a Clock that only moves when told to; replays and tests drive FrameClock with it
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set jumps to t, which may be earlier than the current reading
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock by d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// AdvanceFrames moves the clock by n frames of dt seconds
func (c *ManualClock) AdvanceFrames(n int, dt float64) {
	c.Advance(time.Duration(float64(n) * dt * float64(time.Second)))
}
