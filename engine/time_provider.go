package engine

import "time"

// Clock is a time source; hosts use TimeProvider, tests ManualClock
type Clock interface {
	Now() time.Time
}

// TimeProvider reads the monotonic system clock
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock turns successive Now readings into frame deltas in seconds
type FrameClock struct {
	clock Clock
	last  time.Time
}

func NewFrameClock(c Clock) *FrameClock {
	return &FrameClock{clock: c, last: c.Now()}
}

// Delta returns seconds since the previous call (or construction), never negative
func (f *FrameClock) Delta() float64 {
	now := f.clock.Now()
	d := now.Sub(f.last).Seconds()
	f.last = now
	if d < 0 {
		return 0
	}
	return d
}

// Restart discards the time accrued since the last Delta, used after a pause
func (f *FrameClock) Restart() {
	f.last = f.clock.Now()
}
