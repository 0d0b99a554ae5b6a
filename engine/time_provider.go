package engine

import "time"

// TimeProvider supplies wall-clock readings to the host loop
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock converts successive time readings into per-frame deltas in seconds
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	maxDelta time.Duration
}

// NewFrameClock starts measuring from the provider's current time
// Deltas above maxDelta are clamped; maxDelta <= 0 disables clamping
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: maxDelta,
	}
}

// Delta returns seconds since the previous call (or construction)
func (c *FrameClock) Delta() float64 {
	now := c.provider.Now()
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		d = 0
	}
	if c.maxDelta > 0 && d > c.maxDelta {
		d = c.maxDelta
	}
	return d.Seconds()
}
