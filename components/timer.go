// @focus: #lifecycle { timer }
package components

// Timer accumulates elapsed seconds and reports when its interval has passed
// Firing is observed only by polling Triggered, never pushed
type Timer struct {
	running     bool
	interval    float64
	accumulated float64
}

// NewTimer creates a running timer
func NewTimer(interval float64) Timer {
	return Timer{running: true, interval: interval}
}

// NewStoppedTimer creates a paused timer with an empty accumulator
func NewStoppedTimer(interval float64) Timer {
	return Timer{interval: interval}
}

// Tick adds delta seconds while running
func (t *Timer) Tick(delta float64) {
	if t.running {
		t.accumulated += delta
	}
}

// Triggered is a consuming check: when the interval has elapsed it resets the
// accumulator to zero and returns true. Overshoot is discarded, missed
// intervals are not caught up
func (t *Timer) Triggered() bool {
	if t.accumulated >= t.interval {
		t.accumulated = 0
		return true
	}
	return false
}

// Pause stops accumulation, keeping progress
func (t *Timer) Pause() {
	t.running = false
}

// Play resumes accumulation
func (t *Timer) Play() {
	t.running = true
}

// Stop pauses and discards progress
func (t *Timer) Stop() {
	t.running = false
	t.accumulated = 0
}

func (t *Timer) Running() bool {
	return t.running
}

func (t *Timer) Interval() float64 {
	return t.interval
}

func (t *Timer) Accumulated() float64 {
	return t.accumulated
}
