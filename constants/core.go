package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the host frame pacing interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the delta fed to the simulation after a stall
	// (suspend, debugger) so timers do not accumulate a burst
	MaxFrameDelta = 250 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)

// System Execution Priorities (lower runs first)
// Order is input, consumption, movement, carry, flash
const (
	PriorityInput       = 5
	PriorityConsumption = 10
	PriorityMovement    = 20
	PriorityCarry       = 30
	PriorityFlash       = 40
)
