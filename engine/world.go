package engine

import (
	"math"

	"go.uber.org/zap"
)

// System is one phase of a step
type System interface {
	Update(state *GameState)
	Priority() int // Lower values run first
}

// World owns the game state and the ordered systems that advance it
type World struct {
	State   *GameState
	Log     *zap.Logger
	systems []System
}

// NewWorld creates a world around an initial state
// A nil logger is replaced by a no-op logger
func NewWorld(state *GameState, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		State:   state,
		Log:     log,
		systems: make([]System, 0),
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N), stable for equal priorities
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Step advances the game by one tick
// Order: systems by priority (input, consumption, movement, carry, flash),
// then every timer is advanced by delta seconds. Negative or non-finite
// deltas count as zero
func (w *World) Step(cmds []Command, delta float64) Snapshot {
	if delta < 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		delta = 0
	}

	s := w.State
	s.Commands = append(s.Commands[:0], cmds...)

	for _, system := range w.systems {
		system.Update(s)
	}

	s.Commands = s.Commands[:0]
	s.tickTimers(delta)

	snap := s.Snapshot()
	s.Tick++
	return snap
}
