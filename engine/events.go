// Package engine owns the authoritative snake game state and advances it one
// tick at a time.
//
// Step Architecture
//
// The host loop calls World.Step once per frame with the decoded commands and
// the frame delta in seconds. Step runs the registered systems in priority
// order against the single GameState, advances every timer, and returns a
// read-only Snapshot for the renderer and audio.
//
// Event Flow Pattern:
//  1. A system appends an event during Update: state.Emit(Event{...})
//  2. Step moves the tick's events into the Snapshot
//  3. Consumers (audio, logging) read snapshot.Events after Step returns
//
// Events never feed back into the simulation; they are notifications only.
package engine

import "github.com/lixenwraith/vi-snake/vmath"

// EventType represents the type of game event
type EventType int

const (
	// EventEggConsumed is emitted once per egg eaten
	// Carries Special, Credit and the egg Position before relocation
	EventEggConsumed EventType = iota

	// EventTurnRejected is emitted when a reversal is refused and the flash raised
	// Carries the rejected Heading
	EventTurnRejected

	// EventPauseToggled is emitted when a pause command flips the paused state
	EventPauseToggled

	// EventQuit is emitted when a quit command is applied
	EventQuit
)

func (t EventType) String() string {
	switch t {
	case EventEggConsumed:
		return "egg_consumed"
	case EventTurnRejected:
		return "turn_rejected"
	case EventPauseToggled:
		return "pause_toggled"
	case EventQuit:
		return "quit"
	}
	return "unknown"
}

// Event is a notification produced during one Step
type Event struct {
	Type     EventType
	Tick     uint64
	Position vmath.Point
	Heading  vmath.Heading
	Special  bool
	Credit   int
}
