package systems

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// InputSystem applies the tick's decoded commands
// Heading changes latch immediately; only position propagation is timer gated
type InputSystem struct {
	log *zap.Logger
}

func NewInputSystem(log *zap.Logger) *InputSystem {
	return &InputSystem{log: log}
}

func (s *InputSystem) Priority() int {
	return constants.PriorityInput
}

func (s *InputSystem) Update(state *engine.GameState) {
	for _, cmd := range state.Commands {
		switch cmd.Type {
		case engine.CommandQuit:
			if !state.Quit {
				state.Quit = true
				state.Emit(engine.Event{Type: engine.EventQuit})
			}
		case engine.CommandPause:
			s.togglePause(state)
		case engine.CommandDirection:
			if state.Paused || !cmd.Heading.Valid() {
				continue
			}
			s.turn(state, cmd)
		}
	}
}

// turn sets the head heading unless it reverses a multi-cell snake
// A rejected reversal raises the flash instead
func (s *InputSystem) turn(state *engine.GameState, cmd engine.Command) {
	head := state.Head()
	if state.Length() > 1 && cmd.Heading.IsOpposite(head.Heading) {
		state.Flash.Raise(state.Rules.FlashMax)
		state.Emit(engine.Event{
			Type:     engine.EventTurnRejected,
			Position: head.Position,
			Heading:  cmd.Heading,
		})
		s.log.Debug("turn rejected",
			zap.Stringer("heading", head.Heading),
			zap.Stringer("requested", cmd.Heading),
		)
		return
	}
	head.Heading = cmd.Heading
}

// togglePause freezes the movement and carry timers without losing progress
func (s *InputSystem) togglePause(state *engine.GameState) {
	state.Paused = !state.Paused
	if state.Paused {
		state.MovementTimer.Pause()
		state.CarryTimer.Pause()
	} else {
		state.MovementTimer.Play()
		state.CarryTimer.Play()
	}
	state.Emit(engine.Event{Type: engine.EventPauseToggled})
	s.log.Debug("pause toggled", zap.Bool("paused", state.Paused))
}
