package systems

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// MovementSystem propagates headings and positions once per movement timer firing
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

func (s *MovementSystem) Update(state *engine.GameState) {
	if !state.MovementTimer.Triggered() {
		return
	}
	s.propagateHeadings(state)
	s.advance(state)
	state.MovedHeading = state.Head().Heading
}

// propagateHeadings gives each cell behind the head the heading the cell ahead
// moved on at the previous firing. Walking tail to head reads every cell
// before it is overwritten; for the head that is MovedHeading, so a turn
// reaches cell 1 one firing later on whichever frame it was latched
func (s *MovementSystem) propagateHeadings(state *engine.GameState) {
	for i := len(state.Snake) - 1; i > 0; i-- {
		state.Snake[i].Heading = state.LastMoveHeading(i - 1)
	}
}

// advance moves every cell one cell along its heading and wraps onto the torus
func (s *MovementSystem) advance(state *engine.GameState) {
	cw, ch := state.Grid.CellWidth, state.Grid.CellHeight
	for i := range state.Snake {
		c := &state.Snake[i]
		c.Position = state.Wrap(c.Position.Offset(c.Heading, cw, ch))
	}
}
