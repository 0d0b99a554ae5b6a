package systems

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// CarrySystem advances the swallowed-egg marker one cell toward the tail per
// carry timer firing; it disappears after passing the tail
type CarrySystem struct{}

func NewCarrySystem() *CarrySystem {
	return &CarrySystem{}
}

func (s *CarrySystem) Priority() int {
	return constants.PriorityCarry
}

func (s *CarrySystem) Update(state *engine.GameState) {
	if !state.CarryTimer.Triggered() {
		return
	}
	idx, ok := state.CarriedIndex()
	if !ok {
		state.Carried = engine.NotCarried
		return
	}
	if idx+1 < state.Length() {
		state.Carried = idx + 1
	} else {
		state.Carried = engine.NotCarried
	}
}
