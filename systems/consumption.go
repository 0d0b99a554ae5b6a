package systems

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// ConsumptionSystem resolves the head landing on eggs
// Runs before movement, so the head position is the one produced by the
// previous movement tick
type ConsumptionSystem struct {
	log *zap.Logger
}

func NewConsumptionSystem(log *zap.Logger) *ConsumptionSystem {
	return &ConsumptionSystem{log: log}
}

func (s *ConsumptionSystem) Priority() int {
	return constants.PriorityConsumption
}

func (s *ConsumptionSystem) Update(state *engine.GameState) {
	head := state.Head().Position

	// Growth anchors on the tail as it was at the last movement firing, so a
	// turn latched this tick does not bend the new cells. Two eggs eaten in the
	// same tick stack their new cells on the same spots
	anchor := state.TailAnchor()

	for i := range state.Collectibles {
		egg := &state.Collectibles[i]
		if !egg.IsEgg() || !egg.Position.Equal(head) {
			continue
		}

		credit := egg.Credit(state.Rules.EggCredit, state.Rules.SpecialEggCredit)
		special := egg.Special

		state.Carried = 0
		state.Score += uint64(credit)

		egg.Position = state.RandomPoint()
		egg.Special = state.RollSpecial()

		state.Grow(anchor, credit)

		state.Emit(engine.Event{
			Type:     engine.EventEggConsumed,
			Position: head,
			Special:  special,
			Credit:   credit,
		})
		s.log.Debug("egg consumed",
			zap.Stringer("at", head),
			zap.Bool("special", special),
			zap.Uint64("score", state.Score),
			zap.Int("length", state.Length()),
		)
	}
}
