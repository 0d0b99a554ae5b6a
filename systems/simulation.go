package systems

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
)

// Register adds the default systems to w in their fixed run order
func Register(w *engine.World) {
	w.AddSystem(NewInputSystem(w.Log))
	w.AddSystem(NewConsumptionSystem(w.Log))
	w.AddSystem(NewMovementSystem())
	w.AddSystem(NewCarrySystem())
	w.AddSystem(NewFlashSystem())
}

// NewSimulation builds the start state from cfg and a world running every system
func NewSimulation(cfg *config.Config, rng engine.RandomSource, log *zap.Logger) *engine.World {
	w := engine.NewWorld(engine.NewGameState(cfg, rng), log)
	Register(w)
	return w
}

// Step is the functional form of World.Step: it advances state by one tick
// with the default systems
func Step(state *engine.GameState, cmds []engine.Command, delta float64) engine.Snapshot {
	w := engine.NewWorld(state, nil)
	Register(w)
	return w.Step(cmds, delta)
}
