package systems

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/vmath"
)

const (
	testCols = 10
	testRows = 8
	cell     = 20
)

// newTestWorld builds a world on a 10x8 grid with the snake stacked at the
// origin heading right and the egg at egg
func newTestWorld(t *testing.T, length int, egg vmath.Point, rng *engine.ScriptedSource) *engine.World {
	t.Helper()
	cfg := engine.NewTestConfig(testCols, testRows)
	cfg.Rules.InitialLength = length
	if rng == nil {
		rng = &engine.ScriptedSource{Ints: []int{5, 5}, Floats: []float64{0.9}}
	}
	w := engine.NewWorld(engine.NewTestState(cfg, rng, egg), zaptest.NewLogger(t))
	Register(w)
	return w
}

// moveStep makes the movement timer due and steps with zero delta, so exactly
// one movement firing happens inside the step
func moveStep(w *engine.World, cmds ...engine.Command) engine.Snapshot {
	w.State.MovementTimer.Tick(w.State.Timing.Movement)
	return w.Step(cmds, 0)
}

// idleStep steps without any timer becoming due
func idleStep(w *engine.World, cmds ...engine.Command) engine.Snapshot {
	return w.Step(cmds, 0)
}

func headings(snap engine.Snapshot) []vmath.Heading {
	out := make([]vmath.Heading, len(snap.Cells))
	for i, c := range snap.Cells {
		out[i] = c.Heading
	}
	return out
}

func hasEvent(snap engine.Snapshot, typ engine.EventType) bool {
	for _, ev := range snap.Events {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

// offGrid is a position no cell can occupy, used to keep the egg out of the way
var offGrid = vmath.P(-1000, -1000)
