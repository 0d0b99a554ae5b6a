package engine

import (
	"math"
	"testing"
)

// recordingSystem logs its name and the movement accumulator it observed
type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	seen     *[]float64
}

func (s *recordingSystem) Priority() int { return s.priority }

func (s *recordingSystem) Update(state *GameState) {
	*s.log = append(*s.log, s.name)
	if s.seen != nil {
		*s.seen = append(*s.seen, state.MovementTimer.Accumulated())
	}
}

func TestAddSystemSortsByPriority(t *testing.T) {
	var order []string
	w := NewWorld(NewGameState(NewTestConfig(5, 5), &ScriptedSource{}), nil)

	w.AddSystem(&recordingSystem{name: "flash", priority: 40, log: &order})
	w.AddSystem(&recordingSystem{name: "input", priority: 5, log: &order})
	w.AddSystem(&recordingSystem{name: "movement", priority: 20, log: &order})

	w.Step(nil, 0)

	want := []string{"input", "movement", "flash"}
	for i, name := range want {
		if order[i] != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, order[i])
		}
	}
}

// TestStepTicksTimersAfterSystems verifies systems see the accumulator from
// the previous step, so timer advancement is the last phase
func TestStepTicksTimersAfterSystems(t *testing.T) {
	var order []string
	var seen []float64
	w := NewWorld(NewGameState(NewTestConfig(5, 5), &ScriptedSource{}), nil)
	w.AddSystem(&recordingSystem{name: "probe", log: &order, seen: &seen})

	w.Step(nil, 0.05)
	w.Step(nil, 0.05)

	if seen[0] != 0 || seen[1] != 0.05 {
		t.Errorf("Expected accumulators [0 0.05], got %v", seen)
	}
	if w.State.Elapsed != 0.1 {
		t.Errorf("Expected elapsed 0.1, got %v", w.State.Elapsed)
	}
}

func TestStepClampsBadDelta(t *testing.T) {
	w := NewWorld(NewGameState(NewTestConfig(5, 5), &ScriptedSource{}), nil)

	for _, d := range []float64{-1, math.NaN(), math.Inf(1)} {
		w.Step(nil, d)
	}
	if w.State.Elapsed != 0 || w.State.MovementTimer.Accumulated() != 0 {
		t.Errorf("Expected bad deltas ignored, got elapsed %v", w.State.Elapsed)
	}
}

func TestStepCountsTicksAndClearsCommands(t *testing.T) {
	w := NewWorld(NewGameState(NewTestConfig(5, 5), &ScriptedSource{}), nil)

	snap := w.Step([]Command{QuitCommand()}, 0)
	if snap.Tick != 0 || w.State.Tick != 1 {
		t.Errorf("Expected snapshot tick 0 and state tick 1, got %d and %d", snap.Tick, w.State.Tick)
	}
	if len(w.State.Commands) != 0 {
		t.Error("Expected commands cleared after step")
	}
}
