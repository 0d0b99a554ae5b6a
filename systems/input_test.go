package systems

import (
	"testing"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/vmath"
)

// TestReversalRejected verifies a multi-cell snake cannot turn back on itself
func TestReversalRejected(t *testing.T) {
	w := newTestWorld(t, 2, offGrid, nil)

	snap := idleStep(w, engine.DirectionCommand(left))

	if snap.Head().Heading != right {
		t.Errorf("Expected heading to stay right, got %v", snap.Head().Heading)
	}
	if w.State.Flash.Remaining != w.State.Rules.FlashMax {
		t.Errorf("Expected flash count %d, got %d", w.State.Rules.FlashMax, w.State.Flash.Remaining)
	}
	if !w.State.Flash.Timer.Running() {
		t.Error("Expected flash timer to be running")
	}
	if !snap.FlashActive {
		t.Error("Expected snapshot to report an active flash")
	}
	if !hasEvent(snap, engine.EventTurnRejected) {
		t.Error("Expected turn rejected event")
	}
}

// TestSingleCellTurnsFreely verifies the reversal check is skipped for length 1
func TestSingleCellTurnsFreely(t *testing.T) {
	w := newTestWorld(t, 1, offGrid, nil)

	snap := idleStep(w, engine.DirectionCommand(left))

	if snap.Head().Heading != left {
		t.Errorf("Expected heading left, got %v", snap.Head().Heading)
	}
	if snap.FlashActive || w.State.Flash.Timer.Running() {
		t.Error("Expected no flash for a single-cell snake")
	}
}

func TestPerpendicularTurns(t *testing.T) {
	tests := []struct {
		name string
		cmd  vmath.Heading
		want vmath.Heading
	}{
		{"Up", up, up},
		{"Down", down, down},
		{"Same heading", right, right},
		{"Reverse", left, right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 3, offGrid, nil)
			snap := idleStep(w, engine.DirectionCommand(tt.cmd))
			if snap.Head().Heading != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, snap.Head().Heading)
			}
		})
	}
}

// TestLastCommandWins verifies several commands in one tick apply in order
func TestLastCommandWins(t *testing.T) {
	w := newTestWorld(t, 2, offGrid, nil)

	snap := idleStep(w, engine.DirectionCommand(up), engine.DirectionCommand(left))

	// up is legal, then left is perpendicular to up and also legal
	if snap.Head().Heading != left {
		t.Errorf("Expected heading left, got %v", snap.Head().Heading)
	}
}

func TestInvalidHeadingIgnored(t *testing.T) {
	w := newTestWorld(t, 2, offGrid, nil)

	snap := idleStep(w, engine.DirectionCommand(vmath.HeadingNone))
	if snap.Head().Heading != right {
		t.Errorf("Expected heading unchanged, got %v", snap.Head().Heading)
	}
}

func TestQuitCommand(t *testing.T) {
	w := newTestWorld(t, 2, offGrid, nil)

	snap := idleStep(w, engine.QuitCommand())
	if !snap.Quit {
		t.Error("Expected quit to be reported")
	}
	if !hasEvent(snap, engine.EventQuit) {
		t.Error("Expected quit event")
	}

	// Repeated quit does not emit again
	snap = idleStep(w, engine.QuitCommand())
	if hasEvent(snap, engine.EventQuit) {
		t.Error("Expected quit event only once")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	w := newTestWorld(t, 2, offGrid, nil)
	interval := w.State.Timing.Movement

	snap := w.Step([]engine.Command{engine.PauseCommand()}, interval)
	if !snap.Paused {
		t.Fatal("Expected paused snapshot")
	}

	for i := 0; i < 5; i++ {
		snap = w.Step([]engine.Command{engine.DirectionCommand(down)}, interval)
	}
	if !snap.Head().Position.Equal(vmath.P(0, 0)) {
		t.Errorf("Expected no movement while paused, got %v", snap.Head().Position)
	}
	if snap.Head().Heading != right {
		t.Errorf("Expected direction ignored while paused, got %v", snap.Head().Heading)
	}
	if snap.Elapsed != 0 {
		t.Errorf("Expected elapsed frozen at 0, got %v", snap.Elapsed)
	}

	snap = w.Step([]engine.Command{engine.PauseCommand()}, interval)
	if snap.Paused {
		t.Fatal("Expected unpaused snapshot")
	}
	snap = w.Step(nil, interval)
	if !snap.Head().Position.Equal(vmath.P(cell, 0)) {
		t.Errorf("Expected movement to resume, got %v", snap.Head().Position)
	}
}
