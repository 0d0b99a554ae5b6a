package engine

import (
	"testing"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/vmath"
)

// TestGameStateInitialization verifies the start layout
func TestGameStateInitialization(t *testing.T) {
	cfg := config.Default()
	gs := NewGameState(cfg, NewRandomSource(7))

	if gs.Length() != 2 {
		t.Fatalf("Expected 2 cells, got %d", gs.Length())
	}
	for i, c := range gs.Snake {
		if !c.Position.Equal(vmath.P(0, 0)) {
			t.Errorf("Cell %d: expected origin, got %v", i, c.Position)
		}
		if c.Heading != vmath.HeadingRight {
			t.Errorf("Cell %d: expected heading right, got %v", i, c.Heading)
		}
	}

	eggs, viruses := 0, 0
	for _, c := range gs.Collectibles {
		switch c.Kind {
		case components.KindEgg:
			eggs++
			if c.Special {
				t.Error("Expected the starting egg to be ordinary")
			}
		case components.KindVirus:
			viruses++
		}
		if c.Position.X%cfg.Grid.CellWidth != 0 || c.Position.Y%cfg.Grid.CellHeight != 0 {
			t.Errorf("Expected cell-aligned position, got %v", c.Position)
		}
		if c.Position.X < 0 || c.Position.X >= gs.Width() || c.Position.Y < 0 || c.Position.Y >= gs.Height() {
			t.Errorf("Expected on-grid position, got %v", c.Position)
		}
	}
	if eggs != 1 || viruses != 9 {
		t.Errorf("Expected 1 egg and 9 viruses, got %d and %d", eggs, viruses)
	}

	if gs.Carried != NotCarried || gs.Score != 0 {
		t.Error("Expected no carried egg and zero score")
	}
	if !gs.MovementTimer.Running() || !gs.CarryTimer.Running() {
		t.Error("Expected movement and carry timers running")
	}
	if gs.Flash.Timer.Running() {
		t.Error("Expected flash timer stopped")
	}
}

func TestGameStateStartOptions(t *testing.T) {
	cfg := NewTestConfig(10, 10)
	cfg.Rules.InitialLength = 4
	cfg.Rules.StartColumn = 3
	cfg.Rules.StartRow = 5
	cfg.Rules.StartHeading = "up"

	gs := NewGameState(cfg, &ScriptedSource{})
	if gs.Length() != 4 {
		t.Errorf("Expected 4 cells, got %d", gs.Length())
	}
	if !gs.Head().Position.Equal(vmath.P(60, 100)) || gs.Head().Heading != vmath.HeadingUp {
		t.Errorf("Expected head at (60,100) heading up, got %v %v", gs.Head().Position, gs.Head().Heading)
	}
}

func TestRandomPointOnGrid(t *testing.T) {
	cfg := NewTestConfig(7, 3)
	gs := NewGameState(cfg, NewRandomSource(3))

	for i := 0; i < 500; i++ {
		p := gs.RandomPoint()
		if p.X < 0 || p.X >= 140 || p.Y < 0 || p.Y >= 60 {
			t.Fatalf("Expected point within 140x60, got %v", p)
		}
		if p.X%20 != 0 || p.Y%20 != 0 {
			t.Fatalf("Expected cell-aligned point, got %v", p)
		}
	}
}

func TestRollSpecial(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		want bool
	}{
		{"Below chance", 0.29, true},
		{"At chance", 0.3, false},
		{"Above chance", 0.8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(NewTestConfig(5, 5), &ScriptedSource{Floats: []float64{tt.roll}})
			if got := gs.RollSpecial(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGrowWrapsBehindAnchor(t *testing.T) {
	gs := NewGameState(NewTestConfig(10, 10), &ScriptedSource{})
	anchor := components.Cell{Position: vmath.P(20, 0), Heading: vmath.HeadingDown}

	gs.Grow(anchor, 3)

	want := []vmath.Point{vmath.P(20, 180), vmath.P(20, 160), vmath.P(20, 140)}
	if gs.Length() != 5 {
		t.Fatalf("Expected 5 cells, got %d", gs.Length())
	}
	for i, p := range want {
		c := gs.Snake[2+i]
		if !c.Position.Equal(p) {
			t.Errorf("Grown cell %d: expected %v, got %v", i, p, c.Position)
		}
		if c.Heading != vmath.HeadingDown {
			t.Errorf("Grown cell %d: expected heading down, got %v", i, c.Heading)
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	gs := NewGameState(NewTestConfig(5, 5), &ScriptedSource{})
	gs.Carried = 1
	gs.Emit(Event{Type: EventEggConsumed})

	snap := gs.Snapshot()
	if len(snap.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(snap.Events))
	}
	if len(gs.Events) != 0 {
		t.Error("Expected state events cleared after snapshot")
	}
	if snap.Cells[0].Carrying || !snap.Cells[1].Carrying {
		t.Error("Expected only cell 1 to carry")
	}

	snap.Cells[0].Position = vmath.P(99, 99)
	if gs.Head().Position.Equal(vmath.P(99, 99)) {
		t.Error("Expected snapshot mutation not to reach state")
	}
}

func TestCarriedIndexBounds(t *testing.T) {
	gs := NewGameState(NewTestConfig(5, 5), &ScriptedSource{})

	for _, idx := range []int{NotCarried, 2, 10} {
		gs.Carried = idx
		if _, ok := gs.CarriedIndex(); ok {
			t.Errorf("Expected index %d to be rejected", idx)
		}
	}
	gs.Carried = 1
	if idx, ok := gs.CarriedIndex(); !ok || idx != 1 {
		t.Errorf("Expected index 1, got %d (ok=%v)", idx, ok)
	}
}

// TestTailAnchorUsesLastMove verifies a latched turn does not change the
// heading the tail last moved on
func TestTailAnchorUsesLastMove(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   vmath.Heading
	}{
		{"Head is tail", 1, vmath.HeadingRight},
		{"Body tail", 3, vmath.HeadingRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewTestConfig(5, 5)
			cfg.Rules.InitialLength = tt.length
			gs := NewGameState(cfg, &ScriptedSource{})
			gs.Head().Heading = vmath.HeadingUp

			if got := gs.LastMoveHeading(0); got != vmath.HeadingRight {
				t.Errorf("Expected head last moved right, got %v", got)
			}
			if got := gs.TailAnchor().Heading; got != tt.want {
				t.Errorf("Expected anchor heading %v, got %v", tt.want, got)
			}
		})
	}
}
