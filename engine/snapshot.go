package engine

import (
	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/vmath"
)

// CellView is the renderer's read-only view of one body cell
type CellView struct {
	Position vmath.Point
	Heading  vmath.Heading
	Carrying bool
}

// CollectibleView is the renderer's read-only view of one pickup
type CollectibleView struct {
	Position vmath.Point
	Kind     components.CollectibleKind
	Special  bool
}

// Snapshot captures everything the renderer and audio need after a step
// It shares no memory with GameState
type Snapshot struct {
	Tick         uint64
	Cells        []CellView
	Collectibles []CollectibleView
	Score        uint64
	Elapsed      float64

	// FlashActive is true while the rejected-turn warning counts down
	// FlashOutline is true on odd counts; the renderer outlines every body cell
	FlashActive  bool
	FlashOutline bool

	Paused bool
	Quit   bool

	Events []Event

	// Playfield geometry in pixel units
	Width, Height         int
	CellWidth, CellHeight int
}

// Head returns the head cell view
func (s Snapshot) Head() CellView {
	return s.Cells[0]
}

// Snapshot copies the current state into a Snapshot
// Pending events are handed over and cleared from the state
func (gs *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         gs.Tick,
		Cells:        make([]CellView, len(gs.Snake)),
		Collectibles: make([]CollectibleView, len(gs.Collectibles)),
		Score:        gs.Score,
		Elapsed:      gs.Elapsed,
		FlashActive:  gs.Flash.Active(),
		FlashOutline: gs.Flash.Outline(),
		Paused:       gs.Paused,
		Quit:         gs.Quit,
		Events:       gs.Events,
		Width:        gs.Width(),
		Height:       gs.Height(),
		CellWidth:    gs.Grid.CellWidth,
		CellHeight:   gs.Grid.CellHeight,
	}
	gs.Events = nil

	carried, carrying := gs.CarriedIndex()
	for i, c := range gs.Snake {
		snap.Cells[i] = CellView{
			Position: c.Position,
			Heading:  c.Heading,
			Carrying: carrying && i == carried,
		}
	}
	for i, c := range gs.Collectibles {
		snap.Collectibles[i] = CollectibleView{
			Position: c.Position,
			Kind:     c.Kind,
			Special:  c.Special,
		}
	}
	return snap
}
