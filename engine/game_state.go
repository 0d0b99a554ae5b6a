package engine

import (
	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/vmath"
)

// NotCarried marks that no swallowed egg is travelling through the body
const NotCarried = -1

// GameState is the single owned aggregate mutated by the systems
// It is not safe for concurrent use; the host loop is its only owner
type GameState struct {
	// ===== CONFIGURATION (read-only after init) =====
	Grid   config.GridConfig
	Rules  config.RulesConfig
	Timing config.TimingConfig

	// ===== SIMULATION STATE =====

	// Snake body, index 0 = head; never empty
	Snake []components.Cell

	// Eggs and inert viruses
	Collectibles []components.Collectible

	Score   uint64
	Elapsed float64 // simulated seconds, frozen while paused
	Tick    uint64

	// Carried is the body index showing the swallowed egg, or NotCarried
	Carried int

	Flash components.Flash

	MovementTimer components.Timer
	CarryTimer    components.Timer

	// MovedHeading is the heading the head travelled on at the last movement
	// firing. Input only ever changes the head, so together with the body
	// headings it is the whole heading vector as of the last move
	MovedHeading vmath.Heading

	Paused bool
	Quit   bool

	// ===== PER-TICK SCRATCH =====
	Commands []Command
	Events   []Event

	rng RandomSource
}

// NewGameState builds the start state: the snake stacked on the start cell
// with every cell on the start heading, eggs and viruses at random cells
func NewGameState(cfg *config.Config, rng RandomSource) *GameState {
	gs := &GameState{
		Grid:          cfg.Grid,
		Rules:         cfg.Rules,
		Timing:        cfg.Timing,
		Carried:       NotCarried,
		Flash:         components.NewFlash(cfg.Timing.Flash),
		MovementTimer: components.NewTimer(cfg.Timing.Movement),
		CarryTimer:    components.NewTimer(cfg.Timing.Carry),
		rng:           rng,
	}

	length := cfg.Rules.InitialLength
	if length < 1 {
		length = 1
	}
	start := vmath.P(cfg.Rules.StartColumn*cfg.Grid.CellWidth, cfg.Rules.StartRow*cfg.Grid.CellHeight)
	heading := cfg.Rules.Heading()
	if !heading.Valid() {
		heading = vmath.HeadingRight
	}
	gs.MovedHeading = heading
	gs.Snake = make([]components.Cell, length)
	for i := range gs.Snake {
		gs.Snake[i] = components.Cell{Position: start, Heading: heading}
	}

	gs.Collectibles = make([]components.Collectible, 0, cfg.Rules.EggCount+cfg.Rules.VirusCount)
	for i := 0; i < cfg.Rules.EggCount; i++ {
		gs.Collectibles = append(gs.Collectibles, components.Collectible{
			Position: gs.RandomPoint(),
			Kind:     components.KindEgg,
		})
	}
	for i := 0; i < cfg.Rules.VirusCount; i++ {
		gs.Collectibles = append(gs.Collectibles, components.Collectible{
			Position: gs.RandomPoint(),
			Kind:     components.KindVirus,
		})
	}

	return gs
}

// Head returns the head cell
func (gs *GameState) Head() *components.Cell {
	return &gs.Snake[0]
}

// Tail returns the last cell
func (gs *GameState) Tail() components.Cell {
	return gs.Snake[len(gs.Snake)-1]
}

func (gs *GameState) Length() int {
	return len(gs.Snake)
}

// Width returns the playfield width in pixel units
func (gs *GameState) Width() int {
	return gs.Grid.Width()
}

// Height returns the playfield height in pixel units
func (gs *GameState) Height() int {
	return gs.Grid.Height()
}

// RandomPoint returns a uniformly chosen cell-aligned position on the grid
func (gs *GameState) RandomPoint() vmath.Point {
	x := gs.rng.IntN(gs.Grid.Columns)
	y := gs.rng.IntN(gs.Grid.Rows)
	return vmath.P(x*gs.Grid.CellWidth, y*gs.Grid.CellHeight)
}

// RollSpecial returns true with the configured special egg probability
func (gs *GameState) RollSpecial() bool {
	return gs.rng.Float64() < gs.Rules.SpecialEggChance
}

// Wrap folds p onto the playfield torus
func (gs *GameState) Wrap(p vmath.Point) vmath.Point {
	return p.Wrap(gs.Width(), gs.Height())
}

// LastMoveHeading returns the heading cell i travelled on at the last movement
// firing, ignoring any turn latched on the head since then
func (gs *GameState) LastMoveHeading(i int) vmath.Heading {
	if i == 0 {
		return gs.MovedHeading
	}
	return gs.Snake[i].Heading
}

// TailAnchor returns the tail with the heading it last moved on, the cell
// growth is laid out behind
func (gs *GameState) TailAnchor() components.Cell {
	tail := gs.Tail()
	tail.Heading = gs.LastMoveHeading(gs.Length() - 1)
	return tail
}

// Grow appends count cells behind anchor, each one cell further back along
// the anchor's heading, all sharing that heading
func (gs *GameState) Grow(anchor components.Cell, count int) {
	for i := 0; i < count; i++ {
		pos := anchor.Position.Offset(anchor.Heading, -gs.Grid.CellWidth*(i+1), -gs.Grid.CellHeight*(i+1))
		gs.Snake = append(gs.Snake, components.Cell{
			Position: gs.Wrap(pos),
			Heading:  anchor.Heading,
		})
	}
}

// Emit records an event for the current tick
func (gs *GameState) Emit(ev Event) {
	ev.Tick = gs.Tick
	gs.Events = append(gs.Events, ev)
}

// CarriedIndex returns the body index showing the swallowed egg
func (gs *GameState) CarriedIndex() (int, bool) {
	if gs.Carried < 0 || gs.Carried >= len(gs.Snake) {
		return 0, false
	}
	return gs.Carried, true
}

// tickTimers advances every timer by delta, the last phase of a step
func (gs *GameState) tickTimers(delta float64) {
	gs.MovementTimer.Tick(delta)
	gs.CarryTimer.Tick(delta)
	gs.Flash.Timer.Tick(delta)
	if !gs.Paused {
		gs.Elapsed += delta
	}
}
