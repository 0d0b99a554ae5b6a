package engine

import (
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/vmath"
)

// ScriptedSource replays fixed values, cycling when exhausted
// IntN results are reduced modulo n so scripts stay on any grid
type ScriptedSource struct {
	Ints   []int
	Floats []float64
	ii, fi int
}

func (s *ScriptedSource) IntN(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	if v < 0 {
		v = -v
	}
	return v % n
}

func (s *ScriptedSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return 1
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

// NewTestConfig returns defaults on a small cols x rows grid with no viruses
func NewTestConfig(cols, rows int) *config.Config {
	cfg := config.Default()
	cfg.Grid.Columns = cols
	cfg.Grid.Rows = rows
	cfg.Rules.VirusCount = 0
	return cfg
}

// NewTestState builds a state from cfg with a scripted source and places the
// first egg, if any, at egg (pixel units)
func NewTestState(cfg *config.Config, rng *ScriptedSource, egg vmath.Point) *GameState {
	if rng == nil {
		rng = &ScriptedSource{}
	}
	gs := NewGameState(cfg, rng)
	for i := range gs.Collectibles {
		if gs.Collectibles[i].IsEgg() {
			gs.Collectibles[i].Position = egg
			gs.Collectibles[i].Special = false
			break
		}
	}
	return gs
}
