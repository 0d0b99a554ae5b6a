// @focus: #vfx { flash } #lifecycle { timer }
package systems

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// FlashSystem counts down the rejected-turn warning
// Each flash timer firing decrements the count; at zero the timer is stopped
type FlashSystem struct{}

func NewFlashSystem() *FlashSystem {
	return &FlashSystem{}
}

func (s *FlashSystem) Priority() int {
	return constants.PriorityFlash
}

func (s *FlashSystem) Update(state *engine.GameState) {
	flash := &state.Flash
	if !flash.Timer.Triggered() {
		return
	}

	if flash.Remaining > 0 {
		flash.Remaining--
	}
	if flash.Remaining == 0 {
		flash.Timer.Stop()
	}
}
