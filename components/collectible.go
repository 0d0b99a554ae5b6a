package components

import "github.com/lixenwraith/vi-snake/vmath"

// CollectibleKind discriminates pickups on the grid
type CollectibleKind uint8

const (
	// KindEgg grows the snake when the head reaches it
	KindEgg CollectibleKind = iota
	// KindVirus is placed and drawn but takes part in no rule
	KindVirus
)

func (k CollectibleKind) String() string {
	switch k {
	case KindEgg:
		return "egg"
	case KindVirus:
		return "virus"
	}
	return "unknown"
}

// Collectible is a positioned pickup
// Special is meaningful only for eggs
type Collectible struct {
	Position vmath.Point
	Kind     CollectibleKind
	Special  bool
}

// IsEgg reports whether the collectible participates in consumption
func (c Collectible) IsEgg() bool {
	return c.Kind == KindEgg
}

// Credit returns the score and growth granted on consumption
func (c Collectible) Credit(ordinary, special int) int {
	if c.Special {
		return special
	}
	return ordinary
}
