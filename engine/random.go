package engine

import (
	"math/rand/v2"
	"time"
)

// RandomSource supplies collectible placement and special rolls
// *rand.Rand satisfies it; tests substitute scripted sources
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

// NewRandomSource returns a PCG source; seed 0 seeds from the clock
func NewRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
