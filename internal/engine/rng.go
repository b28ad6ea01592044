package engine

import "math/rand/v2"

// NewSource returns the single deterministic source for one generation pass.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
