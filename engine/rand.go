package engine

import "math/rand/v2"

// Rand is the random source used by the schedulers
// *rand.Rand from math/rand/v2 satisfies it; tests inject scripted sources
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed source for seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
