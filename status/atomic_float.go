package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 metric stored as its IEEE-754 bits
// The zero value reads as 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set replaces the value
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get returns the current value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add adds delta with a compare-and-swap retry and returns the sum
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		sum := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(sum)) {
			return sum
		}
	}
}
