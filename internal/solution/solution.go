package solution

import (
	"fmt"

	"github.com/vovakirdan/pixel-dash/internal/core"
)

// Capacity is the ring buffer size in ticks. It is a power of two so slot
// indices wrap with a mask, and it bounds how far ahead (or back) the ghost's
// trajectory can be queried.
const Capacity = 1 << 10

// Solution is a fixed-capacity circular window of generated input states.
// Slot offset t from the current tick lives at (firstIndex + t) mod Capacity.
// Precomputing the whole window trades memory for O(1) lookups at arbitrary
// offsets, which the ghost's forward re-simulation relies on.
type Solution struct {
	firstIndex int
	generator  generator
	keys       [Capacity]core.Keys
}

// New seeds the generator and eagerly fills the entire window.
func New() *Solution {
	s := &Solution{generator: newGenerator()}
	for i := range s.keys {
		s.keys[i] = s.generator.next()
	}
	return s
}

// Keys returns the input state at relative tick offset t. Offsets outside
// [0, Capacity) are a caller bug and panic rather than clamp.
func (s *Solution) Keys(t int) core.Keys {
	if t < 0 || t >= Capacity {
		panic(fmt.Sprintf("solution: offset %d out of range [0, %d)", t, Capacity))
	}
	return s.keys[(s.firstIndex+t)&(Capacity-1)]
}

// Update generates the next input state into the oldest slot and advances the
// window by one tick. Call exactly once per application tick, after all reads
// of the current tick's data; the overwritten slot becomes the input
// Capacity-1 ticks in the future.
func (s *Solution) Update() {
	s.keys[s.firstIndex] = s.generator.next()
	s.firstIndex = (s.firstIndex + 1) & (Capacity - 1)
}
