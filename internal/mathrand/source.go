// Package mathrand provides the random source shared by problem generation,
// skill selection and phrasing. Engines take a Source instead of reaching for
// the global generator so that tests can pin exact sequences.
package mathrand

import (
	"math/rand/v2"
	"time"
)

// Source is the subset of *rand.Rand the engines depend on.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// New returns a deterministic PCG-backed source for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewTimeSeeded returns a source seeded from the wall clock.
func NewTimeSeeded() *rand.Rand {
	return New(uint64(time.Now().UnixNano()))
}

// Pick returns a uniformly chosen element of items. items must be non-empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Between returns a uniform int in the inclusive range [min, max].
// If max < min the bounds are swapped.
func Between(src Source, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return src.IntN(max-min+1) + min
}
