// Package random funnels every random decision of a generation run through one
// seedable source, so a seed reproduces a run exactly.
package random

import (
	"math/rand/v2"
	"time"
)

// Source is the only randomness a generation run uses.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// New returns a PCG-backed Source for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeed derives a seed from the clock for runs that did not ask for one.
func NewSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Choice picks one element uniformly. It panics on an empty slice.
func Choice[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Sample picks k distinct elements uniformly without replacement, keeping the
// order in which they were drawn. k is clamped to [0, len(items)].
func Sample[T any](src Source, items []T, k int) []T {
	k = max(0, min(k, len(items)))
	pool := make([]T, len(items))
	copy(pool, items)

	// Partial Fisher-Yates: the first k slots end up holding the sample.
	for i := range k {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}
