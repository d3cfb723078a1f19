// Package random provides the randomness abstraction used for reply selection
// and game draws.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source draws uniform integers.
//
// Implementations must be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n). n must be > 0.
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.IntN(n) }

// Global returns a Source backed by the process-wide generator.
func Global() Source { return globalSource{} }

// Seeded is a reproducible Source.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a Source whose sequence is fully determined by seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
