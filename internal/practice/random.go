package practice

import (
	"math/rand/v2"
	"sync"
)

// RandomSource supplies the randomness used to shuffle candidates.
// Implementations must be safe for concurrent use.
type RandomSource interface {
	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// DefaultRandom returns the process-wide generator.
func DefaultRandom() RandomSource { return globalRandom{} }

// SeededRandom is a reproducible RandomSource for tests and replays.
type SeededRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRandom returns a generator whose sequence depends only on seed.
func NewSeededRandom(seed uint64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededRandom) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// shuffled returns a Fisher–Yates shuffled copy of items.
func shuffled[T any](r RandomSource, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
