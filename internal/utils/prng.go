// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so a whole run (planet layout, bunker
// placement) can be replayed from one seed.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates the service with the given seed. A zero seed uses
// the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed actually in use.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random float in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
