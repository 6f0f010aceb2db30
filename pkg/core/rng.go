package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FromRand wraps an existing generator. A nil r falls back to seed 0.
func FromRand(r *rand.Rand) *RNG {
	if r == nil {
		return NewRNG(0)
	}
	return &RNG{r: r}
}

// Chance reports true with probability p. The draw counts as a hit when it
// lands in the top p of [0, 1), so p=0.15 matches a "draw > 0.85" test.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() >= 1-p
}

// Int64 returns a non-negative pseudo-random int64, used to derive sub-seeds.
func (r *RNG) Int64() int64 {
	return r.r.Int64()
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
