// Package uniform provides the seedable uniform random stream shared by
// all distribution generators. A single Source per run keeps draw order
// well defined, which is what makes sampled sequences reproducible for a
// fixed seed.
package uniform

import "math/rand"

// Source produces independent uniform values in [0, 1). Its internal
// cursor advances on every draw, so the order of calls across generators
// matters for reproducibility.
type Source struct {
	rng *rand.Rand
}

// New creates a Source seeded with the given value.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns the next uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// FloatN returns the next n uniform values in [0, 1).
func (s *Source) FloatN(n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = s.rng.Float64()
	}
	return r
}
