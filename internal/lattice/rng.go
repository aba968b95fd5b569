package lattice

import "math/rand/v2"

// Rand is the randomness source consumed by the edge-swap engine.
// Implemented by EntropyRand (production) and SeededRand (tests).
//
// Keeping this an interface lets tests drive the swap engine with a
// deterministic sequence while production draws from OS entropy.
type Rand interface {
	// IntN returns a uniform value in [0, n). n must be > 0.
	IntN(n int) int
}

// EntropyRand is the production randomness source: a PCG generator seeded
// from OS entropy at construction.
//
// No seeding contract is exposed; the randomized algorithm is defined in
// distribution, not sequence.
type EntropyRand struct {
	r *rand.Rand
}

// NewEntropyRand creates a generator seeded from crypto-quality entropy.
func NewEntropyRand() *EntropyRand {
	return &EntropyRand{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// IntN returns a uniform value in [0, n).
func (e *EntropyRand) IntN(n int) int {
	return e.r.IntN(n)
}

// SeededRand is a deterministic PCG source for tests and the offline CLI.
// The same seed always yields the same swap sequence.
type SeededRand struct {
	r *rand.Rand
}

// NewSeededRand creates a deterministic generator from a seed.
func NewSeededRand(seed uint64) *SeededRand {
	return &SeededRand{r: rand.New(rand.NewPCG(seed, 0))}
}

// IntN returns a uniform value in [0, n).
func (s *SeededRand) IntN(n int) int {
	return s.r.IntN(n)
}
