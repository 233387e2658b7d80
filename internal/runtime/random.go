package runtime

import "math/rand/v2"

// RandomSource yields uniform indexes. It is the only source of
// nondeterminism in a scramble, so tests can replace it with a fixed sequence.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n). n is always positive.
	IntN(n int) int
}

// NewRandomSource returns a source seeded from the runtime's entropy.
// Every call yields an independent stream.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
