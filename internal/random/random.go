package random

import (
	"math/rand/v2"
	"time"
)

// Source draws uniformly distributed integers.
type Source interface {
	// UniformInt returns a value in [min, max). It returns min when max <= min.
	// Callers treat any other value as an error; nothing is clamped.
	UniformInt(min, max int) int
}

// RandSource is a Source backed by math/rand/v2. It is not safe for concurrent use.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource returns a PCG-backed source. A zero seed seeds from wall-clock time.
func NewRandSource(seed uint64) *RandSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandSource) UniformInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.IntN(max-min)
}
