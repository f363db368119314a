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

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// FillThreshold sets every buffer entry to 1 when a uniform draw minus bias is
// non-negative and to 0 otherwise. A bias of 1 therefore clears the buffer and
// a bias of 0 fills it.
func (r *RNG) FillThreshold(buf []uint8, bias float64) {
	for i := range buf {
		if r.Float64()-bias >= 0 {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}
