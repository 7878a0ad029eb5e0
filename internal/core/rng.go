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

// Cell returns Alive or Dead with equal probability.
func (r *RNG) Cell() Cell {
	return Cell(r.r.IntN(2))
}

// FillBinary fills the buffer with Dead/Alive values using the RNG.
func FillBinary(r *rand.Rand, buf []Cell) {
	for i := range buf {
		buf[i] = Cell(r.IntN(2))
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
