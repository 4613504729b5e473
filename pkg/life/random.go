package life

import "math/rand/v2"

// NewSource returns a deterministic PCG source for the given seed. A zero
// seed picks a random one.
func NewSource(seed int64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(uint64(seed), 0)
}

// fillRandom sets every cell to Dead or Live with equal probability.
func fillRandom(r *rand.Rand, cells []Cell) {
	for i := range cells {
		cells[i] = Cell(r.IntN(2))
	}
}
