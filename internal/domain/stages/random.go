// Package stages provides the text transformations that make up the scramble pipeline.
package stages

import (
	"math/rand/v2"
	"sync"
)

// Random is the source of every random decision a stage makes.
type Random interface {
	// Intn returns a value in [0, n). Bounds below 1 are treated as 1.
	Intn(n int) int
	// Bool returns true or false with equal probability.
	Bool() bool
	// Percent reports whether a draw in [0, 100) falls below p.
	Percent(p int) bool
}

type lockedRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandom returns a Random that is safe for concurrent use. A zero seed picks
// a random one.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &lockedRandom{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *lockedRandom) Intn(n int) int {
	n = max(1, n)

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rnd.IntN(n)
}

func (r *lockedRandom) Bool() bool {
	return r.Intn(2) == 1
}

func (r *lockedRandom) Percent(p int) bool {
	return r.Intn(100) < p
}
