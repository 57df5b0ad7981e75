// SPDX-License-Identifier: MIT

package compute

import "golang.org/x/exp/rand"

// Seed reseeds the shared generator used by Random, RandomRange and
// RandomFloat.
func Seed(seed uint64) {
	rand.Seed(seed)
}

// Random returns a value in [0, max). A non-positive max yields 0.
func Random(max int) int {
	if max <= 0 {
		return 0
	}

	return rand.Intn(max)
}

// RandomRange returns a value in [min, max). Bounds may be negative and
// are swapped when given in reverse; equal bounds return min.
func RandomRange(min, max int) int {
	lo, hi := orderBounds(min, max)
	if lo == hi {
		return lo
	}

	return lo + rand.Intn(hi-lo)
}

// RandomFloat returns a value in [min, max).
func RandomFloat(min, max float32) float32 {
	return min + rand.Float32()*(max-min)
}

// Rand is a deterministic generator for callers that need a reproducible
// stream (tests, procedural content). It is not safe for concurrent use.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a generator seeded with seed.
func NewRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Seed resets the stream.
func (g *Rand) Seed(seed uint64) { g.r.Seed(seed) }

// Intn returns a value in [0, max). A non-positive max yields 0.
func (g *Rand) Intn(max int) int {
	if max <= 0 {
		return 0
	}

	return g.r.Intn(max)
}

// Range returns a value in [min, max); see RandomRange.
func (g *Rand) Range(min, max int) int {
	lo, hi := orderBounds(min, max)
	if lo == hi {
		return lo
	}

	return lo + g.r.Intn(hi-lo)
}

// Float returns a value in [min, max).
func (g *Rand) Float(min, max float32) float32 {
	return min + g.r.Float32()*(max-min)
}

func orderBounds(a, b int) (int, int) {
	if b < a {
		return b, a
	}

	return a, b
}
