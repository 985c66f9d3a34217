// Package synth generates the fabricated operational tables: addresses,
// shipping records, order statuses, and stock movements. Every draw flows
// through a single seeded Rand in a fixed stage order, so a run is fully
// reproducible from its seed.
package synth

import (
	"math"
	"math/rand"
)

// Rand wraps the pipeline's only random source.
type Rand struct {
	src *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

// IntBetween draws a uniform integer in [lo, hi], inclusive on both ends.
func (r *Rand) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.src.Intn(hi-lo+1)
}

// Float64Between draws a uniform float in [lo, hi).
func (r *Rand) Float64Between(lo, hi float64) float64 {
	return lo + r.src.Float64()*(hi-lo)
}

func (r *Rand) float64() float64 {
	return r.src.Float64()
}

// Sample draws round(fraction*len(ids)) ids without replacement. The result
// keeps the shuffled draw order, matching sampled-then-iterated semantics.
func (r *Rand) Sample(ids []int, fraction float64) []int {
	n := len(ids)
	if n == 0 || fraction <= 0 {
		return nil
	}
	k := int(math.Round(fraction * float64(n)))
	if k > n {
		k = n
	}
	if k == 0 {
		return nil
	}

	shuffled := make([]int, n)
	copy(shuffled, ids)
	r.src.Shuffle(n, func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:k]
}
