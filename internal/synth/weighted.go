package synth

import "fmt"

// Weighted draws from a fixed categorical distribution using an explicit
// cumulative-weight table and a single uniform draw, independent of any
// library's own sampling routine.
type Weighted[T any] struct {
	items []T
	cum   []float64
	total float64
}

func NewWeighted[T any](items []T, weights []float64) (*Weighted[T], error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no items")
	}
	if len(items) != len(weights) {
		return nil, fmt.Errorf("%d items but %d weights", len(items), len(weights))
	}

	w := &Weighted[T]{
		items: items,
		cum:   make([]float64, len(weights)),
	}
	for i, weight := range weights {
		if weight < 0 {
			return nil, fmt.Errorf("negative weight %v at index %d", weight, i)
		}
		w.total += weight
		w.cum[i] = w.total
	}
	if w.total <= 0 {
		return nil, fmt.Errorf("weights sum to zero")
	}
	return w, nil
}

func mustWeighted[T any](items []T, weights []float64) *Weighted[T] {
	w, err := NewWeighted(items, weights)
	if err != nil {
		panic(err)
	}
	return w
}

// Draw picks one item. The last bucket absorbs any floating-point slack so a
// draw always resolves.
func (w *Weighted[T]) Draw(r *Rand) T {
	u := r.float64() * w.total
	for i, c := range w.cum {
		if u < c {
			return w.items[i]
		}
	}
	return w.items[len(w.items)-1]
}
