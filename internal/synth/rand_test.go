package synth

import "testing"

func TestRandDeterministicSequences(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)

	for i := 0; i < 100; i++ {
		if x, y := a.IntBetween(1, 500), b.IntBetween(1, 500); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
}

func TestIntBetweenBounds(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 1000; i++ {
		v := r.IntBetween(5, 50)
		if v < 5 || v > 50 {
			t.Fatalf("draw %d out of [5,50]", v)
		}
	}
	if v := r.IntBetween(7, 7); v != 7 {
		t.Fatalf("degenerate range should return lo, got %d", v)
	}
}

func TestFloat64BetweenBounds(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 1000; i++ {
		v := r.Float64Between(5, 50)
		if v < 5 || v >= 50 {
			t.Fatalf("draw %v out of [5,50)", v)
		}
	}
}

func TestSampleSizeRounding(t *testing.T) {
	ids := make([]int, 100)
	for i := range ids {
		ids[i] = i + 1
	}

	if got := len(NewRand(42).Sample(ids, 0.7)); got != 70 {
		t.Fatalf("expected 70 sampled ids, got %d", got)
	}
	if got := len(NewRand(42).Sample(ids[:3], 0.5)); got != 2 {
		t.Fatalf("expected round(1.5)=2 sampled ids, got %d", got)
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	sampled := NewRand(7).Sample(ids, 1.0)

	if len(sampled) != len(ids) {
		t.Fatalf("full fraction should return all ids, got %d", len(sampled))
	}
	seen := make(map[int]bool)
	for _, id := range sampled {
		if seen[id] {
			t.Fatalf("id %d sampled twice", id)
		}
		seen[id] = true
	}
}

func TestSampleEdgeCases(t *testing.T) {
	r := NewRand(1)
	if got := r.Sample(nil, 0.7); got != nil {
		t.Fatalf("empty input should sample nothing, got %v", got)
	}
	if got := r.Sample([]int{1, 2, 3}, 0); got != nil {
		t.Fatalf("zero fraction should sample nothing, got %v", got)
	}
}
