package random

import (
	"math"
	"math/rand"
	"testing"
)

func TestWeightedIndexEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := WeightedIndex(rng, nil); got != -1 {
		t.Fatalf("expected -1 for empty weights, got %d", got)
	}
}

func TestWeightedIndexHistogram(t *testing.T) {
	weights := []float64{0.1, 0.1, 0.5, 0.3}
	rng := rand.New(rand.NewSource(42))

	hist := map[int]int{}
	for range 10000 {
		idx := WeightedIndex(rng, weights)
		hist[idx]++
	}

	for i, w := range weights {
		got := float64(hist[i]) / 10000
		if math.Abs(got-w) > 0.02 {
			t.Errorf("index %d: frequency %.3f, want ~%.3f", i, got, w)
		}
	}
}

func TestWeightedIndexDegenerateUniform(t *testing.T) {
	cases := [][]float64{
		{0, 0, 0},
		{-1, -2, -3},
		{math.NaN(), math.NaN(), math.NaN()},
		// Negative-dominant: raw sum below zero is degenerate even though
		// one weight on its own is usable.
		{5, -10, -10},
	}
	for _, weights := range cases {
		rng := rand.New(rand.NewSource(7))
		hist := map[int]int{}
		for range 3000 {
			hist[WeightedIndex(rng, weights)]++
		}
		for i := range weights {
			if hist[i] < 800 || hist[i] > 1200 {
				t.Errorf("weights %v: index %d drawn %d times, want ~1000", weights, i, hist[i])
			}
		}
	}
}

func TestWeightedIndexSkipsUnusable(t *testing.T) {
	// One usable weight among garbage: it must win every draw.
	weights := []float64{-5, math.NaN(), 2, 0}
	rng := rand.New(rand.NewSource(3))
	for range 1000 {
		if idx := WeightedIndex(rng, weights); idx != 2 {
			t.Fatalf("expected index 2, got %d", idx)
		}
	}
}
