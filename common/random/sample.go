package random

import (
	"math"
	"math/rand"
)

// A weight takes part in the draw only when it is positive and finite.
// NaN and infinities never pass the comparison.
func usable(w float64) bool {
	return w > 0 && !math.IsInf(w, 1)
}

// WeightedIndex draws one index with probability weights[i]/total, where
// total sums the usable weights only. A degenerate list (raw sum at or
// below zero, or no usable weight at all) falls back to a uniform draw
// over every index. Returns -1 for an empty slice.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	raw := 0.0
	total := 0.0 // usable mass only
	for _, w := range weights {
		raw += w
		if usable(w) {
			total += w
		}
	}
	// raw <= 0 covers all-zero and negative-dominant lists; the usable
	// mass catches sums with nothing left to draw from.
	if raw <= 0 || !(total > 0) || math.IsInf(total, 1) {
		return rng.Intn(len(weights))
	}

	r := rng.Float64() * total
	for i, w := range weights {
		if !usable(w) {
			continue
		}
		r -= w
		if r < 0 {
			return i
		}
	}
	// Rounding can leave r a hair above zero after the final subtraction.
	// The remainder belongs to the last index.
	return len(weights) - 1
}
