package wheel

import (
	"math/rand"

	"spinwheel/common/random"
)

// SampleIndex draws the position of one winning option. Each option wins
// with probability proportional to its weight; when no option carries a
// positive finite weight the draw is uniform over all of them. The second
// return is false only for an empty list.
//
// The input is never mutated.
func SampleIndex(rng *rand.Rand, items []Option) (int, bool) {
	if len(items) == 0 {
		return -1, false
	}
	weights := make([]float64, len(items))
	for i, it := range items {
		weights[i] = it.Weight
	}
	return random.WeightedIndex(rng, weights), true
}

// Sample draws one winning option, see SampleIndex.
func Sample(rng *rand.Rand, items []Option) (Option, bool) {
	idx, ok := SampleIndex(rng, items)
	if !ok {
		return Option{}, false
	}
	return items[idx], true
}
