package wheel

import "math/rand"

// Tally counts, per option name, how many trials that name won.
type Tally = map[string]int

// RunTrials spins the wheel trials times and aggregates winners by name.
// Every distinct name starts at zero, so names that never win still show
// up in the result. Two options sharing a name share one counter.
//
// Fewer than two options is a usage error: ErrTooFewOptions, no trials run.
func RunTrials(rng *rand.Rand, items []Option, trials int) (Tally, error) {
	return RunTrialsWithHook(rng, items, trials, nil)
}

// RunTrialsWithHook is RunTrials with a callback fired after every trial,
// used to drive progress reporting on long simulations.
func RunTrialsWithHook(rng *rand.Rand, items []Option, trials int, hook func(trial int)) (Tally, error) {
	if len(items) < 2 {
		return nil, ErrTooFewOptions
	}

	tally := make(Tally, len(items))
	for _, it := range items {
		tally[it.Name] = 0
	}

	for i := range trials {
		winner, ok := Sample(rng, items)
		if ok {
			tally[winner.Name]++
		}
		if hook != nil {
			hook(i)
		}
	}
	return tally, nil
}
