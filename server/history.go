package server

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"spinwheel/common/defaultmap"
)

type Defaultmap[K comparable, V any] = defaultmap.DefaultSafemap[K, V]

type wheelTally struct {
	counts   Defaultmap[string, *atomic.Int64]
	lastSpin atomic.Int64 // unix nanos of the latest recorded spin
}

// SpinHistory keeps a per-wheel running tally of past spin winners. Once
// more wheels than maxWheels carry history, the least recently spun ones
// are dropped in batches of pruneRatio.
type SpinHistory struct {
	tallies    Defaultmap[uuid.UUID, *wheelTally]
	maxWheels  int
	pruneRatio float32
}

func NewSpinHistory(maxWheels int, pruneRatio float32) *SpinHistory {
	return &SpinHistory{
		tallies: defaultmap.New[uuid.UUID](func() *wheelTally {
			return &wheelTally{
				counts: defaultmap.New[string](func() *atomic.Int64 {
					return &atomic.Int64{}
				}),
			}
		}),
		maxWheels:  maxWheels,
		pruneRatio: pruneRatio,
	}
}

func (h *SpinHistory) Record(wheelID uuid.UUID, winner string) {
	t := h.tallies.Get(wheelID)
	t.counts.Get(winner).Add(1)
	t.lastSpin.Store(time.Now().UnixNano())

	if h.tallies.Count() > h.maxWheels {
		h.pruneIdleTallies()
	}
}

// Snapshot returns a plain copy of the wheel's win counts.
func (h *SpinHistory) Snapshot(wheelID uuid.UUID) map[string]int64 {
	out := make(map[string]int64)
	h.tallies.Get(wheelID).counts.Foreach(func(name string, c *atomic.Int64) bool {
		out[name] = c.Load()
		return true
	})
	return out
}

func (h *SpinHistory) Forget(wheelID uuid.UUID) {
	h.tallies.Delete(wheelID)
}

func (h *SpinHistory) pruneIdleTallies() {
	type tallyEntry struct {
		id       uuid.UUID
		lastSpin int64
	}
	entries := make([]tallyEntry, 0, h.tallies.Count())
	h.tallies.Foreach(func(id uuid.UUID, t *wheelTally) bool {
		entries = append(entries, tallyEntry{id, t.lastSpin.Load()})
		return true
	})

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].lastSpin < entries[j].lastSpin
	})

	removeCount := int(float32(len(entries)) * h.pruneRatio)
	if removeCount < 1 {
		removeCount = 1
	}
	for i := 0; i < removeCount; i++ {
		h.tallies.Delete(entries[i].id)
	}
}
