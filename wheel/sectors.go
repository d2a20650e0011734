package wheel

import "math"

// Sector is one option's arc on the rendered wheel. Angles are radians,
// measured clockwise from the pointer, Start inclusive, End exclusive.
type Sector struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

// EffectiveWeight is the weight as the sampler sees it: negative, NaN and
// infinite values count for nothing.
func EffectiveWeight(w float64) float64 {
	if w > 0 && !math.IsInf(w, 1) {
		return w
	}
	return 0
}

// Sectors lays the options out around the circle proportionally to weight.
// The layout matches the sampling distribution: unusable weights get a
// zero-width arc, and when nothing is usable every option gets an equal
// share.
func Sectors(items []Option) []Sector {
	n := len(items)
	if n == 0 {
		return nil
	}

	raw := 0.0
	total := 0.0
	for _, it := range items {
		raw += it.Weight
		total += EffectiveWeight(it.Weight)
	}
	// Same degeneracy rule the sampler applies, so arcs always match the
	// draw probabilities.
	weighted := !(raw <= 0) && total > 0 && !math.IsInf(total, 1)

	sectors := make([]Sector, n)
	angle := 0.0
	for i, it := range items {
		frac := 1.0 / float64(n)
		if weighted {
			frac = EffectiveWeight(it.Weight) / total
		}
		width := frac * 2 * math.Pi
		sectors[i] = Sector{
			Name:   it.Name,
			Weight: it.Weight,
			Start:  angle,
			End:    angle + width,
		}
		angle += width
	}
	// Absorb float drift so the last arc closes the circle exactly.
	sectors[n-1].End = 2 * math.Pi
	return sectors
}

// TargetAngle is the wheel rotation that parks the pointer inside the
// winner's sector. r in [0,1) picks the landing spot within the arc, so
// repeated spins on the same winner do not all stop at the same pixel.
func TargetAngle(items []Option, winner int, r float64) float64 {
	sectors := Sectors(items)
	if winner < 0 || winner >= len(sectors) {
		return 0
	}
	s := sectors[winner]
	landing := s.Start + r*(s.End-s.Start)
	return math.Mod(2*math.Pi-landing, 2*math.Pi)
}
