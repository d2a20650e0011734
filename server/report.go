package server

import (
	"math"
	"sort"

	"spinwheel/common/linq"
	"spinwheel/wheel"
)

// ReportRow is one line of the simulation report: what a name actually won
// next to what its weight share predicts.
type ReportRow struct {
	Name        string  `json:"name"`
	Count       int     `json:"count"`
	Percent     float64 `json:"percent"`
	Theoretical float64 `json:"theoretical"`
}

// BuildReport renders a tally for display. Theoretical shares come from
// the sector layout, which applies the same weight policy the sampler
// does, so the report always matches what the wheel would actually draw.
func BuildReport(items []wheel.Option, tally wheel.Tally, trials int) []ReportRow {
	// Duplicate names pool their arcs, mirroring the name-keyed tally.
	arcs := make(map[string]float64, len(tally))
	for _, s := range wheel.Sectors(items) {
		arcs[s.Name] += s.End - s.Start
	}

	rows := linq.ToList(tally, func(name string, count int) ReportRow {
		theo := arcs[name] / (2 * math.Pi) * 100
		percent := 0.0
		if trials > 0 {
			percent = float64(count) / float64(trials) * 100
		}
		return ReportRow{
			Name:        name,
			Count:       count,
			Percent:     percent,
			Theoretical: theo,
		}
	})
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
