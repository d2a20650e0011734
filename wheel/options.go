package wheel

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultWeight replaces a weight the caller left out or got wrong.
const DefaultWeight = 1.0

var (
	ErrTooFewOptions = errors.New("wheel: need at least two options")
	ErrEmptyName     = errors.New("wheel: option name is empty")
)

// Option is one entry on the wheel. Name is a display label and does not
// have to be unique; duplicate names share a single tally entry when
// trials are aggregated.
type Option struct {
	Name   string  `json:"name" yaml:"name"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// TotalWeight is the raw sum over all entries, including whatever junk
// values the caller has not normalized yet.
func TotalWeight(items []Option) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Weight
	}
	return total
}

// NormalizeWeight parses a raw weight field. Missing, unparseable and
// non-positive input all collapse to DefaultWeight.
func NormalizeWeight(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultWeight
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return DefaultWeight
	}
	return normalizeFloat(w)
}

func normalizeFloat(w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return DefaultWeight
	}
	return w
}

// Normalize returns a copy of items with every weight forced through the
// boundary policy. The input slice is left untouched.
func Normalize(items []Option) []Option {
	out := make([]Option, len(items))
	for i, it := range items {
		out[i] = Option{Name: it.Name, Weight: normalizeFloat(it.Weight)}
	}
	return out
}

func Validate(items []Option) error {
	if len(items) < 2 {
		return ErrTooFewOptions
	}
	for i, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("option %d: %w", i, ErrEmptyName)
		}
	}
	return nil
}

type wheelFile struct {
	Options []fileOption `yaml:"options"`
}

type fileOption struct {
	Name   string   `yaml:"name"`
	Weight *float64 `yaml:"weight"`
}

// LoadFile reads a wheel definition from a YAML file:
//
//	options:
//	  - name: Yes
//	    weight: 3
//	  - name: No
//
// Weights are normalized on load, a missing weight becomes DefaultWeight.
func LoadFile(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f wheelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("wheel: parse %s: %w", path, err)
	}

	items := make([]Option, len(f.Options))
	for i, o := range f.Options {
		w := DefaultWeight
		if o.Weight != nil {
			w = normalizeFloat(*o.Weight)
		}
		items[i] = Option{Name: o.Name, Weight: w}
	}
	if err := Validate(items); err != nil {
		return nil, err
	}
	return items, nil
}
