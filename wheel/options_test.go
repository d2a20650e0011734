package wheel

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeWeight(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"3", 3},
		{" 2.5 ", 2.5},
		{"", DefaultWeight},
		{"abc", DefaultWeight},
		{"0", DefaultWeight},
		{"-7", DefaultWeight},
		{"NaN", DefaultWeight},
		{"+Inf", DefaultWeight},
	}
	for _, c := range cases {
		if got := NormalizeWeight(c.raw); got != c.want {
			t.Errorf("NormalizeWeight(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	items := []Option{{"a", 2}, {"b", -1}, {"c", math.NaN()}, {"d", 0}}
	got := Normalize(items)

	want := []Option{{"a", 2}, {"b", DefaultWeight}, {"c", DefaultWeight}, {"d", DefaultWeight}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
	// Source stays untouched.
	if items[1].Weight != -1 {
		t.Fatalf("Normalize mutated its input: %+v", items)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]Option{{"only", 1}}); !errors.Is(err, ErrTooFewOptions) {
		t.Fatalf("got %v, want ErrTooFewOptions", err)
	}
	if err := Validate([]Option{{"a", 1}, {"  ", 1}}); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("got %v, want ErrEmptyName", err)
	}
	if err := Validate([]Option{{"a", 1}, {"b", 1}}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestTotalWeight(t *testing.T) {
	if got := TotalWeight([]Option{{"a", 1}, {"b", 2.5}}); got != 3.5 {
		t.Fatalf("got %v, want 3.5", got)
	}
	if got := TotalWeight(nil); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.yaml")
	content := `options:
  - name: Pizza
    weight: 3
  - name: Sushi
  - name: Salad
    weight: -2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	items, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []Option{{"Pizza", 3}, {"Sushi", DefaultWeight}, {"Salad", DefaultWeight}}
	if len(items) != len(want) {
		t.Fatalf("got %v", items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("entry %d: got %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestLoadFileTooFew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.yaml")
	if err := os.WriteFile(path, []byte("options:\n  - name: solo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); !errors.Is(err, ErrTooFewOptions) {
		t.Fatalf("got %v, want ErrTooFewOptions", err)
	}
}
