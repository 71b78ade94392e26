package bench

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/citybike/algobench/algo"
)

func intGen(n int, rng *rand.Rand) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(n*10 + 1)
	}
	return out
}

var intCmp = algo.ByNumber(func(v int) float64 { return float64(v) }, algo.Ascending)

func TestNew_ConfigurationErrors(t *testing.T) {
	cases := []struct {
		name   string
		opts   []Option
		option string
	}{
		{"no sizes", []Option{WithSizes()}, "sizes"},
		{"zero size", []Option{WithSizes(100, 0)}, "sizes"},
		{"negative size", []Option{WithSizes(-5)}, "sizes"},
		{"size above bound", []Option{WithSizes(10), WithMaxInputSize(5)}, "sizes"},
		{"duplicate size", []Option{WithSizes(100, 100)}, "sizes"},
		{"zero trials", []Option{WithTrials(0)}, "trial_count"},
		{"negative trials", []Option{WithTrials(-1)}, "trial_count"},
		{"no algorithms", []Option{WithAlgorithms()}, "algorithms"},
		{"unknown algorithm", []Option{WithAlgorithms("bogosort")}, "algorithms"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(intGen, intCmp, tc.opts...)
			if err == nil {
				t.Fatal("expected configuration error")
			}
			var cfgErr *algo.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %T: %v", err, err)
			}
			if cfgErr.Option != tc.option {
				t.Errorf("expected option %q, got %q", tc.option, cfgErr.Option)
			}
		})
	}
}

func TestNew_NilGeneratorOrComparator(t *testing.T) {
	if _, err := New[int](nil, intCmp); err == nil {
		t.Error("expected error for nil generator")
	}
	if _, err := New(intGen, nil); err == nil {
		t.Error("expected error for nil comparator")
	}
}

func TestNew_DefaultsAreValid(t *testing.T) {
	h, err := New(intGen, intCmp)
	if err != nil {
		t.Fatalf("default configuration rejected: %v", err)
	}
	if got := h.TotalTrials(); got != 3*3*5 {
		t.Errorf("TotalTrials() = %d, want %d", got, 3*3*5)
	}
}

func TestTotalTrials_IncludesSearches(t *testing.T) {
	h, err := New(intGen, intCmp,
		WithSizes(10, 20),
		WithTrials(3),
		WithAlgorithms(algo.SortMerge),
		WithSearchBenchmarks(),
	)
	if err != nil {
		t.Fatal(err)
	}
	// 2 sizes × 1 sort × 3 trials + 2 sizes × 2 searches × 3 trials
	if got, want := h.TotalTrials(), 6+12; got != want {
		t.Errorf("TotalTrials() = %d, want %d", got, want)
	}
}
