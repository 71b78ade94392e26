package algo

import (
	"errors"
	"testing"
)

func TestParseDirection_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want Direction
	}{
		{"asc", Ascending},
		{"ascending", Ascending},
		{"DESC", Descending},
		{"desc", Descending},
	}
	for _, c := range cases {
		got, err := ParseDirection(c.in)
		if err != nil {
			t.Fatalf("ParseDirection(%q): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDirection_Invalid(t *testing.T) {
	_, err := ParseDirection("sideways")
	if err == nil {
		t.Fatal("expected error for invalid direction")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %T: %v", err, err)
	}
	if cfgErr.Option != "direction" {
		t.Errorf("expected option %q, got %q", "direction", cfgErr.Option)
	}
}

func TestByNumber_Ordering(t *testing.T) {
	cmp := ByNumber(func(v float64) float64 { return v }, Ascending)

	if got := cmp(1, 2); got >= 0 {
		t.Errorf("cmp(1, 2) = %d, want negative", got)
	}
	if got := cmp(2, 1); got <= 0 {
		t.Errorf("cmp(2, 1) = %d, want positive", got)
	}
	if got := cmp(3, 3); got != 0 {
		t.Errorf("cmp(3, 3) = %d, want 0", got)
	}
}

func TestByNumber_Descending(t *testing.T) {
	cmp := ByNumber(func(v float64) float64 { return v }, Descending)

	if got := cmp(1, 2); got <= 0 {
		t.Errorf("descending cmp(1, 2) = %d, want positive", got)
	}
	if got := cmp(2, 1); got >= 0 {
		t.Errorf("descending cmp(2, 1) = %d, want negative", got)
	}
	if got := cmp(3, 3); got != 0 {
		t.Errorf("descending cmp(3, 3) = %d, want 0", got)
	}
}

func TestByString_Ordering(t *testing.T) {
	cmp := ByString(func(v string) string { return v }, Ascending)

	if got := cmp("apple", "banana"); got >= 0 {
		t.Errorf("cmp(apple, banana) = %d, want negative", got)
	}
	if got := cmp("banana", "apple"); got <= 0 {
		t.Errorf("cmp(banana, apple) = %d, want positive", got)
	}
	if got := cmp("apple", "apple"); got != 0 {
		t.Errorf("cmp(apple, apple) = %d, want 0", got)
	}
}

func TestByNumber_Transitive(t *testing.T) {
	cmp := ByNumber(func(v float64) float64 { return v }, Ascending)
	a, b, c := 1.0, 2.0, 3.0
	if !(cmp(a, b) < 0 && cmp(b, c) < 0 && cmp(a, c) < 0) {
		t.Error("comparator is not transitive over 1 < 2 < 3")
	}
}

func TestCounter_CountsAndResets(t *testing.T) {
	counter := NewCounter(ByNumber(func(v float64) float64 { return v }, Ascending))

	_ = counter.Compare(1, 2)
	_ = counter.Compare(2, 3)
	_ = counter.Compare(3, 1)

	if got := counter.Count(); got != 3 {
		t.Fatalf("expected 3 comparisons, got %d", got)
	}

	counter.Reset()
	if got := counter.Count(); got != 0 {
		t.Fatalf("expected 0 after reset, got %d", got)
	}
}

func TestCounter_ForwardsResult(t *testing.T) {
	counter := NewCounter(ByNumber(func(v float64) float64 { return v }, Ascending))
	if got := counter.Compare(5, 2); got <= 0 {
		t.Errorf("Compare(5, 2) = %d, want positive", got)
	}
}
