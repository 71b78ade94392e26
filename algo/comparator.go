package algo

import "strings"

// Comparator defines a total order over records of type T. It returns a
// negative value if a orders before b, zero if the two records have equal
// keys, and a positive value if a orders after b.
//
// Comparators must be pure and transitive. Algorithms call them many times
// per run, so they should not allocate.
type Comparator[T any] func(a, b T) int

// Direction selects ascending or descending key order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns the configuration spelling of the direction.
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection converts the configuration spelling ("asc" or "desc") into
// a Direction. Anything else is a ConfigurationError.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, NewConfigurationError("direction", "must be asc or desc, got %q", s)
	}
}

// ByNumber builds a comparator ordering records by a numeric key.
func ByNumber[T any](key func(T) float64, dir Direction) Comparator[T] {
	return func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return ordered(-1, dir)
		case ka > kb:
			return ordered(1, dir)
		default:
			return 0
		}
	}
}

// ByString builds a comparator ordering records by a string key using
// lexicographic byte order.
func ByString[T any](key func(T) string, dir Direction) Comparator[T] {
	return func(a, b T) int {
		return ordered(strings.Compare(key(a), key(b)), dir)
	}
}

func ordered(c int, dir Direction) int {
	if dir == Descending {
		return -c
	}
	return c
}

// Counter wraps a comparator and counts how many times it is invoked. The
// harness uses it for the comparison-count column. Not safe for concurrent
// use; trials run sequentially.
type Counter[T any] struct {
	cmp Comparator[T]
	n   int64
}

// NewCounter returns a Counter around cmp with a zeroed count.
func NewCounter[T any](cmp Comparator[T]) *Counter[T] {
	return &Counter[T]{cmp: cmp}
}

// Compare forwards to the wrapped comparator and increments the count.
func (c *Counter[T]) Compare(a, b T) int {
	c.n++
	return c.cmp(a, b)
}

// Count returns the number of comparisons since the last Reset.
func (c *Counter[T]) Count() int64 { return c.n }

// Reset zeroes the count.
func (c *Counter[T]) Reset() { c.n = 0 }
