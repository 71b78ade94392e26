package algo

// NotFound is returned by the search functions when no record compares
// equal to the target.
const NotFound = -1

// SearchFunc is the shared contract of both searches: find an index i with
// cmp(seq[i], target) == 0, or NotFound.
type SearchFunc[T any] func(seq []T, target T, cmp Comparator[T]) int

// Search algorithm tags, a closed set like the sort tags.
const (
	SearchLinear = "linear"
	SearchBinary = "binary"
)

// SearchAlgorithms lists every registered search tag in its canonical order.
func SearchAlgorithms() []string {
	return []string{SearchLinear, SearchBinary}
}

// SearchByName resolves a tag to its search function. Unknown tags are a
// ConfigurationError.
func SearchByName[T any](name string) (SearchFunc[T], error) {
	switch name {
	case SearchLinear:
		return LinearSearch[T], nil
	case SearchBinary:
		return BinarySearch[T], nil
	default:
		return nil, NewConfigurationError("algorithms", "unknown search algorithm %q", name)
	}
}

// LinearSearch scans seq in order and returns the first index whose record
// compares equal to target under cmp, or NotFound. O(n); the sequence does
// not need to be sorted.
func LinearSearch[T any](seq []T, target T, cmp Comparator[T]) int {
	for i, item := range seq {
		if cmp(item, target) == 0 {
			return i
		}
	}
	return NotFound
}

// BinarySearch returns the leftmost index in seq whose record compares
// equal to target under cmp, or NotFound. O(log n).
//
// Precondition: seq is sorted under the same cmp. This is not re-checked at
// runtime; on an unsorted sequence the result is simply wrong (possibly
// NotFound for a present key), but the search always terminates and never
// indexes out of range.
func BinarySearch[T any](seq []T, target T, cmp Comparator[T]) int {
	lo, hi := 0, len(seq)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(seq[mid], target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(seq) && cmp(seq[lo], target) == 0 {
		return lo
	}
	return NotFound
}
