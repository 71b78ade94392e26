package algo

import "slices"

// SortFunc is the shared contract of every sort in the package: it returns
// the records of seq in comparator order as a new slice and leaves seq
// itself untouched, even when the implementation mutates a working copy
// internally.
type SortFunc[T any] func(seq []T, cmp Comparator[T]) []T

// Sort algorithm tags. The set is closed: the harness and the CLI select
// algorithms by tag and reject anything else at configuration time.
const (
	SortMerge     = "merge"
	SortQuick     = "quicksort"
	SortInsertion = "insertion"
	SortBaseline  = "baseline"
)

// SortAlgorithms lists every registered sort tag in its canonical order.
func SortAlgorithms() []string {
	return []string{SortMerge, SortQuick, SortInsertion, SortBaseline}
}

// SortByName resolves a tag to its sort function. Unknown tags are a
// ConfigurationError.
func SortByName[T any](name string) (SortFunc[T], error) {
	switch name {
	case SortMerge:
		return MergeSort[T], nil
	case SortQuick:
		return QuickSort[T], nil
	case SortInsertion:
		return InsertionSort[T], nil
	case SortBaseline:
		return BaselineSort[T], nil
	default:
		return nil, NewConfigurationError("algorithms", "unknown sort algorithm %q", name)
	}
}

// MergeSort sorts seq with a top-down merge sort: split at the midpoint,
// sort the halves, merge under cmp. It is stable (records with equal keys
// keep their input order), O(n log n) in the worst case, and uses O(n)
// auxiliary space for the merge.
func MergeSort[T any](seq []T, cmp Comparator[T]) []T {
	if len(seq) <= 1 {
		return slices.Clone(seq)
	}
	mid := len(seq) / 2
	left := MergeSort(seq[:mid], cmp)
	right := MergeSort(seq[mid:], cmp)
	return merge(left, right, cmp)
}

// merge interleaves two sorted runs. Ties take from left so equal-keyed
// records keep their original relative order.
func merge[T any](left, right []T, cmp Comparator[T]) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}

// QuickSort sorts a copy of seq with an in-place three-way partition sort.
//
// Pivot policy: the median of the first, middle and last elements. That
// keeps already-sorted and reverse-sorted inputs on the O(n log n) path,
// and the three-way partition keeps runs of equal keys from degrading the
// split. Each step recurses into the smaller partition and loops on the
// larger one, so stack depth stays O(log n). QuickSort is not stable.
func QuickSort[T any](seq []T, cmp Comparator[T]) []T {
	out := slices.Clone(seq)
	quicksort(out, cmp)
	return out
}

func quicksort[T any](s []T, cmp Comparator[T]) {
	for len(s) > 1 {
		lt, gt := partition(s, cmp)
		// s[lt:gt] equals the pivot and is already in final position.
		if lt < len(s)-gt {
			quicksort(s[:lt], cmp)
			s = s[gt:]
		} else {
			quicksort(s[gt:], cmp)
			s = s[:lt]
		}
	}
}

// partition rearranges s around a median-of-three pivot and returns the
// bounds of the equal-to-pivot run.
func partition[T any](s []T, cmp Comparator[T]) (lt, gt int) {
	medianOfThreeToFront(s, cmp)
	pivot := s[0]

	lt, gt = 0, len(s)
	i := 1
	for i < gt {
		switch c := cmp(s[i], pivot); {
		case c < 0:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case c > 0:
			gt--
			s[i], s[gt] = s[gt], s[i]
		default:
			i++
		}
	}
	return lt, gt
}

// medianOfThreeToFront orders the first, middle and last elements and moves
// their median to s[0] to serve as the pivot.
func medianOfThreeToFront[T any](s []T, cmp Comparator[T]) {
	mid, hi := len(s)/2, len(s)-1
	if cmp(s[mid], s[0]) < 0 {
		s[mid], s[0] = s[0], s[mid]
	}
	if cmp(s[hi], s[mid]) < 0 {
		s[hi], s[mid] = s[mid], s[hi]
		if cmp(s[mid], s[0]) < 0 {
			s[mid], s[0] = s[0], s[mid]
		}
	}
	s[0], s[mid] = s[mid], s[0]
}

// InsertionSort sorts a copy of seq by insertion. Quadratic in the worst
// case but O(n) on already-sorted input, and stable. Kept in the registry
// as the small-input contender the others are measured against.
func InsertionSort[T any](seq []T, cmp Comparator[T]) []T {
	out := slices.Clone(seq)
	for i := 1; i < len(out); i++ {
		cur := out[i]
		j := i - 1
		for j >= 0 && cmp(out[j], cur) > 0 {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = cur
	}
	return out
}

// BaselineSort sorts a copy of seq with the standard library's sort. It is
// the correctness and performance reference, never the subject under test.
func BaselineSort[T any](seq []T, cmp Comparator[T]) []T {
	out := slices.Clone(seq)
	slices.SortFunc(out, cmp)
	return out
}
