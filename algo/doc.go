// Package algo provides generic, comparison-based sorting and searching
// algorithms for benchmark comparison against the standard library.
//
// Every algorithm is a pure function over a sequence and a Comparator: it
// holds no state between calls, never modifies its input, and returns a
// freshly allocated result. That makes the algorithms trivially safe to run
// back to back under a timing harness and to compare element-wise against
// each other.
//
// # Comparators
//
// A Comparator[T] reports the order of two records, returning a negative
// value, zero, or a positive value. Comparators for numeric and string keys
// are built with ByNumber and ByString:
//
//	byDuration := algo.ByNumber(func(t Trip) float64 { return t.DurationMinutes }, algo.Ascending)
//	sorted := algo.MergeSort(trips, byDuration)
//
// # Sorting
//
// Four sorts are registered, selected by tag:
//
//   - merge: stable divide-and-conquer sort, O(n log n) worst case
//   - quicksort: in-place partition sort, median-of-three pivot
//   - insertion: stable O(n²) sort, O(n) on already-sorted input
//   - baseline: the standard library sort, used as the reference
//
// # Searching
//
// LinearSearch scans any sequence for the first record that compares equal
// to the target. BinarySearch requires the sequence to already be sorted
// under the same comparator and returns the leftmost match; searching an
// unsorted sequence returns a wrong index, never panics or loops.
package algo
