package selection

import (
	"errors"
	"math/rand"
	"sort"

	"golang.org/x/exp/constraints"
)

// ErrOutOfRange is returned when k is below 1 or beyond the number of
// elements.
var ErrOutOfRange = errors.New("selection: k out of range")

// medianGroupSize is the group width for the median-of-medians pivot.
// Groups of 5 are the smallest size that guarantees linear time.
const medianGroupSize = 5

// BruteForce returns the k-th smallest value (k is 1-indexed) by sorting a
// copy of items. O(n log n) time.
func BruteForce[T constraints.Ordered](items []T, k int) (T, error) {
	var zero T
	if k < 1 || k > len(items) {
		return zero, ErrOutOfRange
	}

	sorted := append([]T(nil), items...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted[k-1], nil
}

// Quick returns the k-th smallest value (k is 1-indexed) in average-case
// linear time by partitioning around a randomly chosen median. Worst case is
// O(n^2), but each recursion eliminates a quarter of the elements at least
// half the time, giving a geometric O(n) expectation.
func Quick[T constraints.Ordered](items []T, k int) (T, error) {
	var zero T
	if k < 1 || k > len(items) {
		return zero, ErrOutOfRange
	}
	return selectAround(quickPivot[T], items, k), nil
}

// Deterministic returns the k-th smallest value (k is 1-indexed) in
// worst-case linear time using the median-of-medians pivot: divide into
// groups of 5, take each group's median by brute force, and recurse on the
// medians to pick the partitioning value. The constant factor is high;
// Quick is usually faster in practice.
func Deterministic[T constraints.Ordered](items []T, k int) (T, error) {
	var zero T
	if k < 1 || k > len(items) {
		return zero, ErrOutOfRange
	}
	return selectAround(deterministicPivot[T], items, k), nil
}

// pivotFunc chooses the value to partition around.
type pivotFunc[T constraints.Ordered] func(items []T) T

func quickPivot[T constraints.Ordered](items []T) T {
	return items[rand.Intn(len(items))]
}

func deterministicPivot[T constraints.Ordered](items []T) T {
	if len(items) <= medianGroupSize {
		v, _ := BruteForce(items, (len(items)+1)/2)
		return v
	}

	medians := make([]T, 0, (len(items)+medianGroupSize-1)/medianGroupSize)
	for start := 0; start < len(items); start += medianGroupSize {
		group := items[start:min(start+medianGroupSize, len(items))]
		median, _ := BruteForce(group, (len(group)+1)/2)
		medians = append(medians, median)
	}
	return selectAround(deterministicPivot[T], medians, (len(medians)+1)/2)
}

// selectAround partitions items into values less than, equal to, and greater
// than the chosen pivot, then recurses into the side holding the k-th value.
// k must already be validated against len(items).
func selectAround[T constraints.Ordered](pivot pivotFunc[T], items []T, k int) T {
	median := pivot(items)

	var less, greater []T
	equal := 0
	for _, item := range items {
		switch {
		case item < median:
			less = append(less, item)
		case item > median:
			greater = append(greater, item)
		default:
			equal++
		}
	}

	switch {
	case k <= len(less):
		return selectAround(pivot, less, k)
	case k <= len(less)+equal:
		return median
	default:
		return selectAround(pivot, greater, k-len(less)-equal)
	}
}
