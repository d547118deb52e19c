package sorting

import (
	"golang.org/x/exp/constraints"

	"github.com/kiwiko123/collections/priority"
)

// Insertion sorts arr in place in O(n^2) time. Stable: equal values are
// never swapped past each other. Close to O(n) on nearly sorted input.
func Insertion[T constraints.Ordered](arr []T) {
	for threshold := 1; threshold < len(arr); threshold++ {
		for i := threshold; i > 0 && arr[i] < arr[i-1]; i-- {
			arr[i], arr[i-1] = arr[i-1], arr[i]
		}
	}
}

// Selection sorts arr in place in O(n^2) time. Scans backwards from the end,
// moving the running maximum of the unsorted prefix into position. Unstable.
func Selection[T constraints.Ordered](arr []T) {
	for i := len(arr) - 1; i > 0; i-- {
		maxIndex := 0
		for j := 1; j < i; j++ {
			if arr[j] > arr[maxIndex] {
				maxIndex = j
			}
		}
		if arr[i] < arr[maxIndex] {
			arr[i], arr[maxIndex] = arr[maxIndex], arr[i]
		}
	}
}

// Merge sorts arr in place in O(n log n) time using recursive merge sort.
// Stable. Allocates a scratch copy per merge.
func Merge[T constraints.Ordered](arr []T) {
	mid := len(arr) / 2
	if mid == 0 {
		return
	}
	Merge(arr[:mid])
	Merge(arr[mid:])
	mergeHalves(arr, mid)
}

// mergeHalves merges the two sorted halves arr[:mid] and arr[mid:] back into
// arr.
func mergeHalves[T constraints.Ordered](arr []T, mid int) {
	scratch := append([]T(nil), arr...)

	left, right, i := 0, mid, 0
	for left < mid && right < len(scratch) {
		if scratch[left] <= scratch[right] {
			arr[i] = scratch[left]
			left++
		} else {
			arr[i] = scratch[right]
			right++
		}
		i++
	}
	for left < mid {
		arr[i] = scratch[left]
		left++
		i++
	}
	for right < len(scratch) {
		arr[i] = scratch[right]
		right++
		i++
	}
}

// Quick sorts arr in place in O(n log n) average time. Unstable; worst case
// O(n^2) on adversarial input.
func Quick[T constraints.Ordered](arr []T) {
	if len(arr) < 2 {
		return
	}
	p := partition(arr)
	Quick(arr[:p])
	Quick(arr[p+1:])
}

// partition places the last element as the pivot into its final position and
// returns that position.
func partition[T constraints.Ordered](arr []T) int {
	pivot := arr[len(arr)-1]
	i := 0
	for j := 0; j < len(arr)-1; j++ {
		if arr[j] < pivot {
			arr[i], arr[j] = arr[j], arr[i]
			i++
		}
	}
	arr[i], arr[len(arr)-1] = arr[len(arr)-1], arr[i]
	return i
}

// Heap sorts arr in place in O(n log n) time by heapifying a reversed
// priority queue and popping back in ascending order. Unstable.
func Heap[T constraints.Ordered](arr []T) {
	pq := priority.New(arr, priority.WithReverse[T]())
	for i := range arr {
		arr[i], _ = pq.Pop()
	}
}

// MergeSorted merges already-sorted (ascending) slices into one sorted
// slice in O(n log k) time, where k is the number of slices, by keeping one
// cursor per slice on a reversed priority queue keyed by the cursor's
// current value.
func MergeSorted[T constraints.Ordered](seqs ...[]T) []T {
	total := 0
	cursors := make([]cursor[T], 0, len(seqs))
	for _, seq := range seqs {
		total += len(seq)
		if len(seq) > 0 {
			cursors = append(cursors, cursor[T]{seq: seq})
		}
	}

	pq := priority.NewKeyed(cursor[T].head, cursors, priority.WithReverse[T]())

	merged := make([]T, 0, total)
	for !pq.IsEmpty() {
		c, _ := pq.Pop()
		merged = append(merged, c.head())
		if c.pos++; c.pos < len(c.seq) {
			pq.Push(c)
		}
	}
	return merged
}

// cursor walks one sorted sequence during a k-way merge.
type cursor[T any] struct {
	seq []T
	pos int
}

func (c cursor[T]) head() T { return c.seq[c.pos] }
