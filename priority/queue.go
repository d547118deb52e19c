package priority

import (
	"golang.org/x/exp/constraints"

	"github.com/kiwiko123/collections/queue"
)

// Queue is a priority queue over elements of type T, ordered by keys of type
// K projected from each element. It is implemented as a binary max-heap in a
// dense, zero-indexed slice: index 0 always holds the strongest element under
// the configured ordering. Not safe for unsynchronized concurrent use.
type Queue[T any, K constraints.Ordered] struct {
	items    []T
	key      func(T) K
	reverse  bool
	stronger func(a, b K) bool // the one active predicate, fixed at construction
}

var _ queue.Interface[int] = (*Queue[int, int])(nil)

// New creates a priority queue whose elements are their own keys. With no
// options the result is a max-heap: the greatest element is popped first.
// The initial collection may be nil or empty; it is copied, then heapified
// bottom-up in O(n).
func New[T constraints.Ordered](items []T, opts ...Option[T]) *Queue[T, T] {
	return NewKeyed(func(v T) T { return v }, items, opts...)
}

// NewKeyed creates a priority queue ordered by key(element). With no options
// the result is a max-heap over the projected keys.
func NewKeyed[T any, K constraints.Ordered](key func(T) K, items []T, opts ...Option[K]) *Queue[T, K] {
	o := defaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	q := &Queue[T, K]{
		items:    append([]T(nil), items...),
		key:      key,
		reverse:  o.reverse,
		stronger: o.activePredicate(),
	}
	q.heapify()

	return q
}

// Len returns the number of elements in the queue.
func (q *Queue[T, K]) Len() int {
	return len(q.items)
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T, K]) IsEmpty() bool {
	return len(q.items) == 0
}

// Items returns the backing slice in heap order. It aliases internal storage
// and must not be modified.
func (q *Queue[T, K]) Items() []T {
	return q.items
}

// Top returns the highest-priority element without removing it.
// Returns queue.ErrEmptyQueue when the queue is empty.
func (q *Queue[T, K]) Top() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, queue.ErrEmptyQueue
	}
	return q.items[0], nil
}

// Push inserts item in O(log n) time.
func (q *Queue[T, K]) Push(item T) {
	q.items = append(q.items, item)
	q.siftUp(len(q.items) - 1)
}

// Pop removes and returns the highest-priority element in O(log n) time.
// Returns queue.ErrEmptyQueue when the queue is empty.
func (q *Queue[T, K]) Pop() (T, error) {
	var zero T
	if len(q.items) == 0 {
		return zero, queue.ErrEmptyQueue
	}

	result := q.items[0]
	last := len(q.items) - 1
	q.items[0] = q.items[last]
	q.items[last] = zero
	q.items = q.items[:last]
	if last > 0 {
		q.siftDown(0)
	}

	return result, nil
}

// View returns all elements fully ordered, highest priority first, without
// mutating the queue. It works on a detached clone, so repeated calls return
// equal slices and the live heap layout is untouched.
func (q *Queue[T, K]) View() []T {
	clone := q.Clone()
	ordered := make([]T, 0, len(clone.items))
	for len(clone.items) > 0 {
		v, _ := clone.Pop()
		ordered = append(ordered, v)
	}
	return ordered
}

// Clone returns a deep copy of the queue: a separate backing store with the
// same contents and the same ordering configuration.
func (q *Queue[T, K]) Clone() *Queue[T, K] {
	return &Queue[T, K]{
		items:    append([]T(nil), q.items...),
		key:      q.key,
		reverse:  q.reverse,
		stronger: q.stronger,
	}
}

// strongerOrEqual reports whether a must not be placed below b in the heap:
// a's key wins under the active predicate, or the keys are tied. Ties are
// broken arbitrarily by position.
func (q *Queue[T, K]) strongerOrEqual(a, b T) bool {
	ka, kb := q.key(a), q.key(b)
	return q.stronger(ka, kb) || ka == kb
}

func (q *Queue[T, K]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

// siftUp restores the heap invariant upward from index i after an insertion:
// while the element is strictly stronger than its parent, they trade places.
func (q *Queue[T, K]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.strongerOrEqual(q.items[parent], q.items[i]) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// siftDown restores the heap invariant downward from index i after a removal:
// the element descends as long as one of its children is strictly stronger,
// always trading with the strongest child.
func (q *Queue[T, K]) siftDown(i int) {
	n := len(q.items)
	for {
		strongest := i
		if left := 2*i + 1; left < n && !q.strongerOrEqual(q.items[strongest], q.items[left]) {
			strongest = left
		}
		if right := 2*i + 2; right < n && !q.strongerOrEqual(q.items[strongest], q.items[right]) {
			strongest = right
		}
		if strongest == i {
			return
		}
		q.swap(i, strongest)
		i = strongest
	}
}

// heapify establishes the invariant over an arbitrary backing slice by
// sifting down every internal node, deepest first.
func (q *Queue[T, K]) heapify() {
	for i := len(q.items)/2 - 1; i >= 0; i-- {
		q.siftDown(i)
	}
}
