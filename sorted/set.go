package sorted

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"

	"github.com/kiwiko123/collections/container"
)

// btreeDegree matches the branching factor used elsewhere in this module's
// history for small in-memory trees.
const btreeDegree = 2

// Set is an ordered set backed by a B-tree. Elements are kept unique and
// iterated in ascending order, so the container capabilities (including the
// order-sensitive equality) are meaningful for it. Not safe for
// unsynchronized concurrent mutation.
type Set[T any] struct {
	tree *btree.BTreeG[T]
}

var _ container.Container[int] = (*Set[int])(nil)

// New creates a set over naturally ordered elements.
func New[T constraints.Ordered](items ...T) *Set[T] {
	return NewFunc(func(a, b T) bool { return a < b }, items...)
}

// NewFunc creates a set ordered by the given less function, for element
// types without a natural order. Elements comparing neither less nor greater
// are considered equal and deduplicated.
func NewFunc[T any](less func(a, b T) bool, items ...T) *Set[T] {
	s := &Set[T]{tree: btree.NewG(btreeDegree, less)}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item, replacing an equal element if one is present.
func (s *Set[T]) Add(item T) {
	s.tree.ReplaceOrInsert(item)
}

// Remove deletes item if present and reports whether it was.
func (s *Set[T]) Remove(item T) bool {
	_, removed := s.tree.Delete(item)
	return removed
}

// Contains reports whether an element equal to item is present.
func (s *Set[T]) Contains(item T) bool {
	return s.tree.Has(item)
}

// Min returns the smallest element, or false if the set is empty.
func (s *Set[T]) Min() (T, bool) {
	return s.tree.Min()
}

// Max returns the largest element, or false if the set is empty.
func (s *Set[T]) Max() (T, bool) {
	return s.tree.Max()
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return s.tree.Len()
}

// IsEmpty reports whether the set holds no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.tree.Len() == 0
}

// Items returns the elements in ascending order. The slice is freshly
// allocated.
func (s *Set[T]) Items() []T {
	items := make([]T, 0, s.tree.Len())
	s.tree.Ascend(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Ascend calls fn for each element in ascending order until fn returns
// false.
func (s *Set[T]) Ascend(fn func(item T) bool) {
	s.tree.Ascend(fn)
}
