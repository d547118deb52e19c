package multiset

import (
	"errors"

	"golang.org/x/exp/maps"

	"github.com/kiwiko123/collections/container"
)

// ErrNotFound is returned by Remove when the item is not in the set.
var ErrNotFound = errors.New("multiset: item not in set")

// MultiSet is an unordered collection that admits duplicate elements,
// tracking a count per distinct element. The zero value is not usable;
// construct with New.
type MultiSet[T comparable] struct {
	counts map[T]int
	size   int
}

var _ container.Container[int] = (*MultiSet[int])(nil)

// New creates a multiset holding the given items.
func New[T comparable](items ...T) *MultiSet[T] {
	m := &MultiSet[T]{counts: make(map[T]int, len(items))}
	for _, item := range items {
		m.Add(item)
	}
	return m
}

// Add inserts one occurrence of item.
func (m *MultiSet[T]) Add(item T) {
	m.counts[item]++
	m.size++
}

// Discard removes one occurrence of item, if present. Absent items are
// ignored.
func (m *MultiSet[T]) Discard(item T) {
	count, ok := m.counts[item]
	if !ok {
		return
	}
	if count > 1 {
		m.counts[item]--
	} else {
		delete(m.counts, item)
	}
	m.size--
}

// Remove removes one occurrence of item, returning ErrNotFound if the item
// is absent.
func (m *MultiSet[T]) Remove(item T) error {
	if !m.Contains(item) {
		return ErrNotFound
	}
	m.Discard(item)
	return nil
}

// Contains reports whether at least one occurrence of item is present.
func (m *MultiSet[T]) Contains(item T) bool {
	_, ok := m.counts[item]
	return ok
}

// Count returns the number of occurrences of item.
func (m *MultiSet[T]) Count(item T) int {
	return m.counts[item]
}

// Len returns the total number of occurrences across all distinct elements.
func (m *MultiSet[T]) Len() int {
	return m.size
}

// IsEmpty reports whether the multiset holds no elements.
func (m *MultiSet[T]) IsEmpty() bool {
	return m.size == 0
}

// Distinct returns the distinct elements, in no particular order.
func (m *MultiSet[T]) Distinct() []T {
	return maps.Keys(m.counts)
}

// Items returns every occurrence of every element, each repeated by its
// count, in no particular order. The slice is freshly allocated.
func (m *MultiSet[T]) Items() []T {
	items := make([]T, 0, m.size)
	for item, count := range m.counts {
		for i := 0; i < count; i++ {
			items = append(items, item)
		}
	}
	return items
}

// Union returns a new multiset with, per element, the sum of the occurrence
// counts of both sets.
func (m *MultiSet[T]) Union(other *MultiSet[T]) *MultiSet[T] {
	result := New[T]()
	for item, count := range m.counts {
		result.counts[item] += count
		result.size += count
	}
	if other != nil {
		for item, count := range other.counts {
			result.counts[item] += count
			result.size += count
		}
	}
	return result
}

// Intersect returns a new multiset with, per element, the smaller of the two
// occurrence counts.
func (m *MultiSet[T]) Intersect(other *MultiSet[T]) *MultiSet[T] {
	result := New[T]()
	if other == nil {
		return result
	}
	for item, count := range m.counts {
		if o := other.counts[item]; o > 0 {
			n := min(count, o)
			result.counts[item] = n
			result.size += n
		}
	}
	return result
}

// Equal reports whether both multisets hold the same elements with the same
// counts. This is the canonical comparison for hashed containers: the
// sequence returned by Items is unordered, so the order-sensitive
// container.Equal is not meaningful here.
func (m *MultiSet[T]) Equal(other *MultiSet[T]) bool {
	if other == nil {
		return false
	}
	return maps.Equal(m.counts, other.counts)
}
