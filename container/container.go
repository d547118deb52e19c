package container

import (
	"slices"
)

// Container is the capability any sequence-backed structure satisfies by
// exposing its backing sequence through a single accessor. Everything else
// in this package is derived from it.
type Container[T any] interface {
	// Items returns the backing sequence. Implementations document whether
	// the returned slice aliases internal storage; callers must not modify
	// it either way.
	Items() []T
}

// Length returns the number of elements in the container.
func Length[T any](c Container[T]) int {
	if c == nil {
		return 0
	}
	return len(c.Items())
}

// IsEmpty reports whether the container holds no elements.
func IsEmpty[T any](c Container[T]) bool {
	return Length(c) == 0
}

// Equal reports whether two containers hold equal backing sequences,
// element for element. A nil container only equals another nil container.
func Equal[T comparable](a, b Container[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return slices.Equal(a.Items(), b.Items())
}

// EqualFunc is like Equal but compares elements with eq, for element types
// that are not comparable.
func EqualFunc[T any](a, b Container[T], eq func(T, T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return slices.EqualFunc(a.Items(), b.Items(), eq)
}
