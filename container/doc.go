// Package container defines the capability shared by every sequence-backed
// collection in this module: exposing the backing sequence through a single
// accessor. Length, emptiness, and equality are derived from that accessor
// alone, so any structure gains them by implementing one method.
//
// Basic usage:
//
//	type stack[T any] struct{ items []T }
//
//	func (s *stack[T]) Items() []T { return s.items }
//
//	var s stack[int]
//	container.Length[int](&s)  // 0
//	container.IsEmpty[int](&s) // true
//
// Equality is structural over the backing sequences. Comparing containers of
// different element types is rejected at compile time rather than reported as
// an error at runtime.
package container
