// Package priority implements a generic priority queue backed by a binary
// heap, with ordering controlled the way sort-style APIs do it: an optional
// key function projecting each element to a comparable surrogate, a reverse
// flag selecting direction, and replaceable comparison predicates.
//
// Key features:
//   - Generic over the element type and the projected key type
//   - Max-heap by default; WithReverse gives min-heap behavior
//   - O(n) construction from an initial collection (bottom-up heapify)
//   - O(log n) Push and Pop, O(1) Top
//   - View returns a fully ordered snapshot without mutating the queue
//
// Basic usage:
//
//	// Max-heap over ints
//	pq := priority.New([]int{3, 1, 4, 1, 5})
//	top, _ := pq.Top() // 5
//
//	// Min-heap
//	pq = priority.New([]int{3, 1, 4, 1, 5}, priority.WithReverse[int]())
//	top, _ = pq.Top() // 1
//
//	// Order words by length, longest first
//	byLen := priority.NewKeyed(func(s string) int { return len(s) },
//		[]string{"go", "gopher", "heap"})
//	ordered := byLen.View() // [gopher heap go]
//
// Exactly one predicate is consulted per configuration: the greater-than
// predicate in the forward direction, the less-than predicate when reversed.
// The inactive one is discarded at construction. Keys tie under the natural
// == on the key type; tied elements are ordered arbitrarily, with no
// stability guarantee.
//
// Caller-supplied key functions and predicates are treated as opaque pure
// functions. The predicates must describe a transitive order; that
// precondition is documented, not validated. If a key function or predicate
// panics, the panic propagates unchanged and the queue must be considered
// inconsistent and discarded.
//
// The queue is not safe for concurrent mutation; callers that share one
// across goroutines must serialize access themselves.
package priority
