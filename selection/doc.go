// Package selection implements k-th smallest selection over ordered element
// types: a sort-based brute force, randomized quickselect with average
// linear time, and deterministic median-of-medians selection with worst-case
// linear time. k is 1-indexed throughout: k=1 selects the minimum.
package selection
