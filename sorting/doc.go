// Package sorting implements the classic comparison sorts (insertion,
// selection, merge, quick, heap) generically over ordered element types,
// plus the address-based counting and bucket sorts for non-negative
// integers, and a k-way merge of pre-sorted slices. The comparison sorts
// operate in place and produce ascending order; reverse by sorting keys
// through the priority package when descending order is needed.
package sorting
