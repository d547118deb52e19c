// Package sorted implements an ordered set on top of a B-tree. Lookups,
// insertions, and deletions run in O(log n); iteration is in ascending
// order, which makes it a deterministic backing-sequence provider for the
// container capabilities.
package sorted
