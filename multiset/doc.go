// Package multiset implements a hash-backed bag: an unordered collection
// that admits duplicates by counting occurrences per distinct element.
// Add, Discard, Remove, Contains, and Count run in O(1) expected time;
// Union and Intersect combine two bags by summing and taking the minimum of
// per-element counts respectively.
package multiset
