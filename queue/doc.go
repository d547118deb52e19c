// Package queue declares the contract shared by queue-like collections:
// Top, Push, and Pop on top of the container capabilities. Implementations
// decide the removal order; priority.Queue is the one provided by this
// module. An implementation must guarantee that Pop removes exactly one
// element and that its result is consistent with the ordering rules the
// structure was built with.
package queue
