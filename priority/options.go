package priority

import (
	"golang.org/x/exp/constraints"
)

// options defines the ordering configuration for a queue.
type options[K constraints.Ordered] struct {
	reverse bool
	greater func(a, b K) bool // consulted only when reverse is false
	less    func(a, b K) bool // consulted only when reverse is true
}

// Option is a function that configures the queue's ordering.
type Option[K constraints.Ordered] func(*options[K])

// WithReverse flips the queue to min-heap behavior: the element with the
// lowest key is popped first, ordered by the less predicate.
func WithReverse[K constraints.Ordered]() Option[K] {
	return func(o *options[K]) {
		o.reverse = true
	}
}

// WithGreaterThan replaces the natural > on keys. It is consulted only in the
// default (forward) direction; a reversed queue ignores it.
func WithGreaterThan[K constraints.Ordered](gt func(a, b K) bool) Option[K] {
	return func(o *options[K]) {
		o.greater = gt
	}
}

// WithLessThan replaces the natural < on keys. It is consulted only when the
// queue is reversed; a forward queue ignores it.
func WithLessThan[K constraints.Ordered](lt func(a, b K) bool) Option[K] {
	return func(o *options[K]) {
		o.less = lt
	}
}

// defaultOptions returns the default configuration: forward direction with
// the natural order on K.
func defaultOptions[K constraints.Ordered]() options[K] {
	return options[K]{
		greater: func(a, b K) bool { return a > b },
		less:    func(a, b K) bool { return a < b },
	}
}

// activePredicate selects the one predicate the direction consults. The
// other is discarded.
func (o options[K]) activePredicate() func(a, b K) bool {
	if o.reverse {
		return o.less
	}
	return o.greater
}
