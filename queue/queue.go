package queue

import (
	"errors"

	"github.com/kiwiko123/collections/container"
)

// ErrEmptyQueue is returned by Top and Pop when the queue holds no elements.
var ErrEmptyQueue = errors.New("queue: queue is empty")

// Interface is the contract a queue-like structure fulfills: the container
// capabilities plus ordered removal. It carries no implementation.
type Interface[T any] interface {
	container.Container[T]

	// Top returns the next element Pop would remove, without removing it.
	// Returns ErrEmptyQueue when the queue is empty.
	Top() (T, error)

	// Push inserts item into the queue.
	Push(item T)

	// Pop removes and returns the element Top would have returned.
	// Returns ErrEmptyQueue when the queue is empty.
	Pop() (T, error)
}
