package Queues

import "github.com/pkg/errors"

// ErrEmpty is returned by Pop on an empty queue.
var ErrEmpty = errors.New("queue is empty")

type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}
