// Package queue implements a generic FIFO queue on top of a growing ring buffer.
//
// Queue is the forward-only sequence used by compact.RemoveAll:
// it has no positional overwrite, items are removed while iterating.
package queue

import (
	"github.com/ava12/llxconf/compact"
)

const minSize = 3

// Queue is not safe for concurrent use. Zero value is not usable, use New.
type Queue[T any] struct {
	items      []T
	size       int
	head, tail int
	zero       T
}

// New creates a queue containing items.
func New[T any](items ...T) *Queue[T] {
	result := &Queue[T]{}
	l := len(items)
	result.tail = l
	result.size = computeSize(l)
	result.items = make([]T, result.size+1)
	copy(result.items, items)
	return result
}

// IsEmpty is true for nil queue.
func (q *Queue[T]) IsEmpty() bool {
	return q == nil || q.head == q.tail
}

// Len returns the number of queued items, 0 for nil queue.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return (q.tail + q.size + 1 - q.head) & q.size
}

// Items returns queued items from head to tail.
// Returned slice may share storage with the queue.
func (q *Queue[T]) Items() []T {
	if q.tail >= q.head {
		return q.items[q.head:q.tail]
	}

	l := q.Len()
	result := make([]T, l)
	copy(result, q.items[q.head:q.size+1])
	copy(result[q.size-q.head+1:], q.items[:q.tail])
	return result
}

func (q *Queue[T]) Append(item T) *Queue[T] {
	q.items[q.tail] = item
	q.tail = (q.tail + 1) & q.size
	if q.tail == q.head {
		q.grow()
	}
	return q
}

// First removes and returns head item, false flag means the queue is empty.
func (q *Queue[T]) First() (T, bool) {
	if q.head == q.tail {
		return q.zero, false
	}

	result := q.items[q.head]
	q.items[q.head] = q.zero
	q.head = (q.head + 1) & q.size

	if q.head == 0 && q.size > minSize && (q.tail<<2) <= q.size {
		q.size = computeSize(q.tail << 1)
		items := make([]T, q.size+1)
		copy(items, q.items[:q.tail])
		q.items = items
	}

	return result, true
}

func computeSize(length int) (size int) {
	if length <= minSize {
		size = minSize
	} else {
		length |= length >> 1
		length |= length >> 2
		length |= length >> 4
		length |= length >> 8
		size = length | length>>16
	}
	return
}

func (q *Queue[T]) grow() {
	items := make([]T, (q.size+1)<<1)
	copy(items, q.items[q.head:])
	if q.head > 0 {
		copy(items[q.size+1-q.head:], q.items[0:q.head])
	}
	q.head = 0
	q.tail = q.size + 1
	q.size = q.size + q.tail
	q.items = items
}

// Iterator returns an iterator that rotates the queue: each visited item is taken
// from the head and put back to the tail unless removed.
// The queue must not be used until Next returns false.
// Iterator of nil queue yields nothing.
func (q *Queue[T]) Iterator() compact.Iterator[T] {
	if q == nil {
		return &iterator[T]{}
	}
	return &iterator[T]{q: q, remaining: q.Len()}
}

type iterator[T any] struct {
	q         *Queue[T]
	remaining int
	current   T
	held      bool
}

func (it *iterator[T]) Next() bool {
	if it.held {
		it.q.Append(it.current)
		it.held = false
	}
	if it.remaining == 0 {
		var zero T
		it.current = zero
		return false
	}

	it.current, _ = it.q.First()
	it.remaining--
	it.held = true
	return true
}

func (it *iterator[T]) Value() T {
	return it.current
}

func (it *iterator[T]) Remove() {
	it.held = false
}
