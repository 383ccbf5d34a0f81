// Package fifo is a bounded first-in, first-out queue used by the S3-FIFO queues.
// The front holds the most recently landed element; the back holds the oldest.
package fifo

import (
	"iter"

	"github.com/gammazero/deque"
)

// A Queue is a FIFO with a fixed capacity.
// The capacity is advisory: callers check [Queue.Full]
// and make room before pushing.
// The zero value is a queue with capacity 0.
type Queue[T any] struct {
	elements deque.Deque[T]
	capacity int
}

// New creates an empty queue that holds up to capacity elements.
func New[T any](capacity int) *Queue[T] {
	return &Queue[T]{capacity: max(capacity, 0)}
}

// Cap returns the capacity the queue was created with.
func (q *Queue[T]) Cap() int { return q.capacity }

// Len returns the number of elements currently queued.
func (q *Queue[T]) Len() int { return q.elements.Len() }

// Full reports whether the queue has reached its capacity.
func (q *Queue[T]) Full() bool { return q.elements.Len() >= q.capacity }

// PushFront adds element as the newest element of the queue.
func (q *Queue[T]) PushFront(element T) { q.elements.PushFront(element) }

// PopBack removes and returns the oldest element.
// q must not be empty.
func (q *Queue[T]) PopBack() T { return q.elements.PopBack() }

// At returns the element at index i, counted from the front.
func (q *Queue[T]) At(i int) T { return q.elements.At(i) }

// Index returns the front-relative index of the first element
// satisfying match, or -1 if none does.
func (q *Queue[T]) Index(match func(T) bool) int {
	return q.elements.Index(match)
}

// Remove removes and returns the element at index i, counted from the front.
// The relative order of the remaining elements is preserved.
func (q *Queue[T]) Remove(i int) T { return q.elements.Remove(i) }

// Clear removes all elements.
func (q *Queue[T]) Clear() { q.elements.Clear() }

// All returns an iterator over the queued elements,
// from oldest (back) to newest (front).
// The behavior of All is undefined if the queue is modified during iteration.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := q.elements.Len() - 1; i >= 0; i-- {
			if !yield(q.elements.At(i)) {
				return
			}
		}
	}
}
