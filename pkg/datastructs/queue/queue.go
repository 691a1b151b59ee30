package queue

import "context"

// BlockingQueue is a bounded FIFO whose operations block instead of failing
// when the queue is full or empty.
type BlockingQueue[T any] interface {
	// Enqueue appends item, blocking while the queue is full.
	// Returns ErrInvalidArgument for a nil item.
	Enqueue(item T) error

	// Dequeue removes and returns the head item, blocking while the queue is empty.
	Dequeue() T

	// EnqueueContext is Enqueue that gives up with ctx.Err() once ctx is done.
	EnqueueContext(ctx context.Context, item T) error

	// DequeueContext is Dequeue that gives up with ctx.Err() once ctx is done.
	DequeueContext(ctx context.Context) (T, error)

	// Capacity returns the fixed upper bound on outstanding items.
	Capacity() int

	// Len returns the approximate number of outstanding items.
	Len() int
}

// Stats is a snapshot of the monotonic operation counters of a queue.
type Stats struct {
	Enqueued uint64 // items ever linked into the queue
	Dequeued uint64 // items ever unlinked from the queue
}

// Outstanding returns the number of resident items the snapshot describes.
func (s Stats) Outstanding() uint64 {
	if s.Dequeued > s.Enqueued {
		return 0
	}
	return s.Enqueued - s.Dequeued
}
