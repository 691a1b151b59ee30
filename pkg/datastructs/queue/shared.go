package queue

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ BlockingQueue[int] = (*SharedCounterQueue[int])(nil)

// SharedCounterQueue is the classic two-lock bounded queue in which both sides
// update one shared atomic count of free slots. It is kept as the baseline
// TwoLockQueue is measured against; every operation touches the same counter.
type SharedCounterQueue[T any] struct {
	capacity int64
	nilable  bool
	log      *zap.Logger

	free atomic.Int64 // empty slots

	enqMu    sync.Mutex
	notFull  *sync.Cond
	tail     *node[T]
	enqueued atomic.Uint64

	deqMu    sync.Mutex
	notEmpty *sync.Cond
	head     *node[T]
	dequeued atomic.Uint64
}

// NewSharedCounter creates a shared-counter queue holding at most capacity items.
func NewSharedCounter[T any](capacity int, opts ...Option) (*SharedCounterQueue[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}

	sentinel := &node[T]{}
	q := &SharedCounterQueue[T]{
		capacity: int64(capacity),
		nilable:  nilable[T](),
		head:     sentinel,
		tail:     sentinel,
	}
	q.free.Store(int64(capacity))
	q.notFull = sync.NewCond(&q.enqMu)
	q.notEmpty = sync.NewCond(&q.deqMu)
	q.log = buildOptions("shared", capacity, opts)

	return q, nil
}

func (q *SharedCounterQueue[T]) full() bool  { return q.free.Load() == 0 }
func (q *SharedCounterQueue[T]) empty() bool { return q.free.Load() == q.capacity }

// Enqueue appends item at the tail, blocking while the queue is full.
func (q *SharedCounterQueue[T]) Enqueue(item T) error {
	return q.EnqueueContext(context.Background(), item)
}

// EnqueueContext appends item, blocking while full or until ctx is done.
func (q *SharedCounterQueue[T]) EnqueueContext(ctx context.Context, item T) error {
	if q.nilable && isNil(item) {
		return ErrInvalidArgument
	}

	q.enqMu.Lock()
	if q.full() {
		q.log.Debug("enqueue waiting for free slot")
	}
	if err := await(ctx, q.notFull, q.full); err != nil {
		q.enqMu.Unlock()
		return err
	}

	q.tail = link(q.tail, item)
	q.enqueued.Add(1)
	wakeConsumers := q.free.Add(-1) == q.capacity-1
	q.enqMu.Unlock()

	if wakeConsumers {
		q.log.Debug("signalling not empty")
		broadcast(&q.deqMu, q.notEmpty)
	}
	return nil
}

// Dequeue removes and returns the head item, blocking while the queue is empty.
func (q *SharedCounterQueue[T]) Dequeue() T {
	v, _ := q.DequeueContext(context.Background())
	return v
}

// DequeueContext removes the head item, blocking while empty or until ctx is done.
func (q *SharedCounterQueue[T]) DequeueContext(ctx context.Context) (T, error) {
	q.deqMu.Lock()
	if q.empty() {
		q.log.Debug("dequeue waiting for item")
	}
	if err := await(ctx, q.notEmpty, q.empty); err != nil {
		q.deqMu.Unlock()
		var zero T
		return zero, err
	}

	v, head := unlink(q.head)
	q.head = head
	q.dequeued.Add(1)
	wakeProducers := q.free.Add(1) == 1
	q.deqMu.Unlock()

	if wakeProducers {
		q.log.Debug("signalling not full")
		broadcast(&q.enqMu, q.notFull)
	}
	return v, nil
}

// Capacity returns the fixed capacity.
func (q *SharedCounterQueue[T]) Capacity() int { return int(q.capacity) }

// Len returns the approximate number of outstanding items.
func (q *SharedCounterQueue[T]) Len() int { return int(q.capacity - q.free.Load()) }

// Stats returns a snapshot of the operation counters.
func (q *SharedCounterQueue[T]) Stats() Stats {
	d := q.dequeued.Load()
	return Stats{Enqueued: q.enqueued.Load(), Dequeued: d}
}
