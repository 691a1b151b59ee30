package queue

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sys/cpu"
)

var _ BlockingQueue[int] = (*TwoLockQueue[int])(nil)

// TwoLockQueue is a bounded blocking MPMC FIFO backed by a linked list.
//
// Producers and consumers run under separate locks. Instead of one shared
// "free slots" counter, each side owns a monotonic counter: enqueued is written
// only under enqMu and dequeued only under deqMu. Each side loads the other's
// counter atomically to evaluate full/empty, so the two locks are taken together
// only at the full and empty boundaries, and then only to broadcast.
type TwoLockQueue[T any] struct {
	capacity uint64
	nilable  bool
	log      *zap.Logger

	_ cpu.CacheLinePad

	enqMu    sync.Mutex
	notFull  *sync.Cond // L is enqMu
	tail     *node[T]
	enqueued atomic.Uint64

	_ cpu.CacheLinePad

	deqMu    sync.Mutex
	notEmpty *sync.Cond // L is deqMu
	head     *node[T]   // sentinel; head.next is the front
	dequeued atomic.Uint64

	_ cpu.CacheLinePad
}

// NewTwoLock creates a queue holding at most capacity items.
func NewTwoLock[T any](capacity int, opts ...Option) (*TwoLockQueue[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}

	sentinel := &node[T]{}
	q := &TwoLockQueue[T]{
		capacity: uint64(capacity),
		nilable:  nilable[T](),
		head:     sentinel,
		tail:     sentinel,
	}
	q.notFull = sync.NewCond(&q.enqMu)
	q.notEmpty = sync.NewCond(&q.deqMu)
	q.log = buildOptions("twolock", capacity, opts)

	return q, nil
}

// full must be called with enqMu held.
func (q *TwoLockQueue[T]) full() bool {
	return q.enqueued.Load()-q.dequeued.Load() >= q.capacity
}

// empty must be called with deqMu held.
func (q *TwoLockQueue[T]) empty() bool {
	return q.enqueued.Load() == q.dequeued.Load()
}

// Enqueue appends item at the tail, blocking while the queue is full.
func (q *TwoLockQueue[T]) Enqueue(item T) error {
	return q.EnqueueContext(context.Background(), item)
}

// EnqueueContext appends item at the tail, blocking while the queue is full or
// until ctx is done. A cancelled call leaves the queue untouched.
func (q *TwoLockQueue[T]) EnqueueContext(ctx context.Context, item T) error {
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
	before := q.enqueued.Add(1) - 1
	// Consumers can only be parked if the queue was empty before this append.
	// A consumer that raced ahead and already took the new item makes
	// dequeued exceed before; waking then is spurious but harmless.
	wakeConsumers := q.dequeued.Load() >= before
	q.enqMu.Unlock()

	if wakeConsumers {
		q.log.Debug("signalling not empty")
		broadcast(&q.deqMu, q.notEmpty)
	}
	return nil
}

// Dequeue removes and returns the head item, blocking while the queue is empty.
func (q *TwoLockQueue[T]) Dequeue() T {
	v, _ := q.DequeueContext(context.Background())
	return v
}

// DequeueContext removes and returns the head item, blocking while the queue is
// empty or until ctx is done. A cancelled call leaves the queue untouched.
func (q *TwoLockQueue[T]) DequeueContext(ctx context.Context) (T, error) {
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
	before := q.dequeued.Add(1) - 1
	// Producers can only be parked if the queue was full before this unlink.
	wakeProducers := q.enqueued.Load()-before >= q.capacity
	q.deqMu.Unlock()

	if wakeProducers {
		q.log.Debug("signalling not full")
		broadcast(&q.enqMu, q.notFull)
	}
	return v, nil
}

// Capacity returns the fixed capacity. It takes no lock.
func (q *TwoLockQueue[T]) Capacity() int { return int(q.capacity) }

// Len returns the approximate number of outstanding items, in [0, Capacity()].
func (q *TwoLockQueue[T]) Len() int {
	s := q.Stats()
	n := s.Outstanding()
	if n > q.capacity {
		n = q.capacity
	}
	return int(n)
}

// Stats returns a snapshot of the operation counters. The dequeue counter is
// read first so the snapshot never shows more dequeues than enqueues.
func (q *TwoLockQueue[T]) Stats() Stats {
	d := q.dequeued.Load()
	return Stats{Enqueued: q.enqueued.Load(), Dequeued: d}
}
