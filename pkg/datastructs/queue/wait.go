package queue

import (
	"context"
	"sync"
)

// await waits on c while blocked reports true. c.L must be held on entry and is
// held on return. blocked is re-evaluated after every wake-up, so spurious and
// racing wake-ups only cause another wait.
//
// When ctx can be cancelled, a context.AfterFunc broadcasts c under c.L so the
// waiter observes cancellation; await then returns ctx.Err() with c.L held.
// That broadcast wakes every waiter on c, not only the cancelled one, so
// callers retrying with very short timeouts trade throughput for extra
// wake-ups; the others re-check blocked and wait again.
func await(ctx context.Context, c *sync.Cond, blocked func() bool) error {
	if ctx.Done() == nil {
		for blocked() {
			c.Wait()
		}
		return nil
	}

	for blocked() {
		if err := ctx.Err(); err != nil {
			return err
		}

		stop := context.AfterFunc(ctx, func() {
			c.L.Lock()
			c.Broadcast()
			c.L.Unlock()
		})
		c.Wait()
		stop()
	}
	return nil
}

// broadcast takes mu only long enough to wake every waiter on c.
func broadcast(mu *sync.Mutex, c *sync.Cond) {
	mu.Lock()
	c.Broadcast()
	mu.Unlock()
}
