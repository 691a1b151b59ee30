// Package bench drives a BlockingQueue with a mixed producer/consumer
// workload and measures wall-clock duration.
//
// Workers with an even index enqueue and workers with an odd index dequeue.
// The dequeue side always takes exactly as many items as the enqueue side
// puts in, so a run drains the queue and never parks forever.
package bench

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/twolockq/pkg/datastructs/queue"
	"github.com/huynhanx03/twolockq/pkg/settings"
)

// Factory creates the queue a suite runs against.
type Factory func(capacity int) (queue.BlockingQueue[int64], error)

// Result is the mean duration of one thread count over all repeats.
type Result struct {
	Threads int
	Runs    int
	Mean    time.Duration
}

// NewFactory returns the factory for a settings implementation name.
func NewFactory(impl string, log *zap.Logger) (Factory, error) {
	switch impl {
	case settings.ImplTwoLock:
		return func(capacity int) (queue.BlockingQueue[int64], error) {
			q, err := queue.NewTwoLock[int64](capacity, queue.WithLogger(log))
			if err != nil {
				return nil, err
			}
			return q, nil
		}, nil
	case settings.ImplShared:
		return func(capacity int) (queue.BlockingQueue[int64], error) {
			q, err := queue.NewSharedCounter[int64](capacity, queue.WithLogger(log))
			if err != nil {
				return nil, err
			}
			return q, nil
		}, nil
	}
	return nil, errors.Errorf("unknown queue implementation %q", impl)
}

// share splits total into n parts and returns part i; parts differ by at most one.
func share(total, n, i int) int {
	s := total / n
	if i < total%n {
		s++
	}
	return s
}

// Run moves operations/2 items through q using threads workers and returns the
// elapsed time. threads must be at least 2.
func Run(ctx context.Context, q queue.BlockingQueue[int64], threads, operations int) (time.Duration, error) {
	if threads < 2 {
		return 0, errors.Errorf("need at least 2 threads, got %d", threads)
	}

	items := operations / 2
	producers := (threads + 1) / 2
	consumers := threads / 2

	g, gctx := errgroup.WithContext(ctx)
	start := time.Now()
	for w := 0; w < threads; w++ {
		id := int64(w)
		if w%2 == 0 {
			n := share(items, producers, w/2)
			g.Go(func() error {
				for i := 0; i < n; i++ {
					if err := q.EnqueueContext(gctx, id); err != nil {
						return errors.Wrapf(err, "worker %d enqueue", id)
					}
				}
				return nil
			})
			continue
		}

		n := share(items, consumers, w/2)
		g.Go(func() error {
			for i := 0; i < n; i++ {
				if _, err := q.DequeueContext(gctx); err != nil {
					return errors.Wrapf(err, "worker %d dequeue", id)
				}
			}
			return nil
		})
	}

	err := g.Wait()
	return time.Since(start), err
}

// Suite runs every configured thread count cfg.Repeat times against one queue
// and reports the mean per thread count.
func Suite(ctx context.Context, newQueue Factory, capacity int, cfg settings.Bench, log *zap.Logger) ([]Result, error) {
	if cfg.Repeat <= 0 {
		return nil, errors.Errorf("repeat must be positive, got %d", cfg.Repeat)
	}

	q, err := newQueue(capacity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create queue")
	}

	results := make([]Result, 0, len(cfg.Threads))
	for _, threads := range cfg.Threads {
		var sum time.Duration
		for r := 0; r < cfg.Repeat; r++ {
			d, err := Run(ctx, q, threads, cfg.Operations)
			if err != nil {
				return results, err
			}
			sum += d
		}

		res := Result{Threads: threads, Runs: cfg.Repeat, Mean: sum / time.Duration(cfg.Repeat)}
		log.Info("benchmark finished",
			zap.Int("threads", res.Threads),
			zap.Int("runs", res.Runs),
			zap.Duration("mean", res.Mean),
		)
		results = append(results, res)
	}
	return results, nil
}
