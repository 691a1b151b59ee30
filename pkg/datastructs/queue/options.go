package queue

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// instanceSeq numbers queues for log correlation only.
var instanceSeq atomic.Uint64

type options struct {
	logger *zap.Logger
}

// Option configures a queue at construction.
type Option func(*options)

// WithLogger sets the logger used for debug diagnostics. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(kind string, capacity int, opts []Option) *zap.Logger {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger.With(
		zap.String("queue", kind),
		zap.Uint64("queue_id", instanceSeq.Add(1)),
	)
	log.Debug("created bounded queue", zap.Int("capacity", capacity))
	return log
}
