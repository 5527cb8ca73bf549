package psdfx

import (
	"log/slog"

	"github.com/gogpu/psdfx/internal/parallel"
)

// Option configures a single render call.
//
// Example:
//
//	r, err := psdfx.RenderGradient(psdfx.ModeRGB, 640, 480, g,
//	    psdfx.WithWorkers(1),
//	    psdfx.WithLogger(slog.Default()))
type Option func(*options)

// options holds per-call configuration.
type options struct {
	workers int
	logger  *slog.Logger
	backend NumericBackend
}

// defaultOptions returns options that use GOMAXPROCS workers, the
// package-wide logger and the registered backend.
func defaultOptions() options {
	return options{
		workers: 0,
		logger:  nil, // resolved to Logger() in newOptions
		backend: nil, // resolved to Backend() in newOptions
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	if o.backend == nil {
		o.backend = Backend()
	}
	return o
}

// pool starts a worker pool sized by the options. Callers must Close it.
func (o *options) pool() *parallel.WorkerPool {
	return parallel.NewWorkerPool(o.workers)
}

// WithWorkers sets how many goroutines evaluate pixel rows. Zero or a
// negative value means GOMAXPROCS; 1 renders on the calling goroutine.
// The output does not depend on this setting.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger overrides the package-wide logger for one call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithBackend overrides the registered numeric backend for one call.
func WithBackend(b NumericBackend) Option {
	return func(o *options) {
		o.backend = b
	}
}
