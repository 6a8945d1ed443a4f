package quantgo

import (
	"log/slog"

	"github.com/hupe1980/quantgo/kernel"
)

type options struct {
	threading        kernel.Threading
	memoryModel      kernel.MemoryModel
	registry         *kernel.Registry
	metricsCollector MetricsCollector
	logger           *Logger
	seed             uint64
	seeded           bool
}

// Option configures StateVector construction.
type Option func(*options)

// WithThreading configures how kernels use worker goroutines. The default is
// SingleThread; MultiThread fans kernel loops out across GOMAXPROCS workers
// once the buffer is large enough to amortize the goroutine overhead.
//
// The choice is fixed for the lifetime of the state vector: it feeds kernel
// selection at construction and is never re-evaluated per call.
func WithThreading(t kernel.Threading) Option {
	return func(o *options) {
		o.threading = t
	}
}

// WithMemoryModel configures how the amplitude buffer is allocated. The
// default follows kernel.DefaultMemoryModel: aligned allocation on CPUs with
// wide SIMD, plain allocation otherwise.
func WithMemoryModel(mm kernel.MemoryModel) Option {
	return func(o *options) {
		o.memoryModel = mm
	}
}

// WithRegistry configures a custom kernel registry. The default is
// kernel.DefaultRegistry. Custom registries exist for testing and
// benchmarking kernel selection.
func WithRegistry(r *kernel.Registry) Option {
	return func(o *options) {
		if r == nil {
			r = kernel.DefaultRegistry()
		}
		o.registry = r
	}
}

// WithSeed seeds the measurement RNG stream deterministically. Two state
// vectors constructed with the same seed produce identical sample sequences
// for identical circuits. Without a seed the stream is seeded randomly.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &quantgo.BasicMetricsCollector{}
//	sv, _ := quantgo.New(4, quantgo.WithMetricsCollector(metrics))
//	// ... use sv ...
//	stats := metrics.GetStats()
//	fmt.Printf("Applies: %d, Avg latency: %dns\n", stats.ApplyCount, stats.ApplyAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := quantgo.NewJSONLogger(slog.LevelInfo)
//	sv, _ := quantgo.New(4, quantgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		threading:        kernel.SingleThread,
		memoryModel:      kernel.DefaultMemoryModel(),
		registry:         kernel.DefaultRegistry(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
