package quantgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    applyCounter   prometheus.Counter
//	    applyHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordApply(op string, duration time.Duration, err error) {
//	    p.applyCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordApply is called after each gate, matrix or controlled
	// application. op names the operation, duration is the time taken,
	// err is nil if successful.
	RecordApply(op string, duration time.Duration, err error)

	// RecordGenerator is called after each generator application.
	RecordGenerator(op string, duration time.Duration, err error)

	// RecordMeasure is called after each measurement, collapse or
	// probability computation. wire is the measured wire.
	RecordMeasure(wire int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordApply(string, time.Duration, error)     {}
func (NoopMetricsCollector) RecordGenerator(string, time.Duration, error) {}
func (NoopMetricsCollector) RecordMeasure(int, time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ApplyCount          atomic.Int64
	ApplyErrors         atomic.Int64
	ApplyTotalNanos     atomic.Int64
	GeneratorCount      atomic.Int64
	GeneratorErrors     atomic.Int64
	GeneratorTotalNanos atomic.Int64
	MeasureCount        atomic.Int64
	MeasureErrors       atomic.Int64
	MeasureTotalNanos   atomic.Int64
}

// RecordApply implements MetricsCollector.
func (b *BasicMetricsCollector) RecordApply(op string, duration time.Duration, err error) {
	b.ApplyCount.Add(1)
	b.ApplyTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ApplyErrors.Add(1)
	}
}

// RecordGenerator implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerator(op string, duration time.Duration, err error) {
	b.GeneratorCount.Add(1)
	b.GeneratorTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GeneratorErrors.Add(1)
	}
}

// RecordMeasure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMeasure(wire int, duration time.Duration, err error) {
	b.MeasureCount.Add(1)
	b.MeasureTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MeasureErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ApplyCount:      b.ApplyCount.Load(),
		ApplyErrors:     b.ApplyErrors.Load(),
		ApplyAvgNanos:   avgNanos(&b.ApplyCount, &b.ApplyTotalNanos),
		GeneratorCount:  b.GeneratorCount.Load(),
		GeneratorErrors: b.GeneratorErrors.Load(),
		MeasureCount:    b.MeasureCount.Load(),
		MeasureErrors:   b.MeasureErrors.Load(),
		MeasureAvgNanos: avgNanos(&b.MeasureCount, &b.MeasureTotalNanos),
	}
}

func avgNanos(count, total *atomic.Int64) int64 {
	c := count.Load()
	if c == 0 {
		return 0
	}
	return total.Load() / c
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ApplyCount      int64
	ApplyErrors     int64
	ApplyAvgNanos   int64
	GeneratorCount  int64
	GeneratorErrors int64
	MeasureCount    int64
	MeasureErrors   int64
	MeasureAvgNanos int64
}
