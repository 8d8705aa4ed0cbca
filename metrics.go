package idkey

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the prom
// package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordLoad is called after each catalog load.
	// items is the size of the loaded catalog, err is nil if successful.
	RecordLoad(items int, duration time.Duration, err error)

	// RecordPass is called after each evaluation pass.
	// err reports selection values that could not be decoded.
	RecordPass(activeFilters, visible int, duration time.Duration, err error)

	// RecordReset is called after each reset.
	RecordReset(visible int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordPass(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordReset(int, time.Duration)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	PassCount      atomic.Int64
	PassErrors     atomic.Int64
	PassTotalNanos atomic.Int64
	ResetCount     atomic.Int64
	LastVisible    atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(items int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LastVisible.Store(int64(items))
}

// RecordPass implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPass(activeFilters, visible int, duration time.Duration, err error) {
	b.PassCount.Add(1)
	b.PassTotalNanos.Add(duration.Nanoseconds())
	b.LastVisible.Store(int64(visible))
	if err != nil {
		b.PassErrors.Add(1)
	}
}

// RecordReset implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReset(visible int, duration time.Duration) {
	b.ResetCount.Add(1)
	b.LastVisible.Store(int64(visible))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:    b.LoadCount.Load(),
		LoadErrors:   b.LoadErrors.Load(),
		PassCount:    b.PassCount.Load(),
		PassErrors:   b.PassErrors.Load(),
		PassAvgNanos: b.getAvgPassNanos(),
		ResetCount:   b.ResetCount.Load(),
		LastVisible:  b.LastVisible.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgPassNanos() int64 {
	count := b.PassCount.Load()
	if count == 0 {
		return 0
	}
	return b.PassTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount    int64
	LoadErrors   int64
	PassCount    int64
	PassErrors   int64
	PassAvgNanos int64
	ResetCount   int64
	LastVisible  int64
}
