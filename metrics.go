package bitvec

import "sync/atomic"

// MetricsCollector observes growth of bit vectors.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A single collector may be shared by many vectors, so implementations
// should be safe for concurrent use.
type MetricsCollector interface {
	// RecordGrow is called after a vector appended blocks.
	// oldBlocks and newBlocks are the block counts before and after.
	RecordGrow(oldBlocks, newBlocks int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	GrowCount       atomic.Int64
	BlocksAllocated atomic.Int64
	MaxBlocks       atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldBlocks, newBlocks int) {
	b.GrowCount.Add(1)
	b.BlocksAllocated.Add(int64(newBlocks - oldBlocks))

	for {
		cur := b.MaxBlocks.Load()
		if int64(newBlocks) <= cur || b.MaxBlocks.CompareAndSwap(cur, int64(newBlocks)) {
			return
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:       b.GrowCount.Load(),
		BlocksAllocated: b.BlocksAllocated.Load(),
		MaxBlocks:       b.MaxBlocks.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount       int64
	BlocksAllocated int64 // blocks appended by growth, excluding preallocation
	MaxBlocks       int64 // largest block count reached by any vector
}
