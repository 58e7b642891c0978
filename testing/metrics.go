package testing

import (
	"sync/atomic"

	"github.com/debashishc/electoralcollege/types"
)

// RecordingMetrics counts observations. It is safe for concurrent use.
type RecordingMetrics struct {
	Analyses     atomic.Int64
	Winners      atomic.Int64
	PathSearches atomic.Int64
	Truncations  atomic.Int64
	CacheHits    atomic.Int64
	CacheMisses  atomic.Int64
}

var _ types.MetricsCollector = (*RecordingMetrics)(nil)

// NewRecordingMetrics creates a RecordingMetrics with all counters at zero.
func NewRecordingMetrics() *RecordingMetrics {
	return &RecordingMetrics{}
}

// RecordAnalysis counts an analysis.
func (m *RecordingMetrics) RecordAnalysis(_ float64, hasWinner bool) {
	m.Analyses.Add(1)
	if hasWinner {
		m.Winners.Add(1)
	}
}

// RecordPathSearch counts a path search.
func (m *RecordingMetrics) RecordPathSearch(_ types.Party, _ int, _ int, truncated bool) {
	m.PathSearches.Add(1)
	if truncated {
		m.Truncations.Add(1)
	}
}

// RecordCacheLookup counts a cache hit or miss.
func (m *RecordingMetrics) RecordCacheLookup(hit bool) {
	if hit {
		m.CacheHits.Add(1)

		return
	}
	m.CacheMisses.Add(1)
}
