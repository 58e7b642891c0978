// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/debashishc/electoralcollege/types"

// NopMetrics discards every observation.
//
// It is the default collector, so components never nil-check.
type NopMetrics struct{}

var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop returns a collector that discards everything.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordAnalysis discards the analysis metric.
func (*NopMetrics) RecordAnalysis(_ /* duration */ float64, _ /* hasWinner */ bool) {}

// RecordPathSearch discards the path search metric.
func (*NopMetrics) RecordPathSearch(_ types.Party, _ /* combinations */, _ /* nodes */ int, _ /* truncated */ bool) {
}

// RecordCacheLookup discards the cache lookup metric.
func (*NopMetrics) RecordCacheLookup(_ /* hit */ bool) {}
