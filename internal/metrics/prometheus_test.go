package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/debashishc/electoralcollege/types"
)

func TestPrometheusCollector(t *testing.T) {
	t.Run("registers lazily", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		NewPrometheus(reg, "")

		families, err := reg.Gather()
		require.NoError(t, err)
		require.Empty(t, families)
	})

	t.Run("records analyses", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := NewPrometheus(reg, "test")

		m.RecordAnalysis(0.01, false)
		m.RecordAnalysis(0.02, false)
		m.RecordAnalysis(0.03, true)

		require.InDelta(t, 2, testutil.ToFloat64(m.analyses.WithLabelValues("false")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(m.analyses.WithLabelValues("true")), 0)
		require.Equal(t, 1, testutil.CollectAndCount(m.analysisDuration))
	})

	t.Run("records path searches", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := NewPrometheus(reg, "test")

		m.RecordPathSearch(types.PartyDemocrat, 10000, 250000, true)
		m.RecordPathSearch(types.PartyRepublican, 3, 12, false)

		require.InDelta(t, 1, testutil.ToFloat64(m.searches.WithLabelValues("DEM", "true")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(m.searches.WithLabelValues("REP", "false")), 0)
		require.Equal(t, 2, testutil.CollectAndCount(m.combinations))
	})

	t.Run("records cache lookups", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := NewPrometheus(reg, "test")

		m.RecordCacheLookup(true)
		m.RecordCacheLookup(false)
		m.RecordCacheLookup(false)

		require.InDelta(t, 1, testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")), 0)
		require.InDelta(t, 2, testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")), 0)

		families, err := reg.Gather()
		require.NoError(t, err)
		require.NotEmpty(t, families)
	})
}
