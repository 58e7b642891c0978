package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/debashishc/electoralcollege/types"
)

const defaultNamespace = "electoralcollege"

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing a
// PrometheusCollector that is never exercised leaves the registerer untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	analyses         *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	searches         *prometheus.CounterVec
	combinations     *prometheus.HistogramVec
	searchNodes      *prometheus.HistogramVec
	cacheLookups     *prometheus.CounterVec
}

var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace ("electoralcollege" if empty)
//
// Returns:
//   - *PrometheusCollector: Collector ready for use
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = defaultNamespace
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.analyses = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "analysis",
			Name:      "total",
			Help:      "Completed analyses by whether the scenario already had a winner.",
		}, []string{"has_winner"})

		p.analysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "analysis",
			Name:      "duration_seconds",
			Help:      "Wall time of one analysis in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100us .. ~26s
		})

		p.searches = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "path_search",
			Name:      "total",
			Help:      "Path searches by party and whether enumeration was truncated.",
		}, []string{"party", "truncated"})

		p.combinations = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "path_search",
			Name:      "combinations",
			Help:      "Minimal winning combinations found per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 9),
		}, []string{"party"})

		p.searchNodes = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "path_search",
			Name:      "nodes",
			Help:      "Candidate units examined per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 8, 9),
		}, []string{"party"})

		p.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Analysis cache lookups by result (hit, miss).",
		}, []string{"result"})

		p.reg.MustRegister(p.analyses)
		p.reg.MustRegister(p.analysisDuration)
		p.reg.MustRegister(p.searches)
		p.reg.MustRegister(p.combinations)
		p.reg.MustRegister(p.searchNodes)
		p.reg.MustRegister(p.cacheLookups)
	})
}

// RecordAnalysis counts one analysis and observes its duration.
func (p *PrometheusCollector) RecordAnalysis(duration float64, hasWinner bool) {
	p.ensureRegistered()
	p.analyses.WithLabelValues(strconv.FormatBool(hasWinner)).Inc()
	p.analysisDuration.Observe(duration)
}

// RecordPathSearch counts one path search and observes its size.
func (p *PrometheusCollector) RecordPathSearch(party types.Party, combinations int, nodes int, truncated bool) {
	p.ensureRegistered()
	label := party.String()
	p.searches.WithLabelValues(label, strconv.FormatBool(truncated)).Inc()
	p.combinations.WithLabelValues(label).Observe(float64(combinations))
	p.searchNodes.WithLabelValues(label).Observe(float64(nodes))
}

// RecordCacheLookup counts a cache hit or miss.
func (p *PrometheusCollector) RecordCacheLookup(hit bool) {
	p.ensureRegistered()
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cacheLookups.WithLabelValues(result).Inc()
}
