package electoralcollege

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/debashishc/electoralcollege/internal/logging"
	"github.com/debashishc/electoralcollege/internal/metrics"
	"github.com/debashishc/electoralcollege/registry"
)

// Option configures an Analyzer with optional dependencies.
type Option func(*analyzerOptions)

type analyzerOptions struct {
	logger  Logger
	metrics MetricsCollector
}

// WithLogger sets the logger.
//
// Parameters:
//   - logger: Logger implementation (a no-op logger is used if nil)
//
// Returns:
//   - Option: Functional option for NewAnalyzer
//
// Example:
//
//	analyzer, err := electoralcollege.NewAnalyzer(&cfg, reg,
//	    electoralcollege.WithLogger(electoralcollege.NewSlogLogger(slog.Default())))
func WithLogger(logger Logger) Option {
	return func(o *analyzerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets the metrics collector.
//
// Parameters:
//   - m: MetricsCollector implementation (a no-op collector is used if nil)
//
// Returns:
//   - Option: Functional option for NewAnalyzer
//
// Example:
//
//	m := electoralcollege.NewPrometheusMetrics(prometheus.DefaultRegisterer, "")
//	analyzer, err := electoralcollege.NewAnalyzer(&cfg, reg, electoralcollege.WithMetrics(m))
func WithMetrics(m MetricsCollector) Option {
	return func(o *analyzerOptions) {
		o.metrics = m
	}
}

// NewSlogLogger adapts a slog.Logger to the Logger interface.
func NewSlogLogger(logger *slog.Logger) Logger {
	return logging.NewSlog(logger)
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return logging.NewNop()
}

// NewPrometheusMetrics returns a Prometheus-backed MetricsCollector.
//
// Parameters:
//   - reg: Registerer to register collectors with (prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace ("electoralcollege" if empty)
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}

// DefaultRegistry returns the shared built-in registry (2024 apportionment).
func DefaultRegistry() Registry {
	return registry.Default()
}
