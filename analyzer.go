package electoralcollege

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/errgroup"

	"github.com/debashishc/electoralcollege/internal/logging"
	"github.com/debashishc/electoralcollege/internal/metrics"
	"github.com/debashishc/electoralcollege/internal/tally"
	"github.com/debashishc/electoralcollege/pathsearch"
	"github.com/debashishc/electoralcollege/registry"
	"github.com/debashishc/electoralcollege/types"
)

// Analyzer composes aggregation, winner determination, path search and
// pivotal analysis into a single call.
//
// An Analyzer only reads its registry and is safe for concurrent use.
type Analyzer struct {
	cfg      Config
	registry Registry
	search   *pathsearch.Search
	cache    *analysisCache // nil when disabled
	logger   Logger
	metrics  MetricsCollector
}

// NewAnalyzer creates an Analyzer.
//
// Parameters:
//   - cfg: Configuration (zero fields are filled with defaults)
//   - reg: Registry to analyze against; if nil, cfg.RegistryFile is loaded
//   - opts: Optional dependencies (WithLogger, WithMetrics)
//
// Returns:
//   - *Analyzer: Analyzer ready for use
//   - error: ErrInvalidConfig, ErrRegistryRequired or a registry load error
//
// Example:
//
//	cfg := electoralcollege.DefaultConfig()
//	analyzer, err := electoralcollege.NewAnalyzer(&cfg, electoralcollege.DefaultRegistry())
//	if err != nil { /* handle */ }
func NewAnalyzer(cfg *Config, reg Registry, opts ...Option) (*Analyzer, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &analyzerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	if reg == nil {
		if cfg.RegistryFile == "" {
			return nil, ErrRegistryRequired
		}
		loaded, err := registry.LoadFile(cfg.RegistryFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load registry: %w", err)
		}
		reg = loaded
	}

	a := &Analyzer{
		cfg:      *cfg,
		registry: reg,
		search: pathsearch.New(
			pathsearch.WithMaxCombinations(cfg.MaxCombinations),
			pathsearch.WithLogger(loggerInstance),
			pathsearch.WithMetrics(metricsCollector),
		),
		logger:  loggerInstance,
		metrics: metricsCollector,
	}

	if !cfg.DisableCache {
		c, err := newAnalysisCache(cfg.CacheSize, metricsCollector)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		a.cache = c
	}

	return a, nil
}

// Registry returns the registry the Analyzer reads from.
func (a *Analyzer) Registry() Registry {
	return a.registry
}

// Analyze computes the complete analysis of one scenario.
//
// The result is either complete or an error; it never holds partial data.
// The caller owns the returned value.
//
// Parameters:
//   - partial: Scenario to analyze (not retained)
//
// Returns:
//   - ElectionAnalysis: Totals, winner, remaining paths and pivotal jurisdictions
//   - error: *JurisdictionError, *PartyError or *InconsistentTotalsError
func (a *Analyzer) Analyze(partial PartialResult) (ElectionAnalysis, error) {
	start := time.Now()

	// Aggregation validates the scenario, so the cache only ever sees valid input.
	agg, err := tally.Aggregate(a.registry, partial)
	if err != nil {
		return ElectionAnalysis{}, err
	}

	var key uint64
	if a.cache != nil {
		key = fingerprint(partial)
		if cached, ok := a.cache.get(key, partial); ok {
			return cached, nil
		}
	}

	result, err := a.analyze(agg)
	if err != nil {
		return ElectionAnalysis{}, err
	}

	if a.cache != nil {
		a.cache.add(key, partial, result)
	}

	elapsed := time.Since(start)
	a.metrics.RecordAnalysis(elapsed.Seconds(), result.HasWinner)
	a.logger.Debug("analysis complete",
		"winner", result.Winner.String(),
		"dem", result.Totals.Get(types.PartyDemocrat),
		"rep", result.Totals.Get(types.PartyRepublican),
		"uncalled", result.Totals.Uncalled(),
		"pivotal", len(result.PivotalStates),
		"duration", elapsed,
	)

	return result, nil
}

func (a *Analyzer) analyze(agg tally.Tally) (ElectionAnalysis, error) {
	winner, hasWinner, err := tally.DetermineWinner(agg.Totals)
	if err != nil {
		return ElectionAnalysis{}, err
	}

	result := ElectionAnalysis{
		Totals:         agg.Totals,
		Winner:         winner,
		HasWinner:      hasWinner,
		RemainingPaths: map[Party]PathInfo{},
		PivotalStates:  []Jurisdiction{},
		Uncalled:       agg.Uncalled,
	}
	if result.Uncalled == nil {
		result.Uncalled = []Unit{}
	}
	if hasWinner {
		return result, nil
	}

	paths, _, err := a.search.FindPaths(a.registry, agg.Totals, agg.Uncalled)
	if err != nil {
		return ElectionAnalysis{}, err
	}
	result.RemainingPaths = paths
	result.PivotalStates = pathsearch.FindPivotal(paths)

	return result, nil
}

// batchEntry analyzes one distinct scenario of an AnalyzeAll call exactly once.
type batchEntry struct {
	once   sync.Once
	input  PartialResult
	result ElectionAnalysis
	err    error
}

func (e *batchEntry) run(a *Analyzer) (ElectionAnalysis, error) {
	e.once.Do(func() {
		e.result, e.err = a.Analyze(e.input)
	})
	if e.err != nil {
		return ElectionAnalysis{}, e.err
	}

	return e.result.Clone(), nil
}

// AnalyzeAll analyzes many scenarios in parallel.
//
// At most Config.MaxParallel scenarios are evaluated at once, and scenarios
// that are Equal are analyzed once. Results are returned in input order. The
// first failure cancels the remaining work and is returned with the index of
// the offending scenario; no partial results are returned.
//
// Parameters:
//   - ctx: Context for cancellation
//   - scenarios: Scenarios to analyze (not retained)
//
// Returns:
//   - []ElectionAnalysis: One analysis per scenario, in input order
//   - error: First analysis error, or the context error
func (a *Analyzer) AnalyzeAll(ctx context.Context, scenarios []PartialResult) ([]ElectionAnalysis, error) {
	results := make([]ElectionAnalysis, len(scenarios))
	seen := xsync.NewMap[uint64, *batchEntry]()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.MaxParallel)

	for i, scenario := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := tally.Check(a.registry, scenario); err != nil {
				return fmt.Errorf("scenario %d: %w", i, err)
			}

			entry, loaded := seen.LoadOrStore(fingerprint(scenario), &batchEntry{input: scenario})
			if loaded && !entry.input.Equal(scenario) {
				entry = &batchEntry{input: scenario}
			}

			result, err := entry.run(a)
			if err != nil {
				return fmt.Errorf("scenario %d: %w", i, err)
			}
			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.logger.Debug("batch analysis complete", "scenarios", len(scenarios), "distinct", seen.Size())

	return results, nil
}

// RegionalTotals aggregates the scenario separately for each region.
//
// Parameters:
//   - partial: Scenario to aggregate
//
// Returns:
//   - map[Region]VoteTotals: Totals per region, including the uncalled bucket
//   - error: *JurisdictionError or *PartyError for invalid input
func (a *Analyzer) RegionalTotals(partial PartialResult) (map[Region]VoteTotals, error) {
	byRegion, err := tally.ByRegion(a.registry, partial)
	if err != nil {
		return nil, err
	}

	out := make(map[Region]VoteTotals, len(byRegion))
	for r, t := range byRegion {
		out[r] = t.Totals
	}

	return out, nil
}
