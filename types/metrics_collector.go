package types

// MetricsCollector defines methods for recording analysis metrics.
//
// Implementations must be non-blocking and safe for concurrent use; the Analyzer
// calls them from every goroutine evaluating a scenario.
type MetricsCollector interface {
	AnalysisMetrics
	SearchMetrics
	CacheMetrics
}

// AnalysisMetrics defines metrics for complete analysis calls.
type AnalysisMetrics interface {
	// RecordAnalysis records one completed analysis.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - hasWinner: true if the scenario already had a winner
	RecordAnalysis(duration float64, hasWinner bool)
}

// SearchMetrics defines metrics for the victory-path search.
type SearchMetrics interface {
	// RecordPathSearch records one party's path enumeration.
	//
	// Parameters:
	//   - party: Party whose paths were searched
	//   - combinations: Number of minimal combinations found
	//   - nodes: Number of search frames expanded
	//   - truncated: true if enumeration stopped at the configured cap
	RecordPathSearch(party Party, combinations int, nodes int, truncated bool)
}

// CacheMetrics defines metrics for the analysis cache.
type CacheMetrics interface {
	// RecordCacheLookup records a cache hit or miss.
	RecordCacheLookup(hit bool)
}
