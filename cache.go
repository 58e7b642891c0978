package electoralcollege

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/debashishc/electoralcollege/internal/hash"
)

// analysisCache memoizes analyses by scenario fingerprint.
//
// Entries keep a private copy of the scenario so that a fingerprint collision
// is detected instead of served. Values are cloned on the way in and out.
type analysisCache struct {
	entries *lru.Cache[uint64, cacheEntry]
	metrics MetricsCollector
}

type cacheEntry struct {
	input    PartialResult
	analysis ElectionAnalysis
}

func newAnalysisCache(size int, m MetricsCollector) (*analysisCache, error) {
	entries, err := lru.New[uint64, cacheEntry](size)
	if err != nil {
		return nil, err
	}

	return &analysisCache{entries: entries, metrics: m}, nil
}

// get returns a copy of the cached analysis for pr. The key must be the
// fingerprint of pr.
func (c *analysisCache) get(key uint64, pr PartialResult) (ElectionAnalysis, bool) {
	entry, ok := c.entries.Get(key)
	hit := ok && entry.input.Equal(pr)
	c.metrics.RecordCacheLookup(hit)
	if !hit {
		return ElectionAnalysis{}, false
	}

	return entry.analysis.Clone(), true
}

func (c *analysisCache) add(key uint64, pr PartialResult, ea ElectionAnalysis) {
	c.entries.Add(key, cacheEntry{input: pr.Clone(), analysis: ea.Clone()})
}

func (c *analysisCache) len() int {
	return c.entries.Len()
}

func fingerprint(pr PartialResult) uint64 {
	return hash.Fingerprint(pr, 0)
}
