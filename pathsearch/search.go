package pathsearch

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/debashishc/electoralcollege/internal/logging"
	"github.com/debashishc/electoralcollege/internal/metrics"
	"github.com/debashishc/electoralcollege/types"
)

// DefaultMaxCombinations bounds how many minimal combinations are kept per party.
const DefaultMaxCombinations = 10000

// Search enumerates minimal winning combinations.
//
// A Search holds only configuration and is safe for concurrent use.
type Search struct {
	maxCombinations int
	logger          types.Logger
	metrics         types.SearchMetrics
}

// Option configures a Search.
type Option func(*Search)

// Stats describes the work done by one search call.
type Stats struct {
	// Nodes is the number of candidate units examined.
	Nodes int

	// Combinations is the number of minimal combinations emitted.
	Combinations int

	// Truncated is true if any enumeration stopped at the cap.
	Truncated bool
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Combinations += o.Combinations
	s.Truncated = s.Truncated || o.Truncated
}

// item is an uncalled unit with its weight.
type item struct {
	unit  types.Unit
	votes int
}

// frame is one level of the depth-first search: the next candidate index and
// the votes accumulated by the units chosen above it.
type frame struct {
	next int
	sum  int
}

// New creates a Search.
//
// Parameters:
//   - opts: Optional configuration (WithMaxCombinations, WithLogger, WithMetrics)
//
// Returns:
//   - *Search: Search ready for use
//
// Example:
//
//	s := pathsearch.New(pathsearch.WithMaxCombinations(500))
//	paths, stats, err := s.FindPaths(reg, tally.Totals, tally.Uncalled)
func New(opts ...Option) *Search {
	s := &Search{
		maxCombinations: DefaultMaxCombinations,
		logger:          logging.NewNop(),
		metrics:         metrics.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// WithMaxCombinations sets the per-party enumeration cap. Zero or a negative
// value removes the cap.
func WithMaxCombinations(n int) Option {
	return func(s *Search) {
		s.maxCombinations = n
	}
}

// WithLogger sets the logger.
func WithLogger(logger types.Logger) Option {
	return func(s *Search) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the search metrics collector.
func WithMetrics(m types.SearchMetrics) Option {
	return func(s *Search) {
		if m != nil {
			s.metrics = m
		}
	}
}

// FindPaths computes a PathInfo for every contending party.
//
// Parameters:
//   - reg: Registry supplying unit weights
//   - totals: Aggregated totals; if the PartyNone bucket is present it must
//     equal the votes of uncalled
//   - uncalled: Units still uncalled
//
// Returns:
//   - map[types.Party]types.PathInfo: One entry per contending party
//   - Stats: Work summed over all parties
//   - error: *PreconditionError if a party already reached the threshold,
//     *InconsistentTotalsError if totals and uncalled disagree, or a
//     *JurisdictionError for an unknown unit
func (s *Search) FindPaths(reg types.Registry, totals types.VoteTotals, uncalled []types.Unit) (map[types.Party]types.PathInfo, Stats, error) {
	items, available, err := weigh(reg, uncalled)
	if err != nil {
		return nil, Stats{}, err
	}
	if bucket, ok := totals[types.PartyNone]; ok && bucket != available {
		return nil, Stats{}, &types.InconsistentTotalsError{
			Totals: totals,
			Reason: fmt.Sprintf("uncalled bucket holds %d votes, uncalled units carry %d", bucket, available),
		}
	}

	var total Stats
	paths := make(map[types.Party]types.PathInfo, len(types.Parties()))
	for _, p := range types.Parties() {
		info, stats, err := s.findPath(p, totals.Get(p), items, available)
		if err != nil {
			return nil, Stats{}, err
		}
		paths[p] = info
		total.add(stats)
	}

	return paths, total, nil
}

// FindPath computes the PathInfo of a single party.
//
// Parameters:
//   - reg: Registry supplying unit weights
//   - party: Contending party
//   - current: The party's called votes
//   - uncalled: Units still uncalled
//
// Returns:
//   - types.PathInfo: Path information for the party
//   - Stats: Work done
//   - error: *PreconditionError if current already reaches the threshold
func (s *Search) FindPath(reg types.Registry, party types.Party, current int, uncalled []types.Unit) (types.PathInfo, Stats, error) {
	items, available, err := weigh(reg, uncalled)
	if err != nil {
		return types.PathInfo{}, Stats{}, err
	}

	return s.findPath(party, current, items, available)
}

func (s *Search) findPath(party types.Party, current int, items []item, available int) (types.PathInfo, Stats, error) {
	if !party.Contender() {
		return types.PathInfo{}, Stats{}, &types.PartyError{Value: party.String()}
	}

	needed := types.MajorityThreshold - current
	if needed <= 0 {
		return types.PathInfo{}, Stats{}, &types.PreconditionError{Party: party, CurrentVotes: current}
	}

	info := types.PathInfo{
		CurrentVotes:        current,
		NeededVotes:         needed,
		Possible:            available >= needed,
		MinimalCombinations: []types.Combination{},
	}
	if !info.Possible {
		s.metrics.RecordPathSearch(party, 0, 0, false)

		return info, Stats{}, nil
	}

	info.MinStatesNeeded = minUnitsNeeded(items, needed)
	info.Required = required(items, available, needed)

	var stats Stats
	info.MinimalCombinations, stats = s.enumerate(items, needed)
	info.Truncated = stats.Truncated

	s.metrics.RecordPathSearch(party, stats.Combinations, stats.Nodes, stats.Truncated)
	s.logger.Debug("path search complete",
		"party", party.String(),
		"needed", needed,
		"available", available,
		"combinations", stats.Combinations,
		"nodes", stats.Nodes,
	)
	if stats.Truncated {
		s.logger.Warn("path enumeration truncated",
			"party", party.String(),
			"limit", s.maxCombinations,
			"uncalled_units", len(items),
		)
	}

	return info, stats, nil
}

// enumerate walks the sorted items depth-first and collects every minimal
// combination reaching needed, up to the configured cap.
func (s *Search) enumerate(items []item, needed int) ([]types.Combination, Stats) {
	// suffix[k] is the votes of items[k:].
	suffix := make([]int, len(items)+1)
	for k := len(items) - 1; k >= 0; k-- {
		suffix[k] = suffix[k+1] + items[k].votes
	}

	var stats Stats
	combos := []types.Combination{}
	path := make([]int, 0, len(items))
	stack := make([]frame, 1, len(items)+1)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		k := top.next
		if k >= len(items) || top.sum+suffix[k] < needed {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				path = path[:len(path)-1]
			}

			continue
		}
		top.next++
		stats.Nodes++

		sum := top.sum + items[k].votes
		if sum < needed {
			path = append(path, k)
			stack = append(stack, frame{next: k + 1, sum: sum})

			continue
		}

		if s.maxCombinations > 0 && len(combos) >= s.maxCombinations {
			stats.Truncated = true

			break
		}
		combos = append(combos, combination(items, path, k, sum))
	}
	stats.Combinations = len(combos)

	return combos, stats
}

func combination(items []item, path []int, last int, votes int) types.Combination {
	units := make([]types.Unit, 0, len(path)+1)
	for _, i := range path {
		units = append(units, items[i].unit)
	}
	units = append(units, items[last].unit)

	return types.Combination{Units: units, Votes: votes}
}

// minUnitsNeeded counts units taken largest-first until needed is reached.
// Largest-first is optimal for the minimum cardinality.
func minUnitsNeeded(items []item, needed int) int {
	sum := 0
	for i, it := range items {
		sum += it.votes
		if sum >= needed {
			return i + 1
		}
	}

	return 0
}

// required returns the units without which the remaining votes fall short,
// in identifier order. These are exactly the units in every minimal combination.
func required(items []item, available int, needed int) []types.Unit {
	var out []types.Unit
	for _, it := range items {
		if available-it.votes < needed {
			out = append(out, it.unit)
		}
	}
	slices.SortFunc(out, types.Unit.Compare)

	return out
}

// weigh resolves unit weights and returns the items in search order.
func weigh(reg types.Registry, uncalled []types.Unit) ([]item, int, error) {
	items := make([]item, 0, len(uncalled))
	seen := make(map[types.Unit]bool, len(uncalled))
	available := 0
	for _, u := range uncalled {
		if seen[u] {
			return nil, 0, &types.JurisdictionError{Value: u.String(), Reason: "listed more than once"}
		}
		seen[u] = true

		info, err := reg.Lookup(u.Jurisdiction)
		if err != nil {
			return nil, 0, err
		}
		v, ok := info.UnitVotes(u.Portion)
		if !ok {
			return nil, 0, &types.JurisdictionError{Value: u.String(), Reason: "no such portion"}
		}
		items = append(items, item{unit: u, votes: v})
		available += v
	}

	slices.SortFunc(items, func(a, b item) int {
		if c := cmp.Compare(b.votes, a.votes); c != 0 {
			return c
		}

		return a.unit.Compare(b.unit)
	})

	return items, available, nil
}
