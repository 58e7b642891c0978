package pathsearch

import (
	"slices"

	"github.com/debashishc/electoralcollege/types"
)

// FindPivotal returns the jurisdictions present in every minimal combination
// of at least one party whose path is still possible, in identifier order.
//
// For a complete enumeration this is the intersection of the party's
// combinations. For a truncated one the enumerated combinations are only a
// sample, so the party's exact Required units are used instead.
//
// Parameters:
//   - paths: Per-party results from FindPaths
//
// Returns:
//   - []types.Jurisdiction: Pivotal jurisdictions (empty, never nil)
func FindPivotal(paths map[types.Party]types.PathInfo) []types.Jurisdiction {
	out := []types.Jurisdiction{}
	for _, info := range paths {
		if !info.Possible || len(info.MinimalCombinations) == 0 {
			continue
		}

		units := info.Required
		if !info.Truncated {
			units = intersect(info.MinimalCombinations)
		}
		for _, u := range units {
			out = append(out, u.Jurisdiction)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}

func intersect(combos []types.Combination) []types.Unit {
	common := slices.Clone(combos[0].Units)
	for _, c := range combos[1:] {
		common = slices.DeleteFunc(common, func(u types.Unit) bool {
			return !c.Contains(u)
		})
		if len(common) == 0 {
			break
		}
	}

	return common
}
