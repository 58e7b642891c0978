package registry

import (
	"fmt"
	"slices"

	"github.com/debashishc/electoralcollege/types"
)

// Static implements types.Registry over a fixed, validated table.
type Static struct {
	rows     [types.JurisdictionCount + 1]types.JurisdictionInfo
	byRegion map[types.Region][]types.Jurisdiction
	total    int
}

var _ types.Registry = (*Static)(nil)

// NewStatic creates a registry from the given rows.
//
// The rows are copied and validated; the returned registry never changes.
//
// Parameters:
//   - rows: One row per jurisdiction, in any order
//
// Returns:
//   - *Static: Immutable registry
//   - error: ErrInvalidRegistry (or a *JurisdictionError) describing the first violation
//
// Example:
//
//	reg, err := registry.NewStatic(rows)
//	if err != nil { /* handle */ }
//	info, _ := reg.Lookup(types.CA)
func NewStatic(rows []types.JurisdictionInfo) (*Static, error) {
	if err := Validate(rows); err != nil {
		return nil, err
	}

	s := &Static{byRegion: make(map[types.Region][]types.Jurisdiction)}
	for _, row := range rows {
		s.rows[row.ID] = row.Clone()
		s.total += row.ElectoralVotes
	}
	for _, j := range types.Jurisdictions() {
		r := s.rows[j].Region
		s.byRegion[r] = append(s.byRegion[r], j)
	}

	return s, nil
}

// Lookup returns a copy of the row for j.
func (s *Static) Lookup(j types.Jurisdiction) (types.JurisdictionInfo, error) {
	if !j.Valid() {
		return types.JurisdictionInfo{}, &types.JurisdictionError{Value: j.String(), Reason: "unknown identifier"}
	}

	return s.rows[j].Clone(), nil
}

// All returns copies of every row in identifier order.
func (s *Static) All() []types.JurisdictionInfo {
	out := make([]types.JurisdictionInfo, 0, types.JurisdictionCount)
	for _, j := range types.Jurisdictions() {
		out = append(out, s.rows[j].Clone())
	}

	return out
}

// InRegion returns the jurisdictions of region r in identifier order.
func (s *Static) InRegion(r types.Region) []types.Jurisdiction {
	return slices.Clone(s.byRegion[r])
}

// Total returns the summed electoral votes (538 for a valid table).
func (s *Static) Total() int {
	return s.total
}

// Validate checks a registry table.
//
// Hard Validation Rules:
//   - Exactly one row per jurisdiction (51 rows)
//   - Electoral votes sum to types.TotalElectoralVotes
//   - Every row has at least 3 votes and a known region
//   - States: votes == districts + 2; DC: 3 votes, no districts
//   - Split-vote rows carry one vote per district and keep 2 at-large votes
//   - Winner-take-all rows carry no district votes
//
// Returns:
//   - error: First violation found, nil if valid
func Validate(rows []types.JurisdictionInfo) error {
	if len(rows) != types.JurisdictionCount {
		return fmt.Errorf("%w: expected %d rows, got %d", types.ErrInvalidRegistry, types.JurisdictionCount, len(rows))
	}

	seen := make(map[types.Jurisdiction]bool, len(rows))
	total := 0
	for _, row := range rows {
		if !row.ID.Valid() {
			return fmt.Errorf("%w: %w", types.ErrInvalidRegistry,
				&types.JurisdictionError{Value: row.ID.String(), Reason: "unknown identifier"})
		}
		if seen[row.ID] {
			return fmt.Errorf("%w: duplicate row for %s", types.ErrInvalidRegistry, row.ID)
		}
		seen[row.ID] = true

		if err := validateRow(row); err != nil {
			return fmt.Errorf("%w: %s: %s", types.ErrInvalidRegistry, row.ID, err)
		}
		total += row.ElectoralVotes
	}

	if total != types.TotalElectoralVotes {
		return fmt.Errorf("%w: electoral votes sum to %d, expected %d",
			types.ErrInvalidRegistry, total, types.TotalElectoralVotes)
	}

	return nil
}

func validateRow(row types.JurisdictionInfo) error {
	if row.ElectoralVotes < minElectoralVotes {
		return fmt.Errorf("has %d electoral votes, minimum is %d", row.ElectoralVotes, minElectoralVotes)
	}
	if !row.Region.Valid() {
		return fmt.Errorf("region %d is not assigned", int(row.Region))
	}

	if row.ID == types.DC {
		if row.Districts != 0 || row.ElectoralVotes != minElectoralVotes || row.IsSplitVote {
			return fmt.Errorf("must have %d votes, no districts and no split", minElectoralVotes)
		}

		return nil
	}

	if row.ElectoralVotes != row.Districts+types.AtLargeVotes {
		return fmt.Errorf("congressional districts (%d) don't match electoral votes (%d)",
			row.Districts, row.ElectoralVotes)
	}

	if !row.IsSplitVote {
		if len(row.DistrictVotes) != 0 {
			return fmt.Errorf("winner-take-all row lists district votes")
		}

		return nil
	}

	if len(row.DistrictVotes) != row.Districts {
		return fmt.Errorf("lists %d district votes for %d districts", len(row.DistrictVotes), row.Districts)
	}
	for i, v := range row.DistrictVotes {
		if v != 1 {
			return fmt.Errorf("district %d carries %d votes, expected 1", i+1, v)
		}
	}

	return nil
}
