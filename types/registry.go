package types

import "slices"

// Electoral college constants.
const (
	// TotalElectoralVotes is the number of electors nationally.
	TotalElectoralVotes = 538

	// MajorityThreshold is the number of votes needed to win outright.
	MajorityThreshold = TotalElectoralVotes/2 + 1

	// AtLargeVotes is the number of statewide votes in every state.
	AtLargeVotes = 2
)

// JurisdictionInfo is one row of the state registry.
//
// Rows are immutable once loaded; Registry implementations hand out copies.
type JurisdictionInfo struct {
	// ID identifies the jurisdiction.
	ID Jurisdiction `json:"id" yaml:"id"`

	// Name is the full jurisdiction name.
	Name string `json:"name" yaml:"name"`

	// ElectoralVotes is the number of electors appointed (always >= 3).
	ElectoralVotes int `json:"electoralVotes" yaml:"electoralVotes"`

	// Districts is the number of congressional districts (0 for DC).
	Districts int `json:"districts" yaml:"districts"`

	// IsSplitVote is true for the jurisdictions allocating votes by district.
	IsSplitVote bool `json:"isSplitVote" yaml:"isSplitVote"`

	// DistrictVotes holds one entry per congressional district for split-vote
	// jurisdictions and is empty otherwise.
	DistrictVotes []int `json:"districtVotes,omitempty" yaml:"districtVotes,omitempty"`

	// Region is the geographic grouping.
	Region Region `json:"region" yaml:"region"`
}

// AtLargeVotes returns the votes awarded statewide. For winner-take-all
// jurisdictions this is every vote.
func (ji JurisdictionInfo) AtLargeVotes() int {
	total := ji.ElectoralVotes
	for _, v := range ji.DistrictVotes {
		total -= v
	}

	return total
}

// UnitVotes returns the electoral votes carried by the given portion.
//
// Returns:
//   - int: Votes of the portion
//   - bool: false if the portion does not exist for this jurisdiction
func (ji JurisdictionInfo) UnitVotes(p Portion) (int, bool) {
	switch {
	case p == PortionWhole:
		return ji.ElectoralVotes, true
	case !ji.IsSplitVote:
		return 0, false
	case p == PortionAtLarge:
		return ji.AtLargeVotes(), true
	case int(p) <= len(ji.DistrictVotes):
		return ji.DistrictVotes[p-1], true
	default:
		return 0, false
	}
}

// Clone returns a deep copy of the row.
func (ji JurisdictionInfo) Clone() JurisdictionInfo {
	ji.DistrictVotes = slices.Clone(ji.DistrictVotes)

	return ji
}

// Registry is the read interface of the immutable state registry.
//
// Implementations must be safe for concurrent use; the analysis engine only
// ever reads from them.
type Registry interface {
	// Lookup returns the row for j.
	//
	// Returns:
	//   - JurisdictionInfo: Copy of the registry row
	//   - error: *JurisdictionError if j is unknown
	Lookup(j Jurisdiction) (JurisdictionInfo, error)

	// All returns every row in identifier order.
	All() []JurisdictionInfo
}
