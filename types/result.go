package types

import (
	"maps"
	"slices"
)

// SplitResult carries district-level outcomes for a split-vote jurisdiction.
type SplitResult struct {
	// AtLarge is the party winning the statewide votes (PartyNone if uncalled).
	AtLarge Party `json:"atLarge" yaml:"atLarge"`

	// Districts holds one party per congressional district, in district order.
	// PartyNone marks an uncalled district.
	Districts []Party `json:"districts" yaml:"districts"`
}

// PartialResult is a scenario: which jurisdictions have been called, and for whom.
//
// Jurisdictions missing from Calls (or mapped to PartyNone) are uncalled. For a
// split-vote jurisdiction an entry in Splits takes precedence over Calls and
// allocates its at-large and district votes separately.
type PartialResult struct {
	Calls  map[Jurisdiction]Party       `json:"calls"`
	Splits map[Jurisdiction]SplitResult `json:"splits,omitempty"`
}

// NewPartialResult returns an empty scenario in which every jurisdiction is uncalled.
func NewPartialResult() PartialResult {
	return PartialResult{Calls: make(map[Jurisdiction]Party)}
}

// Call assigns j to p, allocating Calls on first use.
func (pr *PartialResult) Call(j Jurisdiction, p Party) {
	if pr.Calls == nil {
		pr.Calls = make(map[Jurisdiction]Party)
	}
	pr.Calls[j] = p
}

// Split records district-level outcomes for j, allocating Splits on first use.
func (pr *PartialResult) Split(j Jurisdiction, sr SplitResult) {
	if pr.Splits == nil {
		pr.Splits = make(map[Jurisdiction]SplitResult)
	}
	pr.Splits[j] = sr
}

// Party returns the party j was called for, or PartyNone.
func (pr PartialResult) Party(j Jurisdiction) Party {
	return pr.Calls[j]
}

// Clone returns a deep copy.
func (pr PartialResult) Clone() PartialResult {
	out := PartialResult{Calls: maps.Clone(pr.Calls)}
	if pr.Splits != nil {
		out.Splits = make(map[Jurisdiction]SplitResult, len(pr.Splits))
		for j, sr := range pr.Splits {
			out.Splits[j] = SplitResult{AtLarge: sr.AtLarge, Districts: slices.Clone(sr.Districts)}
		}
	}

	return out
}

// Equal reports whether two scenarios describe the same outcome over the 51
// known jurisdictions. An explicit PartyNone call is equal to an absent one.
func (pr PartialResult) Equal(other PartialResult) bool {
	for _, j := range Jurisdictions() {
		if pr.Calls[j] != other.Calls[j] {
			return false
		}
		a, aok := pr.Splits[j]
		b, bok := other.Splits[j]
		if aok != bok {
			return false
		}
		if aok && (a.AtLarge != b.AtLarge || !slices.Equal(a.Districts, b.Districts)) {
			return false
		}
	}

	return true
}

// VoteTotals maps each party to its electoral votes. The PartyNone entry is the
// uncalled bucket, so a complete VoteTotals always sums to TotalElectoralVotes.
type VoteTotals map[Party]int

// Get returns the votes for p (0 if absent).
func (vt VoteTotals) Get(p Party) int {
	return vt[p]
}

// Called returns the votes assigned to contending parties.
func (vt VoteTotals) Called() int {
	total := 0
	for p, v := range vt {
		if p != PartyNone {
			total += v
		}
	}

	return total
}

// Uncalled returns the votes still unassigned.
func (vt VoteTotals) Uncalled() int {
	return vt[PartyNone]
}

// Sum returns called plus uncalled votes.
func (vt VoteTotals) Sum() int {
	return vt.Called() + vt.Uncalled()
}

// Combination is a minimal set of uncalled units that, won together, brings a
// party to the majority threshold.
type Combination struct {
	// Units are ordered by descending votes, ties by identifier.
	Units []Unit `json:"units"`

	// Votes is the summed electoral votes of Units.
	Votes int `json:"votes"`
}

// Jurisdictions returns the distinct jurisdictions of the combination in identifier order.
func (c Combination) Jurisdictions() []Jurisdiction {
	out := make([]Jurisdiction, 0, len(c.Units))
	for _, u := range c.Units {
		out = append(out, u.Jurisdiction)
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// Contains reports whether u is part of the combination.
func (c Combination) Contains(u Unit) bool {
	return slices.Contains(c.Units, u)
}

// PathInfo describes a party's remaining route to the majority threshold.
type PathInfo struct {
	// CurrentVotes is the party's called total.
	CurrentVotes int `json:"currentVotes"`

	// NeededVotes is max(0, MajorityThreshold - CurrentVotes).
	NeededVotes int `json:"neededVotes"`

	// Possible is true when the uncalled votes can still cover NeededVotes.
	Possible bool `json:"possible"`

	// MinimalCombinations lists every minimal winning combination found, in
	// deterministic search order.
	MinimalCombinations []Combination `json:"minimalCombinations"`

	// MinStatesNeeded is the fewest uncalled units that can suffice (0 if impossible).
	MinStatesNeeded int `json:"minStatesNeeded"`

	// Required lists the units present in every minimal winning combination.
	Required []Unit `json:"required,omitempty"`

	// Truncated is true when enumeration stopped at the configured cap.
	Truncated bool `json:"truncated,omitempty"`
}

// Clone returns a deep copy.
func (pi PathInfo) Clone() PathInfo {
	out := pi
	out.Required = slices.Clone(pi.Required)
	if pi.MinimalCombinations != nil {
		out.MinimalCombinations = make([]Combination, len(pi.MinimalCombinations))
		for i, c := range pi.MinimalCombinations {
			out.MinimalCombinations[i] = Combination{Units: slices.Clone(c.Units), Votes: c.Votes}
		}
	}

	return out
}

// ElectionAnalysis is the complete output of one analysis call.
type ElectionAnalysis struct {
	// Totals holds called votes per party plus the uncalled bucket under PartyNone.
	Totals VoteTotals `json:"totals"`

	// Winner is the party that reached the threshold, or PartyNone.
	Winner Party `json:"winner"`

	// HasWinner is true iff Winner is a contending party.
	HasWinner bool `json:"hasWinner"`

	// RemainingPaths holds one entry per contending party when there is no winner.
	RemainingPaths map[Party]PathInfo `json:"remainingPaths"`

	// PivotalStates are the uncalled jurisdictions present in every minimal
	// combination of at least one contending party, in identifier order.
	PivotalStates []Jurisdiction `json:"pivotalStates"`

	// Uncalled lists the uncalled units in identifier order.
	Uncalled []Unit `json:"uncalled"`
}

// Clone returns a deep copy so cached analyses never share state with callers.
func (ea ElectionAnalysis) Clone() ElectionAnalysis {
	out := ea
	out.Totals = maps.Clone(ea.Totals)
	out.PivotalStates = slices.Clone(ea.PivotalStates)
	out.Uncalled = slices.Clone(ea.Uncalled)
	if ea.RemainingPaths != nil {
		out.RemainingPaths = make(map[Party]PathInfo, len(ea.RemainingPaths))
		for p, pi := range ea.RemainingPaths {
			out.RemainingPaths[p] = pi.Clone()
		}
	}

	return out
}
