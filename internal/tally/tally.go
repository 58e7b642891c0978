// Package tally aggregates a scenario into per-party electoral vote totals and
// applies the majority threshold.
package tally

import (
	"fmt"
	"maps"
	"slices"

	"github.com/debashishc/electoralcollege/types"
)

// Tally is the aggregation of one scenario.
type Tally struct {
	// Totals holds called votes per party plus the uncalled bucket under PartyNone.
	// Both major parties and PartyNone are always present.
	Totals types.VoteTotals

	// Uncalled lists the uncalled units in identifier order.
	Uncalled []types.Unit
}

// Aggregate sums electoral votes per party.
//
// Winner-take-all jurisdictions award every vote to the called party. For a
// split-vote jurisdiction a Splits entry takes precedence over Calls and awards
// the at-large block and each district separately; a split entry whose
// portions are all uncalled leaves the jurisdiction uncalled as a whole.
//
// Parameters:
//   - reg: Registry supplying vote counts
//   - partial: Scenario to aggregate
//
// Returns:
//   - Tally: Totals and uncalled units
//   - error: *JurisdictionError, *PartyError or *InconsistentTotalsError
func Aggregate(reg types.Registry, partial types.PartialResult) (Tally, error) {
	if err := Check(reg, partial); err != nil {
		return Tally{}, err
	}

	return aggregateOver(reg.All(), partial)
}

// ByRegion aggregates the scenario separately for each region.
//
// Every region is present in the result, including regions with no called
// jurisdictions.
func ByRegion(reg types.Registry, partial types.PartialResult) (map[types.Region]Tally, error) {
	if err := Check(reg, partial); err != nil {
		return nil, err
	}

	grouped := make(map[types.Region][]types.JurisdictionInfo, len(types.Regions()))
	for _, info := range reg.All() {
		grouped[info.Region] = append(grouped[info.Region], info)
	}

	out := make(map[types.Region]Tally, len(types.Regions()))
	for _, r := range types.Regions() {
		t, err := aggregateOver(grouped[r], partial)
		if err != nil {
			return nil, fmt.Errorf("region %s: %w", r, err)
		}
		out[r] = t
	}

	return out, nil
}

// Check validates a scenario against the registry without aggregating it.
//
// Keys are checked in identifier order so the first reported error is stable.
func Check(reg types.Registry, partial types.PartialResult) error {
	for _, j := range slices.Sorted(maps.Keys(partial.Calls)) {
		if !j.Valid() {
			return &types.JurisdictionError{Value: j.String(), Reason: "unknown identifier"}
		}
		if p := partial.Calls[j]; !p.Valid() {
			return &types.PartyError{Jurisdiction: j, Value: p.String()}
		}
	}

	for _, j := range slices.Sorted(maps.Keys(partial.Splits)) {
		info, err := reg.Lookup(j)
		if err != nil {
			return err
		}
		if !info.IsSplitVote {
			return &types.JurisdictionError{Value: j.String(), Reason: "district results supplied for a winner-take-all jurisdiction"}
		}

		sr := partial.Splits[j]
		if len(sr.Districts) != len(info.DistrictVotes) {
			return &types.JurisdictionError{
				Value:  j.String(),
				Reason: fmt.Sprintf("expected %d district results, got %d", len(info.DistrictVotes), len(sr.Districts)),
			}
		}
		if !sr.AtLarge.Valid() {
			return &types.PartyError{Jurisdiction: j, Value: sr.AtLarge.String()}
		}
		for _, p := range sr.Districts {
			if !p.Valid() {
				return &types.PartyError{Jurisdiction: j, Value: p.String()}
			}
		}
	}

	return nil
}

func aggregateOver(rows []types.JurisdictionInfo, partial types.PartialResult) (Tally, error) {
	t := Tally{Totals: types.VoteTotals{types.PartyNone: 0}}
	for _, p := range types.Parties() {
		t.Totals[p] = 0
	}

	expected := 0
	for _, info := range rows {
		expected += info.ElectoralVotes

		sr, ok := partial.Splits[info.ID]
		if !ok {
			p := partial.Calls[info.ID]
			t.Totals[p] += info.ElectoralVotes
			if p == types.PartyNone {
				t.Uncalled = append(t.Uncalled, types.WholeUnit(info.ID))
			}

			continue
		}

		t.addSplit(info, sr)
	}

	if sum := t.Totals.Sum(); sum != expected {
		return Tally{}, &types.InconsistentTotalsError{
			Totals: t.Totals,
			Reason: fmt.Sprintf("aggregated %d votes, registry holds %d", sum, expected),
		}
	}

	return t, nil
}

func (t *Tally) addSplit(info types.JurisdictionInfo, sr types.SplitResult) {
	var open []types.Unit

	t.Totals[sr.AtLarge] += info.AtLargeVotes()
	if sr.AtLarge == types.PartyNone {
		open = append(open, types.Unit{Jurisdiction: info.ID, Portion: types.PortionAtLarge})
	}
	for i, p := range sr.Districts {
		t.Totals[p] += info.DistrictVotes[i]
		if p == types.PartyNone {
			open = append(open, types.Unit{Jurisdiction: info.ID, Portion: types.District(i + 1)})
		}
	}

	if len(open) == len(sr.Districts)+1 {
		t.Uncalled = append(t.Uncalled, types.WholeUnit(info.ID))

		return
	}
	t.Uncalled = append(t.Uncalled, open...)
}

// DetermineWinner applies the majority threshold.
//
// Returns:
//   - types.Party: The party at or above MajorityThreshold, or PartyNone
//   - bool: true if a party has won
//   - error: *InconsistentTotalsError if more than one party reached the
//     threshold or the called votes exceed the national total
func DetermineWinner(totals types.VoteTotals) (types.Party, bool, error) {
	if called := totals.Called(); called > types.TotalElectoralVotes {
		return types.PartyNone, false, &types.InconsistentTotalsError{
			Totals: totals,
			Reason: fmt.Sprintf("%d votes called, only %d exist", called, types.TotalElectoralVotes),
		}
	}

	winner := types.PartyNone
	for _, p := range types.Parties() {
		v := totals.Get(p)
		if v < 0 {
			return types.PartyNone, false, &types.InconsistentTotalsError{
				Totals: totals,
				Reason: fmt.Sprintf("negative total for %s", p),
			}
		}
		if v < types.MajorityThreshold {
			continue
		}
		if winner != types.PartyNone {
			return types.PartyNone, false, &types.InconsistentTotalsError{
				Totals: totals,
				Reason: "more than one party reached the majority threshold",
			}
		}
		winner = p
	}

	return winner, winner != types.PartyNone, nil
}

// UnitVotes returns the electoral votes carried by u.
func UnitVotes(reg types.Registry, u types.Unit) (int, error) {
	info, err := reg.Lookup(u.Jurisdiction)
	if err != nil {
		return 0, err
	}
	v, ok := info.UnitVotes(u.Portion)
	if !ok {
		return 0, &types.JurisdictionError{Value: u.String(), Reason: "no such portion"}
	}

	return v, nil
}
