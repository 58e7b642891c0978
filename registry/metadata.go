package registry

import "github.com/debashishc/electoralcollege/types"

// Historically contested jurisdictions and long-run partisan leanings. These
// are descriptive labels only; the analysis engine never consults them.
var (
	swingStates = map[types.Jurisdiction]bool{
		types.AZ: true, types.GA: true, types.MI: true,
		types.NV: true, types.PA: true, types.WI: true,
	}

	historicalLeaning = map[types.Jurisdiction]types.Party{
		types.CA: types.PartyDemocrat,
		types.NY: types.PartyDemocrat,
		types.IL: types.PartyDemocrat,
		types.MA: types.PartyDemocrat,
		types.TX: types.PartyRepublican,
		types.WY: types.PartyRepublican,
		types.ID: types.PartyRepublican,
		types.UT: types.PartyRepublican,
	}
)

// IsSwing reports whether j is a historically contested jurisdiction.
func IsSwing(j types.Jurisdiction) bool {
	return swingStates[j]
}

// HistoricalLeaning returns the party that has historically carried j, or
// PartyNone if j is competitive.
func HistoricalLeaning(j types.Jurisdiction) types.Party {
	return historicalLeaning[j]
}

// StateSummary describes one jurisdiction for display.
type StateSummary struct {
	Code              string       `json:"code"`
	Name              string       `json:"name"`
	ElectoralVotes    int          `json:"electoralVotes"`
	Region            types.Region `json:"region"`
	IsSplitVote       bool         `json:"isSplitVote"`
	IsSwing           bool         `json:"isSwing"`
	HistoricalLeaning types.Party  `json:"historicalLeaning"`
}

// RegionSummary aggregates the jurisdictions of one region.
type RegionSummary struct {
	Region         types.Region `json:"region"`
	States         int          `json:"states"`
	ElectoralVotes int          `json:"electoralVotes"`
	SwingStates    int          `json:"swingStates"`
}

// Summary returns display information for j.
func (s *Static) Summary(j types.Jurisdiction) (StateSummary, error) {
	info, err := s.Lookup(j)
	if err != nil {
		return StateSummary{}, err
	}

	return StateSummary{
		Code:              j.String(),
		Name:              info.Name,
		ElectoralVotes:    info.ElectoralVotes,
		Region:            info.Region,
		IsSplitVote:       info.IsSplitVote,
		IsSwing:           IsSwing(j),
		HistoricalLeaning: HistoricalLeaning(j),
	}, nil
}

// RegionSummary returns state count, votes and swing-state count for r.
func (s *Static) RegionSummary(r types.Region) RegionSummary {
	sum := RegionSummary{Region: r}
	for _, j := range s.byRegion[r] {
		sum.States++
		sum.ElectoralVotes += s.rows[j].ElectoralVotes
		if IsSwing(j) {
			sum.SwingStates++
		}
	}

	return sum
}
