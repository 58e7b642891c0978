package registry

import (
	"sync"

	"github.com/debashishc/electoralcollege/types"
)

const minElectoralVotes = 3

// apportionment2024 is the allocation in force for the 2024 and 2028 elections.
var apportionment2024 = []types.JurisdictionInfo{
	// Northeast
	{ID: types.ME, Name: "Maine", ElectoralVotes: 4, Districts: 2, IsSplitVote: true, DistrictVotes: []int{1, 1}, Region: types.RegionNortheast},
	{ID: types.NH, Name: "New Hampshire", ElectoralVotes: 4, Districts: 2, Region: types.RegionNortheast},
	{ID: types.VT, Name: "Vermont", ElectoralVotes: 3, Districts: 1, Region: types.RegionNortheast},
	{ID: types.MA, Name: "Massachusetts", ElectoralVotes: 11, Districts: 9, Region: types.RegionNortheast},
	{ID: types.RI, Name: "Rhode Island", ElectoralVotes: 4, Districts: 2, Region: types.RegionNortheast},
	{ID: types.CT, Name: "Connecticut", ElectoralVotes: 7, Districts: 5, Region: types.RegionNortheast},
	{ID: types.NY, Name: "New York", ElectoralVotes: 28, Districts: 26, Region: types.RegionNortheast},
	{ID: types.NJ, Name: "New Jersey", ElectoralVotes: 14, Districts: 12, Region: types.RegionNortheast},
	{ID: types.PA, Name: "Pennsylvania", ElectoralVotes: 19, Districts: 17, Region: types.RegionNortheast},

	// Midwest
	{ID: types.OH, Name: "Ohio", ElectoralVotes: 17, Districts: 15, Region: types.RegionMidwest},
	{ID: types.IN, Name: "Indiana", ElectoralVotes: 11, Districts: 9, Region: types.RegionMidwest},
	{ID: types.IL, Name: "Illinois", ElectoralVotes: 19, Districts: 17, Region: types.RegionMidwest},
	{ID: types.MI, Name: "Michigan", ElectoralVotes: 15, Districts: 13, Region: types.RegionMidwest},
	{ID: types.WI, Name: "Wisconsin", ElectoralVotes: 10, Districts: 8, Region: types.RegionMidwest},
	{ID: types.MN, Name: "Minnesota", ElectoralVotes: 10, Districts: 8, Region: types.RegionMidwest},
	{ID: types.IA, Name: "Iowa", ElectoralVotes: 6, Districts: 4, Region: types.RegionMidwest},
	{ID: types.MO, Name: "Missouri", ElectoralVotes: 10, Districts: 8, Region: types.RegionMidwest},
	{ID: types.ND, Name: "North Dakota", ElectoralVotes: 3, Districts: 1, Region: types.RegionMidwest},
	{ID: types.SD, Name: "South Dakota", ElectoralVotes: 3, Districts: 1, Region: types.RegionMidwest},
	{ID: types.NE, Name: "Nebraska", ElectoralVotes: 5, Districts: 3, IsSplitVote: true, DistrictVotes: []int{1, 1, 1}, Region: types.RegionMidwest},
	{ID: types.KS, Name: "Kansas", ElectoralVotes: 6, Districts: 4, Region: types.RegionMidwest},

	// South
	{ID: types.DE, Name: "Delaware", ElectoralVotes: 3, Districts: 1, Region: types.RegionSouth},
	{ID: types.MD, Name: "Maryland", ElectoralVotes: 10, Districts: 8, Region: types.RegionSouth},
	{ID: types.VA, Name: "Virginia", ElectoralVotes: 13, Districts: 11, Region: types.RegionSouth},
	{ID: types.WV, Name: "West Virginia", ElectoralVotes: 4, Districts: 2, Region: types.RegionSouth},
	{ID: types.NC, Name: "North Carolina", ElectoralVotes: 16, Districts: 14, Region: types.RegionSouth},
	{ID: types.SC, Name: "South Carolina", ElectoralVotes: 9, Districts: 7, Region: types.RegionSouth},
	{ID: types.GA, Name: "Georgia", ElectoralVotes: 16, Districts: 14, Region: types.RegionSouth},
	{ID: types.FL, Name: "Florida", ElectoralVotes: 30, Districts: 28, Region: types.RegionSouth},
	{ID: types.KY, Name: "Kentucky", ElectoralVotes: 8, Districts: 6, Region: types.RegionSouth},
	{ID: types.TN, Name: "Tennessee", ElectoralVotes: 11, Districts: 9, Region: types.RegionSouth},
	{ID: types.AL, Name: "Alabama", ElectoralVotes: 9, Districts: 7, Region: types.RegionSouth},
	{ID: types.MS, Name: "Mississippi", ElectoralVotes: 6, Districts: 4, Region: types.RegionSouth},
	{ID: types.AR, Name: "Arkansas", ElectoralVotes: 6, Districts: 4, Region: types.RegionSouth},
	{ID: types.LA, Name: "Louisiana", ElectoralVotes: 8, Districts: 6, Region: types.RegionSouth},
	{ID: types.OK, Name: "Oklahoma", ElectoralVotes: 7, Districts: 5, Region: types.RegionSouth},
	{ID: types.TX, Name: "Texas", ElectoralVotes: 40, Districts: 38, Region: types.RegionSouth},

	// West
	{ID: types.MT, Name: "Montana", ElectoralVotes: 4, Districts: 2, Region: types.RegionWest},
	{ID: types.ID, Name: "Idaho", ElectoralVotes: 4, Districts: 2, Region: types.RegionWest},
	{ID: types.WY, Name: "Wyoming", ElectoralVotes: 3, Districts: 1, Region: types.RegionWest},
	{ID: types.CO, Name: "Colorado", ElectoralVotes: 10, Districts: 8, Region: types.RegionWest},
	{ID: types.NM, Name: "New Mexico", ElectoralVotes: 5, Districts: 3, Region: types.RegionWest},
	{ID: types.AZ, Name: "Arizona", ElectoralVotes: 11, Districts: 9, Region: types.RegionWest},
	{ID: types.UT, Name: "Utah", ElectoralVotes: 6, Districts: 4, Region: types.RegionWest},
	{ID: types.NV, Name: "Nevada", ElectoralVotes: 6, Districts: 4, Region: types.RegionWest},
	{ID: types.WA, Name: "Washington", ElectoralVotes: 12, Districts: 10, Region: types.RegionWest},
	{ID: types.OR, Name: "Oregon", ElectoralVotes: 8, Districts: 6, Region: types.RegionWest},
	{ID: types.CA, Name: "California", ElectoralVotes: 54, Districts: 52, Region: types.RegionWest},
	{ID: types.AK, Name: "Alaska", ElectoralVotes: 3, Districts: 1, Region: types.RegionWest},
	{ID: types.HI, Name: "Hawaii", ElectoralVotes: 4, Districts: 2, Region: types.RegionWest},

	// District of Columbia
	{ID: types.DC, Name: "District of Columbia", ElectoralVotes: 3, Region: types.RegionDistrict},
}

var defaultRegistry = sync.OnceValue(func() *Static {
	s, err := NewStatic(apportionment2024)
	if err != nil {
		panic("registry: built-in table is invalid: " + err.Error())
	}

	return s
})

// Default returns the built-in registry.
//
// The registry is built and validated once per process and shared by all callers.
//
// Returns:
//   - *Static: The shared, immutable built-in registry
func Default() *Static {
	return defaultRegistry()
}

// DefaultRows returns a copy of the built-in table, e.g. as a starting point
// for a custom registry.
func DefaultRows() []types.JurisdictionInfo {
	out := make([]types.JurisdictionInfo, len(apportionment2024))
	for i, row := range apportionment2024 {
		out[i] = row.Clone()
	}

	return out
}
