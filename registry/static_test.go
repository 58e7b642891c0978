package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/debashishc/electoralcollege/types"
)

func rowsWith(mutate func(rows []types.JurisdictionInfo)) []types.JurisdictionInfo {
	rows := DefaultRows()
	mutate(rows)

	return rows
}

func rowIndex(rows []types.JurisdictionInfo, j types.Jurisdiction) int {
	for i, row := range rows {
		if row.ID == j {
			return i
		}
	}

	return -1
}

func TestDefault(t *testing.T) {
	t.Run("covers every jurisdiction once", func(t *testing.T) {
		reg := Default()

		all := reg.All()
		require.Len(t, all, types.JurisdictionCount)
		for i, row := range all {
			require.Equal(t, types.Jurisdictions()[i], row.ID)
		}
		require.Equal(t, types.TotalElectoralVotes, reg.Total())
	})

	t.Run("returns the same instance", func(t *testing.T) {
		require.Same(t, Default(), Default())
	})

	t.Run("split-vote jurisdictions", func(t *testing.T) {
		reg := Default()

		me, err := reg.Lookup(types.ME)
		require.NoError(t, err)
		require.True(t, me.IsSplitVote)
		require.Equal(t, []int{1, 1}, me.DistrictVotes)
		require.Equal(t, 2, me.AtLargeVotes())

		ne, err := reg.Lookup(types.NE)
		require.NoError(t, err)
		require.True(t, ne.IsSplitVote)
		require.Equal(t, 5, ne.ElectoralVotes)
		require.Len(t, ne.DistrictVotes, 3)

		split := 0
		for _, row := range reg.All() {
			if row.IsSplitVote {
				split++
			}
		}
		require.Equal(t, 2, split)
	})

	t.Run("large states", func(t *testing.T) {
		reg := Default()
		for j, votes := range map[types.Jurisdiction]int{
			types.CA: 54, types.TX: 40, types.FL: 30, types.NY: 28,
			types.PA: 19, types.DC: 3, types.WY: 3,
		} {
			info, err := reg.Lookup(j)
			require.NoError(t, err)
			require.Equal(t, votes, info.ElectoralVotes, j.String())
		}
	})
}

func TestStatic_Lookup(t *testing.T) {
	t.Run("rejects unknown identifier", func(t *testing.T) {
		_, err := Default().Lookup(types.Jurisdiction(99))

		require.ErrorIs(t, err, types.ErrInvalidJurisdiction)
		var jerr *types.JurisdictionError
		require.ErrorAs(t, err, &jerr)
	})

	t.Run("returned rows do not alias the registry", func(t *testing.T) {
		reg := Default()

		info, err := reg.Lookup(types.NE)
		require.NoError(t, err)
		info.DistrictVotes[0] = 99
		info.ElectoralVotes = 0

		again, err := reg.Lookup(types.NE)
		require.NoError(t, err)
		require.Equal(t, []int{1, 1, 1}, again.DistrictVotes)
		require.Equal(t, 5, again.ElectoralVotes)

		all := reg.All()
		all[rowIndex(all, types.CA)].ElectoralVotes = 1
		ca, _ := reg.Lookup(types.CA)
		require.Equal(t, 54, ca.ElectoralVotes)
	})
}

func TestStatic_InRegion(t *testing.T) {
	reg := Default()

	want := map[types.Region]int{
		types.RegionNortheast: 9,
		types.RegionMidwest:   12,
		types.RegionSouth:     16,
		types.RegionWest:      13,
		types.RegionDistrict:  1,
	}
	total := 0
	for r, n := range want {
		members := reg.InRegion(r)
		require.Len(t, members, n, r.String())
		total += len(members)
	}
	require.Equal(t, types.JurisdictionCount, total)
	require.Equal(t, []types.Jurisdiction{types.DC}, reg.InRegion(types.RegionDistrict))
}

func TestValidate(t *testing.T) {
	t.Run("accepts the built-in table", func(t *testing.T) {
		require.NoError(t, Validate(DefaultRows()))
	})

	tests := []struct {
		name   string
		mutate func(rows []types.JurisdictionInfo)
		rows   []types.JurisdictionInfo
	}{
		{
			name: "missing row",
			rows: DefaultRows()[1:],
		},
		{
			name: "duplicate row",
			mutate: func(rows []types.JurisdictionInfo) {
				rows[rowIndex(rows, types.VT)] = rows[rowIndex(rows, types.WY)].Clone()
			},
		},
		{
			name: "votes do not sum to 538",
			mutate: func(rows []types.JurisdictionInfo) {
				i := rowIndex(rows, types.CA)
				rows[i].ElectoralVotes = 55
				rows[i].Districts = 53
			},
		},
		{
			name: "districts do not match votes",
			mutate: func(rows []types.JurisdictionInfo) {
				rows[rowIndex(rows, types.OH)].Districts = 16
			},
		},
		{
			name: "unknown region",
			mutate: func(rows []types.JurisdictionInfo) {
				rows[rowIndex(rows, types.OH)].Region = 0
			},
		},
		{
			name: "district of columbia with districts",
			mutate: func(rows []types.JurisdictionInfo) {
				rows[rowIndex(rows, types.DC)].Districts = 1
			},
		},
		{
			name: "split row with wrong district count",
			mutate: func(rows []types.JurisdictionInfo) {
				rows[rowIndex(rows, types.NE)].DistrictVotes = []int{1, 1}
			},
		},
		{
			name: "split row with multi-vote district",
			mutate: func(rows []types.JurisdictionInfo) {
				rows[rowIndex(rows, types.ME)].DistrictVotes = []int{2, 0}
			},
		},
		{
			name: "winner-take-all row with district votes",
			mutate: func(rows []types.JurisdictionInfo) {
				rows[rowIndex(rows, types.NH)].DistrictVotes = []int{1, 1}
			},
		},
		{
			name: "invalid identifier",
			mutate: func(rows []types.JurisdictionInfo) {
				rows[0].ID = 0
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := tt.rows
			if tt.mutate != nil {
				rows = rowsWith(tt.mutate)
			}

			err := Validate(rows)
			require.ErrorIs(t, err, types.ErrInvalidRegistry)

			reg, err := NewStatic(rows)
			require.Error(t, err)
			require.Nil(t, reg)
		})
	}
}

func TestNewStatic_CopiesInput(t *testing.T) {
	rows := DefaultRows()
	reg, err := NewStatic(rows)
	require.NoError(t, err)

	rows[rowIndex(rows, types.ME)].DistrictVotes[0] = 7

	me, err := reg.Lookup(types.ME)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1}, me.DistrictVotes)
}

func TestMetadata(t *testing.T) {
	t.Run("swing states", func(t *testing.T) {
		for _, j := range []types.Jurisdiction{types.AZ, types.GA, types.MI, types.NV, types.PA, types.WI} {
			require.True(t, IsSwing(j), j.String())
		}
		require.False(t, IsSwing(types.CA))
		require.False(t, IsSwing(types.DC))
	})

	t.Run("historical leaning", func(t *testing.T) {
		require.Equal(t, types.PartyDemocrat, HistoricalLeaning(types.CA))
		require.Equal(t, types.PartyRepublican, HistoricalLeaning(types.WY))
		require.Equal(t, types.PartyNone, HistoricalLeaning(types.PA))
	})

	t.Run("state summary", func(t *testing.T) {
		sum, err := Default().Summary(types.PA)
		require.NoError(t, err)
		require.Equal(t, StateSummary{
			Code:              "PA",
			Name:              "Pennsylvania",
			ElectoralVotes:    19,
			Region:            types.RegionNortheast,
			IsSwing:           true,
			HistoricalLeaning: types.PartyNone,
		}, sum)

		_, err = Default().Summary(0)
		require.ErrorIs(t, err, types.ErrInvalidJurisdiction)
	})

	t.Run("region summary", func(t *testing.T) {
		reg := Default()
		require.Equal(t, RegionSummary{Region: types.RegionWest, States: 13, ElectoralVotes: 130, SwingStates: 2},
			reg.RegionSummary(types.RegionWest))
		require.Equal(t, RegionSummary{Region: types.RegionSouth, States: 16, ElectoralVotes: 196, SwingStates: 1},
			reg.RegionSummary(types.RegionSouth))

		total := 0
		for _, r := range types.Regions() {
			total += reg.RegionSummary(r).ElectoralVotes
		}
		require.Equal(t, types.TotalElectoralVotes, total)
	})
}
