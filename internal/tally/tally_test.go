package tally

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/debashishc/electoralcollege/registry"
	"github.com/debashishc/electoralcollege/types"
)

func callAll(p types.Party, js ...types.Jurisdiction) types.PartialResult {
	pr := types.NewPartialResult()
	for _, j := range js {
		pr.Call(j, p)
	}

	return pr
}

func TestAggregate(t *testing.T) {
	reg := registry.Default()

	t.Run("all uncalled", func(t *testing.T) {
		got, err := Aggregate(reg, types.NewPartialResult())

		require.NoError(t, err)
		require.Equal(t, types.VoteTotals{
			types.PartyNone:       538,
			types.PartyDemocrat:   0,
			types.PartyRepublican: 0,
		}, got.Totals)
		require.Len(t, got.Uncalled, types.JurisdictionCount)
		require.Equal(t, types.WholeUnit(types.AK), got.Uncalled[0])
	})

	t.Run("zero value scenario", func(t *testing.T) {
		got, err := Aggregate(reg, types.PartialResult{})

		require.NoError(t, err)
		require.Equal(t, 538, got.Totals.Uncalled())
	})

	t.Run("winner-take-all calls", func(t *testing.T) {
		pr := callAll(types.PartyDemocrat, types.CA, types.NY)
		pr.Call(types.TX, types.PartyRepublican)
		pr.Call(types.FL, types.PartyNone)

		got, err := Aggregate(reg, pr)

		require.NoError(t, err)
		require.Equal(t, 82, got.Totals.Get(types.PartyDemocrat))
		require.Equal(t, 40, got.Totals.Get(types.PartyRepublican))
		require.Equal(t, 538-122, got.Totals.Uncalled())
		require.Equal(t, types.TotalElectoralVotes, got.Totals.Sum())
		require.Len(t, got.Uncalled, types.JurisdictionCount-3)
		require.Contains(t, got.Uncalled, types.WholeUnit(types.FL))
		require.NotContains(t, got.Uncalled, types.WholeUnit(types.CA))
	})

	t.Run("bare call on split-vote jurisdiction awards every vote", func(t *testing.T) {
		got, err := Aggregate(reg, callAll(types.PartyRepublican, types.NE))

		require.NoError(t, err)
		require.Equal(t, 5, got.Totals.Get(types.PartyRepublican))
	})

	t.Run("split results allocate by district", func(t *testing.T) {
		pr := callAll(types.PartyDemocrat, types.NE)
		pr.Split(types.NE, types.SplitResult{
			AtLarge:   types.PartyRepublican,
			Districts: []types.Party{types.PartyRepublican, types.PartyDemocrat, types.PartyRepublican},
		})
		pr.Split(types.ME, types.SplitResult{
			AtLarge:   types.PartyDemocrat,
			Districts: []types.Party{types.PartyDemocrat, types.PartyNone},
		})

		got, err := Aggregate(reg, pr)

		require.NoError(t, err)
		require.Equal(t, 4, got.Totals.Get(types.PartyRepublican))
		require.Equal(t, 1+3, got.Totals.Get(types.PartyDemocrat))
		require.Equal(t, 538-8, got.Totals.Uncalled())
		require.Contains(t, got.Uncalled, types.Unit{Jurisdiction: types.ME, Portion: types.District(2)})
		require.NotContains(t, got.Uncalled, types.WholeUnit(types.ME))
		require.NotContains(t, got.Uncalled, types.WholeUnit(types.NE))
	})

	t.Run("fully uncalled split collapses to whole unit", func(t *testing.T) {
		pr := types.NewPartialResult()
		pr.Split(types.ME, types.SplitResult{Districts: []types.Party{types.PartyNone, types.PartyNone}})

		got, err := Aggregate(reg, pr)

		require.NoError(t, err)
		require.Contains(t, got.Uncalled, types.WholeUnit(types.ME))
		require.Len(t, got.Uncalled, types.JurisdictionCount)
	})

	t.Run("partially called split lists portions in order", func(t *testing.T) {
		pr := types.NewPartialResult()
		pr.Split(types.NE, types.SplitResult{
			Districts: []types.Party{types.PartyRepublican, types.PartyNone, types.PartyNone},
		})

		got, err := Aggregate(reg, pr)

		require.NoError(t, err)
		var ne []types.Unit
		for _, u := range got.Uncalled {
			if u.Jurisdiction == types.NE {
				ne = append(ne, u)
			}
		}
		require.Equal(t, []types.Unit{
			{Jurisdiction: types.NE, Portion: types.PortionAtLarge},
			{Jurisdiction: types.NE, Portion: types.District(2)},
			{Jurisdiction: types.NE, Portion: types.District(3)},
		}, ne)
	})
}

func TestAggregate_Errors(t *testing.T) {
	reg := registry.Default()

	t.Run("unknown jurisdiction", func(t *testing.T) {
		pr := callAll(types.PartyDemocrat, types.CA)
		pr.Call(types.Jurisdiction(77), types.PartyDemocrat)

		_, err := Aggregate(reg, pr)

		var jerr *types.JurisdictionError
		require.ErrorAs(t, err, &jerr)
		require.Equal(t, "Jurisdiction(77)", jerr.Value)
		require.ErrorIs(t, err, types.ErrInvalidJurisdiction)
	})

	t.Run("invalid party", func(t *testing.T) {
		pr := callAll(types.Party(9), types.OH)

		_, err := Aggregate(reg, pr)

		var perr *types.PartyError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, types.OH, perr.Jurisdiction)
		require.ErrorIs(t, err, types.ErrInvalidParty)
	})

	t.Run("split on winner-take-all jurisdiction", func(t *testing.T) {
		pr := types.NewPartialResult()
		pr.Split(types.PA, types.SplitResult{AtLarge: types.PartyDemocrat})

		_, err := Aggregate(reg, pr)
		require.ErrorIs(t, err, types.ErrInvalidJurisdiction)
	})

	t.Run("split with wrong district count", func(t *testing.T) {
		pr := types.NewPartialResult()
		pr.Split(types.NE, types.SplitResult{Districts: []types.Party{types.PartyDemocrat}})

		_, err := Aggregate(reg, pr)
		require.ErrorIs(t, err, types.ErrInvalidJurisdiction)
	})

	t.Run("split with invalid district party", func(t *testing.T) {
		pr := types.NewPartialResult()
		pr.Split(types.ME, types.SplitResult{Districts: []types.Party{types.PartyDemocrat, types.Party(5)}})

		_, err := Aggregate(reg, pr)
		require.ErrorIs(t, err, types.ErrInvalidParty)
	})

	t.Run("unknown split key", func(t *testing.T) {
		pr := types.NewPartialResult()
		pr.Split(types.Jurisdiction(0), types.SplitResult{})

		_, err := Aggregate(reg, pr)
		require.ErrorIs(t, err, types.ErrInvalidJurisdiction)
	})
}

func TestAggregate_ConservesVotes(t *testing.T) {
	reg := registry.Default()
	parties := []types.Party{types.PartyNone, types.PartyDemocrat, types.PartyRepublican}

	for seed := range 20 {
		pr := types.NewPartialResult()
		for i, j := range types.Jurisdictions() {
			pr.Call(j, parties[(i*7+seed)%3])
		}
		pr.Split(types.NE, types.SplitResult{
			AtLarge:   parties[seed%3],
			Districts: []types.Party{parties[(seed+1)%3], parties[(seed+2)%3], parties[seed%3]},
		})

		got, err := Aggregate(reg, pr)
		require.NoError(t, err)

		uncalled := 0
		for _, u := range got.Uncalled {
			v, err := UnitVotes(reg, u)
			require.NoError(t, err)
			uncalled += v
		}
		require.Equal(t, got.Totals.Uncalled(), uncalled)
		require.Equal(t, types.TotalElectoralVotes, got.Totals.Called()+uncalled)
	}
}

func TestDetermineWinner(t *testing.T) {
	tests := []struct {
		name      string
		totals    types.VoteTotals
		winner    types.Party
		hasWinner bool
		wantErr   error
	}{
		{
			name:   "no winner",
			totals: types.VoteTotals{types.PartyDemocrat: 269, types.PartyRepublican: 269},
		},
		{
			name:      "exactly at threshold",
			totals:    types.VoteTotals{types.PartyDemocrat: 200, types.PartyRepublican: 270, types.PartyNone: 68},
			winner:    types.PartyRepublican,
			hasWinner: true,
		},
		{
			name:      "landslide",
			totals:    types.VoteTotals{types.PartyDemocrat: 400, types.PartyRepublican: 138},
			winner:    types.PartyDemocrat,
			hasWinner: true,
		},
		{
			name:    "two winners",
			totals:  types.VoteTotals{types.PartyDemocrat: 270, types.PartyRepublican: 270},
			wantErr: types.ErrInconsistentTotals,
		},
		{
			name:    "more votes than exist",
			totals:  types.VoteTotals{types.PartyDemocrat: 300, types.PartyRepublican: 250},
			wantErr: types.ErrInconsistentTotals,
		},
		{
			name:    "negative total",
			totals:  types.VoteTotals{types.PartyDemocrat: -1},
			wantErr: types.ErrInconsistentTotals,
		},
		{
			name: "empty totals",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winner, ok, err := DetermineWinner(tt.totals)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var terr *types.InconsistentTotalsError
				require.ErrorAs(t, err, &terr)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.winner, winner)
			require.Equal(t, tt.hasWinner, ok)
		})
	}
}

func TestByRegion(t *testing.T) {
	reg := registry.Default()
	pr := callAll(types.PartyDemocrat, types.CA, types.NY)
	pr.Call(types.TX, types.PartyRepublican)

	got, err := ByRegion(reg, pr)
	require.NoError(t, err)
	require.Len(t, got, len(types.Regions()))

	require.Equal(t, 54, got[types.RegionWest].Totals.Get(types.PartyDemocrat))
	require.Equal(t, 28, got[types.RegionNortheast].Totals.Get(types.PartyDemocrat))
	require.Equal(t, 40, got[types.RegionSouth].Totals.Get(types.PartyRepublican))
	require.Equal(t, 3, got[types.RegionDistrict].Totals.Uncalled())

	national, err := Aggregate(reg, pr)
	require.NoError(t, err)
	for _, p := range []types.Party{types.PartyNone, types.PartyDemocrat, types.PartyRepublican} {
		sum := 0
		for _, r := range types.Regions() {
			sum += got[r].Totals.Get(p)
		}
		require.Equal(t, national.Totals.Get(p), sum, p.String())
	}

	_, err = ByRegion(reg, callAll(types.PartyDemocrat, types.Jurisdiction(60)))
	require.ErrorIs(t, err, types.ErrInvalidJurisdiction)
}

func TestUnitVotes(t *testing.T) {
	reg := registry.Default()

	v, err := UnitVotes(reg, types.WholeUnit(types.CA))
	require.NoError(t, err)
	require.Equal(t, 54, v)

	v, err = UnitVotes(reg, types.Unit{Jurisdiction: types.NE, Portion: types.PortionAtLarge})
	require.NoError(t, err)
	require.Equal(t, 2, v)

	v, err = UnitVotes(reg, types.Unit{Jurisdiction: types.NE, Portion: types.District(3)})
	require.NoError(t, err)
	require.Equal(t, 1, v)

	_, err = UnitVotes(reg, types.Unit{Jurisdiction: types.NE, Portion: types.District(4)})
	require.ErrorIs(t, err, types.ErrInvalidJurisdiction)

	_, err = UnitVotes(reg, types.Unit{Jurisdiction: types.CA, Portion: types.PortionAtLarge})
	require.ErrorIs(t, err, types.ErrInvalidJurisdiction)
}
