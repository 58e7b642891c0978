package testing

import "github.com/debashishc/electoralcollege/types"

// ScenarioBuilder assembles a PartialResult fluently.
type ScenarioBuilder struct {
	pr types.PartialResult
}

// NewScenario starts a scenario in which every jurisdiction is uncalled.
func NewScenario() *ScenarioBuilder {
	return &ScenarioBuilder{pr: types.NewPartialResult()}
}

// Call assigns every listed jurisdiction to p.
func (b *ScenarioBuilder) Call(p types.Party, js ...types.Jurisdiction) *ScenarioBuilder {
	for _, j := range js {
		b.pr.Call(j, p)
	}

	return b
}

// CallRest assigns every jurisdiction not yet called or split to p.
func (b *ScenarioBuilder) CallRest(p types.Party) *ScenarioBuilder {
	for _, j := range types.Jurisdictions() {
		if _, split := b.pr.Splits[j]; split {
			continue
		}
		if b.pr.Party(j) == types.PartyNone {
			b.pr.Call(j, p)
		}
	}

	return b
}

// Split records district-level results for j.
func (b *ScenarioBuilder) Split(j types.Jurisdiction, atLarge types.Party, districts ...types.Party) *ScenarioBuilder {
	b.pr.Split(j, types.SplitResult{AtLarge: atLarge, Districts: districts})

	return b
}

// Build returns a copy of the scenario; the builder can keep being used.
func (b *ScenarioBuilder) Build() types.PartialResult {
	return b.pr.Clone()
}

// AllUncalled returns a scenario with nothing called.
func AllUncalled() types.PartialResult {
	return types.NewPartialResult()
}

// Clinched returns a scenario in which p carries the twelve largest
// jurisdictions (281 votes) and everything else is uncalled.
func Clinched(p types.Party) types.PartialResult {
	return NewScenario().Call(p,
		types.CA, types.TX, types.FL, types.NY, types.IL, types.PA,
		types.OH, types.GA, types.NC, types.MI, types.NJ, types.VA,
	).Build()
}

// Tied returns a complete 269-269 scenario. Nebraska's second district
// breaks from the rest of the state.
func Tied() types.PartialResult {
	return NewScenario().
		Call(types.PartyDemocrat,
			types.CA, types.FL, types.GA, types.IL, types.MI, types.NC,
			types.NJ, types.NY, types.OH, types.PA, types.TX,
		).
		Split(types.NE, types.PartyRepublican, types.PartyRepublican, types.PartyDemocrat, types.PartyRepublican).
		CallRest(types.PartyRepublican).
		Build()
}

// LastUnitStanding returns a scenario in which both parties hold 268 votes and
// only Maine's two at-large votes are uncalled.
func LastUnitStanding() types.PartialResult {
	return NewScenario().
		Call(types.PartyDemocrat,
			types.CA, types.TX, types.FL, types.NY, types.PA, types.IL,
			types.OH, types.NC, types.GA, types.MI, types.VA,
		).
		Split(types.ME, types.PartyNone, types.PartyDemocrat, types.PartyRepublican).
		CallRest(types.PartyRepublican).
		Build()
}
