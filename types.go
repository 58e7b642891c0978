package electoralcollege

import "github.com/debashishc/electoralcollege/types"

// Re-export the data model from the types package.
//
// The definitions live in types so that registry, pathsearch and the internal
// packages can share them without importing this package.
type (
	Jurisdiction     = types.Jurisdiction
	JurisdictionInfo = types.JurisdictionInfo
	Party            = types.Party
	Region           = types.Region
	Portion          = types.Portion
	Unit             = types.Unit
	PartialResult    = types.PartialResult
	SplitResult      = types.SplitResult
	VoteTotals       = types.VoteTotals
	Combination      = types.Combination
	PathInfo         = types.PathInfo
	ElectionAnalysis = types.ElectionAnalysis
)

// Re-export interfaces from the types package.
type (
	Registry         = types.Registry
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export typed errors from the types package.
type (
	JurisdictionError       = types.JurisdictionError
	PartyError              = types.PartyError
	InconsistentTotalsError = types.InconsistentTotalsError
	PreconditionError       = types.PreconditionError
)

// Re-export party and threshold constants.
const (
	PartyNone       = types.PartyNone
	PartyDemocrat   = types.PartyDemocrat
	PartyRepublican = types.PartyRepublican

	TotalElectoralVotes = types.TotalElectoralVotes
	MajorityThreshold   = types.MajorityThreshold
)
