package electoralcollege

import "github.com/debashishc/electoralcollege/types"

// Sentinel errors re-exported from the types package.
var (
	// ErrInvalidJurisdiction is returned for unknown identifiers and district
	// data that does not fit the jurisdiction.
	ErrInvalidJurisdiction = types.ErrInvalidJurisdiction

	// ErrInvalidParty is returned for malformed party tags.
	ErrInvalidParty = types.ErrInvalidParty

	// ErrInconsistentTotals is returned when aggregation breaks an invariant.
	ErrInconsistentTotals = types.ErrInconsistentTotals

	// ErrPrecondition is returned when a path search is requested for a decided party.
	ErrPrecondition = types.ErrPrecondition

	// ErrInvalidRegistry is returned when a registry table fails validation.
	ErrInvalidRegistry = types.ErrInvalidRegistry

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrRegistryRequired is returned when no registry is supplied or configured.
	ErrRegistryRequired = types.ErrRegistryRequired
)
