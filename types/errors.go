package types

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for the electoral college library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// Input-contract failures are returned as typed errors carrying the offending
// value; each typed error unwraps to one of the sentinels below. None of these
// are transient: callers must not retry.

// Analysis errors - input-contract and invariant failures of the analysis engine.
var (
	// ErrInvalidJurisdiction is returned when an identifier is not one of the 51 jurisdictions,
	// or when district-level data does not fit the jurisdiction.
	ErrInvalidJurisdiction = errors.New("invalid jurisdiction")

	// ErrInvalidParty is returned when a value is not a known party tag.
	ErrInvalidParty = errors.New("invalid party")

	// ErrInconsistentTotals is returned when aggregation violates its invariants,
	// e.g. two parties at or above the majority threshold at once.
	ErrInconsistentTotals = errors.New("inconsistent vote totals")

	// ErrPrecondition is returned when the path search is invoked for a party
	// that has already reached the majority threshold.
	ErrPrecondition = errors.New("precondition failed")
)

// Setup errors - returned while constructing registries and analyzers.
var (
	// ErrInvalidRegistry is returned when a registry table fails validation.
	ErrInvalidRegistry = errors.New("invalid registry")

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRegistryRequired is returned when no registry is supplied.
	ErrRegistryRequired = errors.New("registry is required")
)

// Collaborator errors - returned by the validation and persistence packages.
var (
	// ErrMalformedInput is returned when caller-facing input fails shape validation.
	ErrMalformedInput = errors.New("malformed input")

	// ErrSnapshotNotFound is returned when a stored snapshot does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// JurisdictionError reports an unknown identifier or jurisdiction-level data
// that does not fit the registry.
type JurisdictionError struct {
	// Value is the offending identifier as supplied.
	Value string

	// Reason describes what is wrong with it.
	Reason string
}

func (e *JurisdictionError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidJurisdiction, e.Value, e.Reason)
}

func (e *JurisdictionError) Unwrap() error {
	return ErrInvalidJurisdiction
}

// PartyError reports a malformed party tag.
type PartyError struct {
	// Jurisdiction is where the tag appeared (zero if not attached to one).
	Jurisdiction Jurisdiction

	// Value is the offending tag as supplied.
	Value string
}

func (e *PartyError) Error() string {
	if e.Jurisdiction.Valid() {
		return fmt.Sprintf("%s %q for %s", ErrInvalidParty, e.Value, e.Jurisdiction)
	}

	return fmt.Sprintf("%s %q", ErrInvalidParty, e.Value)
}

func (e *PartyError) Unwrap() error {
	return ErrInvalidParty
}

// InconsistentTotalsError reports aggregated totals that break an invariant.
type InconsistentTotalsError struct {
	// Totals is the offending aggregation.
	Totals VoteTotals

	// Reason describes the violated invariant.
	Reason string
}

func (e *InconsistentTotalsError) Error() string {
	parties := make([]Party, 0, len(e.Totals))
	for p := range e.Totals {
		parties = append(parties, p)
	}
	slices.Sort(parties)

	parts := make([]string, 0, len(parties))
	for _, p := range parties {
		parts = append(parts, fmt.Sprintf("%s=%d", p, e.Totals[p]))
	}

	return fmt.Sprintf("%s: %s [%s]", ErrInconsistentTotals, e.Reason, strings.Join(parts, " "))
}

func (e *InconsistentTotalsError) Unwrap() error {
	return ErrInconsistentTotals
}

// PreconditionError reports a path search requested for an already-decided party.
type PreconditionError struct {
	// Party is the party the search was requested for.
	Party Party

	// CurrentVotes is the party's called total.
	CurrentVotes int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s already has %d votes (threshold %d)",
		ErrPrecondition, e.Party, e.CurrentVotes, MajorityThreshold)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}
