package types

import (
	"fmt"
	"strings"
)

// Party is the closed set of outcomes a jurisdiction can be called for.
//
// PartyNone is the explicit "uncalled" sentinel and the zero value, so an absent
// map entry and an explicit PartyNone entry mean the same thing.
type Party int

const (
	// PartyNone marks a jurisdiction (or portion of one) that has not been called.
	PartyNone Party = iota

	// PartyDemocrat is the Democratic Party.
	PartyDemocrat

	// PartyRepublican is the Republican Party.
	PartyRepublican
)

// Parties returns the parties that can win electoral votes, in fixed order.
func Parties() []Party {
	return []Party{PartyDemocrat, PartyRepublican}
}

// Valid reports whether p is a known party tag, including PartyNone.
func (p Party) Valid() bool {
	return p >= PartyNone && p <= PartyRepublican
}

// Contender reports whether p can win electoral votes.
func (p Party) Contender() bool {
	return p == PartyDemocrat || p == PartyRepublican
}

// String returns the short party tag.
func (p Party) String() string {
	switch p {
	case PartyNone:
		return "NONE"
	case PartyDemocrat:
		return "DEM"
	case PartyRepublican:
		return "REP"
	default:
		return fmt.Sprintf("Party(%d)", int(p))
	}
}

// Name returns the full party name.
func (p Party) Name() string {
	switch p {
	case PartyNone:
		return "Uncalled"
	case PartyDemocrat:
		return "Democrat"
	case PartyRepublican:
		return "Republican"
	default:
		return "Unknown"
	}
}

// ParseParty resolves a party tag.
//
// Accepted forms (case-insensitive):
//   - "DEM", "D", "Democrat", "Democratic"
//   - "REP", "R", "Republican", "GOP"
//   - "", "NONE", "UNCALLED" for PartyNone
//
// Returns:
//   - Party: The matching party
//   - error: *PartyError wrapping ErrInvalidParty if s is not a known tag
func ParseParty(s string) (Party, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE", "UNCALLED":
		return PartyNone, nil
	case "D", "DEM", "DEMOCRAT", "DEMOCRATIC":
		return PartyDemocrat, nil
	case "R", "REP", "REPUBLICAN", "GOP":
		return PartyRepublican, nil
	default:
		return PartyNone, &PartyError{Value: s}
	}
}

// MarshalText encodes the party as its short tag.
func (p Party) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &PartyError{Value: p.String()}
	}

	return []byte(p.String()), nil
}

// UnmarshalText decodes any form accepted by ParseParty.
func (p *Party) UnmarshalText(text []byte) error {
	parsed, err := ParseParty(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}
