package types

import (
	"fmt"
	"strings"
)

// Jurisdiction identifies one of the 51 jurisdictions that appoint electors:
// the 50 states and the District of Columbia.
//
// Values are ordered alphabetically by postal code. This order is the stable
// tie-breaker used wherever two jurisdictions carry equal electoral votes.
// The zero value is not a valid jurisdiction.
type Jurisdiction int

const (
	AK Jurisdiction = iota + 1
	AL
	AR
	AZ
	CA
	CO
	CT
	DC
	DE
	FL
	GA
	HI
	IA
	ID
	IL
	IN
	KS
	KY
	LA
	MA
	MD
	ME
	MI
	MN
	MO
	MS
	MT
	NC
	ND
	NE
	NH
	NJ
	NM
	NV
	NY
	OH
	OK
	OR
	PA
	RI
	SC
	SD
	TN
	TX
	UT
	VA
	VT
	WA
	WI
	WV
	WY
)

// JurisdictionCount is the number of jurisdictions that appoint electors.
const JurisdictionCount = int(WY)

var jurisdictionCodes = [...]string{
	AK: "AK", AL: "AL", AR: "AR", AZ: "AZ", CA: "CA", CO: "CO", CT: "CT", DC: "DC",
	DE: "DE", FL: "FL", GA: "GA", HI: "HI", IA: "IA", ID: "ID", IL: "IL", IN: "IN",
	KS: "KS", KY: "KY", LA: "LA", MA: "MA", MD: "MD", ME: "ME", MI: "MI", MN: "MN",
	MO: "MO", MS: "MS", MT: "MT", NC: "NC", ND: "ND", NE: "NE", NH: "NH", NJ: "NJ",
	NM: "NM", NV: "NV", NY: "NY", OH: "OH", OK: "OK", OR: "OR", PA: "PA", RI: "RI",
	SC: "SC", SD: "SD", TN: "TN", TX: "TX", UT: "UT", VA: "VA", VT: "VT", WA: "WA",
	WI: "WI", WV: "WV", WY: "WY",
}

var jurisdictionNames = [...]string{
	AK: "Alaska", AL: "Alabama", AR: "Arkansas", AZ: "Arizona", CA: "California",
	CO: "Colorado", CT: "Connecticut", DC: "District of Columbia", DE: "Delaware",
	FL: "Florida", GA: "Georgia", HI: "Hawaii", IA: "Iowa", ID: "Idaho", IL: "Illinois",
	IN: "Indiana", KS: "Kansas", KY: "Kentucky", LA: "Louisiana", MA: "Massachusetts",
	MD: "Maryland", ME: "Maine", MI: "Michigan", MN: "Minnesota", MO: "Missouri",
	MS: "Mississippi", MT: "Montana", NC: "North Carolina", ND: "North Dakota",
	NE: "Nebraska", NH: "New Hampshire", NJ: "New Jersey", NM: "New Mexico",
	NV: "Nevada", NY: "New York", OH: "Ohio", OK: "Oklahoma", OR: "Oregon",
	PA: "Pennsylvania", RI: "Rhode Island", SC: "South Carolina", SD: "South Dakota",
	TN: "Tennessee", TX: "Texas", UT: "Utah", VA: "Virginia", VT: "Vermont",
	WA: "Washington", WI: "Wisconsin", WV: "West Virginia", WY: "Wyoming",
}

// jurisdictionIndex maps upper-cased postal codes and full names to jurisdictions.
var jurisdictionIndex = func() map[string]Jurisdiction {
	idx := make(map[string]Jurisdiction, 2*JurisdictionCount)
	for _, j := range Jurisdictions() {
		idx[jurisdictionCodes[j]] = j
		idx[strings.ToUpper(jurisdictionNames[j])] = j
	}

	return idx
}()

// Jurisdictions returns all 51 jurisdictions in identifier order.
//
// Returns:
//   - []Jurisdiction: A fresh slice the caller may modify
func Jurisdictions() []Jurisdiction {
	all := make([]Jurisdiction, 0, JurisdictionCount)
	for j := AK; j <= WY; j++ {
		all = append(all, j)
	}

	return all
}

// Valid reports whether j is one of the 51 known jurisdictions.
func (j Jurisdiction) Valid() bool {
	return j >= AK && j <= WY
}

// String returns the two-letter postal code, or "Jurisdiction(n)" for invalid values.
func (j Jurisdiction) String() string {
	if !j.Valid() {
		return fmt.Sprintf("Jurisdiction(%d)", int(j))
	}

	return jurisdictionCodes[j]
}

// Name returns the full jurisdiction name, or "" for invalid values.
func (j Jurisdiction) Name() string {
	if !j.Valid() {
		return ""
	}

	return jurisdictionNames[j]
}

// Compare orders jurisdictions by identifier.
//
// Returns:
//   - int: -1 if j < k, 0 if equal, +1 if j > k
func (j Jurisdiction) Compare(k Jurisdiction) int {
	switch {
	case j < k:
		return -1
	case j > k:
		return 1
	default:
		return 0
	}
}

// ParseJurisdiction resolves a postal code or full name, case-insensitively.
//
// Parameters:
//   - s: Postal code ("CA") or full name ("California")
//
// Returns:
//   - Jurisdiction: The matching jurisdiction
//   - error: *JurisdictionError wrapping ErrInvalidJurisdiction if s matches nothing
func ParseJurisdiction(s string) (Jurisdiction, error) {
	if j, ok := jurisdictionIndex[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return j, nil
	}

	return 0, &JurisdictionError{Value: s, Reason: "unknown identifier"}
}

// MarshalText encodes the jurisdiction as its postal code.
func (j Jurisdiction) MarshalText() ([]byte, error) {
	if !j.Valid() {
		return nil, &JurisdictionError{Value: j.String(), Reason: "unknown identifier"}
	}

	return []byte(jurisdictionCodes[j]), nil
}

// UnmarshalText decodes a postal code or full name.
func (j *Jurisdiction) UnmarshalText(text []byte) error {
	parsed, err := ParseJurisdiction(string(text))
	if err != nil {
		return err
	}
	*j = parsed

	return nil
}
