package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Portion selects which electoral votes of a jurisdiction a Unit refers to.
//
// Winner-take-all jurisdictions only ever appear as PortionWhole. A split-vote
// jurisdiction that is partially called contributes its uncalled at-large block
// and uncalled districts as separate units. Positive values are 1-based
// congressional district numbers.
type Portion int

const (
	// PortionAtLarge is the statewide block of a split-vote jurisdiction.
	PortionAtLarge Portion = -1

	// PortionWhole is every electoral vote of the jurisdiction.
	PortionWhole Portion = 0
)

// District returns the portion for 1-based congressional district n.
func District(n int) Portion {
	return Portion(n)
}

// IsDistrict reports whether the portion is a single congressional district.
func (p Portion) IsDistrict() bool {
	return p > 0
}

// Unit is the indivisible item of the victory-path search: a bundle of electoral
// votes that is won or lost as one.
type Unit struct {
	Jurisdiction Jurisdiction
	Portion      Portion
}

// WholeUnit returns the unit covering every vote of j.
func WholeUnit(j Jurisdiction) Unit {
	return Unit{Jurisdiction: j, Portion: PortionWhole}
}

// String renders the unit as "CA", "ME-AL" or "NE-2".
func (u Unit) String() string {
	switch {
	case u.Portion == PortionWhole:
		return u.Jurisdiction.String()
	case u.Portion == PortionAtLarge:
		return u.Jurisdiction.String() + "-AL"
	default:
		return u.Jurisdiction.String() + "-" + strconv.Itoa(int(u.Portion))
	}
}

// Compare orders units by jurisdiction, then whole, at-large, districts ascending.
func (u Unit) Compare(v Unit) int {
	if c := u.Jurisdiction.Compare(v.Jurisdiction); c != 0 {
		return c
	}

	return portionRank(u.Portion) - portionRank(v.Portion)
}

func portionRank(p Portion) int {
	switch p {
	case PortionWhole:
		return 0
	case PortionAtLarge:
		return 1
	default:
		return 1 + int(p)
	}
}

// ParseUnit parses the String form of a unit.
func ParseUnit(s string) (Unit, error) {
	code, suffix, hasSuffix := strings.Cut(strings.TrimSpace(s), "-")
	j, err := ParseJurisdiction(code)
	if err != nil {
		return Unit{}, err
	}
	if !hasSuffix {
		return WholeUnit(j), nil
	}
	if strings.EqualFold(suffix, "AL") {
		return Unit{Jurisdiction: j, Portion: PortionAtLarge}, nil
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 1 {
		return Unit{}, &JurisdictionError{Value: s, Reason: "malformed district suffix"}
	}

	return Unit{Jurisdiction: j, Portion: District(n)}, nil
}

// MarshalText encodes the unit in its String form.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Jurisdiction.Valid() {
		return nil, &JurisdictionError{Value: u.Jurisdiction.String(), Reason: "unknown identifier"}
	}

	return []byte(u.String()), nil
}

// UnmarshalText decodes the String form of a unit.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed

	return nil
}

// GoString keeps test failure output readable.
func (u Unit) GoString() string {
	return fmt.Sprintf("Unit(%s)", u.String())
}
