package types

import (
	"fmt"
	"strings"
)

// Region is the census-style geographic grouping of a jurisdiction.
type Region int

const (
	RegionNortheast Region = iota + 1
	RegionMidwest
	RegionSouth
	RegionWest
	RegionDistrict
)

// Regions returns all regions in fixed order.
func Regions() []Region {
	return []Region{RegionNortheast, RegionMidwest, RegionSouth, RegionWest, RegionDistrict}
}

// Valid reports whether r is a known region.
func (r Region) Valid() bool {
	return r >= RegionNortheast && r <= RegionDistrict
}

// String returns the region name.
func (r Region) String() string {
	switch r {
	case RegionNortheast:
		return "Northeast"
	case RegionMidwest:
		return "Midwest"
	case RegionSouth:
		return "South"
	case RegionWest:
		return "West"
	case RegionDistrict:
		return "District"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

// ParseRegion resolves a region name, case-insensitively.
func ParseRegion(s string) (Region, error) {
	for _, r := range Regions() {
		if strings.EqualFold(strings.TrimSpace(s), r.String()) {
			return r, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown region %q", ErrInvalidRegistry, s)
}

// MarshalText encodes the region as its name.
func (r Region) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: unknown region %d", ErrInvalidRegistry, int(r))
	}

	return []byte(r.String()), nil
}

// UnmarshalText decodes a region name.
func (r *Region) UnmarshalText(text []byte) error {
	parsed, err := ParseRegion(string(text))
	if err != nil {
		return err
	}
	*r = parsed

	return nil
}
