package registry

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/debashishc/electoralcollege/types"
)

// tableFile is the YAML layout of a registry table.
//
//	jurisdictions:
//	  - id: ME
//	    name: Maine
//	    electoralVotes: 4
//	    districts: 2
//	    splitVote: true
//	    districtVotes: [1, 1]
//	    region: Northeast
type tableFile struct {
	Jurisdictions []tableRow `yaml:"jurisdictions"`
}

type tableRow struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	ElectoralVotes int    `yaml:"electoralVotes"`
	Districts      int    `yaml:"districts"`
	SplitVote      bool   `yaml:"splitVote"`
	DistrictVotes  []int  `yaml:"districtVotes,omitempty"`
	Region         string `yaml:"region"`
}

// Load parses and validates a YAML registry table.
//
// Parameters:
//   - r: Reader positioned at the YAML document
//
// Returns:
//   - *Static: Immutable registry
//   - error: Parse or validation error (wraps ErrInvalidRegistry)
func Load(r io.Reader) (*Static, error) {
	var file tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: decode table: %w", types.ErrInvalidRegistry, err)
	}

	rows := make([]types.JurisdictionInfo, 0, len(file.Jurisdictions))
	for i, raw := range file.Jurisdictions {
		row, err := raw.toInfo()
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", types.ErrInvalidRegistry, i, err)
		}
		rows = append(rows, row)
	}

	return NewStatic(rows)
}

// LoadFile reads a YAML registry table from path.
//
// Parameters:
//   - path: File system path of the YAML table
//
// Returns:
//   - *Static: Immutable registry
//   - error: I/O, parse or validation error
func LoadFile(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open registry file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func (r tableRow) toInfo() (types.JurisdictionInfo, error) {
	id, err := types.ParseJurisdiction(r.ID)
	if err != nil {
		return types.JurisdictionInfo{}, err
	}
	region, err := types.ParseRegion(r.Region)
	if err != nil {
		return types.JurisdictionInfo{}, err
	}

	name := r.Name
	if name == "" {
		name = id.Name()
	}

	return types.JurisdictionInfo{
		ID:             id,
		Name:           name,
		ElectoralVotes: r.ElectoralVotes,
		Districts:      r.Districts,
		IsSplitVote:    r.SplitVote,
		DistrictVotes:  r.DistrictVotes,
		Region:         region,
	}, nil
}

// Marshal renders the registry as a YAML table accepted by Load.
func (s *Static) Marshal() ([]byte, error) {
	file := tableFile{Jurisdictions: make([]tableRow, 0, types.JurisdictionCount)}
	for _, row := range s.All() {
		file.Jurisdictions = append(file.Jurisdictions, tableRow{
			ID:             row.ID.String(),
			Name:           row.Name,
			ElectoralVotes: row.ElectoralVotes,
			Districts:      row.Districts,
			SplitVote:      row.IsSplitVote,
			DistrictVotes:  row.DistrictVotes,
			Region:         row.Region.String(),
		})
	}

	return yaml.Marshal(file)
}
