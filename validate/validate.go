package validate

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/debashishc/electoralcollege/internal/tally"
	"github.com/debashishc/electoralcollege/registry"
	"github.com/debashishc/electoralcollege/types"
)

// ScenarioInput is the textual form of a scenario.
//
// Keys are postal codes or full names in any case; values are party tags
// accepted by types.ParseParty. An empty tag means uncalled.
//
//	calls:
//	  CA: DEM
//	  texas: R
//	splits:
//	  NE:
//	    atLarge: REP
//	    districts: [REP, DEM, REP]
type ScenarioInput struct {
	Calls  map[string]string     `json:"calls" yaml:"calls" validate:"dive,keys,required,printascii,max=32,endkeys,printascii,max=16"`
	Splits map[string]SplitInput `json:"splits,omitempty" yaml:"splits,omitempty" validate:"dive,keys,required,printascii,max=32,endkeys"`
}

// SplitInput is the textual form of district-level results.
type SplitInput struct {
	AtLarge   string   `json:"atLarge" yaml:"atLarge" validate:"printascii,max=16"`
	Districts []string `json:"districts" yaml:"districts" validate:"required,min=1,max=8,dive,printascii,max=16"`
}

// Validator converts ScenarioInput values. It is safe for concurrent use.
type Validator struct {
	shape *validator.Validate
	reg   types.Registry
}

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry checks district counts against reg instead of the built-in table.
func WithRegistry(reg types.Registry) Option {
	return func(v *Validator) {
		if reg != nil {
			v.reg = reg
		}
	}
}

// New creates a Validator.
//
// Parameters:
//   - opts: Optional configuration (WithRegistry)
//
// Returns:
//   - *Validator: Ready to use
func New(opts ...Option) *Validator {
	v := &Validator{
		shape: validator.New(validator.WithRequiredStructEnabled()),
		reg:   registry.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Scenario validates in and returns the equivalent PartialResult.
//
// Keys are resolved in sorted order, so the first reported error is stable.
// Two keys naming the same jurisdiction ("ca" and "California") are rejected.
//
// Parameters:
//   - in: Textual scenario
//
// Returns:
//   - types.PartialResult: Resolved scenario, owned by the caller
//   - error: ErrMalformedInput, *JurisdictionError or *PartyError
//
// Example:
//
//	pr, err := validate.New().Scenario(validate.ScenarioInput{
//	    Calls: map[string]string{"CA": "DEM", "Texas": "rep"},
//	})
func (v *Validator) Scenario(in ScenarioInput) (types.PartialResult, error) {
	if err := v.checkShape(in); err != nil {
		return types.PartialResult{}, err
	}

	pr := types.NewPartialResult()
	for _, key := range slices.Sorted(maps.Keys(in.Calls)) {
		j, err := types.ParseJurisdiction(key)
		if err != nil {
			return types.PartialResult{}, err
		}
		if _, dup := pr.Calls[j]; dup {
			return types.PartialResult{}, duplicate(key, j)
		}
		p, err := parseParty(j, in.Calls[key])
		if err != nil {
			return types.PartialResult{}, err
		}
		pr.Call(j, p)
	}

	for _, key := range slices.Sorted(maps.Keys(in.Splits)) {
		j, err := types.ParseJurisdiction(key)
		if err != nil {
			return types.PartialResult{}, err
		}
		if _, dup := pr.Splits[j]; dup {
			return types.PartialResult{}, duplicate(key, j)
		}

		raw := in.Splits[key]
		sr := types.SplitResult{Districts: make([]types.Party, 0, len(raw.Districts))}
		if sr.AtLarge, err = parseParty(j, raw.AtLarge); err != nil {
			return types.PartialResult{}, err
		}
		for _, tag := range raw.Districts {
			p, err := parseParty(j, tag)
			if err != nil {
				return types.PartialResult{}, err
			}
			sr.Districts = append(sr.Districts, p)
		}
		pr.Split(j, sr)
	}

	if err := tally.Check(v.reg, pr); err != nil {
		return types.PartialResult{}, err
	}

	return pr, nil
}

// Decode reads a YAML or JSON scenario from r and validates it.
func (v *Validator) Decode(r io.Reader) (types.PartialResult, error) {
	var in ScenarioInput
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		return types.PartialResult{}, fmt.Errorf("%w: decode scenario: %w", types.ErrMalformedInput, err)
	}

	return v.Scenario(in)
}

func (v *Validator) checkShape(in ScenarioInput) error {
	err := v.shape.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("%w: %s failed %q check", types.ErrMalformedInput, fe.Namespace(), fe.Tag())
	}

	return fmt.Errorf("%w: %w", types.ErrMalformedInput, err)
}

func parseParty(j types.Jurisdiction, tag string) (types.Party, error) {
	p, err := types.ParseParty(tag)
	if err != nil {
		return types.PartyNone, &types.PartyError{Jurisdiction: j, Value: tag}
	}

	return p, nil
}

func duplicate(key string, j types.Jurisdiction) error {
	return &types.JurisdictionError{Value: key, Reason: fmt.Sprintf("duplicates another entry for %s", j)}
}
