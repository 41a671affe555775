// Package species defines the parameter registry and fitness model that
// every animal of a species shares.
package species

import (
	"errors"
	"fmt"
)

// Errors returned by SetParams and ParamsFromMap.
var (
	// ErrUnknownParam reports a key that names no species constant.
	ErrUnknownParam = errors.New("species: unknown parameter")
	// ErrParamType reports a value that is not an integer or real number.
	ErrParamType = errors.New("species: parameter value is not numeric")
)

// Params holds the constants governing one species: the birth-weight
// distribution, growth and decay rates, the shape of the fitness curves,
// and the coefficients of the stochastic life-cycle rules. The zero
// value is the valid all-zeros default set.
type Params struct {
	WBirth     float64 `yaml:"w_birth" json:"w_birth" csv:"w_birth"`             // mean newborn weight
	SigmaBirth float64 `yaml:"sigma_birth" json:"sigma_birth" csv:"sigma_birth"` // newborn weight std dev
	Beta       float64 `yaml:"beta" json:"beta" csv:"beta"`                      // feed-to-weight conversion efficiency
	Eta        float64 `yaml:"eta" json:"eta" csv:"eta"`                         // fractional weight loss per cycle
	AHalf      float64 `yaml:"a_half" json:"a_half" csv:"a_half"`                // age-curve midpoint
	PhiAge     float64 `yaml:"phi_age" json:"phi_age" csv:"phi_age"`             // age-curve steepness
	WHalf      float64 `yaml:"w_half" json:"w_half" csv:"w_half"`                // weight-curve midpoint
	PhiWeight  float64 `yaml:"phi_weight" json:"phi_weight" csv:"phi_weight"`    // weight-curve steepness
	Mu         float64 `yaml:"mu" json:"mu" csv:"mu"`                            // migration probability coefficient
	Gamma      float64 `yaml:"gamma" json:"gamma" csv:"gamma"`                   // birth probability coefficient
	Zeta       float64 `yaml:"zeta" json:"zeta" csv:"zeta"`                      // birth-weight threshold factor
	Xi         float64 `yaml:"xi" json:"xi" csv:"xi"`                            // birth weight-loss factor
	Omega      float64 `yaml:"omega" json:"omega" csv:"omega"`                   // death probability coefficient
	F          float64 `yaml:"F" json:"F" csv:"F"`                               // appetite per feeding event
}

// paramNames lists the settable constants in canonical order.
var paramNames = []string{
	"w_birth", "sigma_birth", "beta", "eta", "a_half", "phi_age",
	"w_half", "phi_weight", "mu", "gamma", "zeta", "xi", "omega", "F",
}

// field maps a canonical name to its struct field, or nil for an
// unknown name.
func (p *Params) field(name string) *float64 {
	switch name {
	case "w_birth":
		return &p.WBirth
	case "sigma_birth":
		return &p.SigmaBirth
	case "beta":
		return &p.Beta
	case "eta":
		return &p.Eta
	case "a_half":
		return &p.AHalf
	case "phi_age":
		return &p.PhiAge
	case "w_half":
		return &p.WHalf
	case "phi_weight":
		return &p.PhiWeight
	case "mu":
		return &p.Mu
	case "gamma":
		return &p.Gamma
	case "zeta":
		return &p.Zeta
	case "xi":
		return &p.Xi
	case "omega":
		return &p.Omega
	case "F":
		return &p.F
	}
	return nil
}

// numeric converts the scalar types YAML and JSON decoding produce.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// merged returns a copy of p with the named values applied. The whole
// batch is validated before anything is written, so on error no value
// from it has been used.
func (p Params) merged(values map[string]any) (Params, error) {
	for name, v := range values {
		if p.field(name) == nil {
			return Params{}, fmt.Errorf("%w: %q", ErrUnknownParam, name)
		}
		if _, ok := numeric(v); !ok {
			return Params{}, fmt.Errorf("%w: %s=%v (%T)", ErrParamType, name, v, v)
		}
	}
	for name, v := range values {
		f, _ := numeric(v)
		*p.field(name) = f
	}
	return p, nil
}

// ParamsFromMap builds a Params from canonical name/value pairs,
// rejecting unknown names and non-numeric values.
func ParamsFromMap(values map[string]any) (Params, error) {
	return Params{}.merged(values)
}

// Map returns the constants keyed by canonical name.
func (p Params) Map() map[string]float64 {
	m := make(map[string]float64, len(paramNames))
	for _, name := range paramNames {
		m[name] = *p.field(name)
	}
	return m
}
