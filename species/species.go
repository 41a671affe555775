package species

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Species is the shared registry for one species: its default and
// current constants, the derived birth-weight threshold, and the memo
// table behind the fitness age term. Every animal of a species holds the
// same *Species, so a parameter change is observed by current and future
// animals alike. Two Species values are fully isolated from each other.
//
// Reads are safe to fan out across goroutines; SetParams and ResetParams
// are not, and the driver applies them only between simulation cycles.
type Species struct {
	name     string
	defaults Params
	params   Params

	// zeta * (w_birth + sigma_birth): the minimum weight a mother must
	// exceed to be eligible to give birth. Recomputed on every parameter
	// change, never read stale.
	birthThreshold float64

	ageCurve ageCurveCache
}

// New creates a registry with the given defaults as its current values.
// A zero Params gives the all-zeros default set.
func New(name string, defaults Params) *Species {
	return &Species{
		name:           name,
		defaults:       defaults,
		params:         defaults,
		birthThreshold: birthThreshold(defaults),
	}
}

// Name returns the species tag.
func (s *Species) Name() string { return s.name }

// Params returns a copy of the current constants.
func (s *Species) Params() Params { return s.params }

// BirthWeightThreshold returns the derived minimum weight a mother must
// exceed to be eligible to give birth.
func (s *Species) BirthWeightThreshold() float64 { return s.birthThreshold }

// SetParams overwrites the named constants. The whole batch is validated
// first: an unknown name fails with ErrUnknownParam, a non-numeric value
// with ErrParamType, and any failure leaves the registry byte-for-byte
// unchanged. On success the derived birth-weight threshold is
// recomputed.
func (s *Species) SetParams(values map[string]any) error {
	next, err := s.params.merged(values)
	if err != nil {
		return err
	}
	s.params = next
	s.birthThreshold = birthThreshold(next)
	return nil
}

// ResetParams restores the defaults the registry was created with and
// recomputes the derived threshold.
func (s *Species) ResetParams() {
	s.params = s.defaults
	s.birthThreshold = birthThreshold(s.defaults)
}

func birthThreshold(p Params) float64 {
	return p.Zeta * (p.WBirth + p.SigmaBirth)
}

// SampleBirthWeight draws one newborn weight from
// Normal(w_birth, sigma_birth). The draw is not clamped; the caller
// decides what a negative sample means.
func (s *Species) SampleBirthWeight(src rand.Source) float64 {
	dist := distuv.Normal{Mu: s.params.WBirth, Sigma: s.params.SigmaBirth, Src: src}
	return dist.Rand()
}
