package species

import (
	"math"
	"sync"
)

// ageCurveCacheCap bounds the age-term memo table. When the table fills
// up it is dropped and rebuilt, keeping memory flat over long runs.
const ageCurveCacheCap = 4096

// ageCurveKey identifies one memoized age-term value. The shape
// constants are part of the key, so a parameter change produces fresh
// entries instead of stale hits.
type ageCurveKey struct {
	age    int
	phiAge float64
	aHalf  float64
}

// ageCurveCache memoizes the age term of the fitness product. Guarded by
// a mutex so a driver may fan fitness reads out across goroutines while
// parameters are quiescent.
type ageCurveCache struct {
	mu      sync.Mutex
	entries map[ageCurveKey]float64
}

func (c *ageCurveCache) lookup(key ageCurveKey) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[key]; ok {
		return v
	}
	v := 1 / (1 + math.Exp(key.phiAge*(float64(key.age)-key.aHalf)))
	if c.entries == nil || len(c.entries) >= ageCurveCacheCap {
		c.entries = make(map[ageCurveKey]float64, 64)
	}
	c.entries[key] = v
	return v
}

// Fitness maps age and weight to [0,1]: zero at non-positive weight,
// otherwise the product of a decreasing logistic in age and an
// increasing logistic in weight:
//
//	age term    = 1 / (1 + exp( phi_age    * (age    - a_half)))
//	weight term = 1 / (1 + exp(-phi_weight * (weight - w_half)))
//
// Equal inputs give bit-identical results, memoized or not.
func (s *Species) Fitness(age int, weight float64) float64 {
	if weight <= 0 {
		return 0
	}
	ageTerm := s.ageCurve.lookup(ageCurveKey{age: age, phiAge: s.params.PhiAge, aHalf: s.params.AHalf})
	weightTerm := 1 / (1 + math.Exp(-s.params.PhiWeight*(weight-s.params.WHalf)))
	return ageTerm * weightTerm
}
