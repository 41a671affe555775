// Package animal implements the per-individual life cycle of the island
// model: growth through feeding, aging and weight loss, and the
// stochastic death, migration, and birth rules, all driven by a fitness
// score derived from age and weight.
package animal

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/KristofferHemm/biosim/species"
)

// Construction and assignment errors.
var (
	// ErrNegativeAge reports an age below zero.
	ErrNegativeAge = errors.New("animal: negative age")
	// ErrNegativeWeight reports a weight below zero, including a
	// negative sampled birth weight.
	ErrNegativeWeight = errors.New("animal: negative weight")
)

// Animal is one individual. It owns only its vital state and a reference
// to its species registry; placing it in a cell, sequencing its cycle,
// and removing it once dead belong to the driver.
//
// An Animal is not safe for concurrent use. A cycle may be fanned out
// across animals only while no parameter change is in flight and no two
// goroutines share an animal's rng.
type Animal struct {
	species *species.Species
	rng     *rand.Rand

	age    int
	weight float64
	dead   bool

	// Cached fitness, valid only while fitnessOK is true. Every age or
	// weight mutation clears the flag; the next read recomputes.
	fitness   float64
	fitnessOK bool
}

// New creates a newborn: age 0, weight drawn once from the species birth
// distribution. The draw is not clamped, so a negative sample fails with
// ErrNegativeWeight exactly like an explicitly supplied negative weight.
// rng must be non-nil; the animal keeps it for its own stochastic rules.
func New(sp *species.Species, rng *rand.Rand) (*Animal, error) {
	return NewWithState(sp, rng, 0, sp.SampleBirthWeight(rng))
}

// NewWithState creates an animal with explicit vitals, for drivers that
// place a starting population.
func NewWithState(sp *species.Species, rng *rand.Rand, age int, weight float64) (*Animal, error) {
	if age < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeAge, age)
	}
	if weight < 0 {
		return nil, fmt.Errorf("%w: %g", ErrNegativeWeight, weight)
	}
	return &Animal{species: sp, rng: rng, age: age, weight: weight}, nil
}

// Species returns the registry this animal reads its constants from.
func (a *Animal) Species() *species.Species { return a.species }

// Age returns the age in whole cycles.
func (a *Animal) Age() int { return a.age }

// Weight returns the current weight.
func (a *Animal) Weight() float64 { return a.weight }

// IsDead reports whether a death check has marked the animal dead. The
// flag never clears.
func (a *Animal) IsDead() bool { return a.dead }

// SetAge assigns a new age and marks the cached fitness stale.
func (a *Animal) SetAge(age int) error {
	if age < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAge, age)
	}
	a.age = age
	a.fitnessOK = false
	return nil
}

// SetWeight assigns a new weight and marks the cached fitness stale.
func (a *Animal) SetWeight(weight float64) error {
	if weight < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeWeight, weight)
	}
	a.weight = weight
	a.fitnessOK = false
	return nil
}

// applyWeight is the assignment used by the life-cycle rules themselves.
// Those rules cannot drive the weight negative while the constants stay
// in their documented ranges (eta in [0,1], non-negative feed offers),
// so a negative value here is a driver bug worth stopping on, never
// something to clamp.
func (a *Animal) applyWeight(weight float64) {
	if weight < 0 {
		panic(fmt.Sprintf("animal: weight driven negative: %g", weight))
	}
	a.weight = weight
	a.fitnessOK = false
}

// Fitness returns the animal's fitness in [0,1], recomputing only when a
// mutation since the last read marked the cache stale. Recomputation
// yields bit-identical values for identical state.
func (a *Animal) Fitness() float64 {
	if !a.fitnessOK {
		a.fitness = a.species.Fitness(a.age, a.weight)
		a.fitnessOK = true
	}
	return a.fitness
}
