package animal

import "math"

// Feed consumes up to the species appetite F from the offered amount and
// converts what was eaten to weight at efficiency beta. Returns the
// amount actually eaten so the driver can deduct it from the cell's food
// pool. Offering 0 is a no-op.
func (a *Animal) Feed(amount float64) float64 {
	p := a.species.Params()
	eaten := math.Min(p.F, amount)
	a.applyWeight(a.weight + p.Beta*eaten)
	return eaten
}

// AgeOneCycle advances the age by exactly one cycle. No other state
// changes beyond the fitness cache going stale.
func (a *Animal) AgeOneCycle() {
	a.age++
	a.fitnessOK = false
}

// LoseWeight applies the once-per-cycle decay: the weight drops by eta
// times itself.
func (a *Animal) LoseWeight() {
	p := a.species.Params()
	a.applyWeight(a.weight - p.Eta*a.weight)
}

// Death runs the cycle's one death check: certain at weight 0, otherwise
// dying with probability omega*(1-fitness) on a single uniform draw.
// Returns the resulting dead flag. Calling it again on a dead animal
// returns true without drawing, so a stray extra call can neither
// resurrect the animal nor disturb the random stream.
func (a *Animal) Death() bool {
	if a.dead {
		return true
	}
	p := a.species.Params()
	if a.weight == 0 || a.rng.Float64() < p.Omega*(1-a.Fitness()) {
		a.dead = true
	}
	return a.dead
}

// AttemptsMigration reports whether the animal tries to leave its cell
// this cycle, true with probability mu*fitness. It mutates nothing;
// relocation is the driver's job.
func (a *Animal) AttemptsMigration() bool {
	return a.rng.Float64() < a.species.Params().Mu*a.Fitness()
}

// GiveBirth runs the cycle's one birth opportunity for a mother among
// numInCell animals of her species. In order: a uniform draw against
// min(1, gamma*fitness*(numInCell-1)), where the draw is consumed even
// when the probability is zero; the weight gate against the species
// birth-weight threshold; the child's creation with a freshly sampled
// weight; and finally the mother must afford the loss xi*child weight or
// the child is discarded. Only a successful birth mutates the mother.
//
// Returns (nil, nil) when no child is born. A negative sampled child
// weight propagates ErrNegativeWeight.
func (a *Animal) GiveBirth(numInCell int) (*Animal, error) {
	p := a.species.Params()
	prob := math.Min(1, p.Gamma*a.Fitness()*float64(numInCell-1))
	if a.rng.Float64() >= prob {
		return nil, nil
	}
	if a.weight <= a.species.BirthWeightThreshold() {
		return nil, nil
	}
	child, err := New(a.species, a.rng)
	if err != nil {
		return nil, err
	}
	loss := p.Xi * child.weight
	if a.weight < loss {
		return nil, nil
	}
	a.applyWeight(a.weight - loss)
	return child, nil
}
