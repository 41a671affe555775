package animal

import (
	"log/slog"

	"github.com/KristofferHemm/biosim/species"
)

// Snapshot is a flat copy of an animal's vitals plus the species
// constants in effect, for logging, display, and CSV or JSON export.
// Consumers must not read meaning into field order.
type Snapshot struct {
	Species string  `json:"species" csv:"species"`
	Age     int     `json:"age" csv:"age"`
	Weight  float64 `json:"weight" csv:"weight"`
	Fitness float64 `json:"fitness" csv:"fitness"`
	IsDead  bool    `json:"is_dead" csv:"is_dead"`

	species.Params
}

// Snapshot captures the animal's current state. Reading it may fill the
// lazy fitness cache but changes nothing observable.
func (a *Animal) Snapshot() Snapshot {
	return Snapshot{
		Species: a.species.Name(),
		Age:     a.age,
		Weight:  a.weight,
		Fitness: a.Fitness(),
		IsDead:  a.dead,
		Params:  a.species.Params(),
	}
}

// LogValue implements slog.LogValuer so drivers can log animal state as
// one structured group.
func (s Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("species", s.Species),
		slog.Int("age", s.Age),
		slog.Float64("weight", s.Weight),
		slog.Float64("fitness", s.Fitness),
		slog.Bool("is_dead", s.IsDead),
	)
}
