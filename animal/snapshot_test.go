package animal

import (
	"encoding/json"
	"testing"

	"github.com/KristofferHemm/biosim/species"
)

func TestSnapshot_FlatFields(t *testing.T) {
	sp := species.New("herbivore", herbParams())
	a, err := NewWithState(sp, newTestRNG(1), 5, 20)
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(a.Snapshot())
	if err != nil {
		t.Fatalf("marshaling snapshot: %v", err)
	}
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("snapshot is not a flat object: %v", err)
	}

	if len(flat) != 19 {
		t.Errorf("snapshot has %d keys, want 19 (5 vitals + 14 constants): %v", len(flat), flat)
	}
	for _, key := range []string{"species", "age", "weight", "fitness", "is_dead", "w_birth", "phi_weight", "F"} {
		if _, ok := flat[key]; !ok {
			t.Errorf("snapshot missing key %q", key)
		}
	}
	if flat["species"] != "herbivore" {
		t.Errorf("species = %v, want herbivore", flat["species"])
	}
	if flat["weight"] != 20.0 {
		t.Errorf("weight = %v, want 20", flat["weight"])
	}
	if flat["is_dead"] != false {
		t.Errorf("is_dead = %v, want false", flat["is_dead"])
	}
}

func TestSnapshot_UnchangedByFailedSetParams(t *testing.T) {
	sp := species.New("herbivore", herbParams())
	a, err := NewWithState(sp, newTestRNG(1), 5, 20)
	if err != nil {
		t.Fatal(err)
	}

	before := a.Snapshot()
	if err := sp.SetParams(map[string]any{"beta": 0.1, "bogus": 1.0}); err == nil {
		t.Fatal("SetParams accepted an unknown name")
	}
	if after := a.Snapshot(); after != before {
		t.Errorf("snapshot changed after a failed SetParams:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestSnapshot_ResetParamsRestoresDefaults(t *testing.T) {
	defaults := herbParams()
	sp := species.New("herbivore", defaults)
	a, err := NewWithState(sp, newTestRNG(1), 5, 20)
	if err != nil {
		t.Fatal(err)
	}

	if err := sp.SetParams(map[string]any{"omega": 0.99, "F": 50.0}); err != nil {
		t.Fatal(err)
	}
	sp.ResetParams()
	if got := a.Snapshot().Params; got != defaults {
		t.Errorf("params after reset = %+v, want %+v", got, defaults)
	}
}

func TestSnapshot_ReflectsDeath(t *testing.T) {
	sp := species.New("herbivore", herbParams())
	a, err := NewWithState(sp, newTestRNG(1), 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	a.Death()

	snap := a.Snapshot()
	if !snap.IsDead {
		t.Error("snapshot does not reflect death")
	}
	if snap.Fitness != 0 {
		t.Errorf("fitness = %v, want 0 at weight 0", snap.Fitness)
	}
}
