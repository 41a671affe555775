// Package config loads species parameter sets from YAML, merging user
// overrides over embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KristofferHemm/biosim/species"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// file mirrors the on-disk layout: species names mapping to parameter
// overrides by canonical name.
type file struct {
	Species map[string]map[string]any `yaml:"species"`
}

// Load builds one registry per species from the embedded defaults merged
// with the YAML file at path. If path is empty, only defaults are used.
// The merge is per key, so a user file may override a single parameter of
// a known species or declare an entirely new one. Loaded values become
// each registry's reset point.
func Load(path string) (map[string]*species.Species, error) {
	var defs file
	if err := yaml.Unmarshal(defaultsYAML, &defs); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading species file: %w", err)
		}
		var user file
		if err := yaml.Unmarshal(data, &user); err != nil {
			return nil, fmt.Errorf("parsing species file: %w", err)
		}
		for name, overrides := range user.Species {
			if defs.Species[name] == nil {
				defs.Species[name] = make(map[string]any, len(overrides))
			}
			for key, value := range overrides {
				defs.Species[name][key] = value
			}
		}
	}

	registries := make(map[string]*species.Species, len(defs.Species))
	for name, values := range defs.Species {
		params, err := species.ParamsFromMap(values)
		if err != nil {
			return nil, fmt.Errorf("species %q: %w", name, err)
		}
		registries[name] = species.New(name, params)
	}
	return registries, nil
}

// Write saves the current parameters of every registry to a YAML file in
// the same layout Load accepts.
func Write(path string, registries map[string]*species.Species) error {
	out := struct {
		Species map[string]map[string]float64 `yaml:"species"`
	}{Species: make(map[string]map[string]float64, len(registries))}
	for name, sp := range registries {
		out.Species[name] = sp.Params().Map()
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshaling species file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing species file: %w", err)
	}
	return nil
}
