// Package config loads named parameter presets for the PRI estimators
// from YAML, so command-line tooling can select a tuned preset instead of
// specifying every threshold by hand.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CDIFParams mirrors cdif.New's constructor arguments.
type CDIFParams struct {
	K float64 `yaml:"k"`
}

// SDIFParams mirrors sdif.New's constructor arguments.
type SDIFParams struct {
	X float64 `yaml:"x"`
	K float64 `yaml:"k"`
}

// PRITransformParams mirrors pritransform.New's constructor arguments.
type PRITransformParams struct {
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
	Gamma float64 `yaml:"gamma"`
}

// PulseCorrelationParams mirrors pulsecorrelation.New's constructor
// arguments.
type PulseCorrelationParams struct {
	MinChain int `yaml:"min_chain"`
	Thr      int `yaml:"thr"`
}

// PulseSearchParams mirrors pulsesearch.New's constructor arguments.
type PulseSearchParams struct {
	Thr           int     `yaml:"thr"`
	Toler         float64 `yaml:"toler"`
	AllowMissRate float64 `yaml:"allow_miss_rate"`
}

// Preset bundles every estimator's tunables under one named
// configuration, loadable from a single YAML document.
type Preset struct {
	Name             string                 `yaml:"name"`
	CDIF             CDIFParams             `yaml:"cdif"`
	SDIF             SDIFParams             `yaml:"sdif"`
	PRITransform     PRITransformParams     `yaml:"pri_transform"`
	PulseCorrelation PulseCorrelationParams `yaml:"pulse_correlation"`
	PulseSearch      PulseSearchParams      `yaml:"pulse_search"`
}

// Default returns the built-in preset used when no config file is given.
// Its values match the ranges the original radar_algorithm documentation
// recommends (k, x small fractions; beta ~0.15, gamma ~3).
func Default() Preset {
	return Preset{
		Name: "default",
		CDIF: CDIFParams{K: 0.05},
		SDIF: SDIFParams{X: 0.3, K: 0.5},
		PRITransform: PRITransformParams{
			Alpha: 0.5,
			Beta:  0.15,
			Gamma: 3,
		},
		PulseCorrelation: PulseCorrelationParams{MinChain: 3, Thr: 3},
		PulseSearch:      PulseSearchParams{Thr: 3, Toler: 0.1, AllowMissRate: 0.0},
	}
}

// Load reads a Preset from the YAML file at path.
func Load(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return p, nil
}
