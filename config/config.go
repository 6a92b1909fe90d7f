// Package config loads and saves BRKGA hyperparameters from TOML files.
// It is ambient infrastructure, not a required part of running an
// Engine — callers are always free to build brkga.PopulationShare values
// and pass hyperparameters directly to brkga.New. Grounded on
// stojg-playlist-sorter/config/config.go, a genetic-algorithm TOML config
// loader in the same shape, retargeted from fitness weights to BRKGA
// hyperparameters.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Params holds the tunable hyperparameters of a BRKGA run.
type Params struct {
	N          int     `toml:"n"`
	P          int     `toml:"p"`
	EliteFrac  float64 `toml:"elite_fraction"`
	MutantFrac float64 `toml:"mutant_fraction"`
	RhoE       float64 `toml:"rho_e"`
	K          int     `toml:"populations"`
	MaxThreads int     `toml:"max_threads"`
	Seed       uint64  `toml:"seed"`
}

// Default returns a reasonable starting set of hyperparameters.
func Default() Params {
	return Params{
		N:          0,
		P:          100,
		EliteFrac:  0.2,
		MutantFrac: 0.1,
		RhoE:       0.7,
		K:          1,
		MaxThreads: 1,
		Seed:       0,
	}
}

// Load reads Params from a TOML file at path. If the file does not
// exist, Default() is returned with no error.
func Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}

	params := Default()
	if err := toml.Unmarshal(data, &params); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return params, nil
}

// Save writes params to a TOML file at path.
func Save(path string, params Params) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(params); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
