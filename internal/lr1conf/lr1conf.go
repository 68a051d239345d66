// Package lr1conf loads lr1kit's optional TOML configuration file: the
// MAX_STATES and MAX_STEPS resource bounds and the catalog path, in the
// same style as tqw's TOML-based world data files.
package lr1conf

import (
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultMaxStates and DefaultMaxSteps mirror the automaton and parser
// packages' own defaults, duplicated here so Defaults() needs no import
// of either.
const (
	DefaultMaxStates = 10000
	DefaultMaxSteps  = 10000
)

// Config holds lr1kit's tunable resource bounds and catalog location.
type Config struct {
	MaxStates int `toml:"max_states"`
	MaxSteps  int `toml:"max_steps"`
	Catalog   struct {
		Path string `toml:"path"`
	} `toml:"catalog"`
}

// Defaults returns the zero-config defaults lr1kit uses when no config
// file is given.
func Defaults() Config {
	return Config{MaxStates: DefaultMaxStates, MaxSteps: DefaultMaxSteps}
}

// Load reads a TOML config file at path. If the file does not exist,
// Load returns Defaults() with no error. Any field left unset (zero) in
// the file is filled in from Defaults().
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.MaxStates <= 0 {
		cfg.MaxStates = DefaultMaxStates
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	return cfg, nil
}
