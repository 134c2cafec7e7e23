package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds defaults for the image commands. Any flag given on the
// command line overrides the matching value.
type Config struct {
	Type        string  `toml:"type"`        // protanopia, deuteranopia or tritanopia
	Sensitivity float64 `toml:"sensitivity"` // clamped to [0, 1] before use
	OutputDir   string  `toml:"output_dir"`  // directory for default output names
	Yes         bool    `toml:"yes"`         // overwrite existing outputs without asking
}

// Default returns the built-in defaults. Type is left empty, so a run
// with neither --type nor a config file type fails type validation.
func Default() *Config {
	return &Config{}
}

// Load reads a TOML file on top of Default. Unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data on top of Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
