package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// Default returns the hard-coded engine configuration.
func Default() Config {
	return Config{
		Size:         4,
		Goal:         2048,
		InitialTiles: 2,
		ChanceOfTwo:  0.75,
		Seed:         0,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultEngineYAML
}
