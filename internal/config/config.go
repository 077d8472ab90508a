// Package config provides YAML-based engine configuration loading.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config contains the tunable engine rules.
type Config struct {
	Size         int     `yaml:"size"`          // Grid dimension (N x N)
	Goal         int     `yaml:"goal"`          // Tile value that wins the game
	InitialTiles int     `yaml:"initial_tiles"` // Tiles spawned by reset
	ChanceOfTwo  float64 `yaml:"chance_of_two"` // Probability a spawned tile is 2 (else 4)
	Seed         int64   `yaml:"seed"`          // RNG seed, 0 = time based
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("%w: size %d, must be at least 2", ErrInvalidConfig, c.Size)
	}
	if c.Goal < 4 || c.Goal&(c.Goal-1) != 0 {
		return fmt.Errorf("%w: goal %d, must be a power of two of at least 4", ErrInvalidConfig, c.Goal)
	}
	if c.InitialTiles < 1 || c.InitialTiles > c.Size*c.Size {
		return fmt.Errorf("%w: initial_tiles %d, must be between 1 and %d",
			ErrInvalidConfig, c.InitialTiles, c.Size*c.Size)
	}
	if c.ChanceOfTwo < 0 || c.ChanceOfTwo > 1 {
		return fmt.Errorf("%w: chance_of_two %v, must be between 0 and 1", ErrInvalidConfig, c.ChanceOfTwo)
	}
	return nil
}
