// Package tuning holds the balloon simulation parameters. It must have zero
// dependencies on ebiten or any graphics library so the simulation and the
// headless runner stay windowless.
package tuning

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Balloon contains the balloon game tuning values.
type Balloon struct {
	Size          float64 `yaml:"size"`          // Balloon width and height in pixels
	MaxBalloons   int     `yaml:"maxBalloons"`   // Cap on simultaneously falling balloons
	Columns       int     `yaml:"columns"`       // Spawn columns across the game area
	SpawnAttempts int     `yaml:"spawnAttempts"` // Placement tries per spawn tick

	// Spawn delay is drawn uniformly from [MinSpawnDelayMs, MaxSpawnDelayMs)
	MinSpawnDelayMs int `yaml:"minSpawnDelayMs"`
	MaxSpawnDelayMs int `yaml:"maxSpawnDelayMs"`

	// Per-frame fall speed is drawn uniformly from [MinSpeed, MaxSpeed)
	MinSpeed float64 `yaml:"minSpeed"`
	MaxSpeed float64 `yaml:"maxSpeed"`
}

// Default returns the stock tuning.
func Default() Balloon {
	return Balloon{
		Size:            200,
		MaxBalloons:     10,
		Columns:         8,
		SpawnAttempts:   10,
		MinSpawnDelayMs: 1000,
		MaxSpawnDelayMs: 3000,
		MinSpeed:        1,
		MaxSpeed:        2,
	}
}

// Parse decodes YAML overrides on top of Default. Keys missing from data
// keep their default value.
func Parse(data []byte) (Balloon, error) {
	b := Default()
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Balloon{}, fmt.Errorf("failed to parse balloon tuning YAML: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Balloon{}, fmt.Errorf("invalid balloon config: %w", err)
	}
	return b, nil
}

// Validate checks that the values describe a playable game.
func (b Balloon) Validate() error {
	if b.Size <= 0 {
		return fmt.Errorf("size must be > 0, got %v", b.Size)
	}
	if b.MaxBalloons < 1 {
		return fmt.Errorf("maxBalloons must be >= 1, got %d", b.MaxBalloons)
	}
	if b.Columns < 1 {
		return fmt.Errorf("columns must be >= 1, got %d", b.Columns)
	}
	if b.SpawnAttempts < 1 {
		return fmt.Errorf("spawnAttempts must be >= 1, got %d", b.SpawnAttempts)
	}
	if b.MinSpawnDelayMs < 0 || b.MaxSpawnDelayMs < b.MinSpawnDelayMs {
		return fmt.Errorf("spawn delay range [%d, %d) is invalid", b.MinSpawnDelayMs, b.MaxSpawnDelayMs)
	}
	if b.MinSpeed <= 0 || b.MaxSpeed < b.MinSpeed {
		return fmt.Errorf("speed range [%v, %v) is invalid", b.MinSpeed, b.MaxSpeed)
	}
	return nil
}

// MinSpawnDelay returns the lower spawn delay bound.
func (b Balloon) MinSpawnDelay() time.Duration {
	return time.Duration(b.MinSpawnDelayMs) * time.Millisecond
}

// MaxSpawnDelay returns the upper spawn delay bound.
func (b Balloon) MaxSpawnDelay() time.Duration {
	return time.Duration(b.MaxSpawnDelayMs) * time.Millisecond
}
