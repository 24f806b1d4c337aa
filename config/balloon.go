package config

import (
	"fmt"
	"os"

	"github.com/automoto/balloonpop/shared/tuning"
)

// Balloon is the simulation tuning the game scenes start sessions with.
var Balloon = tuning.Default()

// LoadBalloonOverrides reads a YAML file and replaces Balloon with the
// defaults plus the overrides it contains. Balloon is left untouched on error.
func LoadBalloonOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read balloon config %s: %w", path, err)
	}
	b, err := tuning.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	Balloon = b
	return nil
}
