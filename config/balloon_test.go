package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/balloonpop/shared/tuning"
)

func TestLoadBalloonOverrides(t *testing.T) {
	t.Cleanup(func() { Balloon = tuning.Default() })

	path := filepath.Join(t.TempDir(), "balloon.yaml")
	if err := os.WriteFile(path, []byte("maxBalloons: 4\nminSpeed: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadBalloonOverrides(path); err != nil {
		t.Fatalf("LoadBalloonOverrides: %v", err)
	}
	if Balloon.MaxBalloons != 4 || Balloon.MinSpeed != 0.5 {
		t.Errorf("overrides not applied: %+v", Balloon)
	}
	if Balloon.Size != 200 || Balloon.Columns != 8 {
		t.Errorf("defaults lost: %+v", Balloon)
	}
}

func TestLoadBalloonOverridesKeepsCurrentOnError(t *testing.T) {
	t.Cleanup(func() { Balloon = tuning.Default() })
	Balloon.MaxBalloons = 3

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("size: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"invalid values", bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := LoadBalloonOverrides(tt.path); err == nil {
				t.Fatal("expected an error")
			}
			if Balloon.MaxBalloons != 3 {
				t.Errorf("Balloon changed on error: %+v", Balloon)
			}
		})
	}
}
