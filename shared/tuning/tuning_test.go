package tuning

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
size: 120
maxBalloons: 4
minSpawnDelayMs: 500
`)
	b, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if b.Size != 120 || b.MaxBalloons != 4 {
		t.Errorf("override not applied: size=%v max=%d", b.Size, b.MaxBalloons)
	}
	if b.Columns != 8 || b.SpawnAttempts != 10 {
		t.Errorf("defaults lost: columns=%d attempts=%d", b.Columns, b.SpawnAttempts)
	}
	if b.MinSpawnDelay() != 500*time.Millisecond || b.MaxSpawnDelay() != 3*time.Second {
		t.Errorf("delay range = [%v, %v), want [500ms, 3s)", b.MinSpawnDelay(), b.MaxSpawnDelay())
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero size", "size: 0", "size"},
		{"no columns", "columns: 0", "columns"},
		{"no attempts", "spawnAttempts: 0", "spawnAttempts"},
		{"no balloons", "maxBalloons: 0", "maxBalloons"},
		{"inverted delay", "minSpawnDelayMs: 4000", "spawn delay"},
		{"inverted speed", "minSpeed: 3", "speed range"},
		{"bad yaml", "size: [", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.yaml)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
