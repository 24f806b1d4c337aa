package core

import (
	"math/rand"
	"testing"

	"github.com/automoto/balloonpop/shared/tuning"
)

func columnBalloons(area Area, cfg tuning.Balloon) []Balloon {
	colW := area.Width / float64(cfg.Columns)
	var out []Balloon
	for c := 0; c < cfg.Columns; c++ {
		out = append(out, Balloon{
			ID:    c + 1,
			X:     float64(c)*colW + colW/2 - cfg.Size/2,
			Y:     -cfg.Size,
			Speed: 1,
			State: Falling,
		})
	}
	return out
}

func TestTryPlaceRejectsSaturatedColumns(t *testing.T) {
	cfg := tuning.Default()
	area := Area{Width: 1500, Height: 1000}
	existing := columnBalloons(area, cfg)

	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		if b, ok := TryPlace(existing, area, cfg, rng); ok {
			t.Fatalf("seed %d: placed %+v on a saturated area", seed, b)
		}
	}
}

func TestTryPlaceUsesColumnCenters(t *testing.T) {
	cfg := tuning.Default()
	area := Area{Width: 1600, Height: 1000}
	rng := rand.New(rand.NewSource(7))

	b, ok := TryPlace(nil, area, cfg, rng)
	if !ok {
		t.Fatal("placement failed on an empty area")
	}
	if b.Y != -cfg.Size {
		t.Errorf("spawn y = %v, want %v", b.Y, -cfg.Size)
	}
	if b.State != Falling {
		t.Errorf("spawn state = %v, want Falling", b.State)
	}

	colW := area.Width / float64(cfg.Columns)
	cx, _ := b.Center(cfg.Size)
	col := int(cx / colW)
	if want := float64(col)*colW + colW/2; cx != want {
		t.Errorf("center x = %v, want column %d center %v", cx, col, want)
	}
}

func TestTryPlaceAvoidsOccupiedColumn(t *testing.T) {
	cfg := tuning.Default()
	cfg.Columns = 2
	area := Area{Width: 1000, Height: 1000}
	// Column 0 is taken; column 1 is 500px away and always acceptable.
	existing := columnBalloons(area, cfg)[:1]

	placed := 0
	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b, ok := TryPlace(existing, area, cfg, rng)
		if !ok {
			continue
		}
		placed++
		if Crowded(b, existing, cfg.Size) {
			t.Fatalf("seed %d: placed %+v on top of %+v", seed, b, existing[0])
		}
		if cx, _ := b.Center(cfg.Size); cx != 750 {
			t.Fatalf("seed %d: center x = %v, want the free column at 750", seed, cx)
		}
	}
	if placed == 0 {
		t.Fatal("no seed found the free column")
	}
}

func TestCrowdedIsCenterDistanceOnBothAxes(t *testing.T) {
	const size = 200
	candidate := Balloon{X: 0, Y: -size}

	tests := []struct {
		name  string
		other Balloon
		want  bool
	}{
		{"same spot", Balloon{X: 0, Y: -size}, true},
		{"close on both axes", Balloon{X: 150, Y: -100}, true},
		{"exactly one size apart horizontally", Balloon{X: size, Y: -size}, false},
		{"close horizontally only", Balloon{X: 10, Y: 300}, false},
		{"close vertically only", Balloon{X: 400, Y: -size}, false},
		{"adjacent 8-column slots at 1500px", Balloon{X: 187.5, Y: -size}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Crowded(candidate, []Balloon{tt.other}, size); got != tt.want {
				t.Errorf("Crowded = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTryPlaceZeroWidthDegrades(t *testing.T) {
	cfg := tuning.Default()
	rng := rand.New(rand.NewSource(3))

	first, ok := TryPlace(nil, Area{}, cfg, rng)
	if !ok {
		t.Fatal("first placement on an unmeasured area should succeed")
	}
	if _, ok := TryPlace([]Balloon{first}, Area{}, cfg, rng); ok {
		t.Fatal("second placement on an unmeasured area should be rejected")
	}
}
