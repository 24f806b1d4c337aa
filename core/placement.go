package core

import (
	"math"
	"math/rand"

	"github.com/automoto/balloonpop/shared/tuning"
)

// Area is the measured game-area size. Zero means not measured yet.
type Area struct {
	Width, Height float64
}

// TryPlace picks a spawn position for a new balloon. The area is split into
// cfg.Columns equal columns; each attempt centers the candidate on a random
// column just above the top edge. It gives up after cfg.SpawnAttempts
// rejected candidates, which is a normal outcome.
func TryPlace(existing []Balloon, area Area, cfg tuning.Balloon, rng *rand.Rand) (Balloon, bool) {
	colW := area.Width / float64(cfg.Columns)

	for attempt := 0; attempt < cfg.SpawnAttempts; attempt++ {
		col := rng.Intn(cfg.Columns)
		candidate := Balloon{
			X:     float64(col)*colW + colW/2 - cfg.Size/2,
			Y:     -cfg.Size,
			State: Falling,
		}
		if !Crowded(candidate, existing, cfg.Size) {
			return candidate, true
		}
	}
	return Balloon{}, false
}

// Crowded reports whether any existing balloon's center lies within size of
// the candidate's center on both axes.
// TODO: this is a center-distance approximation; switch to a real
// rectangle intersection if balloon sizes ever vary.
func Crowded(candidate Balloon, existing []Balloon, size float64) bool {
	cx, cy := candidate.Center(size)
	for _, b := range existing {
		bx, by := b.Center(size)
		if math.Abs(bx-cx) < size && math.Abs(by-cy) < size {
			return true
		}
	}
	return false
}
