package systems

import (
	"math"
	"testing"

	"github.com/automoto/balloonpop/components"
	"github.com/automoto/balloonpop/config"
	"github.com/automoto/balloonpop/core"
	"github.com/yohamta/donburi"
)

func TestExitEffectRunsForAnimationDuration(t *testing.T) {
	tests := []struct {
		state     core.State
		wantTicks int
		wantX     float32
		wantY     float32
	}{
		{core.Exploded, 42, float32(config.Effects.ExplodeScale), float32(config.Effects.ExplodeScale)},
		{core.Deflated, 62, float32(config.Effects.DeflateSpreadX), float32(config.Effects.DeflateSquashY)},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			w := donburi.NewWorld()
			entry := w.Entry(w.Create(core.BalloonComponent))
			AttachExitEffect(entry, 1, tt.state)

			if !entry.HasComponent(components.ExitEffect) {
				t.Fatal("exit effect not attached")
			}
			fx := components.ExitEffect.Get(entry)

			ticks := 0
			for !stepExitEffect(fx) {
				ticks++
				if ticks > 1000 {
					t.Fatal("effect never finished")
				}
			}
			ticks++

			if ticks != tt.wantTicks {
				t.Errorf("ticks = %d, want %d", ticks, tt.wantTicks)
			}
			if fx.Alpha != 0 {
				t.Errorf("alpha = %v, want 0", fx.Alpha)
			}
			if math.Abs(float64(fx.ScaleX-tt.wantX)) > 1e-4 || math.Abs(float64(fx.ScaleY-tt.wantY)) > 1e-4 {
				t.Errorf("scale = (%v, %v), want (%v, %v)", fx.ScaleX, fx.ScaleY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestAttachExitEffectIgnoresFalling(t *testing.T) {
	w := donburi.NewWorld()
	entry := w.Entry(w.Create(core.BalloonComponent))
	AttachExitEffect(entry, 1, core.Falling)
	if entry.HasComponent(components.ExitEffect) {
		t.Fatal("falling balloons have no exit effect")
	}
}

func TestShardsOnlyForExplosions(t *testing.T) {
	w := donburi.NewWorld()
	popped := w.Entry(w.Create(core.BalloonComponent))
	deflated := w.Entry(w.Create(core.BalloonComponent))
	AttachExitEffect(popped, 3, core.Exploded)
	AttachExitEffect(deflated, 4, core.Deflated)

	if n := len(components.ExitEffect.Get(popped).Shards); n != config.Effects.ShardCount {
		t.Errorf("exploded shards = %d, want %d", n, config.Effects.ShardCount)
	}
	if n := len(components.ExitEffect.Get(deflated).Shards); n != 0 {
		t.Errorf("deflated shards = %d, want 0", n)
	}
}

func TestDeflateSpread(t *testing.T) {
	if got := deflateSpread(1); got != 1 {
		t.Errorf("deflateSpread(1) = %v, want 1", got)
	}
	squash := float32(config.Effects.DeflateSquashY)
	want := float32(config.Effects.DeflateSpreadX)
	if got := deflateSpread(squash); math.Abs(float64(got-want)) > 1e-5 {
		t.Errorf("deflateSpread(squash) = %v, want %v", got, want)
	}
}
