package systems

import (
	"math"

	"github.com/automoto/balloonpop/assets/animations"
	"github.com/automoto/balloonpop/components"
	"github.com/automoto/balloonpop/config"
	"github.com/automoto/balloonpop/core"
	"github.com/automoto/balloonpop/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var exitingBalloons = donburi.NewQuery(filter.Contains(core.BalloonComponent, components.ExitEffect))

// UpdateEffects advances exit effects and purges balloons whose effect has
// finished playing.
func UpdateEffects(ecs *ecs.ECS) {
	game := GetBalloonGame(ecs)
	if game == nil {
		return
	}

	var finished []int
	exitingBalloons.Each(ecs.World, func(e *donburi.Entry) {
		if stepExitEffect(components.ExitEffect.Get(e)) {
			finished = append(finished, core.BalloonComponent.Get(e).ID)
		}
	})

	// Purge after iterating; CompleteExit removes entries from the world
	for _, id := range finished {
		game.Session.CompleteExit(id)
	}
}

// stepExitEffect advances one frame and reports whether the effect is done.
func stepExitEffect(fx *components.ExitEffectData) bool {
	fx.Animation.Update()

	if fx.Fade != nil {
		fx.Alpha, _ = fx.Fade.Update(1)
	}
	if fx.Scale != nil {
		s, _ := fx.Scale.Update(1)
		switch fx.State {
		case core.Exploded:
			fx.ScaleX, fx.ScaleY = s, s
		case core.Deflated:
			fx.ScaleY = s
			fx.ScaleX = deflateSpread(s)
		}
	}

	return fx.Animation.Done()
}

// deflateSpread widens the balloon as it squashes onto the floor.
func deflateSpread(scaleY float32) float32 {
	squash := float32(config.Effects.DeflateSquashY)
	if squash >= 1 {
		return 1
	}
	t := gamemath.InvLerp(1, float64(squash), float64(scaleY))
	return float32(gamemath.Lerp(1, config.Effects.DeflateSpreadX, t))
}

// AttachExitEffect starts the exit effect for a balloon that just reached
// a terminal state.
func AttachExitEffect(entry *donburi.Entry, id int, state core.State) {
	def, ok := config.ExitAnimations[state]
	if !ok {
		return
	}
	anim := animations.NewOneShot(def.First, def.Last, def.Step, def.Speed)
	duration := float32(anim.Duration())

	fx := components.ExitEffectData{
		State:     state,
		Animation: anim,
		Alpha:     1,
		ScaleX:    1,
		ScaleY:    1,
	}
	switch state {
	case core.Exploded:
		fx.Fade = gween.New(1, 0, duration, ease.OutQuad)
		fx.Scale = gween.New(1, float32(config.Effects.ExplodeScale), duration, ease.OutCubic)
		fx.Shards = newShards(id, config.Effects.ShardCount)
	case core.Deflated:
		fx.Fade = gween.New(1, 0, duration, ease.InCubic)
		fx.Scale = gween.New(1, float32(config.Effects.DeflateSquashY), duration, ease.OutBounce)
	}

	if !entry.HasComponent(components.ExitEffect) {
		entry.AddComponent(components.ExitEffect)
	}
	components.ExitEffect.SetValue(entry, fx)
}

// newShards spreads n fragments evenly around the circle. The id rotates
// the pattern so neighbouring pops look different.
func newShards(id, n int) []components.Shard {
	shards := make([]components.Shard, n)
	offset := float64(id%7) * 0.13
	for i := range shards {
		shards[i] = components.Shard{
			Angle: 2*math.Pi*float64(i)/float64(n) + offset,
			Speed: 4 + float64(i%3),
		}
	}
	return shards
}
