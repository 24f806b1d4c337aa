package components

import (
	"github.com/automoto/balloonpop/assets/animations"
	"github.com/automoto/balloonpop/core"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Shard is one fragment of a popped balloon
type Shard struct {
	Angle float64 // radians
	Speed float64 // pixels per frame
}

// ExitEffectData drives the exit animation of a terminal balloon. The
// balloon entry is purged from the session once Animation is done.
type ExitEffectData struct {
	State     core.State
	Animation *animations.Animation
	Fade      *gween.Tween
	Scale     *gween.Tween

	Alpha  float32 // current opacity, 1 = opaque
	ScaleX float32
	ScaleY float32
	Shards []Shard
}

var ExitEffect = donburi.NewComponentType[ExitEffectData]()
