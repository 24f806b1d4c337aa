package archetypes

import (
	"github.com/automoto/balloonpop/components"
	cfg "github.com/automoto/balloonpop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Scene singletons. Balloon entries are created by core.Session, not here.
var (
	BalloonGame = newArchetype(
		components.BalloonGame,
	)
	Reward = newArchetype(
		components.Reward,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Menu = newArchetype(
		components.Menu,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
