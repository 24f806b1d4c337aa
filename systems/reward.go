package systems

import (
	"github.com/automoto/balloonpop/archetypes"
	"github.com/automoto/balloonpop/components"
	cfg "github.com/automoto/balloonpop/config"
	"github.com/automoto/balloonpop/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ShowReward opens the prize modal for a pop. A pop while the modal is
// already open only updates what it shows.
func ShowReward(e *ecs.ECS, ev core.RewardEvent) {
	reward := GetOrCreateReward(e)
	if !reward.Visible {
		PlaySFX(e, cfg.SoundAchievement)
	}
	reward.Visible = true
	reward.BalloonID = ev.BalloonID
	reward.Score = ev.Score
}

// ClaimReward closes the prize modal
func ClaimReward(e *ecs.ECS) {
	reward := GetOrCreateReward(e)
	if !reward.Visible {
		return
	}
	PlaySFX(e, cfg.SoundMenuSelect)
	reward.Visible = false
	reward.Claimed++
}

func IsRewardVisible(e *ecs.ECS) bool {
	entry, ok := components.Reward.First(e.World)
	return ok && components.Reward.Get(entry).Visible
}

// DrawRewardOverlay dims the game behind the prize modal. The modal itself
// is an ebitenui container owned by the scene.
func DrawRewardOverlay(e *ecs.ECS, screen *ebiten.Image) {
	if !IsRewardVisible(e) {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Reward.OverlayColor, false)
}

// GetOrCreateReward returns the singleton Reward component, creating if needed
func GetOrCreateReward(e *ecs.ECS) *components.RewardData {
	entry, ok := components.Reward.First(e.World)
	if !ok {
		entry = archetypes.Reward.Spawn(e)
	}
	return components.Reward.Get(entry)
}
