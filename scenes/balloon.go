package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/balloonpop/assets"
	"github.com/automoto/balloonpop/clock"
	"github.com/automoto/balloonpop/components"
	cfg "github.com/automoto/balloonpop/config"
	"github.com/automoto/balloonpop/core"
	"github.com/automoto/balloonpop/systems"
	"github.com/automoto/balloonpop/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BalloonScene hosts one balloon game session. The session shares the
// scene's world, so balloon entries and presentation singletons live side
// by side.
type BalloonScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	game         *components.BalloonGameData
	rewardUI     *ui.RewardUI
	once         sync.Once
}

// NewBalloonScene creates a new balloon scene
func NewBalloonScene(sc SceneChanger) *BalloonScene {
	return &BalloonScene{sceneChanger: sc}
}

func (bs *BalloonScene) Update() {
	bs.once.Do(bs.configure)

	if systems.IsRewardVisible(bs.ecs) {
		bs.rewardUI.Update()
	}
	bs.ecs.Update()

	if bs.game.BackRequested {
		bs.exit()
	}
}

func (bs *BalloonScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)

	if systems.IsRewardVisible(bs.ecs) {
		bs.rewardUI.Draw(screen)
	}
}

// exit tears the session down before leaving so no timer outlives the scene
func (bs *BalloonScene) exit() {
	bs.game.Session.Stop()
	systems.RecordScore(bs.game.Session.Score())
	systems.SaveCurrentSettings()
	bs.sceneChanger.ChangeScene(NewMenuScene(bs.sceneChanger))
}

func (bs *BalloonScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	// Deflated balloons fall back to a flat tint without the shader
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders: %v", err)
	}

	sky := assets.MustLoadSky()
	world := donburi.NewWorld()
	bs.ecs = ecs.NewECS(world)

	loop := clock.NewFrameLoop()
	session := core.NewSession(loop,
		core.WithConfig(cfg.Balloon),
		core.WithArea(float64(sky.Width), float64(sky.Height)),
		core.WithWorld(world),
	)
	bs.game = systems.NewBalloonGame(bs.ecs, session, loop, sky)

	// Audio system (runs first to initialize audio context)
	bs.ecs.AddSystem(systems.UpdateAudio)

	bs.ecs.AddSystem(systems.UpdateInput)
	// Settings consumes taps on the speaker icon before the game sees them
	bs.ecs.AddSystem(systems.UpdateSettings)
	bs.ecs.AddSystem(systems.UpdateSky)
	bs.ecs.AddSystem(systems.UpdateBalloonGame)
	bs.ecs.AddSystem(systems.UpdateEffects)

	bs.ecs.AddRenderer(cfg.Default, systems.DrawSky)
	bs.ecs.AddRenderer(cfg.LayerBalloons, systems.DrawBalloons)
	bs.ecs.AddRenderer(cfg.LayerBalloons, systems.DrawDebug)
	bs.ecs.AddRenderer(cfg.LayerOverlay, systems.DrawHUD)
	bs.ecs.AddRenderer(cfg.LayerOverlay, systems.DrawRewardOverlay)

	bs.rewardUI = ui.NewRewardUI(systems.GetOrCreateReward(bs.ecs), func() {
		systems.ClaimReward(bs.ecs)
	})

	if cfg.Debug.SkipMenu {
		session.Start()
	}
}
