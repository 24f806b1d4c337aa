package systems

import (
	"math"
	"time"

	"github.com/automoto/balloonpop/archetypes"
	"github.com/automoto/balloonpop/assets"
	"github.com/automoto/balloonpop/clock"
	"github.com/automoto/balloonpop/components"
	cfg "github.com/automoto/balloonpop/config"
	"github.com/automoto/balloonpop/core"
	"github.com/automoto/balloonpop/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// FrameDuration is the virtual time one ebiten tick advances the simulation.
const FrameDuration = time.Second / ebiten.DefaultTPS

var balloonDrawOp = &ebiten.DrawImageOptions{}

// NewBalloonGame spawns the game singleton and wires the session events to
// the presentation systems. The session must share the ECS world.
func NewBalloonGame(e *ecs.ECS, session *core.Session, loop *clock.FrameLoop, sky *leveldata.SkyLayout) *components.BalloonGameData {
	entry := archetypes.BalloonGame.Spawn(e)
	components.BalloonGame.SetValue(entry, components.BalloonGameData{
		Session:      session,
		Loop:         loop,
		Sky:          sky,
		CloudOffsets: make([]float64, len(sky.Clouds)),
	})

	core.OnPopped.Subscribe(e.World, func(w donburi.World, ev core.PoppedEvent) {
		PlaySFX(e, cfg.SoundPop)
		RecordScore(ev.Score)
		if entry, ok := session.Entry(ev.Balloon.ID); ok {
			AttachExitEffect(entry, ev.Balloon.ID, core.Exploded)
		}
	})
	core.OnDeflated.Subscribe(e.World, func(w donburi.World, ev core.DeflatedEvent) {
		if entry, ok := session.Entry(ev.Balloon.ID); ok {
			AttachExitEffect(entry, ev.Balloon.ID, core.Deflated)
		}
	})
	core.OnReward.Subscribe(e.World, func(w donburi.World, ev core.RewardEvent) {
		ShowReward(e, ev)
	})

	return components.BalloonGame.Get(entry)
}

// GetBalloonGame returns the game singleton, or nil outside the balloon scene
func GetBalloonGame(e *ecs.ECS) *components.BalloonGameData {
	entry, ok := components.BalloonGame.First(e.World)
	if !ok {
		return nil
	}
	return components.BalloonGame.Get(entry)
}

// UpdateBalloonGame routes input to the session, then advances the
// simulation by one display frame and delivers its events.
func UpdateBalloonGame(e *ecs.ECS) {
	game := GetBalloonGame(e)
	if game == nil {
		return
	}
	input := getOrCreateInput(e)
	reward := GetOrCreateReward(e)
	session := game.Session

	if GetAction(input, cfg.ActionBack).JustPressed {
		if reward.Visible {
			ClaimReward(e)
		} else {
			game.BackRequested = true
		}
	}

	switch {
	case !session.Active():
		clicked := input.Pointer.JustTapped && startButtonHit(input.Pointer.X, input.Pointer.Y)
		if clicked || GetAction(input, cfg.ActionStart).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			session.Start()
		}
	case input.Pointer.JustTapped && !reward.Visible:
		session.TapAt(input.Pointer.X, input.Pointer.Y)
	}

	game.Loop.Advance(FrameDuration)
	events.ProcessAllEvents(e.World)
}

// startButtonRect returns the centered Start button in game-area pixels.
func startButtonRect() (x, y, w, h float64) {
	w, h = cfg.Scene.StartButtonW, cfg.Scene.StartButtonH
	x = (float64(cfg.C.Width) - w) / 2
	y = (float64(cfg.C.Height) - h) / 2
	return
}

func startButtonHit(px, py float64) bool {
	x, y, w, h := startButtonRect()
	return px >= x && px < x+w && py >= y && py < y+h
}

// DrawBalloons renders every balloon in id order, so later balloons are on
// top, matching the tap picking order.
func DrawBalloons(e *ecs.ECS, screen *ebiten.Image) {
	game := GetBalloonGame(e)
	if game == nil {
		return
	}
	size := game.Session.Config().Size

	for _, b := range game.Session.Balloons() {
		entry, ok := game.Session.Entry(b.ID)
		if !ok {
			continue
		}
		if b.State == core.Falling || !entry.HasComponent(components.ExitEffect) {
			drawBalloonSprite(screen, b, size, 1, 1, 1)
			continue
		}

		fx := components.ExitEffect.Get(entry)
		switch fx.State {
		case core.Exploded:
			drawBalloonSprite(screen, b, size, fx.ScaleX, fx.ScaleY, fx.Alpha)
			drawShards(screen, b, size, fx)
		case core.Deflated:
			drawDeflated(screen, b, size, fx)
		}
	}
}

// drawBalloonSprite draws the sprite scaled around its center.
func drawBalloonSprite(screen *ebiten.Image, b core.Balloon, size float64, sx, sy, alpha float32) {
	img := assets.GetBalloonImage(b.ID, int(size))
	half := size / 2

	balloonDrawOp.GeoM.Reset()
	balloonDrawOp.GeoM.Translate(-half, -half)
	balloonDrawOp.GeoM.Scale(float64(sx), float64(sy))
	balloonDrawOp.GeoM.Translate(b.X+half, b.Y+half)
	balloonDrawOp.ColorScale.Reset()
	balloonDrawOp.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, balloonDrawOp)
}

// drawShards scatters fragments outward from the balloon center.
func drawShards(screen *ebiten.Image, b core.Balloon, size float64, fx *components.ExitEffectData) {
	cx, cy := b.Center(size)
	travel := fx.Animation.Progress() * float64(fx.Animation.Duration())
	clr := cfg.Effects.ShardColor
	clr.A = uint8(float32(clr.A) * fx.Alpha)

	for _, s := range fx.Shards {
		d := size/3 + s.Speed*travel
		x := cx + math.Cos(s.Angle)*d
		y := cy + math.Sin(s.Angle)*d
		vector.FillRect(screen, float32(x-3), float32(y-3), 6, 6, clr, false)
	}
}

// drawDeflated squashes the sprite onto the floor and fades its color out.
func drawDeflated(screen *ebiten.Image, b core.Balloon, size float64, fx *components.ExitEffectData) {
	img := assets.GetBalloonImage(b.ID, int(size))
	half := size / 2

	var geo ebiten.GeoM
	geo.Translate(-half, -size)
	geo.Scale(float64(fx.ScaleX), float64(fx.ScaleY))
	geo.Translate(b.X+half, b.Y+size)

	if assets.DesaturateShader == nil {
		balloonDrawOp.GeoM = geo
		balloonDrawOp.ColorScale.Reset()
		balloonDrawOp.ColorScale.ScaleWithColor(cfg.Effects.DeflateTint)
		balloonDrawOp.ColorScale.ScaleAlpha(fx.Alpha)
		screen.DrawImage(img, balloonDrawOp)
		return
	}

	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM = geo
	op.ColorScale.ScaleAlpha(fx.Alpha)
	op.Images[0] = img
	op.Uniforms = map[string]any{
		"Amount": float32(fx.Animation.Progress()),
	}
	bounds := img.Bounds()
	screen.DrawRectShader(bounds.Dx(), bounds.Dy(), assets.DesaturateShader, op)
}
