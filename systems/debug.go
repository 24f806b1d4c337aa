package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/balloonpop/config"
	"github.com/automoto/balloonpop/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines balloon bodies and prints simulation counters
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBodies {
		return
	}
	game := GetBalloonGame(ecs)
	if game == nil {
		return
	}

	size := game.Session.Config().Size
	for _, b := range game.Session.Balloons() {
		// Determine color based on state
		c := color.RGBA{0, 255, 255, 255} // Cyan falling
		switch b.State {
		case core.Exploded:
			c = color.RGBA{255, 0, 0, 255}
		case core.Deflated:
			c = color.RGBA{100, 100, 100, 255}
		}

		x, y, w := float32(b.X), float32(b.Y), float32(size)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+w-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, w, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, w, c, false) // Right
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("#%d %.2f", b.ID, b.Speed), int(b.X)+4, int(b.Y)+4)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  falling: %d/%d  virtual: %v",
		ebiten.ActualTPS(), game.Session.FallingCount(), game.Session.Config().MaxBalloons, game.Loop.Now()),
		int(cfg.HUD.Margin), int(cfg.HUD.Margin+cfg.HUD.MuteIconSize+cfg.HUD.Padding*2+4))
}
