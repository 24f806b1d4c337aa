package systems

import (
	"image/color"

	"github.com/automoto/balloonpop/assets"
	cfg "github.com/automoto/balloonpop/config"
	"github.com/automoto/balloonpop/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	skyGradient *ebiten.Image
	skyDrawOp   = &ebiten.DrawImageOptions{}
)

// UpdateSky drifts the clouds, wrapping them around the game area
func UpdateSky(e *ecs.ECS) {
	game := GetBalloonGame(e)
	if game == nil || game.Sky == nil {
		return
	}
	width := float64(game.Sky.Width)
	for i, c := range game.Sky.Clouds {
		if i >= len(game.CloudOffsets) {
			break
		}
		game.CloudOffsets[i] = gamemath.Wrap(game.CloudOffsets[i]+c.Drift, 0, width+c.W)
	}
}

// DrawSky renders the background gradient and the cloud layer
func DrawSky(e *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if skyGradient == nil || skyGradient.Bounds().Dx() != w || skyGradient.Bounds().Dy() != h {
		skyGradient = newGradient(w, h, cfg.Scene.SkyTop, cfg.Scene.SkyBottom)
	}
	screen.DrawImage(skyGradient, nil)

	game := GetBalloonGame(e)
	if game == nil || game.Sky == nil {
		return
	}
	for i, c := range game.Sky.Clouds {
		x := c.X
		if i < len(game.CloudOffsets) {
			x = wrapCloudX(c.X+game.CloudOffsets[i], c.W, float64(game.Sky.Width))
		}
		img := assets.GetCloudImage(int(c.W), int(c.H))
		skyDrawOp.GeoM.Reset()
		skyDrawOp.GeoM.Translate(x, c.Y)
		screen.DrawImage(img, skyDrawOp)
	}
}

// wrapCloudX keeps a drifting cloud inside [-w, width).
func wrapCloudX(x, w, width float64) float64 {
	return gamemath.Wrap(x, -w, width+w)
}

// newGradient builds a vertical gradient one row at a time
func newGradient(w, h int, top, bottom color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		r := lerp8(top.R, bottom.R, t)
		g := lerp8(top.G, bottom.G, t)
		b := lerp8(top.B, bottom.B, t)
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, 255
		}
	}
	img.WritePixels(pix)
	return img
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(gamemath.Lerp(float64(a), float64(b), t))
}
