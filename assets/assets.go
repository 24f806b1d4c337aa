package assets

import (
	"embed"
	"fmt"
	"image/color"

	"github.com/automoto/balloonpop/config"
	"github.com/automoto/balloonpop/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// SkyPath is the embedded background layout of the balloon scene.
const SkyPath = "levels/sky.tmx"

// MustLoadSky parses the embedded sky layout.
func MustLoadSky() *leveldata.SkyLayout {
	sky, err := leveldata.LoadSky(assetFS, SkyPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load sky layout: %v", err))
	}
	return sky
}

type spriteKey struct {
	kind string
	idx  int
	w, h int
}

// SpriteLoader draws and caches procedural sprites.
type SpriteLoader struct {
	cache map[spriteKey]*ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{cache: make(map[spriteKey]*ebiten.Image)}
}

var spriteLoader = NewSpriteLoader()

// BalloonColor returns the body color for a balloon id.
func BalloonColor(id int) color.RGBA {
	colors := config.BalloonView.BodyColors
	if len(colors) == 0 {
		return config.Red
	}
	return colors[id%len(colors)]
}

// Balloon returns a size×size balloon sprite in the color for id. The body
// fills the upper part of the box and the string hangs below it.
func (l *SpriteLoader) Balloon(id int, size int) *ebiten.Image {
	colors := max(len(config.BalloonView.BodyColors), 1)
	key := spriteKey{kind: "balloon", idx: id % colors, w: size, h: size}
	if img, ok := l.cache[key]; ok {
		return img
	}

	view := config.BalloonView
	s := float32(size)
	knot := float32(view.KnotSize)
	stringLen := float32(view.StringLength)
	r := (s - knot - stringLen) / 2
	cx, cy := s/2, r+2

	img := ebiten.NewImage(size, size)
	body := BalloonColor(id)

	// string, drawn first so the knot covers its top
	vector.StrokeLine(img, cx, cy+r+knot/2, cx-6, s-2, 2, view.StringColor, true)

	// slightly tall body
	vector.FillCircle(img, cx, cy, r, body, true)
	vector.FillCircle(img, cx, cy+r*0.18, r*0.92, body, true)

	// knot
	vector.FillCircle(img, cx, cy+r+knot/3, knot/2, body, true)

	// highlight
	vector.FillCircle(img, cx-r*0.4, cy-r*0.4, r*0.18, view.Highlight, true)

	l.cache[key] = img
	return img
}

// Cloud returns a soft cloud sprite of the given size.
func (l *SpriteLoader) Cloud(w, h int) *ebiten.Image {
	key := spriteKey{kind: "cloud", w: w, h: h}
	if img, ok := l.cache[key]; ok {
		return img
	}

	img := ebiten.NewImage(max(w, 1), max(h, 1))
	fw, fh := float32(w), float32(h)
	c := config.Scene.CloudColor
	vector.FillCircle(img, fw*0.25, fh*0.6, fh*0.4, c, true)
	vector.FillCircle(img, fw*0.5, fh*0.45, fh*0.45, c, true)
	vector.FillCircle(img, fw*0.75, fh*0.6, fh*0.38, c, true)
	vector.FillRect(img, fw*0.25, fh*0.6, fw*0.5, fh*0.4, c, true)

	l.cache[key] = img
	return img
}

// GetBalloonImage returns the shared balloon sprite for id.
func GetBalloonImage(id int, size int) *ebiten.Image {
	return spriteLoader.Balloon(id, size)
}

// GetCloudImage returns the shared cloud sprite for a size.
func GetCloudImage(w, h int) *ebiten.Image {
	return spriteLoader.Cloud(w, h)
}
