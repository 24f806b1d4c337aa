package systems

import (
	"fmt"

	cfg "github.com/automoto/balloonpop/config"
	"github.com/automoto/balloonpop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the score box, the speaker toggle, the back hint and,
// between sessions, the Start button.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	game := GetBalloonGame(e)
	if game == nil {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	drawScoreBox(screen, width, game.Session.Score())
	drawMuteIcon(screen, IsMuted())

	hintFont := fonts.Small.Get()
	text.Draw(screen, cfg.HUD.BackButtonLabel, hintFont,
		int(cfg.HUD.Margin), int(height-cfg.HUD.Margin), cfg.HUD.HintColor)

	if !game.Session.Active() {
		drawStartButton(screen)
	}
}

func drawScoreBox(screen *ebiten.Image, width float64, score int) {
	scoreFont := fonts.Bold.Get()
	bestFont := fonts.Small.Get()
	scoreText := fmt.Sprintf("Score: %d", score)
	bestText := fmt.Sprintf("Best: %d", max(BestScore(), score))

	pad := cfg.HUD.Padding
	scoreW := font.MeasureString(scoreFont, scoreText).Ceil()
	bestW := font.MeasureString(bestFont, bestText).Ceil()
	scoreH := scoreFont.Metrics().Height.Ceil()
	bestH := bestFont.Metrics().Height.Ceil()

	boxW := float64(max(scoreW, bestW)) + pad*2
	boxH := float64(scoreH+bestH) + pad*2
	x := width - cfg.HUD.Margin - boxW
	y := cfg.HUD.Margin

	vector.FillRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), cfg.HUD.ScoreBoxColor, false)
	text.Draw(screen, scoreText, scoreFont,
		int(x+pad), int(y+pad)+scoreFont.Metrics().Ascent.Ceil(), cfg.HUD.ScoreTextColor)
	text.Draw(screen, bestText, bestFont,
		int(x+pad), int(y+pad)+scoreH+bestFont.Metrics().Ascent.Ceil(), cfg.HUD.ScoreTextColor)
}

// drawMuteIcon draws a speaker in the top-left corner, crossed out when muted
func drawMuteIcon(screen *ebiten.Image, muted bool) {
	m, pad, s := cfg.HUD.Margin, cfg.HUD.Padding, cfg.HUD.MuteIconSize
	clr := cfg.HUD.MuteIconColor
	box := s + pad*2

	vector.FillRect(screen, float32(m), float32(m), float32(box), float32(box), cfg.HUD.ScoreBoxColor, false)

	x, y := float32(m+pad), float32(m+pad)
	size := float32(s)

	// Speaker body and cone
	vector.FillRect(screen, x, y+size*0.35, size*0.2, size*0.3, clr, false)
	for i := float32(0); i < 4; i++ {
		h := size * (0.3 + i*0.15)
		vector.FillRect(screen, x+size*(0.2+i*0.06), y+(size-h)/2, size*0.06, h, clr, false)
	}

	if muted {
		vector.StrokeLine(screen, x+size*0.6, y+size*0.3, x+size*0.95, y+size*0.7, 3, cfg.Red, true)
		vector.StrokeLine(screen, x+size*0.6, y+size*0.7, x+size*0.95, y+size*0.3, 3, cfg.Red, true)
		return
	}
	vector.StrokeLine(screen, x+size*0.62, y+size*0.4, x+size*0.62, y+size*0.6, 2, clr, true)
	vector.StrokeLine(screen, x+size*0.78, y+size*0.28, x+size*0.78, y+size*0.72, 2, clr, true)
	vector.StrokeLine(screen, x+size*0.94, y+size*0.16, x+size*0.94, y+size*0.84, 2, clr, true)
}

func drawStartButton(screen *ebiten.Image) {
	x, y, w, h := startButtonRect()
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Scene.ButtonColor, false)

	labelFont := fonts.Bold.Get()
	label := cfg.Scene.StartLabel
	labelW := font.MeasureString(labelFont, label).Ceil()
	ascent := labelFont.Metrics().Ascent.Ceil()
	descent := labelFont.Metrics().Descent.Ceil()
	tx := int(x + (w-float64(labelW))/2)
	ty := int(y+(h-float64(ascent+descent))/2) + ascent
	text.Draw(screen, label, labelFont, tx, ty, cfg.Scene.ButtonTextColor)
}
