package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/balloonpop/components"
	cfg "github.com/automoto/balloonpop/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// RewardUI is the prize modal shown after a balloon pop
type RewardUI struct {
	UI     *ebitenui.UI
	Reward *components.RewardData

	OnClaim func()

	scoreLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewRewardUI builds the modal for the given reward state
func NewRewardUI(reward *components.RewardData, onClaim func()) *RewardUI {
	rui := &RewardUI{
		Reward:  reward,
		OnClaim: onClaim,
	}

	rui.loadFonts()
	rui.buildUI()

	return rui
}

func (rui *RewardUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	rui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Reward.TitleSize,
	}
	rui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Reward.TextSize,
	}
}

func (rui *RewardUI) buildUI() {
	// Transparent root; the dim overlay is drawn by the ECS renderer
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 24, Bottom: 24, Left: 32, Right: 32}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Reward.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Reward.PanelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
	})

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(centered)),
		widget.LabelOpts.Text(cfg.Reward.Title, &rui.titleFace, &widget.LabelColor{
			Idle: cfg.Reward.TitleColor,
		}),
	))

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(centered)),
		widget.LabelOpts.Text(cfg.Reward.Message, &rui.normalFace, &widget.LabelColor{
			Idle: cfg.Reward.TextColor,
		}),
	))

	rui.scoreLabel = widget.NewLabel(
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(centered)),
		widget.LabelOpts.Text("", &rui.normalFace, &widget.LabelColor{
			Idle: cfg.Reward.TextColor,
		}),
	)
	panel.AddChild(rui.scoreLabel)

	claimButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 48),
			centered,
		),
		widget.ButtonOpts.Image(rui.buttonImage()),
		widget.ButtonOpts.Text(cfg.Reward.ButtonLabel, &rui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.White,
			Pressed: color.RGBA{220, 220, 220, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnClaim != nil {
				rui.OnClaim()
			}
		}),
	)
	panel.AddChild(claimButton)

	rootContainer.AddChild(panel)

	rui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (rui *RewardUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Reward.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Reward.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Reward.ButtonHover),
		Disabled: image.NewNineSliceColor(cfg.DarkGray),
	}
}

// UpdateUI refreshes labels from the reward state
func (rui *RewardUI) UpdateUI() {
	rui.scoreLabel.Label = fmt.Sprintf("Balloons popped: %d", rui.Reward.Score)
}

// Update processes UI input. Call only while the modal is visible.
func (rui *RewardUI) Update() {
	rui.UpdateUI()
	rui.UI.Update()
}

func (rui *RewardUI) Draw(screen *ebiten.Image) {
	rui.UI.Draw(screen)
}
