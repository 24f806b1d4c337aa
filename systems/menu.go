package systems

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/automoto/balloonpop/archetypes"
	"github.com/automoto/balloonpop/components"
	cfg "github.com/automoto/balloonpop/config"
	"github.com/automoto/balloonpop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createBalloonScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around
		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		selected := GetAction(input, cfg.ActionMenuSelect).JustPressed
		if input.Pointer.JustTapped {
			if i, ok := menuItemAt(menu, input.Pointer.Y); ok {
				menu.SelectedIndex = i
				selected = true
			}
		}

		// Handle selection
		if selected {
			PlaySFX(e, cfg.SoundMenuSelect)

			switch menu.VisibleOptions[menu.SelectedIndex] {
			case components.MainMenuBalloonGame:
				sceneChanger.ChangeScene(createBalloonScene())
			case components.MainMenuSound:
				SetMuted(!IsMuted())
				SaveCurrentSettings()
			case components.MainMenuVolume:
				CycleSFXVolume()
				SaveCurrentSettings()
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		// Allow back/escape to exit
		if GetAction(input, cfg.ActionBack).JustPressed {
			os.Exit(0)
		}
	}
}

// menuItemY returns the top of the i-th menu row
func menuItemY(i int) float64 {
	return cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)
}

// menuItemAt maps a pointer y to a menu row. Rows span the full width.
func menuItemAt(menu *components.MenuData, y float64) (int, bool) {
	for i := range menu.VisibleOptions {
		top := menuItemY(i)
		if y >= top && y < top+cfg.Menu.MenuItemHeight {
			return i, true
		}
	}
	return 0, false
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	// Draw title
	titleFont := fonts.Title.Get()
	drawCentered(screen, cfg.Menu.Title, titleFont, width, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	// Draw menu options
	menuFont := fonts.Bold.Get()
	for i, option := range menu.VisibleOptions {
		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		y := int(menuItemY(i) + cfg.Menu.MenuItemHeight)
		drawCentered(screen, getOptionLabel(option), menuFont, width, y, textColor)
	}

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(e)
	hintFont := fonts.Small.Get()
	drawCentered(screen, getMenuHint(input.LastInputMethod), hintFont, width, int(height)-12, cfg.Menu.TextColorNormal)

	if best := BestScore(); best > 0 {
		drawCentered(screen, fmt.Sprintf("Best: %d", best), hintFont, width, int(height)-48, cfg.Menu.TextColorNormal)
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width float64, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, int((width-float64(w))/2), y, clr)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	case components.InputPointer:
		return "Click an option to select it"
	}
	return "Arrows: Navigate   Enter: Select"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuBalloonGame:
		return "Balloon Game"
	case components.MainMenuSound:
		if IsMuted() {
			return "Sound: Off"
		}
		return "Sound: On"
	case components.MainMenuVolume:
		return fmt.Sprintf("Volume: %d%%", int(math.Round(GetSFXVolume()*100)))
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = archetypes.Menu.Spawn(e)
		components.Menu.SetValue(entry, components.MenuData{
			SelectedIndex: 0,
			VisibleOptions: []components.MainMenuOption{
				components.MainMenuBalloonGame,
				components.MainMenuSound,
				components.MainMenuVolume,
				components.MainMenuExit,
			},
		})
	}
	return components.Menu.Get(entry)
}
