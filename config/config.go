package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// BalloonViewConfig contains balloon sprite configuration
type BalloonViewConfig struct {
	BodyColors   []color.RGBA // cycled by balloon id
	Highlight    color.RGBA
	StringColor  color.RGBA
	KnotSize     float64
	StringLength float64
}

// EffectsConfig contains exit effect configuration
type EffectsConfig struct {
	ExplodeScale   float64 // final scale of the burst
	DeflateSquashY float64 // final vertical scale of a deflated balloon
	DeflateSpreadX float64 // final horizontal scale of a deflated balloon
	ShardCount     int
	ShardColor     color.RGBA
	DeflateTint    color.RGBA
}

// HUDConfig contains in-game overlay configuration
type HUDConfig struct {
	Margin          float64
	Padding         float64
	ScoreBoxColor   color.RGBA
	ScoreTextColor  color.RGBA
	HintColor       color.RGBA
	MuteIconColor   color.RGBA
	MuteIconSize    float64
	BackButtonLabel string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// SceneConfig contains balloon scene configuration
type SceneConfig struct {
	SkyTop          color.RGBA
	SkyBottom       color.RGBA
	CloudColor      color.RGBA
	StartLabel      string
	StartButtonW    float64
	StartButtonH    float64
	ButtonColor     color.RGBA
	ButtonTextColor color.RGBA
}

// RewardConfig contains reward modal configuration
type RewardConfig struct {
	Title        string
	Message      string
	ButtonLabel  string
	OverlayColor color.RGBA
	PanelColor   color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	ButtonIdle   color.RGBA
	ButtonHover  color.RGBA
	PanelWidth   int
	TitleSize    float64
	TextSize     float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // Skip menu and go directly to the balloon scene
	ShowBodies bool // Outline balloon collision bodies
}

// Global configuration instances
var C *Config
var BalloonView BalloonViewConfig
var Effects EffectsConfig
var HUD HUDConfig
var Menu MenuConfig
var Scene SceneConfig
var Reward RewardConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 230, G: 40, B: 50, A: 255}
	Green        = color.RGBA{R: 76, G: 175, B: 80, A: 255} // #4CAF50
	DarkGreen    = color.RGBA{R: 69, G: 160, B: 73, A: 255} // #45a049
	Blue         = color.RGBA{R: 40, G: 110, B: 230, A: 255}
	Purple       = color.RGBA{R: 140, G: 60, B: 220, A: 255}
	Yellow       = color.RGBA{R: 250, G: 210, B: 40, A: 255}
	Pink         = color.RGBA{R: 240, G: 90, B: 170, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 128}
	DarkGray     = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

func init() {
	C = &Config{
		Width:  1500,
		Height: 1000,
	}

	BalloonView = BalloonViewConfig{
		BodyColors:   []color.RGBA{Red, Blue, Yellow, Green, Purple, Pink},
		Highlight:    color.RGBA{R: 255, G: 255, B: 255, A: 110},
		StringColor:  color.RGBA{R: 90, G: 90, B: 90, A: 255},
		KnotSize:     10,
		StringLength: 40,
	}

	Effects = EffectsConfig{
		ExplodeScale:   1.6,
		DeflateSquashY: 0.35,
		DeflateSpreadX: 1.2,
		ShardCount:     10,
		ShardColor:     White,
		DeflateTint:    color.RGBA{R: 150, G: 150, B: 150, A: 255},
	}

	HUD = HUDConfig{
		Margin:          10,
		Padding:         8,
		ScoreBoxColor:   BlackOverlay,
		ScoreTextColor:  White,
		HintColor:       White,
		MuteIconColor:   White,
		MuteIconSize:    28,
		BackButtonLabel: "Back to Menu (Esc)",
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        White,
		TextColorNormal:   White,
		TextColorSelected: Green,
		Title:             "Balloon Pop",
		TitleY:            300,
		MenuStartY:        380,
		MenuItemHeight:    40,
		MenuItemGap:       16,
	}

	Scene = SceneConfig{
		SkyTop:          color.RGBA{R: 90, G: 160, B: 235, A: 255},
		SkyBottom:       color.RGBA{R: 200, G: 230, B: 255, A: 255},
		CloudColor:      color.RGBA{R: 255, G: 255, B: 255, A: 200},
		StartLabel:      "Start Game",
		StartButtonW:    240,
		StartButtonH:    64,
		ButtonColor:     Blue,
		ButtonTextColor: White,
	}

	Reward = RewardConfig{
		Title:        "Congratulations!",
		Message:      "You've popped a balloon and won a prize!",
		ButtonLabel:  "Claim Prize",
		OverlayColor: BlackOverlay,
		PanelColor:   White,
		TitleColor:   color.RGBA{R: 20, G: 20, B: 20, A: 255},
		TextColor:    DarkGray,
		ButtonIdle:   Blue,
		ButtonHover:  color.RGBA{R: 30, G: 90, B: 200, A: 255},
		PanelWidth:   520,
		TitleSize:    32,
		TextSize:     20,
	}
}
