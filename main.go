package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/balloonpop/config"
	"github.com/automoto/balloonpop/fonts"
	"github.com/automoto/balloonpop/scenes"
	"github.com/automoto/balloonpop/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewBalloonScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("config", "", "YAML file overriding balloon tuning")
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "Start a balloon game without the menu")
	flag.BoolVar(&config.Debug.ShowBodies, "debug", false, "Outline balloon bodies and show counters")
	flag.Parse()

	if *tuningPath != "" {
		if err := config.LoadBalloonOverrides(*tuningPath); err != nil {
			log.Printf("Warning: Could not load tuning %s: %v", *tuningPath, err)
		}
	}

	ebiten.SetWindowSize(config.C.Width*2/3, config.C.Height*2/3)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
