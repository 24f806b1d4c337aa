package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/balloonpop/headless"
	"github.com/automoto/balloonpop/shared/leveldata"
	"github.com/automoto/balloonpop/shared/tuning"
)

func main() {
	defaults := headless.DefaultConfig()

	tickRate := flag.Int("tickrate", defaults.TickRate, "Simulation frames per second")
	frames := flag.Uint64("frames", defaults.MaxFrames, "Frames to run (0 = until interrupted)")
	seed := flag.Int64("seed", defaults.Seed, "Random seed for spawns and the bot")
	tapChance := flag.Float64("tapchance", defaults.TapChance, "Chance per frame that the bot taps a balloon")
	width := flag.Float64("width", defaults.Width, "Game area width")
	height := flag.Float64("height", defaults.Height, "Game area height")
	layout := flag.String("layout", "", "TMX sky layout; its size overrides -width/-height")
	tuningPath := flag.String("config", "", "YAML file overriding balloon tuning")
	fast := flag.Bool("fast", false, "Run frames back to back instead of at the tick rate")
	flag.Parse()

	cfg := defaults
	cfg.TickRate = *tickRate
	cfg.MaxFrames = *frames
	cfg.Seed = *seed
	cfg.TapChance = *tapChance
	cfg.Width, cfg.Height = *width, *height

	if *tuningPath != "" {
		data, err := os.ReadFile(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to read tuning: %v", err)
		}
		t, err := tuning.Parse(data)
		if err != nil {
			log.Fatalf("Failed to parse tuning: %v", err)
		}
		cfg.Tuning = t
	}

	if *layout != "" {
		sky, err := leveldata.LoadSky(os.DirFS(filepath.Dir(*layout)), filepath.Base(*layout))
		if err != nil {
			log.Fatalf("Failed to load layout: %v", err)
		}
		cfg.Width, cfg.Height = float64(sky.Width), float64(sky.Height)
		log.Printf("Using layout %q (%dx%d)", sky.Name, sky.Width, sky.Height)
	}

	if *fast && cfg.MaxFrames == 0 {
		log.Fatal("-fast needs a frame limit")
	}

	loop := headless.NewGameLoop(cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down simulation...")
		loop.Stop()
	}()

	var stats headless.Stats
	if *fast {
		stats = loop.RunFrames(cfg.MaxFrames)
	} else {
		stats = loop.Run()
	}

	log.Printf("Final: frames=%d score=%d spawned=%d popped=%d deflated=%d removed=%d max-falling=%d",
		stats.Frames, stats.Score, stats.Spawned, stats.Popped, stats.Deflated, stats.Removed, stats.MaxFalling)
}
