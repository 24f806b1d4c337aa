// Package headless runs a balloon session without a window. A ticker
// goroutine advances the virtual clock one frame per tick and a seeded bot
// stands in for the player.
package headless

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/balloonpop/clock"
	"github.com/automoto/balloonpop/core"
	"github.com/automoto/balloonpop/shared/tuning"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Exit animation lengths in frames, matching the on-screen effects.
const (
	DefaultExplodeFrames = 42
	DefaultDeflateFrames = 62
)

// Config controls a headless run.
type Config struct {
	TickRate  int     // frames per second, also the virtual frame length
	MaxFrames uint64  // stop after this many frames; 0 runs until Stop
	Seed      int64   // seeds both the session and the bot
	TapChance float64 // probability the bot taps on a given frame
	Width     float64
	Height    float64
	Tuning    tuning.Balloon

	ExplodeFrames int
	DeflateFrames int
}

// DefaultConfig returns a one-minute run over the default game area.
func DefaultConfig() Config {
	return Config{
		TickRate:      60,
		MaxFrames:     3600,
		Seed:          1,
		TapChance:     0.05,
		Width:         1500,
		Height:        1000,
		Tuning:        tuning.Default(),
		ExplodeFrames: DefaultExplodeFrames,
		DeflateFrames: DefaultDeflateFrames,
	}
}

// Stats summarizes what happened during a run.
type Stats struct {
	Frames     uint64
	Score      int
	Spawned    int
	Popped     int
	Deflated   int
	Removed    int
	MaxFalling int
}

type GameLoop struct {
	cfg     Config
	loop    *clock.FrameLoop
	session *core.Session
	bot     *rand.Rand
	frame   time.Duration

	mu    sync.Mutex
	stats Stats

	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(cfg Config) *GameLoop {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	loop := clock.NewFrameLoop()
	g := &GameLoop{
		cfg:  cfg,
		loop: loop,
		session: core.NewSession(loop,
			core.WithConfig(cfg.Tuning),
			core.WithArea(cfg.Width, cfg.Height),
			core.WithRand(rand.New(rand.NewSource(cfg.Seed))),
		),
		bot:      rand.New(rand.NewSource(cfg.Seed + 1)),
		frame:    time.Second / time.Duration(cfg.TickRate),
		stopChan: make(chan struct{}),
	}
	g.subscribe()
	return g
}

// subscribe counts events and plays the part of the exit animations by
// completing each terminal balloon after its effect length.
func (g *GameLoop) subscribe() {
	w := g.session.World()
	core.OnSpawned.Subscribe(w, func(w donburi.World, ev core.SpawnedEvent) {
		g.stats.Spawned++
	})
	core.OnPopped.Subscribe(w, func(w donburi.World, ev core.PoppedEvent) {
		g.stats.Popped++
		g.completeAfter(ev.Balloon.ID, g.cfg.ExplodeFrames)
	})
	core.OnDeflated.Subscribe(w, func(w donburi.World, ev core.DeflatedEvent) {
		g.stats.Deflated++
		g.completeAfter(ev.Balloon.ID, g.cfg.DeflateFrames)
	})
	core.OnRemoved.Subscribe(w, func(w donburi.World, ev core.RemovedEvent) {
		g.stats.Removed++
	})
}

func (g *GameLoop) completeAfter(id, frames int) {
	g.loop.AfterFunc(time.Duration(frames)*g.frame, func() {
		g.session.CompleteExit(id)
	})
}

// Run starts the session and ticks until Stop is called or MaxFrames is
// reached. It blocks.
func (g *GameLoop) Run() Stats {
	ticker := time.NewTicker(g.frame)
	defer ticker.Stop()

	g.session.Start()
	log.Printf("Game loop started at %d ticks/second (seed %d)", g.cfg.TickRate, g.cfg.Seed)

	for {
		select {
		case <-g.stopChan:
			return g.finish()
		case <-ticker.C:
			g.tick()
			if g.cfg.MaxFrames > 0 && g.Stats().Frames >= g.cfg.MaxFrames {
				return g.finish()
			}
		}
	}
}

// RunFrames starts the session and advances it n frames as fast as
// possible. The tick rate sets only the virtual frame length, and
// Config.MaxFrames is ignored in favor of n.
func (g *GameLoop) RunFrames(n uint64) Stats {
	g.session.Start()
	log.Printf("Game loop running %d frames (seed %d)", n, g.cfg.Seed)

	for i := uint64(0); i < n; i++ {
		select {
		case <-g.stopChan:
			return g.finish()
		default:
		}
		g.tick()
	}
	return g.finish()
}

// Stop ends Run from another goroutine. Safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

// Stats returns a copy of the counters collected so far.
func (g *GameLoop) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stats
}

func (g *GameLoop) Session() *core.Session {
	return g.session
}

func (g *GameLoop) finish() Stats {
	g.session.Stop()
	stats := g.Stats()
	log.Printf("Game loop stopped after %d frames: score %d, spawned %d, popped %d, deflated %d",
		stats.Frames, stats.Score, stats.Spawned, stats.Popped, stats.Deflated)
	return stats
}

// tick runs one frame.
func (g *GameLoop) tick() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.botTap()
	g.loop.Advance(g.frame)
	events.ProcessAllEvents(g.session.World())

	g.stats.Frames++
	g.stats.Score = g.session.Score()
	g.stats.MaxFalling = max(g.stats.MaxFalling, g.session.FallingCount())
}

// botTap occasionally taps somewhere inside a random Falling balloon,
// the way a player would.
func (g *GameLoop) botTap() {
	if g.bot.Float64() >= g.cfg.TapChance {
		return
	}
	var falling []core.Balloon
	for _, b := range g.session.Balloons() {
		if b.State == core.Falling {
			falling = append(falling, b)
		}
	}
	if len(falling) == 0 {
		return
	}
	b := falling[g.bot.Intn(len(falling))]
	size := g.session.Config().Size
	x := b.X + g.bot.Float64()*size
	y := b.Y + g.bot.Float64()*size
	g.session.TapAt(x, y)
}
