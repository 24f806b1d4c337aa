package headless

import (
	"testing"
	"time"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.TapChance = 0.2
	return cfg
}

func TestRunFramesIsDeterministic(t *testing.T) {
	first := NewGameLoop(testConfig()).RunFrames(1800)
	second := NewGameLoop(testConfig()).RunFrames(1800)

	if first != second {
		t.Fatalf("same seed, different runs:\n%+v\n%+v", first, second)
	}
	if first.Frames != 1800 {
		t.Errorf("frames = %d, want 1800", first.Frames)
	}
	if first.Score == 0 {
		t.Error("bot never popped a balloon")
	}
}

func TestRunFramesInvariants(t *testing.T) {
	cfg := testConfig()
	stats := NewGameLoop(cfg).RunFrames(3600)

	if stats.Score != stats.Popped {
		t.Errorf("score %d != popped %d", stats.Score, stats.Popped)
	}
	if stats.MaxFalling > cfg.Tuning.MaxBalloons {
		t.Errorf("max falling %d exceeds cap %d", stats.MaxFalling, cfg.Tuning.MaxBalloons)
	}
	if stats.Popped+stats.Deflated > stats.Spawned {
		t.Errorf("%d terminal balloons from %d spawns", stats.Popped+stats.Deflated, stats.Spawned)
	}
	if stats.Removed > stats.Popped+stats.Deflated {
		t.Errorf("removed %d, but only %d reached a terminal state", stats.Removed, stats.Popped+stats.Deflated)
	}
}

func TestSeedChangesOutcome(t *testing.T) {
	a := NewGameLoop(testConfig())
	cfg := testConfig()
	cfg.Seed = 8
	b := NewGameLoop(cfg)

	if a.RunFrames(1800) == b.RunFrames(1800) {
		t.Error("different seeds produced identical runs")
	}
}

func TestRunStopsAtMaxFrames(t *testing.T) {
	cfg := testConfig()
	cfg.TickRate = 1000
	cfg.MaxFrames = 5

	stats := NewGameLoop(cfg).Run()
	if stats.Frames != 5 {
		t.Errorf("frames = %d, want 5", stats.Frames)
	}
}

func TestStopEndsRun(t *testing.T) {
	cfg := testConfig()
	cfg.TickRate = 1000
	cfg.MaxFrames = 0

	g := NewGameLoop(cfg)
	done := make(chan Stats)
	go func() { done <- g.Run() }()

	time.Sleep(20 * time.Millisecond)
	g.Stop()
	g.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
	if g.Session().Active() {
		t.Error("session still active after Stop")
	}
}

func TestRunFramesIgnoresMaxFrames(t *testing.T) {
	cfg := testConfig()
	cfg.MaxFrames = 50

	stats := NewGameLoop(cfg).RunFrames(120)
	if stats.Frames != 120 {
		t.Errorf("frames = %d, want the 120 requested", stats.Frames)
	}
}
