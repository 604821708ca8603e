package headless

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func newGame(t *testing.T) *flappy.Game {
	t.Helper()
	set, err := assets.Procedural{Scale: 2}.Load()
	if err != nil {
		t.Fatal(err)
	}
	g, err := flappy.New(config.DefaultFlappyConfig(), set)
	if err != nil {
		t.Fatalf("flappy.New() failed: %v", err)
	}
	return g
}

// flapOnce jumps on the first poll only.
func flapOnce() core.InputSource {
	polled := false
	return core.InputSourceFunc(func() core.InputFrame {
		in := core.NewInputFrame()
		if !polled {
			in.Set(core.ActionJump)
			polled = true
		}
		return in
	})
}

func runtime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 600, ScreenH: 620, TickRate: 30, Seed: 11}
}

func TestSimulateRequiresInput(t *testing.T) {
	_, err := Simulate(context.Background(), newGame(t), registry.RunOptions{Runtime: runtime()})
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("Simulate() error = %v, expected ErrNoInput", err)
	}
}

func TestSimulateMaxFrames(t *testing.T) {
	idle := core.InputSourceFunc(core.NewInputFrame)

	sum, err := Simulate(context.Background(), newGame(t), registry.RunOptions{
		Runtime:   runtime(),
		Input:     idle,
		MaxFrames: 50,
	})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Frames != 50 || sum.Crashed || sum.Flaps != 0 {
		t.Errorf("idle run summary = %+v, expected 50 frames without a crash", sum)
	}
}

func TestSimulateStopsOnCrash(t *testing.T) {
	sum, err := Simulate(context.Background(), newGame(t), registry.RunOptions{
		Runtime: runtime(),
		Input:   flapOnce(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !sum.Crashed || sum.Cause != "ground" {
		t.Errorf("expected a ground crash, got %+v", sum)
	}
	if sum.Flaps != 1 || sum.Score != 0 {
		t.Errorf("expected one flap and no score, got %+v", sum)
	}
	if sum.Frames > 100 {
		t.Errorf("a single flap should not keep the bird up for %d frames", sum.Frames)
	}
}

func TestSimulateAutopilot(t *testing.T) {
	g := newGame(t)
	sum, err := Simulate(context.Background(), g, registry.RunOptions{
		Runtime:   runtime(),
		Input:     flappy.NewAutopilot(g),
		MaxFrames: 75,
	})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Crashed || sum.Frames != 75 || sum.Flaps == 0 {
		t.Errorf("autopilot should fly the approach to the first pipe, got %+v", sum)
	}
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Simulate(ctx, newGame(t), registry.RunOptions{
		Runtime: runtime(),
		Input:   core.InputSourceFunc(core.NewInputFrame),
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Simulate() error = %v, expected context.Canceled", err)
	}
}

func TestRegistered(t *testing.T) {
	f, err := registry.Create("headless")
	if err != nil {
		t.Fatalf("headless frontend should be registered: %v", err)
	}
	if f.ID() != "headless" {
		t.Errorf("ID() = %q", f.ID())
	}
}

func TestFrontendRunFliesAutopilot(t *testing.T) {
	f, err := registry.Create("headless")
	if err != nil {
		t.Fatal(err)
	}
	g := newGame(t)

	if err := f.Run(context.Background(), g, registry.RunOptions{Runtime: runtime()}); err != nil {
		t.Fatalf("Run() without input failed: %v", err)
	}
	snap := g.Snapshot()
	if snap.Phase == core.PhaseIdle {
		t.Error("the autopilot should have started the run")
	}
	if snap.Ticks == 0 || snap.Ticks > DefaultMaxFrames {
		t.Errorf("ran %d frames, expected 1..%d", snap.Ticks, DefaultMaxFrames)
	}
}

func TestFrontendRunWithoutPilot(t *testing.T) {
	// Hide the autopilot behind the plain game contract.
	g := struct{ registry.Game }{newGame(t)}
	if err := (Frontend{}).Run(context.Background(), g, registry.RunOptions{Runtime: runtime()}); !errors.Is(err, ErrNoInput) {
		t.Errorf("Run() error = %v, expected ErrNoInput", err)
	}
}
