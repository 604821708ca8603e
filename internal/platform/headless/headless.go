// Package headless runs a game without a display, driven by an InputSource.
// It is used for simulations and soak runs.
package headless

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// DefaultMaxFrames bounds a frontend run that sets no frame limit.
const DefaultMaxFrames = 3000

// ErrNoInput is returned when a run has no input source to poll.
var ErrNoInput = errors.New("headless: an input source is required")

// Piloted is implemented by games that can fly themselves.
type Piloted interface {
	Autopilot() core.InputSource
}

// Summary describes a finished simulation.
type Summary struct {
	Frames  int
	Score   int
	Flaps   int
	Crashed bool
	Cause   string // set when Crashed
	Elapsed time.Duration
}

// Simulate steps g until it crashes, MaxFrames is reached, or ctx is done.
// Frames are paced at the tick rate when Realtime is set.
func Simulate(ctx context.Context, g registry.Game, opts registry.RunOptions) (Summary, error) {
	var sum Summary
	if opts.Input == nil {
		return sum, ErrNoInput
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rc := opts.Runtime
	if rc.TickRate <= 0 {
		rc.TickRate = g.TickRate()
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	var clock core.Clock = core.FreeClock{}
	if opts.Realtime {
		tc := core.NewTickerClock(rc.TickRate)
		defer tc.Stop()
		clock = tc
	}

	g.Reset(rc)
	logger.Info("simulation started", "seed", rc.Seed, "max_frames", opts.MaxFrames, "realtime", opts.Realtime)
	start := time.Now()

	for opts.MaxFrames <= 0 || sum.Frames < opts.MaxFrames {
		if err := ctx.Err(); err != nil {
			sum.Elapsed = time.Since(start)
			return sum, err
		}
		clock.Wait()

		res := g.Step(opts.Input.Poll())
		sum.Frames++
		sum.Score = res.State.Score

		for _, e := range res.Events {
			switch e.Kind {
			case core.EventFlapped:
				sum.Flaps++
			case core.EventScored:
				logger.Debug("scored", "frame", sum.Frames, "score", res.State.Score)
			case core.EventCrashed:
				sum.Crashed, sum.Cause = true, e.Detail
				logger.Info("crashed", "frame", sum.Frames, "cause", e.Detail, "score", res.State.Score)
			default:
				logger.Debug(e.Kind.String(), "frame", sum.Frames)
			}
		}
		if res.State.GameOver {
			break
		}
	}

	sum.Elapsed = time.Since(start)
	logger.Info("simulation finished", "frames", sum.Frames, "score", sum.Score, "flaps", sum.Flaps, "elapsed", sum.Elapsed)
	return sum, nil
}

// Frontend is the registry entry for headless runs.
type Frontend struct{}

func init() {
	registry.Register("headless", func() registry.Frontend { return Frontend{} })
}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "headless" }

// Title returns the display name.
func (Frontend) Title() string { return "Headless (no display)" }

// Run simulates the game and discards the summary. Without an input source
// a Piloted game flies on its autopilot for at most DefaultMaxFrames frames.
func (Frontend) Run(ctx context.Context, g registry.Game, opts registry.RunOptions) error {
	if opts.Input == nil {
		if p, ok := g.(Piloted); ok {
			opts.Input = p.Autopilot()
		}
	}
	if opts.MaxFrames <= 0 {
		opts.MaxFrames = DefaultMaxFrames
	}
	_, err := Simulate(ctx, g, opts)
	return err
}
