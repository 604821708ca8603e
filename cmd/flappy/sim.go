package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/headless"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	flagFrames   int
	flagRealtime bool
	flagMargin   float64
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle = lipgloss.NewStyle().Bold(true)
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot play without a display",
	Long: `Run a headless session driven by the autopilot and print a summary.
The run ends at the first crash or after --frames frames.

Examples:
  flappy sim
  flappy sim --seed 42 --frames 10000
  flappy sim --realtime --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", headless.DefaultMaxFrames, "Stop after this many frames (0 = until crash)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the tick rate")
	simCmd.Flags().Float64Var(&flagMargin, "margin", flappy.DefaultAutopilotMargin, "Autopilot clearance above the lower pipe, in pixels")
}

func runSim(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := newGame(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	pilot := flappy.NewAutopilot(game)
	pilot.Margin = flagMargin

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w, h := game.Size()
	sum, err := headless.Simulate(ctx, game, registry.RunOptions{
		Runtime:   runtimeConfig(game, w, h),
		Logger:    logger,
		Input:     pilot,
		MaxFrames: flagFrames,
		Realtime:  flagRealtime,
	})
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	outcome := "survived"
	if sum.Crashed {
		outcome = "crashed into " + sum.Cause
	} else if ctx.Err() != nil {
		outcome = "interrupted"
	}

	row := func(label string, value any) {
		fmt.Println(labelStyle.Render(label) + valueStyle.Render(fmt.Sprint(value)))
	}
	row("frames", sum.Frames)
	row("score", sum.Score)
	row("flaps", sum.Flaps)
	row("outcome", outcome)
	row("elapsed", sum.Elapsed.Round(time.Millisecond))
}
