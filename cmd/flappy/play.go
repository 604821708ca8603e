package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	flagFrontend      string
	flagScreenshotDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game on the chosen frontend.

Controls:
  Space/Up/Click  - Flap (the first flap starts the run)
  R               - Restart (after game over)
  Ctrl+S          - Save a PNG screenshot (terminal)
  Q/Esc/Ctrl+C    - Quit

Examples:
  flappy play
  flappy play --frontend window
  flappy play --seed 42 --fps 45`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "tui", "Frontend to play on (see 'flappy list')")
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", "", "Directory for screenshots (default ~/.flappy/screenshots)")
}

func runPlay(cmd *cobra.Command, args []string) {
	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available frontends.")
		os.Exit(1)
	}

	// The terminal belongs to the game; only log there when asked to.
	var fallback io.Writer = os.Stderr
	if frontend.ID() == "tui" {
		fallback = io.Discard
	}
	logger, closeLog, err := newLogger(fallback)
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

	width, height := game.Size()
	if frontend.ID() == "tui" {
		width, height = 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := frontend.Run(ctx, game, registry.RunOptions{
		Runtime:       runtimeConfig(game, width, height),
		Logger:        logger,
		ScreenshotDir: flagScreenshotDir,
	})
	if runErr != nil {
		logger.Error("session failed", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}

	state := game.State()
	logger.Info("session ended", "phase", state.Phase, "score", state.Score)
}
