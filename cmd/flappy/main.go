// flappy is a Flappy Bird clone that plays in the terminal or a desktop window.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy play -f window    - Play in a desktop window
//	flappy sim               - Let the autopilot play without a display
//	flappy config            - Print the effective configuration
//	flappy list              - List available frontends
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config YAML
//	--assets <dir>       - Load sprites from PNG files instead of generating them
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-flappy/internal/platform/gui"
	_ "github.com/vovakirdan/tui-flappy/internal/platform/headless"
	_ "github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagAssets   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird for your terminal",
	Long: `Flappy Bird rendered with half-block pixels in the terminal,
or in a desktop window.

Available commands:
  play     - Play the game
  sim      - Run the autopilot without a display
  config   - Print the effective configuration
  list     - Show available frontends

Examples:
  flappy play
  flappy play --frontend window
  flappy sim --frames 5000 --seed 42
  flappy config > my-flappy.yaml
  flappy play --config ./my-flappy.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with bird1-3.png, pipe.png, base.png, bg.png")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback, which is io.Discard while the terminal is owned by the game.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() } //nolint:errcheck // Best-effort close on exit
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the configuration from the search path.
func loadConfig(logger *log.Logger) (config.FlappyConfig, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", src)
	return cfg, nil
}

// newGame loads config and sprites and builds a game session.
func newGame(logger *log.Logger) (*flappy.Game, error) {
	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, err
	}

	set, err := assets.Select(flagAssets, cfg.World.SpriteScale).Load()
	if err != nil {
		return nil, err
	}

	g, err := flappy.New(cfg, set, flappy.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return g, nil
}

// runtimeConfig builds the runtime settings from flags and the surface size.
func runtimeConfig(g *flappy.Game, w, h int) core.RuntimeConfig {
	rate := flagFPS
	if rate <= 0 {
		rate = g.TickRate()
	}
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: rate,
		Seed:     flagSeed,
	}
}
