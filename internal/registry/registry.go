// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is the interface a frontend drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea or Ebiten).
// The frontend handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "flappy").
	ID() string

	// Title returns a human-readable name for display (e.g., "Flappy Bird").
	Title() string

	// Reset starts a fresh session with the given seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Jump, Restart).
	Step(in core.InputFrame) core.StepResult

	// Render issues the draw requests for the current frame and presents them.
	Render(r core.Renderer) error

	// State returns the current game state (phase, score).
	State() core.GameState

	// Size returns the world size in pixels.
	Size() (w, h int)

	// TickRate returns the simulation rate in ticks per second.
	TickRate() int
}

// RunOptions configures a frontend session.
type RunOptions struct {
	Runtime       core.RuntimeConfig
	Logger        *log.Logger
	Input         core.InputSource // replaces the frontend's own input when set
	MaxFrames     int              // 0 = run until quit or game over (headless)
	Realtime      bool             // headless only: pace frames at the tick rate
	ScreenshotDir string
}

// Frontend runs a game on some display.
type Frontend interface {
	ID() string
	Title() string
	// Run blocks until the session ends or ctx is cancelled.
	Run(ctx context.Context, g Game, opts RunOptions) error
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}
