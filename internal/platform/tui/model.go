package tui

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for a play session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	canvas     *Canvas
	config     core.RuntimeConfig
	opts       registry.RunOptions
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	frames     int
	status     string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts registry.RunOptions) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.TickRate()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH-1) // last row holds the help line
	w, h := game.Size()

	return Model{
		game:       game,
		screen:     screen,
		canvas:     NewCanvas(w, h, screen),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("terminal session started", "seed", m.config.Seed, "fps", m.config.TickRate)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Set(core.ActionJump)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.status = m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps running;
// only the cell grid changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.opts.Input != nil {
		m.inputFrame.Merge(m.opts.Input.Poll())
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	logEvents(m.logger, result)

	// Clear input for next frame
	m.inputFrame.Clear()

	m.frames++
	if m.opts.MaxFrames > 0 && m.frames >= m.opts.MaxFrames {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as a PNG and returns a status line.
func (m *Model) saveScreenshot() string {
	if err := m.game.Render(m.canvas); err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".flappy", "screenshots")
	}
	path, err := writePNG(dir, m.game.ID(), m.canvas)
	if err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return fmt.Sprintf("screenshot failed: %v", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

func writePNG(dir, prefix string, c *Canvas) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: failed to create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", prefix, timestamp))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("tui: failed to create screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, c.World()); err != nil {
		return "", fmt.Errorf("tui: failed to encode screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if err := m.game.Render(m.canvas); err != nil {
		return err.Error()
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	if m.status != "" {
		sb.WriteString("  ")
		sb.WriteString(statusStyle.Render(m.status))
	}
	return sb.String()
}

// logEvents reports the notable events of a tick.
func logEvents(logger *log.Logger, r core.StepResult) {
	for _, e := range r.Events {
		switch e.Kind {
		case core.EventStarted, core.EventRestarted:
			logger.Info(e.Kind.String())
		case core.EventScored:
			logger.Debug("scored", "score", r.State.Score)
		case core.EventCrashed:
			logger.Info("crashed", "cause", e.Detail, "score", r.State.Score)
		}
	}
}

// Frontend runs the game in the terminal.
type Frontend struct{}

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "tui" }

// Title returns the display name.
func (Frontend) Title() string { return "Terminal (half-block pixels)" }

// Run starts the Bubble Tea program and blocks until the player quits.
func (Frontend) Run(ctx context.Context, g registry.Game, opts registry.RunOptions) error {
	model := NewModel(g, opts)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks flap
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
