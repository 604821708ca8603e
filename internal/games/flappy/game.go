// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
// The world is measured in pixels; frontends decide how to show it.
package flappy

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// HUD and overlay text.
const (
	ScoreFormat  = "Score: %d"
	GameOverText = "Game Over! Press R to Restart"
)

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg    config.FlappyConfig
	sheet  *sheet
	bird   *Bird
	pipes  *PipeManager
	ground *Ground

	phase     core.Phase
	score     int
	tickCount int // Running ticks since start
	runtime   core.RuntimeConfig
	logger    *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger makes the game log phase transitions at debug level.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game from a validated configuration and sprite set. Geometry
// that cannot produce a playable session is rejected with config.ErrInvalid.
func New(cfg config.FlappyConfig, set *assets.Set, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	sh := newSheet(set)
	if sh.groundW < cfg.World.Width {
		return nil, fmt.Errorf("%w: ground tile width %d is narrower than the viewport %d",
			config.ErrInvalid, sh.groundW, cfg.World.Width)
	}

	g := &Game{
		cfg:     cfg,
		sheet:   sh,
		runtime: core.DefaultConfig(),
		logger:  log.New(io.Discard),
	}
	pipes, err := NewPipeManager(g.runtime.Seed, cfg, sh)
	if err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	g.pipes = pipes

	for _, opt := range opts {
		opt(g)
	}

	g.restart()
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Size returns the world size in pixels.
func (g *Game) Size() (w, h int) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// TickRate returns the configured simulation rate.
func (g *Game) TickRate() int {
	return g.cfg.World.TickRate
}

// Reset starts a fresh session in the Idle state with a reseeded RNG.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.pipes.Reset(rc.Seed)
	g.restart()
	g.logger.Debug("session reset", "seed", rc.Seed)
}

// restart returns to Idle in place. The RNG stream carries on, so a restarted
// session sees new pipes.
func (g *Game) restart() {
	g.bird = newBird(g.cfg.Bird, g.sheet)
	g.ground = newGround(g.cfg.Ground.Y, g.sheet.groundW, g.cfg.World.ScrollSpeed)
	g.pipes.Clear()
	g.phase = core.PhaseIdle
	g.score = 0
	g.tickCount = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.phase {
	case core.PhaseIdle:
		if !in.Has(core.ActionJump) {
			g.bird.Hover()
			g.bird.Animate()
			g.ground.Advance()
			break
		}
		// The first flap starts the run and is applied in the same frame.
		g.phase = core.PhaseRunning
		g.pipes.Spawn(g.cfg.Pipes.FirstX)
		g.bird.Jump()
		events = append(events, core.Event{Kind: core.EventStarted}, core.Event{Kind: core.EventFlapped})
		g.logger.Debug("run started")
		events = g.run(events)

	case core.PhaseRunning:
		if in.Has(core.ActionJump) {
			g.bird.Jump()
			events = append(events, core.Event{Kind: core.EventFlapped})
		}
		events = g.run(events)

	case core.PhaseGameOver:
		// The world stays frozen until restart.
		if in.Has(core.ActionRestart) {
			g.restart()
			events = append(events, core.Event{Kind: core.EventRestarted})
			g.logger.Debug("session restarted")
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// run performs one Running frame: bird physics, pipes, ground, collisions.
// A collision ends the run but the rest of the frame still completes.
func (g *Game) run(events []core.Event) []core.Event {
	g.tickCount++
	g.bird.Animate()
	g.bird.Move()

	passed, hit := g.pipes.Update(g.bird)
	for i := 0; i < passed; i++ {
		g.score++
		events = append(events, core.Event{Kind: core.EventScored, Detail: fmt.Sprint(g.score)})
	}
	if hit {
		events = g.crash(events, "pipe")
	}

	g.ground.Advance()
	if g.ground.Hits(g.bird) {
		events = g.crash(events, "ground")
	}
	return events
}

// crash moves to GameOver. Further hits in the same state are ignored.
func (g *Game) crash(events []core.Event, cause string) []core.Event {
	if g.phase == core.PhaseGameOver {
		return events
	}
	g.phase = core.PhaseGameOver
	g.logger.Debug("run ended", "cause", cause, "score", g.score, "ticks", g.tickCount)
	return append(events, core.Event{Kind: core.EventCrashed, Detail: cause})
}

// Render draws the current frame back to front and presents it.
func (g *Game) Render(r core.Renderer) error {
	r.Background(g.sheet.background)
	for _, p := range g.pipes.Pipes() {
		r.Obstacle(p.TopSprite(), p.BottomSprite())
	}
	r.Ground(g.ground.Tiles(g.sheet))
	r.Bird(g.bird.Sprite())
	r.Score(fmt.Sprintf(ScoreFormat, g.score))
	if g.phase == core.PhaseGameOver {
		r.Overlay(GameOverText)
	}
	return r.Present()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Score:    g.score,
		GameOver: g.phase == core.PhaseGameOver,
	}
}

// Snapshot is a copy of everything that evolves during a session.
type Snapshot struct {
	Phase  core.Phase
	Score  int
	Ticks  int
	Bird   Bird
	Pipes  []Pipe
	Ground Ground
}

// Snapshot copies the session state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:  g.phase,
		Score:  g.score,
		Ticks:  g.tickCount,
		Bird:   *g.bird,
		Ground: *g.ground,
	}
	s.Pipes = append(s.Pipes, g.pipes.Pipes()...)
	return s
}

// Bird returns the live bird.
func (g *Game) Bird() *Bird {
	return g.bird
}

// Pipes returns the active pipes.
func (g *Game) Pipes() []Pipe {
	return g.pipes.Pipes()
}

// Ground returns the floor.
func (g *Game) Ground() *Ground {
	return g.ground
}
