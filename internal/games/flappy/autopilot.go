package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// DefaultAutopilotMargin keeps the bird this far above the lower barrier.
const DefaultAutopilotMargin = 30

// Autopilot is an InputSource that plays the game it watches. It starts the
// run, then flaps whenever the bird sinks below the lower edge of the next
// gap minus Margin. It never restarts after a crash.
type Autopilot struct {
	Margin float64
	game   *Game
}

// NewAutopilot creates an autopilot for g.
func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{Margin: DefaultAutopilotMargin, game: g}
}

// Autopilot returns an input source that flies g with the default margin.
func (g *Game) Autopilot() core.InputSource {
	return NewAutopilot(g)
}

// Poll decides the input for the next frame.
func (a *Autopilot) Poll() core.InputFrame {
	in := core.NewInputFrame()
	switch a.game.phase {
	case core.PhaseIdle:
		in.Set(core.ActionJump)
	case core.PhaseRunning:
		if a.game.bird.Bottom() > a.target() {
			in.Set(core.ActionJump)
		}
	}
	return in
}

// target returns the lowest line the bird's bottom edge should reach.
func (a *Autopilot) target() float64 {
	b := a.game.bird
	// A pipe stays the target until the bird's tail has cleared it.
	for _, p := range a.game.pipes.Pipes() {
		if p.X+a.game.sheet.pipeW > b.X-a.game.sheet.birdW/2 {
			return float64(p.Bottom) - a.Margin
		}
	}
	return float64(a.game.cfg.Ground.Y) - float64(a.game.sheet.birdH) - a.Margin
}
