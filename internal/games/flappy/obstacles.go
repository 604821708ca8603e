package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe is a pair of barriers, one hanging from the top and one rising from
// the bottom, with a gap between them.
type Pipe struct {
	X       int  // Left edge
	OriginX int  // X at creation
	GapY    int  // Top of the gap (bottom edge of the top barrier)
	Top     int  // Y of the top barrier image
	Bottom  int  // Y of the bottom barrier image
	Passed  bool // Whether the bird has passed this pipe (for scoring)

	sheet *sheet
}

func newPipe(x, gapY, gap int, sh *sheet) Pipe {
	return Pipe{
		X:       x,
		OriginX: x,
		GapY:    gapY,
		Top:     gapY - sh.pipeH,
		Bottom:  gapY + gap,
		sheet:   sh,
	}
}

// Advance scrolls the pipe left by speed pixels.
func (p *Pipe) Advance(speed int) {
	p.X -= speed
}

// Offscreen reports whether the trailing edge has left the viewport.
func (p Pipe) Offscreen() bool {
	return p.X+p.sheet.pipeW < 0
}

// IsPassed reports whether the bird at birdX has just passed this pipe and it
// has not been counted yet.
func (p Pipe) IsPassed(birdX int) bool {
	return !p.Passed && p.X < birdX
}

// MarkPassed records that the pipe has been scored.
func (p *Pipe) MarkPassed() {
	p.Passed = true
}

// Traveled returns how far the pipe has scrolled since it was created.
func (p Pipe) Traveled() int {
	return p.OriginX - p.X
}

// Collides tests the bird's footprint against both barriers.
func (p Pipe) Collides(b *Bird) bool {
	mask, bx, by := b.Footprint()
	return overlaps(mask, bx, by, p.sheet.pipeTopMask, p.X, p.Top) ||
		overlaps(mask, bx, by, p.sheet.pipeBottomMask, p.X, p.Bottom)
}

// TopSprite returns the flipped top barrier.
func (p Pipe) TopSprite() core.Sprite {
	return core.Sprite{Image: p.sheet.pipeTop, X: p.X, Y: p.Top}
}

// BottomSprite returns the bottom barrier.
func (p Pipe) BottomSprite() core.Sprite {
	return core.Sprite{Image: p.sheet.pipeBottom, X: p.X, Y: p.Bottom}
}

// PipeManager handles spawning, movement, and removal of pipes.
type PipeManager struct {
	pipes        []Pipe
	rng          *rand.Rand
	cfg          config.Pipes
	speed        int
	lower, upper int // inclusive GapY range
	sheet        *sheet
}

// NewPipeManager creates a pipe manager. It fails with config.ErrInvalid when
// the configuration leaves no room for the gap.
func NewPipeManager(seed int64, cfg config.FlappyConfig, sh *sheet) (*PipeManager, error) {
	lower, upper, err := cfg.GapRange(sh.groundH)
	if err != nil {
		return nil, err
	}
	return &PipeManager{
		pipes: make([]Pipe, 0, 4),
		rng:   rand.New(rand.NewSource(seed)),
		cfg:   cfg.Pipes,
		speed: cfg.World.ScrollSpeed,
		lower: lower,
		upper: upper,
		sheet: sh,
	}, nil
}

// Reset clears all pipes and reseeds the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.Clear()
	pm.rng = rand.New(rand.NewSource(seed))
}

// Clear removes all pipes and keeps the RNG stream.
func (pm *PipeManager) Clear() {
	pm.pipes = pm.pipes[:0]
}

// Spawn appends a pipe at x with a random gap. It is a no-op while the newest
// pipe has travelled less than the spawn distance, so repeated triggers in a
// short window do not stack pipes.
func (pm *PipeManager) Spawn(x int) bool {
	if n := len(pm.pipes); n > 0 && pm.pipes[n-1].Traveled() < pm.cfg.SpawnDistance {
		return false
	}
	gapY := pm.lower + pm.rng.Intn(pm.upper-pm.lower+1)
	pm.pipes = append(pm.pipes, newPipe(x, gapY, pm.cfg.Gap, pm.sheet))
	return true
}

// Update runs one frame for every pipe: collision, scoring, movement and
// removal. Pipes triggered by a pass are added after the sweep. It returns
// how many pipes were passed and whether the bird hit any of them.
func (pm *PipeManager) Update(b *Bird) (passed int, hit bool) {
	for i := range pm.pipes {
		p := &pm.pipes[i]
		if p.Collides(b) {
			hit = true
		}
		if p.IsPassed(b.X) {
			p.MarkPassed()
			passed++
		}
		p.Advance(pm.speed)
	}

	for i := 0; i < passed; i++ {
		pm.Spawn(pm.cfg.SpawnX)
	}

	// Remove pipes that have moved off the left side
	valid := pm.pipes[:0]
	for _, p := range pm.pipes {
		if !p.Offscreen() {
			valid = append(valid, p)
		}
	}
	pm.pipes = valid

	return passed, hit
}

// Pipes returns the current list of pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}
