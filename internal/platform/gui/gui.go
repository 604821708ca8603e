// Package gui runs the game in a desktop window with Ebiten.
package gui

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Text layout, in world pixels.
const (
	TextSize   = 16
	TextMargin = 10
)

var (
	faceOnce   sync.Once
	faceSource *text.GoTextFaceSource
	faceErr    error
)

func loadFace() (*text.GoTextFaceSource, error) {
	faceOnce.Do(func() {
		faceSource, faceErr = text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	})
	return faceSource, faceErr
}

// Renderer is a core.Renderer that draws onto an Ebiten image. Source images
// are uploaded to the GPU once and reused.
type Renderer struct {
	target  *ebiten.Image
	cache   map[image.Image]*ebiten.Image
	face    *text.GoTextFace
	score   string
	overlay string
}

// NewRenderer creates a renderer using the bundled arcade font.
func NewRenderer() (*Renderer, error) {
	src, err := loadFace()
	if err != nil {
		return nil, fmt.Errorf("gui: failed to load font: %w", err)
	}
	return &Renderer{
		cache: make(map[image.Image]*ebiten.Image),
		face:  &text.GoTextFace{Source: src, Size: TextSize},
	}, nil
}

func (r *Renderer) image(img image.Image) *ebiten.Image {
	if e, ok := r.cache[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	r.cache[img] = e
	return e
}

func (r *Renderer) sprite(s core.Sprite) {
	if s.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.X), float64(s.Y))
	r.target.DrawImage(r.image(s.Image), op)
}

// Background draws img stretched over the whole target.
func (r *Renderer) Background(img image.Image) {
	r.score, r.overlay = "", ""
	b := img.Bounds()
	tb := r.target.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(tb.Dx())/float64(b.Dx()), float64(tb.Dy())/float64(b.Dy()))
	r.target.DrawImage(r.image(img), op)
}

// Obstacle draws both barriers of a pipe.
func (r *Renderer) Obstacle(top, bottom core.Sprite) {
	r.sprite(top)
	r.sprite(bottom)
}

// Ground draws both floor tiles.
func (r *Renderer) Ground(tiles [2]core.Sprite) {
	for _, t := range tiles {
		r.sprite(t)
	}
}

// Bird draws the bird.
func (r *Renderer) Bird(s core.Sprite) {
	r.sprite(s)
}

// Score sets the HUD text.
func (r *Renderer) Score(s string) {
	r.score = s
}

// Overlay sets the centred message.
func (r *Renderer) Overlay(s string) {
	r.overlay = s
}

// Present draws the HUD: the score in the top-right corner and the overlay
// in the middle of the screen.
func (r *Renderer) Present() error {
	tb := r.target.Bounds()
	if r.score != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(tb.Dx()-TextMargin), TextMargin)
		op.ColorScale.ScaleWithColor(color.White)
		op.PrimaryAlign = text.AlignEnd
		text.Draw(r.target, r.score, r.face, op)
	}
	if r.overlay != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(tb.Dx())/2, float64(tb.Dy())/2)
		op.ColorScale.ScaleWithColor(color.White)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(r.target, r.overlay, r.face, op)
	}
	return nil
}

// window adapts a registry.Game to ebiten.Game.
type window struct {
	ctx      context.Context
	game     registry.Game
	renderer *Renderer
	opts     registry.RunOptions
	logger   *log.Logger
	frames   int
}

// input reads the keyboard and mouse for one tick.
func (w *window) input() (core.InputFrame, bool) {
	in := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return in, true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if w.opts.Input != nil {
		in.Merge(w.opts.Input.Poll())
	}
	return in, false
}

// Update advances the game by one tick.
func (w *window) Update() error {
	if w.ctx.Err() != nil || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	in, quit := w.input()
	if quit {
		return ebiten.Termination
	}

	res := w.game.Step(in)
	for _, e := range res.Events {
		switch e.Kind {
		case core.EventCrashed:
			w.logger.Info("crashed", "cause", e.Detail, "score", res.State.Score)
		case core.EventScored:
			w.logger.Debug("scored", "score", res.State.Score)
		default:
			w.logger.Debug(e.Kind.String())
		}
	}

	w.frames++
	if w.opts.MaxFrames > 0 && w.frames >= w.opts.MaxFrames {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current frame.
func (w *window) Draw(screen *ebiten.Image) {
	w.renderer.target = screen
	if err := w.game.Render(w.renderer); err != nil {
		w.logger.Error("render failed", "err", err)
	}
}

// Layout keeps the logical screen at world size; Ebiten scales it to the window.
func (w *window) Layout(_, _ int) (int, int) {
	return w.game.Size()
}

// Frontend runs the game in a desktop window.
type Frontend struct{}

func init() {
	registry.Register("window", func() registry.Frontend { return Frontend{} })
}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "window" }

// Title returns the display name.
func (Frontend) Title() string { return "Desktop window (Ebiten)" }

// Run opens the window and blocks until it is closed.
func (Frontend) Run(ctx context.Context, g registry.Game, opts registry.RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer, err := NewRenderer()
	if err != nil {
		return err
	}

	rc := opts.Runtime
	if rc.TickRate <= 0 {
		rc.TickRate = g.TickRate()
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	g.Reset(rc)

	w, h := g.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(rc.TickRate)

	logger.Info("window session started", "seed", rc.Seed, "fps", rc.TickRate)
	if err := ebiten.RunGame(&window{
		ctx:      ctx,
		game:     g,
		renderer: renderer,
		opts:     opts,
		logger:   logger,
	}); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
