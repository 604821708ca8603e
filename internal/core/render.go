package core

import (
	"image"
	"time"
)

// Sprite is an image placed at a world position (top-left corner, pixels).
type Sprite struct {
	Image image.Image
	X, Y  int
}

// Bounds returns the world rectangle covered by the sprite.
func (s Sprite) Bounds() Rect {
	if s.Image == nil {
		return Rect{X: s.X, Y: s.Y}
	}
	b := s.Image.Bounds()
	return NewRect(s.X, s.Y, b.Dx(), b.Dy())
}

// Renderer receives the draw requests of one frame in back-to-front order and
// shows them on Present. Games never talk to a display directly.
type Renderer interface {
	Background(img image.Image)
	Obstacle(top, bottom Sprite)
	Ground(tiles [2]Sprite)
	Bird(s Sprite)
	Score(text string)
	Overlay(text string)
	Present() error
}

// Clock paces a frame loop.
type Clock interface {
	// Wait blocks until the next frame is due.
	Wait()
}

// TickerClock is a Clock backed by a time.Ticker at a fixed rate.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock creates a clock delivering tickRate frames per second.
func NewTickerClock(tickRate int) *TickerClock {
	if tickRate <= 0 {
		tickRate = DefaultConfig().TickRate
	}
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(tickRate))}
}

// Wait blocks until the next tick.
func (c *TickerClock) Wait() {
	<-c.ticker.C
}

// Stop releases the underlying ticker.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// FreeClock never waits; simulations run as fast as possible.
type FreeClock struct{}

// Wait returns immediately.
func (FreeClock) Wait() {}
