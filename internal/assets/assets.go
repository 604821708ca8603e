// Package assets supplies the decoded sprite images the game draws and
// collides with. The game only reads their sizes and alpha channels.
package assets

import (
	"errors"
	"fmt"
	"image"

	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// BirdFrameCount is the number of wing-flap animation frames.
const BirdFrameCount = 3

// Set is a complete collection of game sprites.
type Set struct {
	BirdFrames []image.Image // ordered animation frames, all the same size
	Pipe       image.Image   // bottom barrier; the top barrier is this flipped
	Ground     image.Image   // one tile of the scrolling floor
	Background image.Image
}

// Provider produces a sprite Set.
type Provider interface {
	Load() (*Set, error)
}

// Validate checks that every sprite is present and the bird frames agree in size.
func (s *Set) Validate() error {
	if len(s.BirdFrames) != BirdFrameCount {
		return fmt.Errorf("assets: expected %d bird frames, got %d", BirdFrameCount, len(s.BirdFrames))
	}
	first := s.BirdFrames[0]
	if first == nil || first.Bounds().Empty() {
		return errors.New("assets: bird frame 1 is empty")
	}
	for i, f := range s.BirdFrames[1:] {
		if f == nil || f.Bounds().Size() != first.Bounds().Size() {
			return fmt.Errorf("assets: bird frame %d does not match frame 1 size %v", i+2, first.Bounds().Size())
		}
	}
	for i, f := range s.BirdFrames {
		if sprite.FromImage(f).Count() == 0 {
			return fmt.Errorf("assets: bird frame %d has no opaque pixels", i+1)
		}
	}
	if s.Pipe != nil && sprite.FromImage(s.Pipe).Count() == 0 {
		return errors.New("assets: pipe image has no opaque pixels")
	}
	for name, img := range map[string]image.Image{
		"pipe":       s.Pipe,
		"ground":     s.Ground,
		"background": s.Background,
	} {
		if img == nil || img.Bounds().Empty() {
			return fmt.Errorf("assets: %s image is empty", name)
		}
	}
	return nil
}

// BirdSize returns the size of an unrotated bird frame.
func (s *Set) BirdSize() (w, h int) {
	b := s.BirdFrames[0].Bounds()
	return b.Dx(), b.Dy()
}

// PipeSize returns the size of the barrier image.
func (s *Set) PipeSize() (w, h int) {
	b := s.Pipe.Bounds()
	return b.Dx(), b.Dy()
}

// GroundSize returns the size of one ground tile.
func (s *Set) GroundSize() (w, h int) {
	b := s.Ground.Bounds()
	return b.Dx(), b.Dy()
}
