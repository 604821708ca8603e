// Package sprite provides opaque-pixel masks for exact-shape collision and
// the image transforms (flip, rotate) the game applies to its sprites.
package sprite

import (
	"image"
	"math/bits"
)

// AlphaThreshold is the alpha value above which a pixel counts as opaque.
const AlphaThreshold = 127

// Mask is the set of opaque pixels of a sprite.
type Mask interface {
	// Size returns the mask dimensions in pixels.
	Size() (w, h int)
	// At reports whether the pixel at (x, y) is opaque. Out of range is false.
	At(x, y int) bool
	// Overlap reports whether any opaque pixel of other, placed at offset
	// (dx, dy) relative to this mask's origin, coincides with one of ours.
	Overlap(other Mask, dx, dy int) bool
}

// Bitmap is a Mask stored as one bit per pixel, row-major.
type Bitmap struct {
	w, h   int
	stride int // words per row
	words  []uint64
}

// NewBitmap creates an empty (fully transparent) bitmap.
func NewBitmap(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := (w + 63) / 64
	return &Bitmap{w: w, h: h, stride: stride, words: make([]uint64, stride*h)}
}

// FromImage builds a mask from the alpha channel of img.
func FromImage(img image.Image) *Bitmap {
	b := img.Bounds()
	m := NewBitmap(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > AlphaThreshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Size returns the mask dimensions.
func (m *Bitmap) Size() (int, int) {
	return m.w, m.h
}

// Set marks a pixel opaque or transparent.
func (m *Bitmap) Set(x, y int, opaque bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	i := y*m.stride + x/64
	bit := uint64(1) << (uint(x) % 64)
	if opaque {
		m.words[i] |= bit
	} else {
		m.words[i] &^= bit
	}
}

// At reports whether the pixel at (x, y) is opaque.
func (m *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.words[y*m.stride+x/64]&(uint64(1)<<(uint(x)%64)) != 0
}

// Count returns the number of opaque pixels.
func (m *Bitmap) Count() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Overlap reports whether other, offset by (dx, dy), shares an opaque pixel.
func (m *Bitmap) Overlap(other Mask, dx, dy int) bool {
	ow, oh := other.Size()

	x0, y0 := max(0, dx), max(0, dy)
	x1, y1 := min(m.w, dx+ow), min(m.h, dy+oh)
	if x1 <= x0 || y1 <= y0 {
		return false
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) && other.At(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
