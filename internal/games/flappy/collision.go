package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// overlaps tests two masks placed at world positions (ax, ay) and (bx, by)
// for a shared opaque pixel. Disjoint boxes are rejected before any pixel is read.
func overlaps(a sprite.Mask, ax, ay int, b sprite.Mask, bx, by int) bool {
	aw, ah := a.Size()
	bw, bh := b.Size()
	if !core.NewRect(ax, ay, aw, ah).Intersects(core.NewRect(bx, by, bw, bh)) {
		return false
	}
	return a.Overlap(b, bx-ax, by-ay)
}
