package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Ground is the scrolling floor, drawn as two tiles placed end to end.
// Whichever tile leaves the viewport on the left jumps behind the other.
type Ground struct {
	Y      int
	X1, X2 int

	width int
	speed int
}

func newGround(y, width, speed int) *Ground {
	return &Ground{Y: y, X2: width, width: width, speed: speed}
}

// Advance scrolls both tiles and wraps the one that has fully left the viewport.
func (g *Ground) Advance() {
	g.X1 -= g.speed
	g.X2 -= g.speed

	if g.X1+g.width < 0 {
		g.X1 = g.X2 + g.width
	}
	if g.X2+g.width < 0 {
		g.X2 = g.X1 + g.width
	}
}

// Covers reports whether the tiles span [0, viewW) without a hole.
func (g *Ground) Covers(viewW int) bool {
	covered := func(x int) bool {
		return (x >= g.X1 && x < g.X1+g.width) || (x >= g.X2 && x < g.X2+g.width)
	}
	for x := 0; x < viewW; x++ {
		if !covered(x) {
			return false
		}
	}
	return true
}

// Hits reports whether the bottom of the unrotated bird has reached the floor line.
func (g *Ground) Hits(b *Bird) bool {
	return b.Bottom() >= float64(g.Y)
}

// Tiles returns both tiles for drawing.
func (g *Ground) Tiles(sh *sheet) [2]core.Sprite {
	return [2]core.Sprite{
		{Image: sh.ground, X: g.X1, Y: g.Y},
		{Image: sh.ground, X: g.X2, Y: g.Y},
	}
}
