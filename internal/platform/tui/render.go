package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// HalfBlock is drawn in every cell: the foreground paints the upper pixel,
// the background the lower one.
const HalfBlock = '▀'

var (
	letterbox   = color.RGBA{A: 0xff}
	textColor   = core.ColorWhite
	overlayBand = core.RGB(0x20, 0x20, 0x20)
)

// Canvas is a core.Renderer that composes the frame in world pixels and, on
// Present, downsamples it into a Screen of half-block cells.
type Canvas struct {
	world   *image.RGBA
	screen  *core.Screen
	score   string
	overlay string
}

// NewCanvas creates a canvas for a world of w×h pixels drawing into screen.
func NewCanvas(w, h int, screen *core.Screen) *Canvas {
	return &Canvas{
		world:  image.NewRGBA(image.Rect(0, 0, w, h)),
		screen: screen,
	}
}

// Background fills the world with img, stretched to the world size.
func (c *Canvas) Background(img image.Image) {
	c.score, c.overlay = "", ""
	xdraw.NearestNeighbor.Scale(c.world, c.world.Bounds(), img, img.Bounds(), xdraw.Src, nil)
}

// Obstacle draws both barriers of a pipe.
func (c *Canvas) Obstacle(top, bottom core.Sprite) {
	c.sprite(top)
	c.sprite(bottom)
}

// Ground draws both floor tiles.
func (c *Canvas) Ground(tiles [2]core.Sprite) {
	for _, t := range tiles {
		c.sprite(t)
	}
}

// Bird draws the bird.
func (c *Canvas) Bird(s core.Sprite) {
	c.sprite(s)
}

// Score sets the HUD text.
func (c *Canvas) Score(text string) {
	c.score = text
}

// Overlay sets the centred message.
func (c *Canvas) Overlay(text string) {
	c.overlay = text
}

func (c *Canvas) sprite(s core.Sprite) {
	if s.Image == nil {
		return
	}
	b := s.Image.Bounds()
	dst := image.Rect(s.X, s.Y, s.X+b.Dx(), s.Y+b.Dy())
	xdraw.Draw(c.world, dst, s.Image, b.Min, xdraw.Over)
}

// Present downsamples the world into the screen, keeping the aspect ratio,
// then writes the HUD and overlay text over it.
func (c *Canvas) Present() error {
	cols, rows := c.screen.Width(), c.screen.Height()
	if cols == 0 || rows == 0 {
		return nil
	}

	view := c.viewport(cols, rows*2)
	small := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	xdraw.Draw(small, small.Bounds(), image.NewUniform(letterbox), image.Point{}, xdraw.Src)
	xdraw.ApproxBiLinear.Scale(small, view, c.world, c.world.Bounds(), xdraw.Src, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c.screen.SetCell(x, y, core.Cell{
				Rune: HalfBlock,
				Fg:   core.FromColor(small.RGBAAt(x, y*2)),
				Bg:   core.FromColor(small.RGBAAt(x, y*2+1)),
			})
		}
	}

	if c.score != "" {
		c.screen.DrawTextRight(0, 1, c.score, textColor)
	}
	if c.overlay != "" {
		c.screen.DrawRect(core.NewRect(0, rows/2, cols, 1), core.Cell{Rune: ' ', Bg: overlayBand})
		c.screen.DrawTextCentered(rows/2, c.overlay, textColor)
	}
	return nil
}

// viewport returns the largest rectangle with the world's aspect ratio that
// fits a w×h pixel grid, centred.
func (c *Canvas) viewport(w, h int) image.Rectangle {
	ww, wh := c.world.Bounds().Dx(), c.world.Bounds().Dy()
	vw, vh := w, w*wh/ww
	if vh > h {
		vw, vh = h*ww/wh, h
	}
	vw, vh = max(vw, 1), max(vh, 1)
	x0, y0 := (w-vw)/2, (h-vh)/2
	return image.Rect(x0, y0, x0+vw, y0+vh)
}

// World returns the composed world image of the last frame.
func (c *Canvas) World() *image.RGBA {
	return c.world
}

type styleKey struct{ fg, bg core.Color }

var styleCache = make(map[styleKey]lipgloss.Style)

func styleFor(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}
	if s, ok := styleCache[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if !fg.IsDefault() {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if !bg.IsDefault() {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	styleCache[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
