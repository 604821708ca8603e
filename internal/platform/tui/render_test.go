package tui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

// splitImage is red on the top half and blue on the bottom half.
func splitImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := red
		if y >= h/2 {
			c = blue
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func fill(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func isRed(c core.Color) bool {
	r, g, b := c.Channels()
	return r > 0xf0 && g < 0x10 && b < 0x10
}

func isBlue(c core.Color) bool {
	r, g, b := c.Channels()
	return r < 0x10 && g < 0x10 && b > 0xf0
}

func TestCanvasPresent(t *testing.T) {
	screen := core.NewScreen(20, 4)
	c := NewCanvas(20, 20, screen)

	c.Background(splitImage(20, 20))
	c.Score("S:1")
	if err := c.Present(); err != nil {
		t.Fatal(err)
	}

	// 20x20 world in a 20x8 pixel grid: an 8x8 view centred at x=6.
	if cell := screen.GetCell(0, 1); cell.Fg != core.RGB(0, 0, 0) || cell.Bg != core.RGB(0, 0, 0) {
		t.Errorf("letterbox cell = %+v, expected black", cell)
	}
	if cell := screen.GetCell(10, 1); cell.Rune != HalfBlock || !isRed(cell.Fg) || !isRed(cell.Bg) {
		t.Errorf("upper cell = %+v, expected red half block", cell)
	}
	if cell := screen.GetCell(10, 2); !isBlue(cell.Fg) || !isBlue(cell.Bg) {
		t.Errorf("lower cell = %+v, expected blue", cell)
	}
	if row := screen.Row(0); !strings.HasSuffix(row, "S:1"+string(HalfBlock)) {
		t.Errorf("score should be right-aligned on row 0, got %q", row)
	}
}

func TestCanvasOverlay(t *testing.T) {
	screen := core.NewScreen(30, 6)
	c := NewCanvas(30, 12, screen)

	c.Background(splitImage(30, 12))
	c.Overlay("GAME OVER")
	if err := c.Present(); err != nil {
		t.Fatal(err)
	}
	if row := screen.Row(3); !strings.Contains(row, "GAME OVER") {
		t.Errorf("overlay should be centred on row 3, got %q", row)
	}
	if cell := screen.GetCell(0, 3); cell.Bg != overlayBand {
		t.Errorf("overlay row should sit on a dark band, got %+v", cell)
	}

	// A new frame starts without the old overlay.
	c.Background(splitImage(30, 12))
	if err := c.Present(); err != nil {
		t.Fatal(err)
	}
	if row := screen.Row(3); strings.Contains(row, "GAME OVER") {
		t.Errorf("overlay should not persist, got %q", row)
	}
}

func TestCanvasSprite(t *testing.T) {
	screen := core.NewScreen(10, 5)
	c := NewCanvas(10, 10, screen)

	c.Background(fill(10, 10, blue))
	c.Bird(core.Sprite{Image: fill(2, 2, red), X: 4, Y: 4})

	w := c.World()
	if w.RGBAAt(4, 4) != red || w.RGBAAt(5, 5) != red {
		t.Error("sprite should be composed into the world")
	}
	if w.RGBAAt(3, 4) != blue || w.RGBAAt(6, 5) != blue {
		t.Error("sprite should not spill outside its bounds")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc", core.ColorDefault)
	s.DrawText(0, 1, "def", core.ColorYellow)

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	if !strings.Contains(out, "abc") || !strings.Contains(out, "def") {
		t.Errorf("output lost text: %q", out)
	}
}

func TestWritePNG(t *testing.T) {
	c := NewCanvas(12, 8, core.NewScreen(4, 4))
	c.Background(splitImage(12, 8))

	path, err := writePNG(t.TempDir(), "flappy", c)
	if err != nil {
		t.Fatalf("writePNG() failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("screenshot is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
		t.Errorf("screenshot size = %v, expected 12x8", img.Bounds().Size())
	}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}
