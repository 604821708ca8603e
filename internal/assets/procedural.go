package assets

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// Base sprite sizes before scaling. Scaled 2x they match the classic layout:
// a 68x48 bird, 104x640 pipe, 672x224 ground tile and a 600x620 sky.
const (
	birdW, birdH     = 34, 24
	pipeW, pipeH     = 52, 320
	pipeLipH         = 12
	pipeInset        = 2
	groundW, groundH = 336, 112
	bgW, bgH         = 300, 310
)

// Palette holds the colours of the generated sprites.
var Palette = struct {
	BirdBody    color.RGBA
	BirdBelly   color.RGBA
	BirdWing    color.RGBA
	BirdOutline color.RGBA
	Beak        color.RGBA
	Eye         color.RGBA
	Pupil       color.RGBA

	PipeBody      color.RGBA
	PipeHighlight color.RGBA
	PipeShadow    color.RGBA
	PipeOutline   color.RGBA

	Grass     color.RGBA
	GrassDark color.RGBA
	Dirt      color.RGBA
	DirtDark  color.RGBA

	SkyTop    color.RGBA
	SkyBottom color.RGBA
	Cloud     color.RGBA
	City      color.RGBA
	Bush      color.RGBA
}{
	BirdBody:    color.RGBA{248, 198, 48, 255},
	BirdBelly:   color.RGBA{252, 236, 170, 255},
	BirdWing:    color.RGBA{251, 226, 138, 255},
	BirdOutline: color.RGBA{84, 56, 71, 255},
	Beak:        color.RGBA{242, 110, 40, 255},
	Eye:         color.RGBA{255, 255, 255, 255},
	Pupil:       color.RGBA{30, 30, 30, 255},

	PipeBody:      color.RGBA{115, 191, 46, 255},
	PipeHighlight: color.RGBA{176, 232, 104, 255},
	PipeShadow:    color.RGBA{85, 140, 34, 255},
	PipeOutline:   color.RGBA{84, 56, 71, 255},

	Grass:     color.RGBA{116, 191, 46, 255},
	GrassDark: color.RGBA{92, 160, 36, 255},
	Dirt:      color.RGBA{222, 216, 149, 255},
	DirtDark:  color.RGBA{206, 196, 126, 255},

	SkyTop:    color.RGBA{78, 192, 202, 255},
	SkyBottom: color.RGBA{170, 226, 232, 255},
	Cloud:     color.RGBA{234, 252, 219, 255},
	City:      color.RGBA{155, 214, 200, 255},
	Bush:      color.RGBA{94, 226, 112, 255},
}

// Procedural draws the sprite set in code, so the game runs without any
// image files.
type Procedural struct {
	Scale int // integer pixel scale, values below 1 mean 1
}

// Load generates the sprites.
func (p Procedural) Load() (*Set, error) {
	scale := max(p.Scale, 1)

	frames := make([]image.Image, 0, BirdFrameCount)
	for _, wingDY := range []int{-3, 0, 3} {
		frames = append(frames, upscale(birdFrame(wingDY), scale))
	}

	set := &Set{
		BirdFrames: frames,
		Pipe:       upscale(pipe(), scale),
		Ground:     upscale(groundTile(), scale),
		Background: upscale(background(), scale),
	}
	return set, set.Validate()
}

func upscale(img *image.RGBA, scale int) image.Image {
	if scale == 1 {
		return img
	}
	b := img.Bounds()
	return sprite.Scale(img, b.Dx()*scale, b.Dy()*scale)
}

// fillEllipse paints the pixels whose centres fall inside the ellipse.
func fillEllipse(img *image.RGBA, cx, cy, rx, ry float64, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
}

func birdFrame(wingDY int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, birdW, birdH))

	// Outline first, then the fill one pixel smaller.
	fillEllipse(img, 16, 12, 13, 10.5, Palette.BirdOutline)
	fillEllipse(img, 16, 12, 12, 9.5, Palette.BirdBody)
	fillEllipse(img, 17, 16, 8, 4, Palette.BirdBelly)

	// Beak
	fillRect(img, image.Rect(26, 12, 33, 17), Palette.BirdOutline)
	fillRect(img, image.Rect(27, 13, 32, 14), Palette.Beak)
	fillRect(img, image.Rect(27, 15, 31, 16), Palette.Beak)

	// Eye
	fillEllipse(img, 22, 8, 4, 4, Palette.BirdOutline)
	fillEllipse(img, 22, 8, 3, 3, Palette.Eye)
	fillRect(img, image.Rect(23, 7, 25, 10), Palette.Pupil)

	// Wing
	wy := 13 + float64(wingDY)
	fillEllipse(img, 9, wy, 6, 4, Palette.BirdOutline)
	fillEllipse(img, 9, wy, 5, 3, Palette.BirdWing)

	return img
}

func pipe() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pipeW, pipeH))

	// Body is narrower than the lip, leaving transparent margins.
	body := image.Rect(pipeInset, pipeLipH, pipeW-pipeInset, pipeH)
	fillRect(img, body, Palette.PipeOutline)
	fillRect(img, body.Inset(1), Palette.PipeBody)
	fillRect(img, image.Rect(body.Min.X+4, body.Min.Y, body.Min.X+9, body.Max.Y), Palette.PipeHighlight)
	fillRect(img, image.Rect(body.Max.X-8, body.Min.Y, body.Max.X-1, body.Max.Y), Palette.PipeShadow)

	lip := image.Rect(0, 0, pipeW, pipeLipH)
	fillRect(img, lip, Palette.PipeOutline)
	fillRect(img, lip.Inset(1), Palette.PipeBody)
	fillRect(img, image.Rect(3, 1, 8, pipeLipH-1), Palette.PipeHighlight)
	fillRect(img, image.Rect(pipeW-7, 1, pipeW-1, pipeLipH-1), Palette.PipeShadow)

	return img
}

func groundTile() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, groundW, groundH))
	fillRect(img, img.Bounds(), Palette.Dirt)

	fillRect(img, image.Rect(0, 0, groundW, 1), Palette.PipeOutline)
	fillRect(img, image.Rect(0, 1, groundW, 7), Palette.Grass)
	// Diagonal stripes; the period divides the tile width so tiles join seamlessly.
	for y := 1; y < 7; y++ {
		for x := 0; x < groundW; x++ {
			if (x+y)%12 < 6 {
				img.SetRGBA(x, y, Palette.GrassDark)
			}
		}
	}
	fillRect(img, image.Rect(0, 7, groundW, 9), Palette.GrassDark)

	for y := 14; y < groundH; y += 8 {
		for x := (y / 8 % 2) * 6; x < groundW; x += 12 {
			img.SetRGBA(x, y, Palette.DirtDark)
			img.SetRGBA(x+1, y, Palette.DirtDark)
		}
	}
	return img
}

func background() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bgW, bgH))

	for y := 0; y < bgH; y++ {
		t := float64(y) / float64(bgH-1)
		c := color.RGBA{
			R: lerp(Palette.SkyTop.R, Palette.SkyBottom.R, t),
			G: lerp(Palette.SkyTop.G, Palette.SkyBottom.G, t),
			B: lerp(Palette.SkyTop.B, Palette.SkyBottom.B, t),
			A: 255,
		}
		fillRect(img, image.Rect(0, y, bgW, y+1), c)
	}

	for i := 0; i < 8; i++ {
		x := float64(i*42 + 10)
		fillEllipse(img, x, 200, 26, 12, Palette.Cloud)
		fillEllipse(img, x+18, 194, 18, 12, Palette.Cloud)
	}

	heights := []int{28, 40, 22, 52, 34, 46, 26, 38, 30, 48}
	for i := 0; i*30 < bgW; i++ {
		h := heights[i%len(heights)]
		fillRect(img, image.Rect(i*30, 250-h, i*30+24, 260), Palette.City)
	}

	for i := 0; i < 12; i++ {
		fillEllipse(img, float64(i*28), 262, 20, 10, Palette.Bush)
	}
	fillRect(img, image.Rect(0, 262, bgW, bgH), Palette.Bush)

	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
