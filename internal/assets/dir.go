package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// File names looked up by Dir.
var (
	BirdFiles      = []string{"bird1.png", "bird2.png", "bird3.png"}
	PipeFile       = "pipe.png"
	GroundFile     = "base.png"
	BackgroundFile = "bg.png"
)

// Dir loads PNG sprites from a directory and scales them by an integer factor.
type Dir struct {
	Path  string
	Scale int
}

// Load decodes every sprite file.
func (d Dir) Load() (*Set, error) {
	scale := max(d.Scale, 1)

	load := func(name string) (image.Image, error) {
		img, err := decodePNG(filepath.Join(d.Path, name))
		if err != nil {
			return nil, err
		}
		if scale == 1 {
			return img, nil
		}
		return upscale(toRGBA(img), scale), nil
	}

	set := &Set{}
	for _, name := range BirdFiles {
		img, err := load(name)
		if err != nil {
			return nil, err
		}
		set.BirdFrames = append(set.BirdFrames, img)
	}

	var err error
	if set.Pipe, err = load(PipeFile); err != nil {
		return nil, err
	}
	if set.Ground, err = load(GroundFile); err != nil {
		return nil, err
	}
	if set.Background, err = load(BackgroundFile); err != nil {
		return nil, err
	}

	return set, set.Validate()
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// Select returns the Dir provider when dir is set, otherwise Procedural.
func Select(dir string, scale int) Provider {
	if dir != "" {
		return Dir{Path: dir, Scale: scale}
	}
	return Procedural{Scale: scale}
}
