package flappy

import (
	"image"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// rotKey identifies one rotated bird frame.
type rotKey struct {
	frame int
	tilt  float64
}

// rotation is a rotated bird frame and its footprint.
type rotation struct {
	img  image.Image
	mask sprite.Mask
}

// sheet holds every sprite of a session together with the masks derived from
// them. Masks are computed once; rotated bird frames are computed on first use
// and cached, since tilt only takes a handful of discrete values.
type sheet struct {
	frames       []image.Image
	birdW, birdH int
	rotations    map[rotKey]rotation

	pipeTop, pipeBottom         image.Image
	pipeTopMask, pipeBottomMask sprite.Mask
	pipeW, pipeH                int

	ground           image.Image
	groundW, groundH int

	background image.Image
}

func newSheet(set *assets.Set) *sheet {
	s := &sheet{
		frames:     set.BirdFrames,
		rotations:  make(map[rotKey]rotation),
		pipeBottom: set.Pipe,
		ground:     set.Ground,
		background: set.Background,
	}
	s.birdW, s.birdH = set.BirdSize()
	s.pipeW, s.pipeH = set.PipeSize()
	s.groundW, s.groundH = set.GroundSize()

	s.pipeTop = sprite.FlipVertical(set.Pipe)
	s.pipeTopMask = sprite.FromImage(s.pipeTop)
	s.pipeBottomMask = sprite.FromImage(s.pipeBottom)
	return s
}

// rotated returns the given animation frame turned by tilt degrees.
func (s *sheet) rotated(frame int, tilt float64) rotation {
	key := rotKey{frame: frame, tilt: tilt}
	if r, ok := s.rotations[key]; ok {
		return r
	}
	img := sprite.Rotate(s.frames[frame], tilt)
	r := rotation{img: img, mask: sprite.FromImage(img)}
	s.rotations[key] = r
	return r
}
