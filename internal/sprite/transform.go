package sprite

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// FlipVertical returns a copy of img mirrored top to bottom.
func FlipVertical(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, b.Dy()-1-y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// Rotate returns img turned counter-clockwise by degrees (screen orientation,
// y down). The result is enlarged to hold the whole rotated image and the
// source centre maps onto the result centre, so callers re-centre it with
// CenterOffset.
func Rotate(img image.Image, degrees float64) *image.RGBA {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	rad := degrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	// Snap tiny residues so right angles produce exact sizes.
	if math.Abs(sin) < 1e-9 {
		sin = 0
	}
	if math.Abs(cos) < 1e-9 {
		cos = 0
	}

	rw := int(math.Ceil(math.Abs(w*cos) + math.Abs(h*sin) - 1e-9))
	rh := int(math.Ceil(math.Abs(w*sin) + math.Abs(h*cos) - 1e-9))
	dst := image.NewRGBA(image.Rect(0, 0, rw, rh))

	// Source-to-destination affine map: rotate about the source centre,
	// then move that centre to the destination centre.
	cx, cy := float64(b.Min.X)+w/2, float64(b.Min.Y)+h/2
	tx := float64(rw)/2 - (cos*cx + sin*cy)
	ty := float64(rh)/2 - (-sin*cx + cos*cy)
	s2d := f64.Aff3{
		cos, sin, tx,
		-sin, cos, ty,
	}

	draw.NearestNeighbor.Transform(dst, s2d, img, b, draw.Over, nil)
	return dst
}

// CenterOffset returns where the top-left corner of rotated must go so that
// it shares its centre with an unrotated sprite of size (w, h) at (x, y).
func CenterOffset(x, y, w, h int, rotated image.Image) (int, int) {
	rb := rotated.Bounds()
	return x + w/2 - rb.Dx()/2, y + h/2 - rb.Dy()/2
}

// Scale resizes img to w×h with nearest-neighbour sampling, keeping hard
// pixel edges.
func Scale(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
