package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// Bird is the player. It never moves horizontally; the world scrolls past it.
type Bird struct {
	X      int     // Fixed horizontal position (left edge of the unrotated frame)
	Y      float64 // Top edge of the unrotated frame
	Vel    float64 // Velocity set by the last impulse
	Tick   int     // Frames since the last impulse
	Tilt   float64 // Degrees, positive = nose up
	Height float64 // Y at the last impulse

	Frame     int // Current animation frame
	FrameHold int // Updates spent on the current frame
	HoverTick int // Idle oscillation phase counter

	cfg   config.Bird
	sheet *sheet
}

func newBird(cfg config.Bird, sh *sheet) *Bird {
	return &Bird{
		X:      cfg.StartX,
		Y:      cfg.StartY,
		Height: cfg.StartY,
		cfg:    cfg,
		sheet:  sh,
	}
}

// Jump applies the upward impulse.
func (b *Bird) Jump() {
	b.Vel = b.cfg.JumpVelocity
	b.Tick = 0
	b.Height = b.Y
}

// Displacement returns the vertical movement for t frames after an impulse:
// the parabolic fall capped at MaxFall, with upward motion boosted.
func (b *Bird) Displacement(t int) float64 {
	tf := float64(t)
	d := b.Vel*tf + 0.5*b.cfg.Gravity*tf*tf

	if d >= b.cfg.MaxFall {
		d = b.cfg.MaxFall
	}
	if d < 0 {
		d -= b.cfg.AscentBoost
	}
	return d
}

// Move advances the physics by one frame and returns the displacement applied.
func (b *Bird) Move() float64 {
	b.Tick++
	d := b.Displacement(b.Tick)
	b.Y += d

	if d < 0 || b.Y < b.Height+b.cfg.TiltHold {
		b.Tilt = b.cfg.MaxTilt
	} else {
		b.Tilt = math.Max(b.Tilt-b.cfg.TiltSpeed, b.cfg.MinTilt)
	}
	b.Tilt = core.ClampF(b.Tilt, b.cfg.MinTilt, b.cfg.MaxTilt)
	return d
}

// Hover bobs the bird before play starts. Velocity and tilt are untouched.
func (b *Bird) Hover() {
	b.HoverTick++
	b.Y += b.cfg.HoverAmplitude * math.Sin(float64(b.HoverTick)*b.cfg.HoverFrequency)
}

// Animate advances the wing-flap cycle. It has no effect on physics.
func (b *Bird) Animate() {
	b.FrameHold++
	if b.FrameHold >= b.cfg.AnimationTime {
		b.FrameHold = 0
		b.Frame = (b.Frame + 1) % len(b.sheet.frames)
	}
}

// Bottom returns the lower edge of the unrotated frame.
func (b *Bird) Bottom() float64 {
	return b.Y + float64(b.sheet.birdH)
}

// Sprite returns the rotated frame placed so that it shares its centre with
// the unrotated frame.
func (b *Bird) Sprite() core.Sprite {
	r := b.sheet.rotated(b.Frame, b.Tilt)
	x, y := sprite.CenterOffset(b.X, core.Round(b.Y), b.sheet.birdW, b.sheet.birdH, r.img)
	return core.Sprite{Image: r.img, X: x, Y: y}
}

// Footprint returns the opaque pixels of the rotated frame and the world
// position of the mask origin.
func (b *Bird) Footprint() (sprite.Mask, int, int) {
	r := b.sheet.rotated(b.Frame, b.Tilt)
	x, y := sprite.CenterOffset(b.X, core.Round(b.Y), b.sheet.birdW, b.sheet.birdH, r.img)
	return r.mask, x, y
}
