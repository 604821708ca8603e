package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
)

func newTestSheet(t *testing.T) *sheet {
	t.Helper()
	set, err := assets.Procedural{Scale: 2}.Load()
	if err != nil {
		t.Fatalf("Procedural.Load() failed: %v", err)
	}
	return newSheet(set)
}

func newTestBird(t *testing.T) *Bird {
	t.Helper()
	return newBird(config.DefaultFlappyConfig().Bird, newTestSheet(t))
}

func TestBirdJump(t *testing.T) {
	b := newTestBird(t)

	b.Jump()
	if b.Vel != -10.5 || b.Tick != 0 || b.Height != 350 {
		t.Fatalf("after Jump: vel=%v tick=%d height=%v, expected -10.5, 0, 350", b.Vel, b.Tick, b.Height)
	}

	d := b.Move()
	// -10.5*1 + 0.5*3*1 = -9, then the ascent boost of 2.
	if d != -11 {
		t.Errorf("first displacement = %v, expected -11", d)
	}
	if b.Y != 339 {
		t.Errorf("Y = %v, expected 339", b.Y)
	}
	if b.Tilt != 25 {
		t.Errorf("Tilt = %v, expected 25 while rising", b.Tilt)
	}
}

func TestBirdDisplacementCap(t *testing.T) {
	b := newTestBird(t)

	for tick := 1; tick <= 40; tick++ {
		if d := b.Displacement(tick); d > 16 {
			t.Fatalf("Displacement(%d) = %v exceeds the cap", tick, d)
		}
	}
	if d := b.Displacement(10); d != 16 {
		t.Errorf("Displacement(10) = %v, expected the cap 16", d)
	}

	b.Jump()
	for tick := 1; tick <= 6; tick++ {
		if d := b.Displacement(tick); d >= 0 {
			t.Errorf("Displacement(%d) after jump = %v, expected upward", tick, d)
		}
	}
}

func TestBirdTiltClamp(t *testing.T) {
	b := newTestBird(t)

	for i := 0; i < 30; i++ {
		b.Move()
		if b.Tilt < -90 || b.Tilt > 25 {
			t.Fatalf("frame %d: tilt %v out of [-90, 25]", i, b.Tilt)
		}
	}
	if b.Tilt != -90 {
		t.Errorf("tilt after a long fall = %v, expected -90", b.Tilt)
	}

	b.Jump()
	b.Move()
	if b.Tilt != 25 {
		t.Errorf("tilt after jump = %v, expected 25", b.Tilt)
	}
}

func TestBirdTiltHold(t *testing.T) {
	b := newTestBird(t)

	// Falling from rest stays nose-up until the bird is 50px below its jump height.
	for b.Y < b.Height+50 {
		b.Move()
		if b.Y < b.Height+50 && b.Tilt != 25 {
			t.Fatalf("tilt = %v at y=%v, expected 25 inside the hold band", b.Tilt, b.Y)
		}
	}
	if b.Tilt != 5 {
		t.Errorf("first tilt below the band = %v, expected 5", b.Tilt)
	}
}

func TestBirdHover(t *testing.T) {
	b := newTestBird(t)

	b.Hover()
	want := 350 + 0.5*math.Sin(0.1)
	if math.Abs(b.Y-want) > 1e-9 {
		t.Errorf("Y after one hover = %v, expected %v", b.Y, want)
	}
	if b.Vel != 0 || b.Tilt != 0 || b.Tick != 0 {
		t.Errorf("hover changed physics: vel=%v tilt=%v tick=%d", b.Vel, b.Tilt, b.Tick)
	}

	for i := 0; i < 200; i++ {
		b.Hover()
		if math.Abs(b.Y-350) > 12 {
			t.Fatalf("hover drifted to %v", b.Y)
		}
	}
}

func TestBirdAnimate(t *testing.T) {
	b := newTestBird(t)

	for i := 0; i < 4; i++ {
		b.Animate()
	}
	if b.Frame != 0 {
		t.Errorf("frame = %d after 4 updates, expected 0", b.Frame)
	}
	b.Animate()
	if b.Frame != 1 {
		t.Errorf("frame = %d after 5 updates, expected 1", b.Frame)
	}
	for i := 0; i < 10; i++ {
		b.Animate()
	}
	if b.Frame != 0 {
		t.Errorf("frame = %d after a full cycle, expected 0", b.Frame)
	}
}

func TestBirdSpriteCentered(t *testing.T) {
	b := newTestBird(t)

	b.Tilt = 0
	s := b.Sprite()
	if s.X != 230 || s.Y != 350 {
		t.Errorf("unrotated sprite at (%d, %d), expected (230, 350)", s.X, s.Y)
	}

	b.Tilt = 25
	s = b.Sprite()
	r := s.Bounds()
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	if cx < 263 || cx > 265 || cy < 373 || cy > 375 {
		t.Errorf("rotated sprite centre (%d, %d) drifted from (264, 374)", cx, cy)
	}
	if r.W <= 68 || r.H <= 48 {
		t.Errorf("rotated bounds %dx%d should grow", r.W, r.H)
	}

	mask, mx, my := b.Footprint()
	w, h := mask.Size()
	if mx != s.X || my != s.Y || w != r.W || h != r.H {
		t.Errorf("footprint (%d,%d %dx%d) does not match sprite %+v", mx, my, w, h, r)
	}
}
