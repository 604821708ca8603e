package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig() disagree:\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero width", func(c *FlappyConfig) { c.World.Width = 0 }},
		{"zero tick rate", func(c *FlappyConfig) { c.World.TickRate = 0 }},
		{"downward jump", func(c *FlappyConfig) { c.Bird.JumpVelocity = 4 }},
		{"inverted tilt", func(c *FlappyConfig) { c.Bird.MinTilt = 30 }},
		{"zero gap", func(c *FlappyConfig) { c.Pipes.Gap = 0 }},
		{"ground below viewport", func(c *FlappyConfig) { c.Ground.Y = 900 }},
		{"no animation hold", func(c *FlappyConfig) { c.Bird.AnimationTime = 0 }},
		{"zero sprite scale", func(c *FlappyConfig) { c.World.SpriteScale = 0 }},
		{"negative sprite scale", func(c *FlappyConfig) { c.World.SpriteScale = -2 }},
		{"spawn distance beyond first pass", func(c *FlappyConfig) { c.Pipes.SpawnDistance = 400 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
		})
	}
}

func TestGapRange(t *testing.T) {
	cfg := DefaultFlappyConfig()

	lower, upper, err := cfg.GapRange(224)
	if err != nil {
		t.Fatalf("GapRange() failed: %v", err)
	}
	if lower != 50 || upper != 96 {
		t.Errorf("GapRange(224) = [%d, %d], expected [50, 96]", lower, upper)
	}
}

func TestGapRangeDegenerate(t *testing.T) {
	tests := []struct {
		name         string
		gap          int
		groundHeight int
	}{
		{"empty range", 200, 270},      // upper = 50 == lower
		{"inverted range", 300, 224},   // upper < lower
		{"tall ground tile", 200, 600}, // upper far below zero
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			cfg.Pipes.Gap = tc.gap
			_, _, err := cfg.GapRange(tc.groundHeight)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("GapRange() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("pipes:\n  gap: 180\nworld:\n  scroll_speed: 6\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Pipes.Gap != 180 || cfg.World.ScrollSpeed != 6 {
		t.Errorf("overrides not applied: gap=%d speed=%d", cfg.Pipes.Gap, cfg.World.ScrollSpeed)
	}
	if cfg.Bird.JumpVelocity != -10.5 {
		t.Errorf("untouched keys should keep defaults, jump=%v", cfg.Bird.JumpVelocity)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing explicit path")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world:\n  tick_rate: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of invalid values should wrap ErrInvalid, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Pipes.Gap = 222

	out, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed config:\n%+v\n%+v", back, cfg)
	}
}
