package pong

import (
	"math"
	"testing"
)

func TestDefaultConfig_Profiles(t *testing.T) {
	d := DefaultConfig(ProfileDesktop)
	if d.BallSpeed != 2 || d.BallSpeedIncrement != 0.15 || d.BallSpeedCap != 7 || d.PaddleSpeed != 8 {
		t.Fatalf("unexpected desktop tuning %+v", d)
	}
	m := DefaultConfig(ProfileTouch)
	if m.BallSpeed != 4 || m.BallSpeedIncrement != 0.2 || m.BallSpeedCap != 14 || m.PaddleSpeed != 12 {
		t.Fatalf("unexpected touch tuning %+v", m)
	}
	if m.Profile.String() != "Mobile" || d.Profile.String() != "Desktop" {
		t.Fatal("profile names drive the debug overlay's browser line")
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestConfigValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero ball speed":     func(c *Config) { c.BallSpeed = 0 },
		"negative increment":  func(c *Config) { c.BallSpeedIncrement = -1 },
		"zero paddle speed":   func(c *Config) { c.PaddleSpeed = 0 },
		"negative track dist": func(c *Config) { c.TrackDistanceY = -1 },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig(ProfileDesktop)
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
}

func TestConfigApplyEnv(t *testing.T) {
	t.Setenv("CLOCKPONG_PROFILE", "touch")
	t.Setenv("CLOCKPONG_TRACK_X", "0")
	t.Setenv("CLOCKPONG_TRACK_Y", "not-a-number")
	t.Setenv("CLOCKPONG_LATCH_MODE", "true")

	cfg := DefaultConfig(ProfileDesktop)
	cfg.ApplyEnv()
	if cfg.Profile != ProfileTouch || cfg.BallSpeed != 4 {
		t.Fatalf("profile override not applied: %+v", cfg)
	}
	if cfg.TrackDistanceX != 0 {
		t.Fatalf("expected near field disabled, got %g", cfg.TrackDistanceX)
	}
	if cfg.TrackDistanceY != PaddleHeight {
		t.Fatalf("unparsable values should be ignored, got %g", cfg.TrackDistanceY)
	}
	if !cfg.LatchControlMode {
		t.Fatal("latch override not applied")
	}
}

func TestConfigValidate_RejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		cfg := DefaultConfig(ProfileDesktop)
		cfg.TrackDistanceX = v
		if err := cfg.Validate(); err == nil {
			t.Fatalf("track distance %g should be rejected", v)
		}
		cfg = DefaultConfig(ProfileDesktop)
		cfg.BallSpeedCap = v
		if err := cfg.Validate(); err == nil {
			t.Fatalf("speed cap %g should be rejected", v)
		}
	}

	t.Setenv("CLOCKPONG_TRACK_X", "Inf")
	cfg := DefaultConfig(ProfileDesktop)
	cfg.ApplyEnv()
	if _, err := NewLoop(cfg, FixedClock{}, nil); err == nil {
		t.Fatal("an infinite track distance from the environment should not build a loop")
	}
}
