package pong

import (
	"fmt"
	"math"
	"os"
	"strconv"
)

// Logical canvas the game is laid out on. Front ends scale it to the window.
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// Fixed entity geometry.
const (
	BallRadius   = 10.0
	PaddleWidth  = 15.0
	PaddleHeight = 110.0
	paddleInset  = 10.0 // gap between a paddle's outer edge and the canvas side
)

// Profile selects the speed tuning for the input device class.
type Profile int

const (
	ProfileDesktop Profile = iota
	ProfileTouch
)

func (p Profile) String() string {
	if p == ProfileTouch {
		return "Mobile"
	}
	return "Desktop"
}

// Config is the tunable part of a match. Rules (scoring tiers, wrap limits,
// bounce angles) are fixed and not represented here.
type Config struct {
	Profile Profile

	Width  float64
	Height float64

	BallSpeed          float64 // launch speed v0 on each axis
	BallSpeedIncrement float64 // added on every paddle hit
	BallSpeedCap       float64 // vMax

	PaddleSpeed          float64
	PaddleSpeedIncrement float64 // added each time the ball changes direction

	// Near-field tracking box. When the ball is closer than TrackDistanceX
	// horizontally but further than TrackDistanceY vertically, a paddle
	// lunges at the ball's extrapolated crossing instead of steering its
	// opponent. Zero disables the near-field branch.
	TrackDistanceX float64
	TrackDistanceY float64

	// LatchControlMode makes UpdateControlMode remember the mode it last
	// switched to, so a paddle holding mode 2 drops back to mode 1 on the next
	// evaluation. Off by default: the mode is then recomputed from scratch
	// every frame and mode 2 always wins once the minute is out of sync.
	LatchControlMode bool
}

// DefaultConfig returns the stock tuning for a device profile.
func DefaultConfig(p Profile) Config {
	cfg := Config{
		Profile:        p,
		Width:          CanvasWidth,
		Height:         CanvasHeight,
		TrackDistanceX: 2 * PaddleWidth,
		TrackDistanceY: PaddleHeight,
	}
	switch p {
	case ProfileTouch:
		cfg.BallSpeed = 4
		cfg.BallSpeedIncrement = 0.2
		cfg.BallSpeedCap = 14
		cfg.PaddleSpeed = 12
	default:
		cfg.BallSpeed = 2
		cfg.BallSpeedIncrement = 0.15
		cfg.BallSpeedCap = 7
		cfg.PaddleSpeed = 8
	}
	return cfg
}

// Validate rejects tunings the physics cannot run with.
func (c Config) Validate() error {
	switch {
	case c.BallSpeed <= 0:
		return fmt.Errorf("ball speed must be > 0, got %g", c.BallSpeed)
	case c.BallSpeedCap < c.BallSpeed:
		return fmt.Errorf("ball speed cap %g is below launch speed %g", c.BallSpeedCap, c.BallSpeed)
	case c.BallSpeedIncrement < 0:
		return fmt.Errorf("ball speed increment must be >= 0, got %g", c.BallSpeedIncrement)
	case c.PaddleSpeed <= 0:
		return fmt.Errorf("paddle speed must be > 0, got %g", c.PaddleSpeed)
	case !finite(c.Width, c.Height, c.BallSpeed, c.BallSpeedIncrement, c.BallSpeedCap,
		c.PaddleSpeed, c.PaddleSpeedIncrement, c.TrackDistanceX, c.TrackDistanceY):
		return fmt.Errorf("config values must be finite")
	case c.TrackDistanceX < 0 || c.TrackDistanceY < 0:
		return fmt.Errorf("track distances must be >= 0, got %gx%g", c.TrackDistanceX, c.TrackDistanceY)
	}
	return nil
}

// ApplyEnv overrides fields from CLOCKPONG_* environment variables. Values
// that fail to parse are ignored.
func (c *Config) ApplyEnv() {
	floatEnv := func(name string, dst *float64) {
		if v := os.Getenv(name); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			}
		}
	}
	if v := os.Getenv("CLOCKPONG_PROFILE"); v != "" {
		switch v {
		case "touch", "mobile":
			*c = withProfile(*c, ProfileTouch)
		case "desktop":
			*c = withProfile(*c, ProfileDesktop)
		}
	}
	floatEnv("CLOCKPONG_TRACK_X", &c.TrackDistanceX)
	floatEnv("CLOCKPONG_TRACK_Y", &c.TrackDistanceY)
	if v := os.Getenv("CLOCKPONG_LATCH_MODE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.LatchControlMode = b
		}
	}
}

// withProfile swaps the speed tuning while keeping the other settings.
func withProfile(c Config, p Profile) Config {
	d := DefaultConfig(p)
	c.Profile = p
	c.BallSpeed = d.BallSpeed
	c.BallSpeedIncrement = d.BallSpeedIncrement
	c.BallSpeedCap = d.BallSpeedCap
	c.PaddleSpeed = d.PaddleSpeed
	c.PaddleSpeedIncrement = d.PaddleSpeedIncrement
	return c
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
