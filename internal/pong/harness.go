package pong

import (
	"math/rand"
	"time"
)

// FrameInterval is one frame at the 60 Hz rate the front ends run at.
const FrameInterval = time.Second / 60

// TestSim is a headless match: a Loop wired to a simulated clock, a seeded
// random source, a counting sound emitter and a full event log. Tests and
// cmd/headless-report drive it.
type TestSim struct {
	Loop   *Loop
	Clock  *SimulatedClock
	Sound  *SoundCounter
	Events *EventLog

	cfg       Config
	start     time.Time
	seed      int64
	clockRate float64 // simulated seconds per real frame second
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // config, seed, clock: applied before the loop exists
	simOptState                      // ball, paddles, scores: applied to the built loop
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithCanvas sets the logical canvas size.
func WithCanvas(w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Width = w
		ts.cfg.Height = h
	}}
}

// WithProfile selects the device speed tuning.
func WithProfile(p Profile) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg = withProfile(ts.cfg, p)
	}}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg = cfg
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithClockStart sets the simulated wall-clock time at frame zero.
func WithClockStart(t time.Time) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.start = t
	}}
}

// WithClockRate makes the simulated clock run rate times faster than the
// frame deltas, so long stretches of clock time fit in a short run.
func WithClockRate(rate float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.clockRate = rate
	}}
}

// WithLatchedModes enables the remembered control-mode transition.
func WithLatchedModes(on bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.LatchControlMode = on
	}}
}

// WithBall places the ball and sets its velocity and current speed.
func WithBall(x, y, vx, vy, speed float64) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		b := ts.Loop.state.Ball
		b.X, b.Y, b.VX, b.VY, b.Speed = x, y, vx, vy, speed
	}}
}

// WithPaddleY sets both paddles' vertical positions.
func WithPaddleY(left, right float64) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Loop.state.Left.Y = left
		ts.Loop.state.Right.Y = right
	}}
}

// WithScores sets the starting scoreboard.
func WithScores(p1, p2 int) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Loop.state.Score = Scoreboard{Player1: p1, Player2: p2}
	}}
}

// NewTestSim constructs a TestSim from the given options in three ordered steps:
//  1. Infrastructure (config, seed, clock)
//  2. Build the Loop
//  3. State (ball, paddles, scores)
//
// Like regexp.MustCompile, it panics if the options produce a Config that
// fails Validate; callers with untrusted tuning should call Validate first.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		cfg:       DefaultConfig(ProfileDesktop),
		start:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local),
		seed:      1,
		clockRate: 1,
		Sound:     &SoundCounter{},
		Events:    NewEventLog(),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.Clock = NewSimulatedClock(ts.start)
	loop, err := NewLoop(ts.cfg, ts.Clock, ts.Sound,
		WithRand(rand.New(rand.NewSource(ts.seed))), // #nosec G404 -- test harness
		WithEventLog(ts.Events),
	)
	if err != nil {
		panic(err)
	}
	ts.Loop = loop
	for _, o := range opts {
		if o.kind == simOptState {
			o.fn(ts)
		}
	}
	return ts
}

// State is shorthand for ts.Loop.State().
func (ts *TestSim) State() *GameState { return ts.Loop.state }

// Step advances one frame of FrameInterval, moving the clock first.
func (ts *TestSim) Step() {
	ts.Clock.Advance(time.Duration(float64(FrameInterval) * ts.clockRate))
	ts.Loop.Step(FrameInterval)
}

// RunFrames advances n frames.
func (ts *TestSim) RunFrames(n int) {
	for i := 0; i < n; i++ {
		ts.Step()
	}
}

// RunUntil advances up to maxFrames, stopping early once predicate holds.
// It returns the frame at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		ts.Step()
		if predicate(ts) {
			return ts.Loop.frame
		}
	}
	return -1
}
