package pong

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// GameState is everything a match mutates. The Loop owns exactly one and
// hands pieces of it to the components each frame.
type GameState struct {
	Width, Height float64

	Ball  *Ball
	Left  *Paddle // player one
	Right *Paddle // player two

	Score Scoreboard
	Trail TrailBuffer
	Heat  Heat
	Time  TimeOfDay // clock reading of the latest frame
}

// Paddles returns both paddles in collision-check order, left first.
func (s *GameState) Paddles() []*Paddle { return []*Paddle{s.Left, s.Right} }

// OpponentFor is the paddle the ball is travelling toward.
func (s *GameState) OpponentFor(b *Ball) *Paddle {
	if b.HeadingRight() {
		return s.Right
	}
	return s.Left
}

// Loop is the composition root: it sequences clock, physics, heat, trail and
// paddle steering once per Step and paints the result on Draw.
type Loop struct {
	cfg   Config
	state *GameState
	clock Clock
	sound SoundEmitter
	rng   *rand.Rand
	log   *slog.Logger

	events *EventLog
	feed   Feed
	frame  int

	debug              bool
	displayW, displayH int
}

// LoopOption customises a Loop at construction.
type LoopOption func(*Loop)

// WithRand supplies the random source for serves and paddle jitter.
func WithRand(rng *rand.Rand) LoopOption {
	return func(l *Loop) { l.rng = rng }
}

// WithLogger routes score and control-mode changes to logger at Debug level.
func WithLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) { l.log = logger }
}

// WithEventLog records every gameplay event into el.
func WithEventLog(el *EventLog) LoopOption {
	return func(l *Loop) { l.events = el }
}

// NewLoop builds a match on cfg's canvas. A nil sound emitter is replaced by
// NopSound.
func NewLoop(cfg Config, clock Clock, sound SoundEmitter, opts ...LoopOption) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pong: invalid config: %w", err)
	}
	if sound == nil {
		sound = NopSound{}
	}
	l := &Loop{
		cfg:   cfg,
		clock: clock,
		sound: sound,
		log:   slog.New(slog.DiscardHandler),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- game only
	}
	for _, o := range opts {
		o(l)
	}

	w, h := sanitizeDim(cfg.Width), sanitizeDim(cfg.Height)
	l.state = &GameState{
		Width:  w,
		Height: h,
		Ball:   NewBall(cfg, l.rng),
		Left:   NewPaddle(cfg, false),
		Right:  NewPaddle(cfg, true),
	}
	l.state.Heat = BallHeat(l.state.Ball)
	l.state.Time = clock.Now()
	return l, nil
}

// State exposes the match state for rendering, tests and reports.
func (l *Loop) State() *GameState { return l.state }

// Config returns the tuning the loop was built with.
func (l *Loop) Config() Config { return l.cfg }

// Frame is the number of Steps run so far.
func (l *Loop) Frame() int { return l.frame }

// Step advances the simulation by one frame; dt is the real time elapsed
// since the previous frame and only drives trail ageing.
func (l *Loop) Step(dt time.Duration) {
	l.frame++
	st := l.state

	tod := l.clock.Now()
	st.Time = tod

	paddles := st.Paddles()
	l.recordBall(st.Ball.Update(paddles, &st.Score, tod, l.sound))

	st.Heat = BallHeat(st.Ball)
	st.Trail.Advance(float64(dt)/float64(time.Millisecond), st.Ball.X, st.Ball.Y)

	for _, p := range paddles {
		prev := p.Mode
		p.UpdateControlMode(tod, st.Score.Player1, st.Score.Player2)
		if p.Mode != prev {
			l.emit(p.Label(), "paddle", "mode_change", fmt.Sprintf("%s → %s", prev, p.Mode), float64(p.Mode))
			l.log.Debug("control mode changed", "paddle", p.Label(), "from", prev.String(), "to", p.Mode.String())
		}
	}

	opponent := st.OpponentFor(st.Ball)
	for _, self := range paddles {
		ResolveOpponentTarget(self, opponent, st.Ball, st.Width, l.rng)
	}
}

// OnResize adopts a new logical canvas size. The ball is re-served, both
// paddles re-anchored and the trail dropped immediately; callers deliver
// this between frames.
func (l *Loop) OnResize(width, height float64) {
	st := l.state
	st.Width, st.Height = sanitizeDim(width), sanitizeDim(height)
	st.Left.AdjustPosition(st.Width, st.Height)
	st.Right.AdjustPosition(st.Width, st.Height)
	st.Ball.AdjustPosition(st.Width, st.Height)
	st.Trail.Clear()
	l.emit("--", "canvas", "resize", fmt.Sprintf("%.0fx%.0f", st.Width, st.Height), 0)
}

// SetDisplaySize records the physical size the canvas is shown at, for the
// debug overlay only.
func (l *Loop) SetDisplaySize(w, h int) { l.displayW, l.displayH = w, h }

// ToggleDebug flips the debug overlay and reports the new state.
func (l *Loop) ToggleDebug() bool {
	l.debug = !l.debug
	return l.debug
}

// Debug reports whether the debug overlay is on.
func (l *Loop) Debug() bool { return l.debug }

func (l *Loop) recordBall(step BallStep) {
	b := l.state.Ball
	if step.WallBounce {
		l.emit("ball", "ball", "wall_bounce", fmt.Sprintf("y=%.1f", b.Y), b.Y)
	}
	for _, p := range step.Hits {
		l.emit("ball", "ball", "paddle_hit", fmt.Sprintf("%s speed=%.2f", p.Label(), b.Speed), b.Speed)
	}
	if step.Scorer != 0 {
		sc := l.state.Score
		actor := l.state.Left.Label()
		score := sc.Player1
		if step.Scorer == 2 {
			actor = l.state.Right.Label()
			score = sc.Player2
		}
		l.emit(actor, "score", "goal", fmt.Sprintf("%+d → %02d:%02d", step.Points, sc.Player1, sc.Player2), float64(step.Points))
		l.log.Debug("goal", "player", actor, "points", step.Points, "score", score,
			"clock", fmt.Sprintf("%02d:%02d", l.state.Time.Hour, l.state.Time.Minute))
	}
	if step.Reset {
		l.emit("ball", "ball", "reset", fmt.Sprintf("v=(%+.1f,%+.1f)", b.VX, b.VY), 0)
	}
}

func (l *Loop) emit(actor, category, key, value string, num float64) {
	e := Event{Frame: l.frame, Actor: actor, Category: category, Key: key, Value: value, NumVal: num}
	l.feed.Add(e)
	if l.events != nil {
		l.events.Add(e.Frame, e.Actor, e.Category, e.Key, e.Value, e.NumVal)
	}
}
