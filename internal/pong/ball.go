package pong

import (
	"math"
	"math/rand"
)

// maxBounceAngle is the steepest departure angle off a paddle edge.
const maxBounceAngle = math.Pi / 4

// Ball is the single moving body. Speed grows on each paddle hit up to VMax
// and drops back to V0 on every reset.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64

	V0             float64
	Speed          float64
	SpeedIncrement float64
	VMax           float64

	canvasW, canvasH float64
	rng              *rand.Rand
}

// BallStep summarises what happened during one Ball.Update.
type BallStep struct {
	WallBounce bool
	Hits       []*Paddle // paddles struck this frame, in check order
	Scorer     int       // 0 = no goal, 1 = left player, 2 = right player
	Points     int       // points applied to Scorer
	Reset      bool
}

// NewBall creates a ball for a canvas of the given size and serves it.
func NewBall(cfg Config, rng *rand.Rand) *Ball {
	b := &Ball{
		Radius:         BallRadius,
		V0:             cfg.BallSpeed,
		Speed:          cfg.BallSpeed,
		SpeedIncrement: cfg.BallSpeedIncrement,
		VMax:           cfg.BallSpeedCap,
		rng:            rng,
	}
	b.AdjustPosition(cfg.Width, cfg.Height)
	return b
}

// AdjustPosition adopts new canvas dimensions and re-serves from the centre.
func (b *Ball) AdjustPosition(w, h float64) {
	b.canvasW, b.canvasH = sanitizeDim(w), sanitizeDim(h)
	b.Reset()
}

// Reset puts the ball back at the centre with ±V0 on each axis, the signs
// chosen independently.
func (b *Ball) Reset() {
	b.X = b.canvasW / 2
	b.Y = b.canvasH / 2
	b.Speed = b.V0
	b.VX = b.V0 * b.randomSign()
	b.VY = b.V0 * b.randomSign()
}

func (b *Ball) randomSign() float64 {
	if b.rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

// Update advances the ball one frame: move, bounce off the top and bottom,
// score and re-serve on a side exit, then test every paddle. All paddles are
// checked even after a hit, so with overlapping paddles the last one wins.
func (b *Ball) Update(paddles []*Paddle, sb *Scoreboard, tod TimeOfDay, sound SoundEmitter) BallStep {
	var step BallStep

	b.X += b.VX
	b.Y += b.VY

	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.VY = math.Abs(b.VY)
		step.WallBounce = true
		sound.WallBounce()
	} else if b.Y+b.Radius > b.canvasH {
		b.Y = b.canvasH - b.Radius
		b.VY = -math.Abs(b.VY)
		step.WallBounce = true
		sound.WallBounce()
	}

	if b.X+b.Radius < 0 {
		step.Scorer = 2
		step.Points = sb.AwardPlayer2(tod.Minute)
		sound.Score()
		b.Reset()
		step.Reset = true
	} else if b.X-b.Radius > b.canvasW {
		step.Scorer = 1
		step.Points = sb.AwardPlayer1(tod.Hour)
		sound.Score()
		b.Reset()
		step.Reset = true
	}

	for _, p := range paddles {
		if !b.overlaps(p) {
			continue
		}
		b.deflect(p)
		step.Hits = append(step.Hits, p)
		sound.PaddleHit()
	}

	if b.outOfBounds() {
		b.Reset()
		step.Reset = true
	}
	return step
}

// overlaps is a box test of the ball's bounding square against the paddle.
func (b *Ball) overlaps(p *Paddle) bool {
	left, right, top, bottom := p.Bounds()
	return b.X-b.Radius < right &&
		b.X+b.Radius > left &&
		b.Y+b.Radius > top &&
		b.Y-b.Radius < bottom
}

// deflect sends the ball back off p at an angle set by where it struck.
func (b *Ball) deflect(p *Paddle) {
	angle := b.CollidePoint(p) * maxBounceAngle
	dir := 1.0
	if p.X > b.canvasW/2 {
		dir = -1
	}
	b.VX = dir * b.Speed * math.Cos(angle)
	b.VY = b.Speed * math.Sin(angle)
	b.Speed = math.Min(b.Speed+b.SpeedIncrement, b.VMax)
}

// CollidePoint is the normalised offset of the ball from p's centre, clamped
// to [-1, 1]: -1 at the top edge, 0 dead centre, 1 at the bottom edge.
func (b *Ball) CollidePoint(p *Paddle) float64 {
	return clamp((b.Y-p.Y)/(p.Height/2), -1, 1)
}

func (b *Ball) outOfBounds() bool {
	return b.X+b.Radius < 0 || b.X-b.Radius > b.canvasW
}

// HeadingRight reports whether the ball is travelling toward the right paddle.
func (b *Ball) HeadingRight() bool { return b.VX > 0 }

// sanitizeDim keeps canvas dimensions usable as divisors and midpoints.
func sanitizeDim(v float64) float64 {
	if math.IsNaN(v) || v < 1 {
		return 1
	}
	return v
}
