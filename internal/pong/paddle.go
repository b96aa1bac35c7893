package pong

import (
	"math"
	"math/rand"
)

// ControlMode is the autonomous steering variant of a paddle.
type ControlMode int

const (
	ModeNormal        ControlMode = iota // steer straight at the predicted crossing
	ModeMirroredRight                    // mirror the target when steering the right paddle
	ModeMirroredLeft                     // mirror the target when steering the left paddle
)

func (m ControlMode) String() string {
	switch m {
	case ModeMirroredRight:
		return "mirrored-right"
	case ModeMirroredLeft:
		return "mirrored-left"
	default:
		return "normal"
	}
}

// Paddle is one of the two bats. X is fixed by its side; Y moves.
type Paddle struct {
	X, Y           float64
	Width, Height  float64
	Speed          float64
	SpeedIncrement float64
	IsRight        bool

	Mode     ControlMode
	LastMode ControlMode

	// TargetY is the random offset from the predicted crossing this paddle
	// aims for, so it does not always meet the ball dead centre.
	TargetY float64

	TrackDistanceX float64
	TrackDistanceY float64

	latchMode     bool
	lastDirection int // +1 right, -1 left, 0 before the first prediction
	canvasH       float64
}

// NewPaddle creates a paddle on the chosen side, vertically centred.
func NewPaddle(cfg Config, isRight bool) *Paddle {
	p := &Paddle{
		Width:          PaddleWidth,
		Height:         PaddleHeight,
		Speed:          cfg.PaddleSpeed,
		SpeedIncrement: cfg.PaddleSpeedIncrement,
		IsRight:        isRight,
		TrackDistanceX: cfg.TrackDistanceX,
		TrackDistanceY: cfg.TrackDistanceY,
		latchMode:      cfg.LatchControlMode,
	}
	p.AdjustPosition(cfg.Width, cfg.Height)
	p.Y = p.canvasH / 2
	return p
}

// Label names the paddle for logs and the debug overlay.
func (p *Paddle) Label() string {
	if p.IsRight {
		return "Player Two"
	}
	return "Player One"
}

// AdjustPosition re-anchors the paddle to its side of a resized canvas. The
// vertical position is kept unless the new height would leave the paddle
// hanging off the canvas.
func (p *Paddle) AdjustPosition(w, h float64) {
	w, h = sanitizeDim(w), sanitizeDim(h)
	p.canvasH = h
	if p.IsRight {
		p.X = w - p.Width/2 - paddleInset
	} else {
		p.X = p.Width/2 + paddleInset
	}
	p.clampY()
}

// Bounds returns the paddle's left, right, top and bottom edges.
func (p *Paddle) Bounds() (left, right, top, bottom float64) {
	return p.X - p.Width/2, p.X + p.Width/2, p.Y - p.Height/2, p.Y + p.Height/2
}

// MoveToPosition steps toward target by at most Speed, landing on it when
// close enough, and keeps the paddle fully on the canvas.
func (p *Paddle) MoveToPosition(target float64) {
	switch d := target - p.Y; {
	case d > p.Speed:
		p.Y += p.Speed
	case d < -p.Speed:
		p.Y -= p.Speed
	default:
		p.Y = target
	}
	p.clampY()
}

// clampY keeps the paddle fully on the canvas.
func (p *Paddle) clampY() {
	p.Y = math.Max(p.Y, p.Height/2)
	p.Y = math.Min(p.Y, p.canvasH-p.Height/2)
}

// UpdateControlMode picks the steering variant from the clock and scores.
// Mode 1 kicks in during the last five seconds of an hour or whenever the
// hour and player 1's score disagree; mode 2 takes over whenever the minute
// and player 2's score disagree.
//
// Without latching the remembered LastMode never changes, so once the minute
// is out of sync mode 2 wins every frame. With latching a paddle that was in
// mode 2 yields to mode 1 on the next evaluation, alternating while both
// conditions hold.
func (p *Paddle) UpdateControlMode(tod TimeOfDay, score1, score2 int) {
	p.Mode = ModeNormal
	if (tod.Minute == 59 && tod.Second >= 55) || tod.Hour != score1 {
		p.Mode = ModeMirroredRight
	}
	if (tod.Minute > score2 && tod.Second >= 55) || tod.Minute != score2 {
		if p.Mode == ModeMirroredRight && p.LastMode == ModeMirroredLeft {
			p.Mode = ModeMirroredRight
			if p.latchMode {
				p.LastMode = ModeMirroredRight
			}
		} else {
			p.Mode = ModeMirroredLeft
			if p.latchMode {
				p.LastMode = ModeMirroredLeft
			}
		}
	}
}

// ResolveOpponentTarget runs self's prediction and steers opponent, the
// paddle the ball is heading for, toward where the ball will arrive. Self
// only moves itself in the near-field case, when the ball is about to pass
// it and a direct lunge is the only chance.
func ResolveOpponentTarget(self, opponent *Paddle, ball *Ball, canvasW float64, rng *rand.Rand) {
	if ball.VX == 0 {
		return
	}

	distX := math.Abs(ball.X - self.X)
	distY := math.Abs(ball.Y - self.Y)
	if distX < self.TrackDistanceX && distY > self.TrackDistanceY {
		self.MoveToPosition(ball.Y + (self.X-ball.X)*(ball.VY/ball.VX))
		return
	}

	dir := -1
	if ball.HeadingRight() {
		dir = 1
	}
	if self.lastDirection != dir {
		self.lastDirection = dir
		self.Speed += self.SpeedIncrement
		span := opponent.Height * 0.9
		opponent.TargetY = rng.Float64()*span - span/2 + opponent.Height*0.05
	}

	blockY := predictCrossingY(ball, self.X, canvasW, self.canvasH)
	if (self.Mode == ModeMirroredRight && opponent.IsRight) ||
		(self.Mode == ModeMirroredLeft && !opponent.IsRight) {
		blockY = self.canvasH - blockY
	}
	opponent.MoveToPosition(blockY - opponent.TargetY)
}

// predictCrossingY marches the ball one pixel at a time along x, reflecting
// off the top and bottom, until it reaches stopX or leaves the canvas, and
// returns its y there.
func predictCrossingY(ball *Ball, stopX, canvasW, canvasH float64) float64 {
	x, y, vy := ball.X, ball.Y, ball.VY
	dx := 1.0
	if ball.VX < 0 {
		dx = -1
	}
	slope := 1 / math.Abs(ball.VX)
	startSide := math.Signbit(x - stopX)
	for x > 0 && x < canvasW && x != stopX {
		x += dx
		y += vy * slope
		if y < 0 || y > canvasH {
			vy = -vy
			y += vy * slope
		}
		if math.Signbit(x-stopX) != startSide {
			break
		}
	}
	return y
}
