package pong

import (
	"math"
	"math/rand"
	"testing"
)

func newTestBall(cfg Config) *Ball {
	return NewBall(cfg, rand.New(rand.NewSource(7))) // #nosec G404 -- test
}

func TestBallReset_CentresWithLaunchSpeed(t *testing.T) {
	cfg := DefaultConfig(ProfileDesktop)
	b := newTestBall(cfg)
	for i := 0; i < 50; i++ {
		b.X, b.Y, b.Speed = 3, 4, 6.5
		b.Reset()
		if b.X != 400 || b.Y != 300 {
			t.Fatalf("reset should centre the ball, got (%.2f,%.2f)", b.X, b.Y)
		}
		if math.Abs(b.VX) != b.V0 || math.Abs(b.VY) != b.V0 {
			t.Fatalf("reset velocity should be ±v0 on both axes, got (%.2f,%.2f)", b.VX, b.VY)
		}
		if b.Speed != b.V0 {
			t.Fatalf("reset should restore speed to v0, got %.2f", b.Speed)
		}
	}
}

func TestBallReset_SignsAreIndependent(t *testing.T) {
	b := newTestBall(DefaultConfig(ProfileDesktop))
	seen := map[[2]bool]bool{}
	for i := 0; i < 200; i++ {
		b.Reset()
		seen[[2]bool{b.VX > 0, b.VY > 0}] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected all four serve directions over 200 resets, saw %d", len(seen))
	}
}

func TestBallUpdate_WallBounce(t *testing.T) {
	b := newTestBall(DefaultConfig(ProfileDesktop))
	sound := &SoundCounter{}
	sb := &Scoreboard{}

	b.X, b.Y, b.VX, b.VY = 400, 11, 2, -2
	step := b.Update(nil, sb, TimeOfDay{}, sound)
	if !step.WallBounce || sound.WallBounces != 1 {
		t.Fatalf("expected a top-wall bounce, step=%+v sound=%+v", step, sound)
	}
	if b.Y != b.Radius || b.VY != 2 {
		t.Fatalf("expected clamp to y=r and vy=+2, got y=%.2f vy=%.2f", b.Y, b.VY)
	}

	b.X, b.Y, b.VX, b.VY = 400, 589, 2, 2
	b.Update(nil, sb, TimeOfDay{}, sound)
	if b.Y != 600-b.Radius || b.VY != -2 {
		t.Fatalf("expected clamp to y=H-r and vy=-2, got y=%.2f vy=%.2f", b.Y, b.VY)
	}
	if sound.WallBounces != 2 {
		t.Fatalf("expected 2 bounce cues, got %d", sound.WallBounces)
	}
}

func TestBallUpdate_RightExitScoresPlayerOne(t *testing.T) {
	b := newTestBall(DefaultConfig(ProfileDesktop))
	sound := &SoundCounter{}
	sb := &Scoreboard{}
	tod := TimeOfDay{Hour: 14, Minute: 5}

	b.X, b.Y, b.VX, b.VY, b.Speed = 790, 300, 5, 0, 5
	var step BallStep
	for i := 0; i < 10 && step.Scorer == 0; i++ {
		step = b.Update(nil, sb, tod, sound)
		if step.Scorer == 0 && b.X-b.Radius > 800 {
			t.Fatalf("ball left the canvas at x=%.1f without scoring", b.X)
		}
	}
	if step.Scorer != 1 {
		t.Fatalf("expected player one to score, got %+v", step)
	}
	if want := Points(14 - 0); sb.Player1 != want || step.Points != want {
		t.Fatalf("expected player1=%d, got %d (step points %d)", want, sb.Player1, step.Points)
	}
	if sb.Player2 != 0 {
		t.Fatalf("player two should be untouched, got %d", sb.Player2)
	}
	if b.X != 400 || b.Y != 300 {
		t.Fatalf("expected reset to (400,300), got (%.1f,%.1f)", b.X, b.Y)
	}
	if sound.Scores != 1 {
		t.Fatalf("expected one score cue, got %d", sound.Scores)
	}
}

func TestBallUpdate_LeftExitScoresPlayerTwoAgainstMinute(t *testing.T) {
	b := newTestBall(DefaultConfig(ProfileDesktop))
	sb := &Scoreboard{Player2: 40}
	b.X, b.Y, b.VX, b.VY = -9, 300, -2, 0
	step := b.Update(nil, sb, TimeOfDay{Hour: 3, Minute: 37}, NopSound{})
	if step.Scorer != 2 {
		t.Fatalf("expected player two to score, got %+v", step)
	}
	// 37 - 40 = -3 → -3.
	if sb.Player2 != 37 {
		t.Fatalf("expected player two pulled back to 37, got %d", sb.Player2)
	}
}

func TestBallUpdate_DeadCentreHit(t *testing.T) {
	cfg := DefaultConfig(ProfileDesktop)
	b := newTestBall(cfg)
	right := NewPaddle(cfg, true)
	sound := &SoundCounter{}

	b.X, b.Y, b.VX, b.VY, b.Speed = 770, right.Y, 2, 0, 2
	step := b.Update([]*Paddle{right}, &Scoreboard{}, TimeOfDay{}, sound)
	if len(step.Hits) != 1 || sound.PaddleHits != 1 {
		t.Fatalf("expected one paddle hit, step=%+v", step)
	}
	if b.VY != 0 {
		t.Fatalf("dead-centre hit should leave vy=0, got %v", b.VY)
	}
	if b.VX != -2 {
		t.Fatalf("dead-centre hit off the right paddle should give vx=-speed, got %v", b.VX)
	}
	if math.Abs(b.Speed-2.15) > 1e-12 {
		t.Fatalf("expected speed to grow by the increment, got %v", b.Speed)
	}
}

func TestBallUpdate_EdgeHitAngle(t *testing.T) {
	cfg := DefaultConfig(ProfileDesktop)
	b := newTestBall(cfg)
	left := NewPaddle(cfg, false)

	// Ball strikes the bottom edge of the left paddle.
	b.X, b.Y, b.VX, b.VY, b.Speed = 36, left.Y+left.Height/2+2, -2, 0, 4
	b.Update([]*Paddle{left}, &Scoreboard{}, TimeOfDay{}, NopSound{})
	want := 4 * math.Sin(math.Pi/4)
	if math.Abs(b.VY-want) > 1e-9 || math.Abs(b.VX-4*math.Cos(math.Pi/4)) > 1e-9 {
		t.Fatalf("expected a 45° departure to the right, got (%.4f,%.4f)", b.VX, b.VY)
	}
}

func TestBallUpdate_SpeedNeverExceedsCap(t *testing.T) {
	cfg := DefaultConfig(ProfileDesktop)
	b := newTestBall(cfg)
	right := NewPaddle(cfg, true)
	for i := 0; i < 1000; i++ {
		b.X, b.Y, b.VX = 770, right.Y, math.Abs(b.VX)+0.01
		b.Update([]*Paddle{right}, &Scoreboard{}, TimeOfDay{}, NopSound{})
		if b.Speed > b.VMax {
			t.Fatalf("hit %d: speed %.3f exceeds cap %.3f", i, b.Speed, b.VMax)
		}
		if v := math.Hypot(b.VX, b.VY); v > b.VMax+1e-9 {
			t.Fatalf("hit %d: velocity magnitude %.3f exceeds cap", i, v)
		}
	}
	if b.Speed != b.VMax {
		t.Fatalf("after many hits speed should sit at the cap, got %.3f", b.Speed)
	}
}

func TestBallUpdate_ChecksEveryPaddle(t *testing.T) {
	cfg := DefaultConfig(ProfileDesktop)
	b := newTestBall(cfg)
	a := NewPaddle(cfg, true)
	c := NewPaddle(cfg, true)
	sound := &SoundCounter{}

	b.X, b.Y, b.VX, b.VY, b.Speed = 770, a.Y, 2, 0, 2
	step := b.Update([]*Paddle{a, c}, &Scoreboard{}, TimeOfDay{}, sound)
	if len(step.Hits) != 2 || sound.PaddleHits != 2 {
		t.Fatalf("expected both overlapping paddles to register, got %d hits", len(step.Hits))
	}
	// Second hit applies the already-grown speed.
	if math.Abs(b.VX+2.15) > 1e-12 {
		t.Fatalf("last applied hit should win, vx=%v", b.VX)
	}
}

func TestBallAdjustPosition_DegenerateCanvas(t *testing.T) {
	b := newTestBall(DefaultConfig(ProfileDesktop))
	b.AdjustPosition(0, -5)
	if b.X != 0.5 || b.Y != 0.5 {
		t.Fatalf("degenerate canvas should clamp to 1x1, got centre (%.2f,%.2f)", b.X, b.Y)
	}
}
