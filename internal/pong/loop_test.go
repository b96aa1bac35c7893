package pong

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"testing"
	"time"
)

func TestNewLoop_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig(ProfileDesktop)
	cfg.BallSpeedCap = 1
	if _, err := NewLoop(cfg, FixedClock{}, nil); err == nil {
		t.Fatal("expected an error for a cap below the launch speed")
	}
}

func TestLoopStep_UpdatesHeatAndTrail(t *testing.T) {
	ts := NewTestSim(WithSeed(2))
	ts.RunFrames(5)
	st := ts.State()
	if st.Trail.Len() != 5 {
		t.Fatalf("expected 5 trail samples after 5 frames, got %d", st.Trail.Len())
	}
	last := st.Trail.Samples()[st.Trail.Len()-1]
	if last.X != st.Ball.X || last.Y != st.Ball.Y || last.Age != 0 {
		t.Fatalf("newest trail sample should sit on the ball, got %+v vs (%.2f,%.2f)", last, st.Ball.X, st.Ball.Y)
	}
	if st.Heat.Theta != 0 {
		t.Fatalf("a freshly served ball should be cold, got theta %.3f", st.Heat.Theta)
	}
}

func TestLoopStep_RightExitScenario(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 30, 0, 0, time.Local)
	ts := NewTestSim(
		WithClockStart(start),
		WithBall(790, 300, 5, 0, 5),
		WithPaddleY(100, 100), // keep both paddles out of the ball's row
	)
	frame := ts.RunUntil(func(ts *TestSim) bool { return ts.Sound.Scores > 0 }, 10)
	if frame < 0 {
		t.Fatal("ball never left the right side")
	}
	st := ts.State()
	if st.Score.Player1 != Points(9) {
		t.Fatalf("expected player one to gain Points(9)=%d, got %d", Points(9), st.Score.Player1)
	}
	goal, ok := ts.Events.LastOf("score", "goal")
	if !ok || goal.Actor != "Player One" {
		t.Fatalf("expected a goal event for player one, got %+v", goal)
	}
	if ts.Events.Count("ball", "reset") == 0 {
		t.Fatal("expected a reset event after the goal")
	}
}

func TestLoopStep_PaddlesTrackTheBall(t *testing.T) {
	ts := NewTestSim(WithSeed(4), WithBall(400, 100, 2, 2, 2), WithPaddleY(500, 500))
	ts.RunFrames(120)
	st := ts.State()
	if st.Right.Y == 500 && st.Left.Y == 500 {
		t.Fatal("at least one paddle should have been steered")
	}
}

func TestLoopOnResize_RepositionsEntities(t *testing.T) {
	ts := NewTestSim(WithSeed(3))
	ts.RunFrames(30)
	ts.Loop.OnResize(1000, 500)
	st := ts.State()
	if st.Ball.X != 500 || st.Ball.Y != 250 {
		t.Fatalf("ball should re-serve from the new centre, got (%.1f,%.1f)", st.Ball.X, st.Ball.Y)
	}
	if st.Right.X != 982.5 || st.Left.X != 17.5 {
		t.Fatalf("paddles should re-anchor, got left=%.1f right=%.1f", st.Left.X, st.Right.X)
	}
	if ts.Events.Count("canvas", "resize") != 1 {
		t.Fatal("expected a resize event")
	}
	if st.Trail.Len() != 0 {
		t.Fatalf("trail should be dropped on resize, got %d samples", st.Trail.Len())
	}
}

func TestLoopOnResize_ShrinkKeepsPaddlesOnCanvas(t *testing.T) {
	ts := NewTestSim(WithBall(400, 100, 2, 0, 2), WithPaddleY(500, 500))
	ts.Loop.OnResize(800, 300)

	check := func(when string) {
		for _, p := range ts.State().Paddles() {
			if p.Y < PaddleHeight/2 || p.Y > 300-PaddleHeight/2 {
				t.Fatalf("%s: %s at y=%.1f is off a 300px canvas", when, p.Label(), p.Y)
			}
		}
	}
	check("after resize")
	for i := 0; i < 30; i++ {
		ts.Step()
		check(fmt.Sprintf("frame %d", i))
	}
}

func TestLoopOnResize_DegenerateCanvas(t *testing.T) {
	ts := NewTestSim()
	ts.Loop.OnResize(0, 0)
	ts.RunFrames(10)
	st := ts.State()
	if st.Width != 1 || st.Height != 1 {
		t.Fatalf("expected a 1x1 clamp, got %.0fx%.0f", st.Width, st.Height)
	}
	for _, v := range []float64{st.Ball.X, st.Ball.Y, st.Left.Y, st.Right.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("state went non-finite on a degenerate canvas: %+v", st)
		}
	}
}

func TestLoopDraw_Order(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithScores(7, 3))
	ts.RunFrames(3)
	var rec RecordingRenderer
	ts.Loop.Draw(&rec)

	if len(rec.Calls) == 0 {
		t.Fatal("nothing drawn")
	}
	bg := rec.Calls[0]
	if bg.Kind != "rect" || bg.W != 800 || bg.H != 600 {
		t.Fatalf("first primitive should be the background, got %+v", bg)
	}
	texts := rec.Texts()
	if len(texts) < 2 || texts[0] != "07" || texts[1] != "03" {
		t.Fatalf("expected zero-padded scores first, got %v", texts)
	}

	circle, lastTrail := -1, -1
	for i, c := range rec.Calls {
		if c.Kind == "circle" {
			circle = i
		}
		if c.Kind == "rect" && c.W == 20 && c.H == 20 {
			lastTrail = i
		}
	}
	if circle < 0 || lastTrail < 0 || lastTrail > circle {
		t.Fatalf("trail must be drawn before the ball (trail=%d ball=%d)", lastTrail, circle)
	}
	paddles := 0
	for _, c := range rec.Calls[circle+1:] {
		if c.Kind == "rect" && c.W == PaddleWidth && c.H == PaddleHeight {
			paddles++
		}
	}
	if paddles != 2 {
		t.Fatalf("expected both paddles after the ball, got %d", paddles)
	}
}

func TestLoopDraw_SyncingBannerBlinks(t *testing.T) {
	odd := NewTestSim(WithClockStart(time.Date(2024, 1, 1, 10, 30, 1, 0, time.Local)), WithClockRate(0))
	odd.Step()
	var rec RecordingRenderer
	odd.Loop.Draw(&rec)
	if !contains(rec.Texts(), "SYNCING") {
		t.Fatalf("expected the banner on an odd second while behind, got %v", rec.Texts())
	}

	even := NewTestSim(WithClockStart(time.Date(2024, 1, 1, 10, 30, 2, 0, time.Local)), WithClockRate(0))
	even.Step()
	rec.Reset()
	even.Loop.Draw(&rec)
	if contains(rec.Texts(), "SYNCING") {
		t.Fatal("banner should be hidden on even seconds")
	}
}

func TestLoopDraw_DebugDimsAndOverlays(t *testing.T) {
	ts := NewTestSim()
	ts.Step()
	if !ts.Loop.ToggleDebug() {
		t.Fatal("ToggleDebug should report debug on")
	}
	var rec RecordingRenderer
	ts.Loop.Draw(&rec)

	if rec.Calls[0].Color != color.Color(colorBackground) {
		t.Fatalf("background should stay black in debug mode, got %v", rec.Calls[0].Color)
	}
	if rec.Calls[1].Color != color.Color(colorDimmed) {
		t.Fatalf("playfield should be dimmed in debug mode, got %v", rec.Calls[1].Color)
	}
	texts := strings.Join(rec.Texts(), "\n")
	for _, want := range []string{"Ball Speed: 2", "Player One Speed: 8.00", "Actual Display Resolution: N/A"} {
		if !strings.Contains(texts, want) {
			t.Fatalf("overlay missing %q:\n%s", want, texts)
		}
	}
}

func TestDebugLines_MissingEntitiesReadNA(t *testing.T) {
	lines := append(ballLines(nil), paddleLines("Player Two", nil)...)
	for _, l := range lines {
		if !strings.Contains(l, "N/A") {
			t.Fatalf("expected N/A in %q", l)
		}
	}
}

func TestDebugReport_IncludesRecentEvents(t *testing.T) {
	ts := NewTestSim(WithBall(400, 11, 2, -2, 2))
	ts.Loop.SetDisplaySize(1024, 768)
	ts.Step()
	report := ts.Loop.DebugReport()
	for _, want := range []string{"Actual Display Resolution: 1024x768", "wall_bounce"} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func contains(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
