package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Garsondee/Clock-Pong/internal/pong"
)

type runStats struct {
	runIndex int
	seed     int64
	frames   int

	goalsP1     int
	goalsP2     int
	paddleHits  int
	wallBounces int
	resets      int
	modeChanges int

	rallies     []int
	maxSpeed    float64
	firstInSync int // frame the scores first matched the clock, -1 if never
	finalLag    int // hour - p1 + minute - p2 at the end of the run
	finalScore  pong.Scoreboard
	finalClock  pong.TimeOfDay
	simElapsed  time.Duration // simulated clock time covered by the run
	modeFrames  map[string]int
	lostAwards  int // goals whose award was zero or negative
}

type runOptions struct {
	frames    int
	profile   pong.Profile
	start     time.Time
	clockRate float64
	latch     bool
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var profile string
	var start string
	var clockRate float64
	var latch bool

	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.IntVar(&frames, "frames", 36000, "frames per match (60 per second)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&profile, "profile", "desktop", "speed profile: desktop or touch")
	flag.StringVar(&start, "start", "09:30:00", "simulated wall-clock time at frame zero (HH:MM:SS)")
	flag.Float64Var(&clockRate, "clock-rate", 1, "simulated clock seconds per frame second")
	flag.BoolVar(&latch, "latch-modes", false, "remember the last control mode between frames")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	p, err := parseProfile(profile)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	startAt, err := parseStart(start)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	opts := runOptions{frames: frames, profile: p, start: startAt, clockRate: clockRate, latch: latch}
	fmt.Printf("=== Headless Clock Pong Report ===\n")
	fmt.Printf("profile=%s runs=%d frames=%d start=%s clock_rate=%.1f latch=%v seed_base=%d seed_step=%d\n\n",
		p, runs, frames, startAt.Format("15:04:05"), clockRate, latch, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runMatch(i+1, seed, opts)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func parseProfile(s string) (pong.Profile, error) {
	switch strings.ToLower(s) {
	case "desktop":
		return pong.ProfileDesktop, nil
	case "touch", "mobile":
		return pong.ProfileTouch, nil
	}
	return 0, fmt.Errorf("unsupported profile %q (supported: desktop, touch)", s)
}

// parseStart reads HH:MM:SS as a time on an arbitrary fixed day.
func parseStart(s string) (time.Time, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad -start %q: %w", s, err)
	}
	return time.Date(2024, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.Local), nil
}

func runMatch(runIndex int, seed int64, o runOptions) runStats {
	ts := pong.NewTestSim(
		pong.WithSeed(seed),
		pong.WithProfile(o.profile),
		pong.WithClockStart(o.start),
		pong.WithClockRate(o.clockRate),
		pong.WithLatchedModes(o.latch),
	)

	rs := runStats{
		runIndex:    runIndex,
		seed:        seed,
		frames:      o.frames,
		firstInSync: -1,
		modeFrames:  map[string]int{},
	}
	for f := 1; f <= o.frames; f++ {
		ts.Step()
		st := ts.State()
		if st.Ball.Speed > rs.maxSpeed {
			rs.maxSpeed = st.Ball.Speed
		}
		if rs.firstInSync < 0 && st.Score.InSync(st.Time) {
			rs.firstInSync = f
		}
		for _, p := range st.Paddles() {
			rs.modeFrames[p.Label()+"/"+p.Mode.String()]++
		}
	}

	st := ts.State()
	rs.finalScore = st.Score
	rs.finalClock = st.Time
	rs.simElapsed = ts.Clock.Time().Sub(o.start)
	rs.finalLag = (st.Time.Hour - st.Score.Player1) + (st.Time.Minute - st.Score.Player2)

	for _, e := range ts.Events.Entries() {
		switch e.Category + "/" + e.Key {
		case "score/goal":
			if e.NumVal <= 0 {
				rs.lostAwards++
			}
		case "ball/paddle_hit":
			rs.paddleHits++
		case "ball/wall_bounce":
			rs.wallBounces++
		case "ball/reset":
			rs.resets++
		case "paddle/mode_change":
			rs.modeChanges++
		}
	}
	rs.goalsP1 = countGoals(ts.Events, "Player One")
	rs.goalsP2 = countGoals(ts.Events, "Player Two")
	rs.rallies = rallyLengths(ts.Events.Entries())
	return rs
}

// countGoals counts the goals attributed to player.
func countGoals(el *pong.EventLog, player string) int {
	n := 0
	for _, e := range el.FilterActor(player) {
		if e.Category == "score" && e.Key == "goal" {
			n++
		}
	}
	return n
}

// rallyLengths counts paddle hits between consecutive goals. Hits after the
// last goal are an unfinished rally and are dropped.
func rallyLengths(events []pong.Event) []int {
	var out []int
	hits := 0
	for _, e := range events {
		switch {
		case e.Category == "ball" && e.Key == "paddle_hit":
			hits++
		case e.Category == "score" && e.Key == "goal":
			out = append(out, hits)
			hits = 0
		}
	}
	return out
}

func printRun(rs runStats) {
	fmt.Printf("--- run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("clock=%02d:%02d:%02d elapsed=%s score=%02d:%02d lag=%d first_in_sync=%s\n",
		rs.finalClock.Hour, rs.finalClock.Minute, rs.finalClock.Second, rs.simElapsed.Round(time.Second),
		rs.finalScore.Player1, rs.finalScore.Player2, rs.finalLag, frameString(rs.firstInSync))
	fmt.Printf("goals: p1=%d p2=%d non_positive_awards=%d\n", rs.goalsP1, rs.goalsP2, rs.lostAwards)
	fmt.Printf("ball: paddle_hits=%d wall_bounces=%d resets=%d max_speed=%.2f\n",
		rs.paddleHits, rs.wallBounces, rs.resets, rs.maxSpeed)
	fmt.Printf("rallies: n=%d avg=%s longest=%d\n", len(rs.rallies), avgString(rs.rallies), maxInt(rs.rallies))
	fmt.Printf("modes: changes=%d usage=%s\n", rs.modeChanges, formatModeUsage(rs.modeFrames, rs.frames))
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalGoals := 0
	totalHits := 0
	totalBounces := 0
	totalModeChanges := 0
	syncFrames := make([]int, 0, len(all))
	lags := make([]int, 0, len(all))
	var rallies []int
	modeFrames := map[string]int{}
	framesTotal := 0

	for _, rs := range all {
		totalGoals += rs.goalsP1 + rs.goalsP2
		totalHits += rs.paddleHits
		totalBounces += rs.wallBounces
		totalModeChanges += rs.modeChanges
		if rs.firstInSync >= 0 {
			syncFrames = append(syncFrames, rs.firstInSync)
		}
		lags = append(lags, rs.finalLag)
		rallies = append(rallies, rs.rallies...)
		for k, v := range rs.modeFrames {
			modeFrames[k] += v
		}
		framesTotal += rs.frames
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_per_run: goals=%.1f paddle_hits=%.1f wall_bounces=%.1f mode_changes=%.1f\n",
		avg(totalGoals, len(all)), avg(totalHits, len(all)), avg(totalBounces, len(all)), avg(totalModeChanges, len(all)))
	fmt.Printf("convergence: runs_in_sync=%d/%d avg_first_sync_frame=%s avg_final_lag=%s\n",
		len(syncFrames), len(all), avgString(syncFrames), avgString(lags))
	fmt.Printf("rallies: n=%d avg=%s longest=%d\n", len(rallies), avgString(rallies), maxInt(rallies))
	fmt.Printf("mode_usage: %s\n", formatModeUsage(modeFrames, framesTotal))
}

// formatModeUsage prints each paddle/mode share of frames, sorted by key.
func formatModeUsage(counts map[string]int, frames int) string {
	if len(counts) == 0 || frames <= 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%.0f%%", k, float64(counts[k])/float64(frames)*100))
	}
	return strings.Join(parts, " ")
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func frameString(f int) string {
	if f < 0 {
		return "never"
	}
	return fmt.Sprintf("%d", f)
}

func maxInt(vals []int) int {
	best := 0
	for _, v := range vals {
		if v > best {
			best = v
		}
	}
	return best
}
