package pong

import (
	"fmt"
	"strings"
)

// DebugLines is the overlay text for the current frame. Anything missing
// from the state reads "N/A" rather than being skipped.
func (l *Loop) DebugLines() []string {
	st := l.state
	lines := []string{
		fmt.Sprintf("Detected: %s Browser", l.cfg.Profile),
		fmt.Sprintf("Logical Canvas Resolution: %.0fx%.0f", st.Width, st.Height),
		fmt.Sprintf("Actual Display Resolution: %s", sizeOrNA(l.displayW, l.displayH)),
	}
	lines = append(lines, ballLines(st.Ball)...)
	lines = append(lines, paddleLines("Player One", st.Left)...)
	lines = append(lines, paddleLines("Player Two", st.Right)...)
	return lines
}

func ballLines(b *Ball) []string {
	if b == nil {
		return []string{
			"Ball Speed: N/A",
			"Ball Speed Increment: N/A",
			"Ball Position: (N/A, N/A)",
			"Ball Velocity: (N/A, N/A)",
		}
	}
	return []string{
		fmt.Sprintf("Ball Speed: %g", b.Speed),
		fmt.Sprintf("Ball Speed Increment: %g", b.SpeedIncrement),
		fmt.Sprintf("Ball Position: (%.2f, %.2f)", b.X, b.Y),
		fmt.Sprintf("Ball Velocity: (%.2f, %.2f)", b.VX, b.VY),
	}
}

func paddleLines(name string, p *Paddle) []string {
	if p == nil {
		return []string{
			name + " Position: (N/A, N/A)",
			name + " Speed: N/A",
			name + " Speed Increment: N/A",
		}
	}
	return []string{
		fmt.Sprintf("%s Position: (%.2f, %.2f)", name, p.X, p.Y),
		fmt.Sprintf("%s Speed: %.2f", name, p.Speed),
		fmt.Sprintf("%s Speed Increment: %.2f", name, p.SpeedIncrement),
	}
}

func sizeOrNA(w, h int) string {
	if w <= 0 || h <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dx%d", w, h)
}

// statusLines is the compact right-hand column: clock, modes and heat.
func (l *Loop) statusLines() []string {
	st := l.state
	lines := []string{
		fmt.Sprintf("frame %d  clock %02d:%02d:%02d", l.frame, st.Time.Hour, st.Time.Minute, st.Time.Second),
		fmt.Sprintf("heat θ=%.2f T=%.0f τ=%.0fms trail=%d", st.Heat.Theta, st.Heat.T, st.Heat.Tau, st.Trail.Len()),
	}
	for _, p := range st.Paddles() {
		if p == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s mode=%s jitter=%+.1f", p.Label(), p.Mode, p.TargetY))
	}
	return lines
}

// DebugReport is a plain-text snapshot of the overlay plus the recent event
// feed, suitable for pasting into a bug report.
func (l *Loop) DebugReport() string {
	var b strings.Builder
	b.WriteString("--- Clock Pong debug report ---\n")
	for _, line := range l.DebugLines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, line := range l.statusLines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	recent := l.feed.Recent()
	if len(recent) == 0 {
		b.WriteString("(no events recorded yet)\n")
		return b.String()
	}
	b.WriteString("\nrecent events:\n")
	b.WriteString(Format(recent))
	return b.String()
}
