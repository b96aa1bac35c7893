package pong

import (
	"fmt"
	"image/color"
)

// Layout of the painted field, in logical pixels.
const (
	netBoxSize    = 10.0
	scoreFontSize = 70.0
	scoreStretch  = 1.8
	scoreBaseline = 80.0 // before stretching
	syncFontSize  = 80.0
)

// Draw paints the current frame: background, net, scores, trail, ball,
// paddles, then the sync banner and, in debug mode, the info overlay.
func (l *Loop) Draw(r Renderer) {
	field := r
	if l.debug {
		field = dimRenderer{r}
	}
	st := l.state

	r.DrawRect(0, 0, st.Width, st.Height, colorBackground)
	drawNet(field, st.Width, st.Height)
	drawScores(field, st)

	radius := st.Ball.Radius
	for _, s := range st.Trail.Samples() {
		field.DrawRect(s.X-radius, s.Y-radius, radius*2, radius*2, TrailColor(s, st.Heat))
	}
	field.DrawCircle(st.Ball.X, st.Ball.Y, radius, st.Heat.RGB)

	for _, p := range st.Paddles() {
		left, _, top, _ := p.Bounds()
		field.DrawRect(left, top, p.Width, p.Height, colorForeground)
	}

	if st.Score.Syncing(st.Time) && st.Time.Second%2 != 0 {
		field.DrawText("SYNCING", st.Width/2, st.Height/2+50,
			TextStyle{Size: syncFontSize, Align: AlignCenter}, colorForeground)
	}

	if l.debug {
		l.drawDebug(r)
	}
}

func drawNet(r Renderer, w, h float64) {
	boxes := int(h / (netBoxSize * 2))
	for i := 0; i < boxes; i++ {
		r.DrawRect(w/2-netBoxSize/2, float64(i)*netBoxSize*2, netBoxSize, netBoxSize, colorForeground)
	}
}

func drawScores(r Renderer, st *GameState) {
	style := TextStyle{Size: scoreFontSize, ScaleY: scoreStretch, Align: AlignCenter}
	y := scoreBaseline * scoreStretch
	r.DrawText(fmt.Sprintf("%02d", st.Score.Player1), st.Width*0.29, y, style, colorForeground)
	r.DrawText(fmt.Sprintf("%02d", st.Score.Player2), st.Width*0.74, y, style, colorForeground)
}

// Debug overlay typography.
const (
	debugMargin    = 40.0
	debugFontSize  = 17.0
	debugStretch   = 1.5
	debugLineStart = 36.0 // baseline of the first line after stretching
	debugLineStep  = 42.0
	feedFontSize   = 11.0
	feedLineStep   = 14.0
)

func (l *Loop) drawDebug(r Renderer) {
	st := l.state
	r.DrawRect(0, 0, st.Width, st.Height, colorScrim)

	style := TextStyle{Size: debugFontSize, ScaleY: debugStretch, Align: AlignLeft}
	for i, line := range l.DebugLines() {
		r.DrawText(line, debugMargin, debugLineStart+float64(i)*debugLineStep, style, colorDebugText)
	}

	side := TextStyle{Size: feedFontSize, Align: AlignRight}
	x := st.Width - debugMargin/2
	y := debugLineStart
	for _, line := range l.statusLines() {
		r.DrawText(line, x, y, side, colorDebugText)
		y += feedLineStep
	}
	y += feedLineStep
	for _, e := range l.feed.Recent() {
		r.DrawText(fmt.Sprintf("%s %s %s", e.Actor, e.Key, e.Value), x, y, side, color.NRGBA{R: 200, G: 200, B: 160, A: 255})
		y += feedLineStep
	}
}
