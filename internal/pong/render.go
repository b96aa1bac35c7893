package pong

import "image/color"

// Align is the horizontal anchor of a text run.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how DrawText lays out a string. Y is the baseline.
type TextStyle struct {
	Size   float64 // font size in logical pixels
	ScaleY float64 // vertical stretch; 0 means 1
	Align  Align
}

// Renderer is the drawing surface the loop paints each frame. Coordinates
// are logical canvas pixels.
type Renderer interface {
	DrawRect(x, y, w, h float64, c color.Color)
	DrawCircle(cx, cy, r float64, c color.Color)
	DrawText(s string, x, y float64, style TextStyle, c color.Color)
}

var (
	colorBackground = color.NRGBA{A: 255}
	colorForeground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorDimmed     = color.NRGBA{R: 128, G: 128, B: 128, A: 128}
	colorScrim      = color.NRGBA{A: 178}
	colorDebugText  = color.NRGBA{R: 255, G: 255, A: 255}
)

// dimRenderer greys out everything drawn through it. Debug mode routes the
// playfield through one so the overlay reads on top.
type dimRenderer struct {
	Renderer
}

func (d dimRenderer) DrawRect(x, y, w, h float64, _ color.Color) {
	d.Renderer.DrawRect(x, y, w, h, colorDimmed)
}

func (d dimRenderer) DrawCircle(cx, cy, r float64, _ color.Color) {
	d.Renderer.DrawCircle(cx, cy, r, colorDimmed)
}

func (d dimRenderer) DrawText(s string, x, y float64, style TextStyle, _ color.Color) {
	d.Renderer.DrawText(s, x, y, style, colorDimmed)
}

// DrawCall is one primitive captured by a RecordingRenderer.
type DrawCall struct {
	Kind  string // "rect", "circle" or "text"
	X, Y  float64
	W, H  float64 // rect size; circle radius in W
	Text  string
	Style TextStyle
	Color color.Color
}

// RecordingRenderer keeps every primitive it is asked to draw.
type RecordingRenderer struct {
	Calls []DrawCall
}

func (r *RecordingRenderer) DrawRect(x, y, w, h float64, c color.Color) {
	r.Calls = append(r.Calls, DrawCall{Kind: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *RecordingRenderer) DrawCircle(cx, cy, rad float64, c color.Color) {
	r.Calls = append(r.Calls, DrawCall{Kind: "circle", X: cx, Y: cy, W: rad, Color: c})
}

func (r *RecordingRenderer) DrawText(s string, x, y float64, style TextStyle, c color.Color) {
	r.Calls = append(r.Calls, DrawCall{Kind: "text", X: x, Y: y, Text: s, Style: style, Color: c})
}

// Texts returns the strings drawn, in order.
func (r *RecordingRenderer) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Kind == "text" {
			out = append(out, c.Text)
		}
	}
	return out
}

// Reset drops the recorded calls.
func (r *RecordingRenderer) Reset() { r.Calls = r.Calls[:0] }
