package pong

import (
	"image/color"
	"math"
)

// trailWindowMillis is how long a trail sample survives, independent of the
// heat-derived fade constant.
const trailWindowMillis = 200.0

// TrailSample is one remembered ball position.
type TrailSample struct {
	X, Y float64
	Age  float64 // milliseconds since the sample was taken
}

// TrailBuffer is a sliding window of recent ball positions, oldest first.
type TrailBuffer struct {
	samples []TrailSample
}

// Advance ages every sample by dtMillis, records (x, y) as a fresh sample and
// drops everything that has reached the trail window.
func (tb *TrailBuffer) Advance(dtMillis, x, y float64) {
	if dtMillis < 0 {
		dtMillis = 0
	}
	for i := range tb.samples {
		tb.samples[i].Age += dtMillis
	}
	tb.samples = append(tb.samples, TrailSample{X: x, Y: y})

	kept := tb.samples[:0]
	for _, s := range tb.samples {
		if s.Age < trailWindowMillis {
			kept = append(kept, s)
		}
	}
	tb.samples = kept
}

// Samples returns the live samples in chronological order. The slice is only
// valid until the next Advance.
func (tb *TrailBuffer) Samples() []TrailSample { return tb.samples }

// Len reports how many samples are live.
func (tb *TrailBuffer) Len() int { return len(tb.samples) }

// Clear forgets every sample.
func (tb *TrailBuffer) Clear() { tb.samples = tb.samples[:0] }

// TrailColor is the render colour of s under heat h: the hot colour blends
// linearly toward white across the window while alpha decays as exp(-age/tau).
func TrailColor(s TrailSample, h Heat) color.NRGBA {
	fade := 1.0
	if h.Tau > 0 {
		fade = math.Exp(-s.Age / h.Tau)
	}
	mix := clamp(s.Age/trailWindowMillis, 0, 1)
	blend := func(hot, cool uint8) uint8 {
		return uint8(math.Round(float64(hot)*(1-mix) + float64(cool)*mix))
	}
	return color.NRGBA{
		R: blend(h.RGB.R, coolColor.R),
		G: blend(h.RGB.G, coolColor.G),
		B: blend(h.RGB.B, coolColor.B),
		A: uint8(math.Round(clamp(fade, 0, 1) * 255)),
	}
}
