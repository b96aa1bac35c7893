package pong

import (
	"image/color"
	"math"
)

// Heat model tuning. The ball starts glowing once it travels faster than
// heatStartFactor × its launch speed.
const (
	heatStartFactor   = 1.5
	frictionHeatCoeff = 2.0
	heatTmin          = 900.0
	heatTmax          = 3000.0
	trailBaseMillis   = 70.0
	trailSkew         = 5.0
)

// coolColor is what a trail sample fades toward as it ages.
var coolColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

type blackBodyStop struct {
	T   float64
	rgb [3]uint8
}

// blackBodyLUT is a coarse incandescence ramp, orange through blue-white.
var blackBodyLUT = [...]blackBodyStop{
	{T: 900, rgb: [3]uint8{255, 85, 0}},
	{T: 1500, rgb: [3]uint8{255, 215, 0}},
	{T: 2200, rgb: [3]uint8{255, 239, 231}},
	{T: 2600, rgb: [3]uint8{214, 239, 255}},
	{T: 3000, rgb: [3]uint8{155, 214, 255}},
}

// Heat is the glow state derived from the ball's instantaneous speed.
type Heat struct {
	Theta float64     // normalised heating in [0,1]
	T     float64     // colour temperature in kelvin-ish units, [heatTmin, heatTmax]
	RGB   color.NRGBA // opaque ball colour at T
	Tau   float64     // trail fade time constant in milliseconds
}

// SampleBlackBody linearly interpolates the black-body table at T. Readings
// outside the table clamp to the end stops.
func SampleBlackBody(T float64) color.NRGBA {
	first := blackBodyLUT[0]
	if T <= first.T {
		return stopColor(first.rgb)
	}
	for i := 0; i < len(blackBodyLUT)-1; i++ {
		a, b := blackBodyLUT[i], blackBodyLUT[i+1]
		if T <= b.T {
			t := (T - a.T) / (b.T - a.T)
			return color.NRGBA{
				R: lerpChannel(a.rgb[0], b.rgb[0], t),
				G: lerpChannel(a.rgb[1], b.rgb[1], t),
				B: lerpChannel(a.rgb[2], b.rgb[2], t),
				A: 255,
			}
		}
	}
	return stopColor(blackBodyLUT[len(blackBodyLUT)-1].rgb)
}

// ComputeHeat maps a speed to its glow. v0 is the ball's launch speed and
// vMax its cap; at or below 1.5·v0 there is no heating at all.
func ComputeHeat(speed, v0, vMax float64) Heat {
	threshold := heatStartFactor * v0
	excess := math.Max(0, math.Abs(speed)-threshold)
	norm := 0.0
	if span := vMax - threshold; span > 0 {
		norm = clamp(excess/span, 0, 1)
	}
	theta := math.Pow(norm, frictionHeatCoeff)
	T := heatTmin + (heatTmax-heatTmin)*theta
	return Heat{
		Theta: theta,
		T:     T,
		RGB:   SampleBlackBody(T),
		Tau:   trailBaseMillis / (1 + trailSkew*theta),
	}
}

// BallHeat is ComputeHeat for the ball's current velocity vector.
func BallHeat(b *Ball) Heat {
	return ComputeHeat(math.Hypot(b.VX, b.VY), b.V0, b.VMax)
}

func stopColor(rgb [3]uint8) color.NRGBA {
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
}
