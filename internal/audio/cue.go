// Package audio synthesises the game's sound cues. Tones are built as beep
// streamers and rendered once to 16-bit little-endian stereo PCM, the format
// ebiten's audio players consume.
package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the rate every cue is rendered at.
const SampleRate beep.SampleRate = 44100

// Cue identifies one of the game's sound effects.
type Cue int

const (
	CuePaddleHit Cue = iota
	CueWallBounce
	CueScore
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CuePaddleHit:
		return "paddle_hit"
	case CueWallBounce:
		return "wall_bounce"
	case CueScore:
		return "score"
	default:
		return "unknown"
	}
}

// Tone is a fixed-pitch square-wave blip.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Tone returns the pitch and length used for c.
func (c Cue) Tone() Tone {
	switch c {
	case CuePaddleHit:
		return Tone{Freq: 440, Duration: 10 * time.Millisecond}
	case CueWallBounce:
		return Tone{Freq: 100, Duration: 10 * time.Millisecond}
	case CueScore:
		return Tone{Freq: 40, Duration: 250 * time.Millisecond}
	default:
		return Tone{}
	}
}

// Cues lists every cue in declaration order.
func Cues() []Cue {
	out := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		out = append(out, c)
	}
	return out
}
