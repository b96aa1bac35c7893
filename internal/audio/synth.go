package audio

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// squareWave emits ±1 for a fixed number of samples.
type squareWave struct {
	step     float64 // phase advance per sample
	phase    float64
	position int
	length   int
}

// NewSquareWave returns a finite square-wave streamer for t at rate.
func NewSquareWave(t Tone, rate beep.SampleRate) beep.Streamer {
	return &squareWave{
		step:   t.Freq / float64(rate),
		length: rate.N(t.Duration),
	}
}

func (s *squareWave) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		v := -1.0
		if s.phase < 0.5 {
			v = 1.0
		}
		samples[i][0], samples[i][1] = v, v
		s.phase += s.step
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *squareWave) Err() error { return nil }

// withGain scales s linearly. Zero or negative gain is silence.
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// NewCueStreamer builds the streamer for c at the given linear gain.
func NewCueStreamer(c Cue, gain float64) beep.Streamer {
	return withGain(NewSquareWave(c.Tone(), SampleRate), gain)
}

const bytesPerFrame = 4 // two int16 channels

// RenderPCM drains s into 16-bit little-endian stereo PCM. Samples outside
// [-1, 1] are clipped.
func RenderPCM(s beep.Streamer) ([]byte, error) {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			var b [bytesPerFrame]byte
			binary.LittleEndian.PutUint16(b[0:], uint16(toInt16(frame[0])))
			binary.LittleEndian.PutUint16(b[2:], uint16(toInt16(frame[1])))
			out = append(out, b[:]...)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("audio: render: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
