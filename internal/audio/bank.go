package audio

import "fmt"

// DefaultGain keeps the raw square waves from clipping the mix.
const DefaultGain = 0.25

// Bank holds the pre-rendered PCM for every cue.
type Bank struct {
	pcm [cueCount][]byte
}

// NewBank renders every cue at gain.
func NewBank(gain float64) (*Bank, error) {
	b := &Bank{}
	for _, c := range Cues() {
		pcm, err := RenderPCM(NewCueStreamer(c, gain))
		if err != nil {
			return nil, fmt.Errorf("audio: cue %s: %w", c, err)
		}
		b.pcm[c] = pcm
	}
	return b, nil
}

// PCM returns the rendered bytes for c, or nil for an unknown cue.
func (b *Bank) PCM(c Cue) []byte {
	if c < 0 || c >= cueCount {
		return nil
	}
	return b.pcm[c]
}
