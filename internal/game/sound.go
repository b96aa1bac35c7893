package game

import (
	"fmt"
	"log/slog"

	sfx "github.com/Garsondee/Clock-Pong/internal/audio"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// soundPlayer plays cue PCM through ebiten's audio context. It satisfies
// pong.SoundEmitter; every cue starts its own player and returns at once.
type soundPlayer struct {
	bank    *sfx.Bank
	ctx     *audio.Context
	enabled bool
	log     *slog.Logger
}

func newSoundPlayer(gain float64, enabled bool, logger *slog.Logger) (*soundPlayer, error) {
	if gain <= 0 {
		gain = sfx.DefaultGain
	}
	bank, err := sfx.NewBank(gain)
	if err != nil {
		return nil, fmt.Errorf("game: sound bank: %w", err)
	}
	sp := &soundPlayer{bank: bank, log: logger}
	if enabled {
		sp.Toggle()
	}
	return sp, nil
}

// Toggle flips playback and reports the new state. The audio context is
// created on first enable.
func (sp *soundPlayer) Toggle() bool {
	sp.enabled = !sp.enabled
	if sp.enabled && sp.ctx == nil {
		sp.ctx = audio.CurrentContext()
		if sp.ctx == nil {
			sp.ctx = audio.NewContext(int(sfx.SampleRate))
		}
	}
	return sp.enabled
}

// Enabled reports whether cues are audible.
func (sp *soundPlayer) Enabled() bool { return sp.enabled }

func (sp *soundPlayer) PaddleHit()  { sp.play(sfx.CuePaddleHit) }
func (sp *soundPlayer) WallBounce() { sp.play(sfx.CueWallBounce) }
func (sp *soundPlayer) Score()      { sp.play(sfx.CueScore) }

func (sp *soundPlayer) play(c sfx.Cue) {
	if !sp.enabled || sp.ctx == nil {
		return
	}
	pcm := sp.bank.PCM(c)
	if len(pcm) == 0 {
		sp.log.Warn("no PCM for cue", "cue", c.String())
		return
	}
	sp.ctx.NewPlayerFromBytes(pcm).Play()
}
