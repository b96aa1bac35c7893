package pong

// SoundEmitter plays the three gameplay cues. Calls must return immediately;
// an emitter that cannot play a cue drops it.
type SoundEmitter interface {
	PaddleHit()
	WallBounce()
	Score()
}

// NopSound discards every cue.
type NopSound struct{}

func (NopSound) PaddleHit()  {}
func (NopSound) WallBounce() {}
func (NopSound) Score()      {}

// SoundCounter counts cues instead of playing them.
type SoundCounter struct {
	PaddleHits  int
	WallBounces int
	Scores      int
}

func (c *SoundCounter) PaddleHit()  { c.PaddleHits++ }
func (c *SoundCounter) WallBounce() { c.WallBounces++ }
func (c *SoundCounter) Score()      { c.Scores++ }
