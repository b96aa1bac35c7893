package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// longPressTicks is how long a touch must be held to toggle debug mode
// (500 ms at 60 TPS).
const longPressTicks = 30

// inputActions are the edge-triggered commands gathered in one frame.
type inputActions struct {
	toggleDebug bool
	toggleSound bool
	copyReport  bool
}

// inputState tracks touches across frames so a release can be measured.
type inputState struct {
	tick       int
	touchStart map[ebiten.TouchID]int
}

func newInputState() *inputState {
	return &inputState{touchStart: make(map[ebiten.TouchID]int)}
}

func (in *inputState) poll() inputActions {
	in.tick++
	var acts inputActions

	if inpututil.IsKeyJustPressed(ebiten.KeyBackquote) {
		acts.toggleDebug = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		acts.copyReport = true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		acts.toggleSound = true
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		in.touchBegan(id)
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		if in.touchEnded(id) {
			acts.toggleDebug = true
		} else {
			acts.toggleSound = true
		}
	}
	return acts
}

func (in *inputState) touchBegan(id ebiten.TouchID) {
	in.touchStart[id] = in.tick
}

// touchEnded forgets id and reports whether it was a long press. A release
// with no recorded start counts as a tap.
func (in *inputState) touchEnded(id ebiten.TouchID) bool {
	start, ok := in.touchStart[id]
	delete(in.touchStart, id)
	return ok && in.tick-start > longPressTicks
}
