package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Garsondee/Clock-Pong/internal/pong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Options configures a Game.
type Options struct {
	Config pong.Config
	Clock  pong.Clock // nil means the system clock
	Logger *slog.Logger
	// Sound starts the game unmuted. A click toggles it either way.
	Sound bool
	Gain  float64
}

// Game adapts a pong.Loop to ebiten's Update/Draw/Layout cycle.
type Game struct {
	loop  *pong.Loop
	log   *slog.Logger
	sound *soundPlayer
	input *inputState
	fonts *faceCache
	copy  func(string) error

	lastUpdate time.Time
	now        func() time.Time

	// Layout only records the outside size; Update applies it so the
	// simulation never changes between a Step and its Draw.
	outsideW, outsideH int
	resizePending      bool
}

// New builds a Game. Audio is initialised here so a broken backend is
// reported before the window opens.
func New(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	clock := opts.Clock
	if clock == nil {
		clock = pong.SystemClock{}
	}
	sp, err := newSoundPlayer(opts.Gain, opts.Sound, logger)
	if err != nil {
		return nil, err
	}
	loop, err := pong.NewLoop(opts.Config, clock, sp, pong.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return newGame(loop, sp, logger), nil
}

func newGame(loop *pong.Loop, sp *soundPlayer, logger *slog.Logger) *Game {
	return &Game{
		loop:  loop,
		log:   logger,
		sound: sp,
		input: newInputState(),
		fonts: newFaceCache(),
		copy:  writeClipboard,
		now:   time.Now,
	}
}

// Loop exposes the running match.
func (g *Game) Loop() *pong.Loop { return g.loop }

func (g *Game) Update() error {
	g.handleInput()
	g.advance()
	return nil
}

// advance applies any pending resize and steps the simulation by the real
// time since the previous frame.
func (g *Game) advance() {
	if g.resizePending {
		g.resizePending = false
		cfg := g.loop.Config()
		g.loop.OnResize(cfg.Width, cfg.Height)
		g.loop.SetDisplaySize(g.outsideW, g.outsideH)
		g.log.Debug("display resized", "width", g.outsideW, "height", g.outsideH)
	}

	now := g.now()
	dt := pong.FrameInterval
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate)
	}
	g.lastUpdate = now
	g.loop.Step(dt)
}

func (g *Game) handleInput() { g.apply(g.input.poll()) }

func (g *Game) apply(acts inputActions) {
	if acts.toggleDebug {
		on := g.loop.ToggleDebug()
		g.log.Info("debug mode", "on", on)
	}
	if acts.toggleSound {
		on := g.sound.Toggle()
		g.log.Info("sound", "on", on)
	}
	if acts.copyReport {
		if err := g.copy(g.loop.DebugReport()); err != nil {
			g.log.Warn("copy debug report", "err", err)
		} else {
			g.log.Info("debug report copied to clipboard")
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.loop.Draw(&screenRenderer{dst: screen, fonts: g.fonts})
	if g.loop.Debug() {
		st := g.loop.State()
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("TPS %.0f  FPS %.0f  sound %s", ebiten.ActualTPS(), ebiten.ActualFPS(), onOff(g.sound.Enabled())),
			4, int(st.Height)-18)
	}
}

// Layout keeps the logical canvas fixed and lets ebiten scale it to the
// window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH {
		g.outsideW, g.outsideH = outsideWidth, outsideHeight
		g.resizePending = true
	}
	cfg := g.loop.Config()
	return max(1, int(cfg.Width)), max(1, int(cfg.Height))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
