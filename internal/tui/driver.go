package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Garsondee/Clock-Pong/internal/pong"
	"github.com/gdamore/tcell/v2"
)

// Bell is the terminal's only voice: it rings on goals and ignores the
// short bounce cues. Muted until toggled.
type Bell struct {
	screen  tcell.Screen
	enabled bool
}

// NewBell returns a muted bell for screen.
func NewBell(screen tcell.Screen) *Bell { return &Bell{screen: screen} }

// Toggle flips the bell and reports the new state.
func (b *Bell) Toggle() bool {
	b.enabled = !b.enabled
	return b.enabled
}

func (b *Bell) PaddleHit()  {}
func (b *Bell) WallBounce() {}

func (b *Bell) Score() {
	if b.enabled {
		_ = b.screen.Beep()
	}
}

// Driver paces a pong.Loop on a terminal screen and routes key events.
type Driver struct {
	screen   tcell.Screen
	loop     *pong.Loop
	bell     *Bell
	log      *slog.Logger
	interval time.Duration

	resizePending bool
	last          time.Time
}

// NewDriver ties loop to screen. bell may be nil.
func NewDriver(screen tcell.Screen, loop *pong.Loop, bell *Bell, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Driver{
		screen:        screen,
		loop:          loop,
		bell:          bell,
		log:           logger,
		interval:      pong.FrameInterval,
		resizePending: true,
	}
}

// Run draws frames on a ticker until ctx ends or the player quits. The
// screen must already be initialised; Run does not call Fini.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	d.last = time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !d.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			d.Frame(now.Sub(d.last))
			d.last = now
		}
	}
}

// HandleEvent applies one input event and reports whether to keep running.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() != tcell.KeyRune:
		case ev.Rune() == 'q':
			return false
		case ev.Rune() == '`':
			d.log.Info("debug mode", "on", d.loop.ToggleDebug())
		case ev.Rune() == 's' && d.bell != nil:
			d.log.Info("sound", "on", d.bell.Toggle())
		}
	case *tcell.EventResize:
		d.resizePending = true
	}
	return true
}

// Frame steps the simulation by dt and repaints the screen.
func (d *Driver) Frame(dt time.Duration) {
	if d.resizePending {
		d.resizePending = false
		d.screen.Sync()
		cols, rows := d.screen.Size()
		cfg := d.loop.Config()
		d.loop.OnResize(cfg.Width, cfg.Height)
		d.loop.SetDisplaySize(cols, rows)
		d.log.Debug("terminal resized", "cols", cols, "rows", rows)
	}
	d.loop.Step(dt)

	st := d.loop.State()
	d.screen.Clear()
	d.loop.Draw(NewRenderer(d.screen, st.Width, st.Height))
	d.screen.Show()
}

// Open creates and initialises the terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tui: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tui: init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	return screen, nil
}
