package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/Garsondee/Clock-Pong/internal/game"
	"github.com/Garsondee/Clock-Pong/internal/pong"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var touch bool
	var sound bool
	var gain float64
	var verbose bool

	flag.BoolVar(&touch, "touch", false, "use the faster touch-device tuning")
	flag.BoolVar(&sound, "sound", false, "start with sound on (click toggles)")
	flag.Float64Var(&gain, "gain", 0, "cue volume, 0 for the default")
	flag.BoolVar(&verbose, "v", false, "log goals and control-mode changes")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	profile := pong.ProfileDesktop
	if touch {
		profile = pong.ProfileTouch
	}
	cfg := pong.DefaultConfig(profile)
	cfg.ApplyEnv()

	g, err := game.New(game.Options{Config: cfg, Logger: logger, Sound: sound, Gain: gain})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Clock Pong")
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	logger.Info("starting", "profile", cfg.Profile.String(), "latch_modes", cfg.LatchControlMode)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
