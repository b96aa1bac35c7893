package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/Garsondee/Clock-Pong/internal/pong"
	"github.com/Garsondee/Clock-Pong/internal/tui"
)

func main() {
	var touch bool
	var logPath string

	flag.BoolVar(&touch, "touch", false, "use the faster touch-device tuning")
	flag.StringVar(&logPath, "log", "", "write debug logs to this file (the terminal is in use)")
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	profile := pong.ProfileDesktop
	if touch {
		profile = pong.ProfileTouch
	}
	cfg := pong.DefaultConfig(profile)
	cfg.ApplyEnv()

	screen, err := tui.Open()
	if err != nil {
		log.Fatal(err)
	}
	bell := tui.NewBell(screen)
	loop, err := pong.NewLoop(cfg, pong.SystemClock{}, bell, pong.WithLogger(logger))
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = tui.NewDriver(screen, loop, bell, logger).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
