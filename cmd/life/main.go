//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/emjomi/life/internal/app"
	"github.com/emjomi/life/internal/config"
	"github.com/emjomi/life/internal/logging"
	"github.com/emjomi/life/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse("life", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		var exitErr *config.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	sess, err := session.New(cfg, logger)
	if err != nil {
		logger.Error("cannot create session", "err", err)
		os.Exit(1)
	}

	view := cfg.Size * cfg.Scale
	if view < 200 {
		view = 200
	}
	game := app.New(sess, view, logger)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("Life")
	ebiten.SetTPS(config.MaxTPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop failed", "err", err)
		os.Exit(1)
	}
	logger.Info("bye", "generation", sess.Generation())
}
