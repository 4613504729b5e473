package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/emjomi/life/internal/config"
	"github.com/emjomi/life/internal/logging"
	"github.com/emjomi/life/internal/session"
	"github.com/emjomi/life/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := config.Parse("life-term", os.Args[1:], os.Stderr)
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "life-term:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// tcell owns the terminal in interactive mode; hold log output until it
	// has been released.
	var held bytes.Buffer
	var logOut io.Writer = os.Stderr
	if cfg.Interactive {
		logOut = &held
		defer func() { _, _ = held.WriteTo(os.Stderr) }()
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, logOut)
	ctx = logging.WithLogger(ctx, logger)

	sess, err := session.New(cfg, logger)
	if err != nil {
		return err
	}
	if !cfg.Interactive {
		return term.RunText(ctx, os.Stdout, sess, cfg.Generations)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	err = term.NewView(screen, sess, logger).Run(ctx)
	logger.Info("exiting", "generation", sess.Generation(), "rule", sess.Rule().String())
	return err
}
