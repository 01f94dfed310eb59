package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"gridcaster/internal/app"
	"gridcaster/internal/config"
	"gridcaster/internal/logging"
	"gridcaster/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.NewConfig()
	cfg.Bind(pflag.CommandLine)
	pflag.Parse()
	if err := cfg.Load(pflag.CommandLine); err != nil {
		return err
	}

	// The terminal belongs to the renderer, so logs only go to a file.
	log, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	s, err := app.NewSession(cfg, max(cols, 1), max(rows*2, 1), nil, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := tui.New(screen, s, tui.Options{TPS: cfg.TPS, Logger: log})
	log.Info().Str("algorithm", cfg.Algorithm).Int("cols", cols).Int("rows", rows).Msg("starting")
	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
