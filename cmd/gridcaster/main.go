//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"

	"gridcaster/internal/app"
	"gridcaster/internal/config"
	"gridcaster/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(pflag.CommandLine)
	pflag.Parse()

	if err := cfg.Load(pflag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logging.New(os.Stderr, cfg.LogLevel, true)
	if cfg.LogFile != "" {
		fileLog, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.LogFile).Msg("open log file")
		}
		defer closer.Close()
		log = fileLog
	}

	s, err := app.NewSession(cfg, cfg.ScreenWidth, cfg.ScreenHeight, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("start session")
	}

	game := app.New(s, cfg.Scale, log)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("gridcaster")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	log.Info().Str("algorithm", cfg.Algorithm).Int("width", cfg.ScreenWidth).Int("height", cfg.ScreenHeight).Msg("starting")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("run")
	}
}
