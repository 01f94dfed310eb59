// Command worldgen generates a grid headlessly, prints it as ASCII and can
// write PNG snapshots of the first-person view and the minimap.
package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"gridcaster/internal/app"
	"gridcaster/internal/config"
	"gridcaster/internal/core"
	"gridcaster/internal/logging"
	"gridcaster/internal/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("worldgen", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := config.NewConfig()
	cfg.Bind(fs)
	var (
		viewPath    string
		minimapPath string
		minimapSize int
		quiet       bool
	)
	fs.StringVar(&viewPath, "png", "", "write the first-person view from the spawn point to this file")
	fs.StringVar(&minimapPath, "minimap", "", "write a top-down minimap to this file")
	fs.IntVar(&minimapSize, "minimap-size", 256, "minimap edge length in pixels")
	fs.BoolVar(&quiet, "quiet", false, "do not print the grid")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Load(fs); err != nil {
		return err
	}

	log := logging.New(stderr, cfg.LogLevel, true)

	// A frozen clock keeps wall colours stable for the snapshot.
	clock := &core.ManualClock{T: time.Unix(0, 0)}
	s, err := app.NewSession(cfg, cfg.ScreenWidth, cfg.ScreenHeight, clock, log)
	if err != nil {
		return err
	}

	g := s.Grid()
	p := s.Player()
	if !quiet {
		fmt.Fprint(stdout, g.String())
		algo, _ := s.Parameters().Lookup("world.algorithm")
		fmt.Fprintf(stdout, "algorithm=%s size=%dx%d seed=%d spawn=(%.1f,%.1f)\n",
			algo.Value, g.W, g.H, cfg.Seed, p.Position.X, p.Position.Y)
	}

	if viewPath != "" {
		surf := s.Tick(0, 0)
		if err := writePNG(viewPath, surf); err != nil {
			return err
		}
		log.Info().Str("path", viewPath).Int("width", surf.W).Int("height", surf.H).Msg("view written")
	}

	if minimapPath != "" {
		if minimapSize <= 0 {
			return fmt.Errorf("minimap-size must be positive, got %d", minimapSize)
		}
		surf := render.NewSurface(minimapSize, minimapSize)
		render.NewMinimap().Draw(surf, g, p)
		if err := writePNG(minimapPath, surf); err != nil {
			return err
		}
		log.Info().Str("path", minimapPath).Msg("minimap written")
	}
	return nil
}

func writePNG(path string, surf *render.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, surf.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
