package app

import (
	"github.com/rs/zerolog"

	"gridcaster/internal/config"
	"gridcaster/internal/core"
	"gridcaster/internal/session"
)

// NewSession builds the session every host starts from: a frame buffer of
// width x height pixels showing either the default map or a freshly
// generated one, as cfg selects.
func NewSession(cfg *config.Config, width, height int, clock core.Clock, log zerolog.Logger) (*session.Session, error) {
	s, err := session.New(session.Options{
		Width:     width,
		Height:    height,
		Seed:      cfg.Seed,
		MapWidth:  cfg.MapWidth,
		MapHeight: cfg.MapHeight,
		Clock:     clock,
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}
	if cfg.UsesDefaultMap() {
		return s, nil
	}
	alg, err := cfg.MapAlgorithm()
	if err != nil {
		return nil, err
	}
	if _, err := s.RegenerateNext(alg); err != nil {
		return nil, err
	}
	return s, nil
}
