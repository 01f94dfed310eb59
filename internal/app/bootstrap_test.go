package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcaster/internal/config"
	"gridcaster/internal/core"
	"gridcaster/internal/player"
	"gridcaster/internal/worldgen"
)

func TestNewSessionDefaultMap(t *testing.T) {
	cfg := config.NewConfig()

	s, err := NewSession(cfg, 32, 24, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, worldgen.DefaultGrid().Cells(), s.Grid().Cells())
	assert.Equal(t, player.Default(), s.Player())
}

func TestNewSessionGenerated(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Algorithm = "rooms"
	cfg.MapWidth = 30
	cfg.MapHeight = 20
	cfg.Seed = 11

	s, err := NewSession(cfg, 32, 24, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, core.Size{W: 30, H: 20}, s.Grid().Size())
	seed, _ := s.Parameters().Lookup("world.seed")
	assert.Equal(t, "11", seed.Value)

	want, err := worldgen.Generate(30, 20, worldgen.Rooms, core.NewRNG(11))
	require.NoError(t, err)
	assert.Equal(t, want.Cells(), s.Grid().Cells())
}

func TestNewSessionErrors(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Algorithm = "maze"
	_, err := NewSession(cfg, 32, 24, nil, zerolog.Nop())
	assert.ErrorIs(t, err, worldgen.ErrUnknownAlgorithm)

	cfg = config.NewConfig()
	cfg.Algorithm = "dfs"
	cfg.MapWidth = 2
	_, err = NewSession(cfg, 32, 24, nil, zerolog.Nop())
	assert.ErrorIs(t, err, worldgen.ErrInvalidSize)

	_, err = NewSession(config.NewConfig(), 0, 24, nil, zerolog.Nop())
	assert.Error(t, err)
}
