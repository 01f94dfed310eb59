// Package session owns one running world: the current grid, the player, the
// wall palette and the frame buffer the hosts display.
package session

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"gridcaster/internal/core"
	"gridcaster/internal/player"
	"gridcaster/internal/render"
	"gridcaster/internal/worldgen"
)

// DefaultMapName labels the built-in map in parameter snapshots and logs.
const DefaultMapName = "default"

// Options configures a new Session.
type Options struct {
	// Width and Height size the frame buffer in pixels.
	Width, Height int
	// Seed drives the palette jitter and is the first seed RegenerateNext
	// uses. Regenerate takes its own seed.
	Seed int64
	// MapWidth and MapHeight size the grids built by RegenerateNext.
	MapWidth, MapHeight int

	Clock  core.Clock
	Logger zerolog.Logger
}

type world struct {
	grid      *core.Grid
	algorithm string
	seed      int64
}

// Session is a single raycaster instance. Tick is expected to be called from
// one goroutine; Regenerate swaps the grid atomically so a concurrent reader
// never sees a half-built map.
type Session struct {
	world atomic.Pointer[world]

	mu         sync.Mutex
	player     player.Player
	controller *player.Controller
	scene      *render.Scene
	surface    *render.Surface

	mapW, mapH int
	nextSeed   int64

	log zerolog.Logger
}

// New returns a session showing the default map with the default player.
func New(opts Options) (*Session, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("session: invalid surface size %dx%d", opts.Width, opts.Height)
	}
	palette := render.NewPalette(opts.Clock, core.NewRNG(opts.Seed))
	s := &Session{
		controller: player.NewController(),
		scene:      render.NewScene(palette),
		surface:    render.NewSurface(opts.Width, opts.Height),
		mapW:       opts.MapWidth,
		mapH:       opts.MapHeight,
		nextSeed:   opts.Seed,
		log:        opts.Logger.With().Str("component", "session").Logger(),
	}
	s.ResetDefault()
	return s, nil
}

// Tick applies the active intents for elapsed seconds, then redraws the whole
// frame from the updated player. The returned surface is reused across ticks.
func (s *Session) Tick(elapsed float64, intents player.Intents) *render.Surface {
	w := s.world.Load()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.controller.Tick(&s.player, elapsed, w.grid, intents)
	s.scene.Render(w.grid, s.player, s.surface)
	return s.surface
}

// Regenerate builds a new width x height grid with alg and seed, swaps it in
// and moves the player to the spawn cell nearest the centre. On error the
// current world is left untouched.
func (s *Session) Regenerate(width, height int, alg worldgen.Algorithm, seed int64) (core.Point, error) {
	g, err := worldgen.Generate(width, height, alg, core.NewRNG(seed))
	if err != nil {
		s.log.Warn().Err(err).
			Str("algorithm", alg.String()).
			Int("width", width).
			Int("height", height).
			Msg("regeneration rejected")
		return core.Point{}, err
	}
	spawn := worldgen.FindSpawn(g)

	s.mu.Lock()
	s.world.Store(&world{grid: g, algorithm: alg.String(), seed: seed})
	s.player = player.At(spawn.X, spawn.Y)
	s.mu.Unlock()

	s.log.Info().
		Str("algorithm", alg.String()).
		Int("width", width).
		Int("height", height).
		Int64("seed", seed).
		Int("spawn_x", spawn.X).
		Int("spawn_y", spawn.Y).
		Msg("world regenerated")
	return spawn, nil
}

// RegenerateNext regenerates with the configured map size and the next seed
// in sequence, so repeated requests for one algorithm give different worlds.
func (s *Session) RegenerateNext(alg worldgen.Algorithm) (core.Point, error) {
	s.mu.Lock()
	seed := s.nextSeed
	s.nextSeed++
	s.mu.Unlock()
	return s.Regenerate(s.mapW, s.mapH, alg, seed)
}

// ResetDefault restores the built-in map and the default player.
func (s *Session) ResetDefault() {
	s.mu.Lock()
	s.world.Store(&world{grid: worldgen.DefaultGrid(), algorithm: DefaultMapName})
	s.player = player.Default()
	s.mu.Unlock()
	s.log.Debug().Msg("default world restored")
}

// Grid returns the current grid. Callers must treat it as read-only.
func (s *Session) Grid() *core.Grid {
	return s.world.Load().grid
}

// Player returns a copy of the current player.
func (s *Session) Player() player.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player
}

// SetPlayer replaces the player, e.g. to restore a saved camera.
func (s *Session) SetPlayer(p player.Player) {
	s.mu.Lock()
	s.player = p
	s.mu.Unlock()
}

// Surface returns the frame buffer written by Tick.
func (s *Session) Surface() *render.Surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface
}

// Resize replaces the frame buffer when the size changes.
func (s *Session) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("session: invalid surface size %dx%d", width, height)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.surface.W != width || s.surface.H != height {
		s.surface = render.NewSurface(width, height)
	}
	return nil
}

// Parameters reports the world and camera state for HUD display.
func (s *Session) Parameters() core.ParameterSnapshot {
	w := s.world.Load()
	p := s.Player()
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "World",
				Params: []core.Parameter{
					core.StringParam("world.algorithm", "Algorithm", w.algorithm),
					core.Int64Param("world.seed", "Seed", w.seed),
					core.IntParam("world.width", "Width", w.grid.W),
					core.IntParam("world.height", "Height", w.grid.H),
				},
			},
			{
				Name: "Player",
				Params: []core.Parameter{
					core.FloatParam("player.x", "X", p.Position.X),
					core.FloatParam("player.y", "Y", p.Position.Y),
					core.FloatParam("player.dir_x", "Dir X", p.Direction.X),
					core.FloatParam("player.dir_y", "Dir Y", p.Direction.Y),
					core.FloatParam("player.plane_y", "Plane Y", p.Plane.Y),
					core.FloatParam("player.fov", "FOV", FOVDegrees(p)),
				},
			},
		},
	}
}

// FOVDegrees returns the horizontal field of view spanned by the camera plane.
func FOVDegrees(p player.Player) float64 {
	d := p.Direction.Len()
	if d == 0 {
		return 0
	}
	return 2 * math.Atan(p.Plane.Len()/d) * 180 / math.Pi
}
