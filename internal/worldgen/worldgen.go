// Package worldgen builds occupancy grids for the raycaster. Every algorithm
// returns a grid whose outer ring is core.CellBorder and whose interior holds
// open cells and wall variants core.CellWallMin..core.CellWallMax.
package worldgen

import (
	"errors"
	"fmt"
	"strings"

	"gridcaster/internal/core"
)

// Grid dimension limits accepted by Generate.
const (
	MinDimension = 5
	MaxDimension = 1024
)

var (
	// ErrInvalidSize is returned for dimensions outside [MinDimension, MaxDimension].
	ErrInvalidSize = errors.New("worldgen: invalid grid size")
	// ErrUnknownAlgorithm is returned for an algorithm outside the known set.
	ErrUnknownAlgorithm = errors.New("worldgen: unknown algorithm")
)

// Algorithm selects how a grid is carved.
type Algorithm int

const (
	// RecursiveDivision splits open space with walls that each keep one gap.
	RecursiveDivision Algorithm = iota
	// DFS carves a backtracking maze on odd cells.
	DFS
	// Cellular grows caves with a smoothing automaton.
	Cellular
	// Rooms places rectangular rooms joined by L-shaped corridors.
	Rooms
)

var algorithmNames = map[Algorithm]string{
	RecursiveDivision: "recursive",
	DFS:               "dfs",
	Cellular:          "cellular",
	Rooms:             "rooms",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{RecursiveDivision, DFS, Cellular, Rooms}
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// ValidateSize checks dimensions against the generator limits.
func ValidateSize(width, height int) error {
	if width < MinDimension || height < MinDimension || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d (each side must be %d..%d)", ErrInvalidSize, width, height, MinDimension, MaxDimension)
	}
	return nil
}

// Generate carves a new width x height grid with the given algorithm. The
// same rng state always yields the same grid.
func Generate(width, height int, alg Algorithm, rng *core.RNG) (*core.Grid, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("worldgen: nil rng")
	}

	var g *core.Grid
	switch alg {
	case RecursiveDivision:
		g = recursiveDivision(width, height, rng)
	case DFS:
		g = dfsMaze(width, height, rng)
	case Cellular:
		g = cave(width, height, rng)
	case Rooms:
		g = roomDungeon(width, height, rng)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}

	assignWallTypes(g, rng)
	g.StampBorder(core.CellBorder)
	return g, nil
}

// ClearRadius is the half-size of the open square kept around the centre.
func ClearRadius(width, height int) int {
	r := int(0.1 * float64(min(width, height)))
	return max(2, r)
}

func clearCenter(g *core.Grid) {
	cx, cy := g.W/2, g.H/2
	r := ClearRadius(g.W, g.H)
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if g.Interior(x, y) {
				g.Set(x, y, core.CellOpen)
			}
		}
	}
}

func assignWallTypes(g *core.Grid, rng *core.RNG) {
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			if code, _ := g.At(x, y); code != core.CellOpen {
				g.Set(x, y, rng.WallCode())
			}
		}
	}
}
