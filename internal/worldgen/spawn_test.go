package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridcaster/internal/core"
)

func TestFindSpawnPrefersCentre(t *testing.T) {
	g := core.NewGrid(9, 9)
	g.StampBorder(core.CellBorder)

	assert.Equal(t, core.Point{X: 4, Y: 4}, FindSpawn(g))
}

func TestFindSpawnNearestRingRowMajor(t *testing.T) {
	g := core.NewFilledGrid(9, 9, core.CellBorder)
	g.Set(6, 6, core.CellOpen)
	g.Set(5, 3, core.CellOpen)
	g.Set(3, 5, core.CellOpen)

	// (5,3) and (3,5) are both on ring 1; row-major order reaches y=3 first.
	assert.Equal(t, core.Point{X: 5, Y: 3}, FindSpawn(g))

	g.Set(5, 3, 4)
	assert.Equal(t, core.Point{X: 3, Y: 5}, FindSpawn(g))

	g.Set(3, 5, 4)
	assert.Equal(t, core.Point{X: 6, Y: 6}, FindSpawn(g))
}

func TestFindSpawnFallsBackToCentre(t *testing.T) {
	g := core.NewFilledGrid(7, 11, core.CellBorder)

	assert.Equal(t, core.Point{X: 3, Y: 5}, FindSpawn(g))
}

func TestFindSpawnReachesFarCorner(t *testing.T) {
	g := core.NewFilledGrid(30, 6, 3)
	g.Set(28, 1, core.CellOpen)

	assert.Equal(t, core.Point{X: 28, Y: 1}, FindSpawn(g))
}
