package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridOutOfBoundsReadsAsBorder(t *testing.T) {
	g := NewGrid(3, 2)

	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		code, ok := g.At(p.X, p.Y)
		assert.False(t, ok, "point %v", p)
		assert.Equal(t, CellBorder, code, "point %v", p)
		assert.False(t, g.Open(p.X, p.Y), "point %v", p)
	}

	g.Set(5, 5, 7)
	for _, c := range g.Cells() {
		require.Equal(t, CellOpen, c)
	}
}

func TestGridStampBorder(t *testing.T) {
	g := NewGrid(4, 3)
	g.StampBorder(CellBorder)

	want := "####\n#..#\n####\n"
	assert.Equal(t, want, g.String())
	assert.True(t, g.Interior(1, 1))
	assert.False(t, g.Interior(0, 1))
	assert.False(t, g.Interior(3, 1))
}

func TestGridFromRowsPadsShortRows(t *testing.T) {
	g := GridFromRows([][]uint8{
		{1, 1, 1},
		{1, 0},
		{1, 1, 1},
	})

	require.Equal(t, Size{W: 3, H: 3}, g.Size())
	code, ok := g.At(2, 1)
	require.True(t, ok)
	assert.Equal(t, CellBorder, code)
	assert.True(t, g.Open(1, 1))
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	c := g.Clone()
	c.Set(0, 0, 5)

	code, _ := g.At(0, 0)
	assert.Equal(t, CellOpen, code)
	assert.Equal(t, []uint8{5, 0, 0, 0}, c.Cells())
	assert.Equal(t, 3, c.Index(1, 1))
}
