package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcaster/internal/core"
)

func TestDivideFirstWallKeepsOneGap(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g := core.NewGrid(21, 11)
		g.StampBorder(core.CellBorder)
		divide(g, core.NewRNG(seed), 1, 1, 19, 9, 0)

		// The region is wider than tall, so the first split is vertical
		// and draws the wall column then the gap row.
		replay := core.NewRNG(seed)
		wallX := 2 + replay.IntN(17)
		gapY := 1 + replay.IntN(9)

		var open []int
		for y := 1; y <= 9; y++ {
			if g.Open(wallX, y) {
				open = append(open, y)
			}
		}
		assert.Equal(t, []int{gapY}, open, "seed %d wall x=%d", seed, wallX)
	}
}

func TestDivideStopsOnSmallOrDeepRegions(t *testing.T) {
	cases := []struct {
		name        string
		w, h, depth int
	}{
		{"narrow", divisionMinSpan - 1, 9, 0},
		{"short", 9, divisionMinSpan - 1, 0},
		{"deep", 9, 9, divisionMaxDepth + 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGrid(11, 11)
			before := g.Clone()
			divide(g, core.NewRNG(1), 1, 1, tc.w, tc.h, tc.depth)
			require.Equal(t, before.Cells(), g.Cells())
		})
	}
}
