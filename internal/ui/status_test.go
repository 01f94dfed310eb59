package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridcaster/internal/core"
)

func testSnapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "World", Params: []core.Parameter{
			core.StringParam("world.algorithm", "Algorithm", "dfs"),
			core.IntParam("world.width", "Width", 24),
		}},
		{Name: "Player", Params: []core.Parameter{
			core.FloatParam("player.x", "X", 3.14159),
		}},
	}}
}

func TestStatusLines(t *testing.T) {
	got := StatusLines(testSnapshot(), 59.6)

	assert.Equal(t, []string{
		"FPS: 60",
		"World",
		"  Algorithm: dfs",
		"  Width: 24",
		"Player",
		"  X: 3.14",
	}, got)
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "FPS 30 | Algorithm dfs | Width 24 | X 3.14", StatusLine(testSnapshot(), 30))
	assert.Equal(t, "FPS 0", StatusLine(core.ParameterSnapshot{}, 0))
}
