package session

import "gridcaster/internal/worldgen"

// HotkeyAlgorithm maps the number-row keys shared by every host to a
// generator: 1 recursive division, 2 DFS maze, 3 cellular cave, 4 rooms.
func HotkeyAlgorithm(key rune) (worldgen.Algorithm, bool) {
	switch key {
	case '1':
		return worldgen.RecursiveDivision, true
	case '2':
		return worldgen.DFS, true
	case '3':
		return worldgen.Cellular, true
	case '4':
		return worldgen.Rooms, true
	}
	return 0, false
}
