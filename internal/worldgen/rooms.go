package worldgen

import "gridcaster/internal/core"

const (
	centerRoomSize    = 6
	roomCellsPerRoom  = 50
	roomPlaceAttempts = 20
)

type room struct {
	x, y, w, h int
}

func (r room) center() core.Point {
	return core.Point{X: r.x + r.w/2, Y: r.y + r.h/2}
}

// overlaps reports whether r comes within one cell of o.
func (r room) overlaps(o room) bool {
	return !(r.x+r.w+1 < o.x ||
		r.x > o.x+o.w+1 ||
		r.y+r.h+1 < o.y ||
		r.y > o.y+o.h+1)
}

// roomDungeon carves a fixed room at the centre, then tries to place more
// rooms at random, each joined to the previously placed one. Rooms that find
// no free spot are dropped along with their corridor.
func roomDungeon(w, h int, rng *core.RNG) *core.Grid {
	g := core.NewFilledGrid(w, h, core.CellBorder)

	first := room{
		x: w/2 - centerRoomSize/2,
		y: h/2 - centerRoomSize/2,
		w: centerRoomSize,
		h: centerRoomSize,
	}
	carveRoom(g, first)
	rooms := []room{first}

	want := w * h / roomCellsPerRoom
	short := min(w, h)
	minSize := max(3, int(0.1*float64(short)))
	maxSize := max(5, int(0.2*float64(short)))

	for i := 0; i < want; i++ {
		for attempt := 0; attempt < roomPlaceAttempts; attempt++ {
			r := room{
				w: rng.IntN(maxSize-minSize+1) + minSize,
				h: rng.IntN(maxSize-minSize+1) + minSize,
			}
			spanX, spanY := w-r.w-2, h-r.h-2
			if spanX <= 0 || spanY <= 0 {
				continue
			}
			r.x = rng.IntN(spanX) + 1
			r.y = rng.IntN(spanY) + 1
			if overlapsAny(r, rooms) {
				continue
			}
			carveRoom(g, r)
			rooms = append(rooms, r)
			break
		}
	}

	for i := 1; i < len(rooms); i++ {
		cur, prev := rooms[i].center(), rooms[i-1].center()
		if rng.Chance(0.5) {
			carveCorridor(g, cur.X, cur.Y, prev.X, cur.Y)
			carveCorridor(g, prev.X, cur.Y, prev.X, prev.Y)
		} else {
			carveCorridor(g, cur.X, cur.Y, cur.X, prev.Y)
			carveCorridor(g, cur.X, prev.Y, prev.X, prev.Y)
		}
	}
	return g
}

func overlapsAny(r room, rooms []room) bool {
	for _, o := range rooms {
		if r.overlaps(o) {
			return true
		}
	}
	return false
}

func carveRoom(g *core.Grid, r room) {
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			if g.Interior(x, y) {
				g.Set(x, y, core.CellOpen)
			}
		}
	}
}

// carveCorridor opens a straight horizontal or vertical unit-width line.
// Diagonal requests are ignored.
func carveCorridor(g *core.Grid, x1, y1, x2, y2 int) {
	switch {
	case y1 == y2:
		for x := min(x1, x2); x <= max(x1, x2); x++ {
			if g.Interior(x, y1) {
				g.Set(x, y1, core.CellOpen)
			}
		}
	case x1 == x2:
		for y := min(y1, y2); y <= max(y1, y2); y++ {
			if g.Interior(x1, y) {
				g.Set(x1, y, core.CellOpen)
			}
		}
	}
}
