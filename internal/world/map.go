package world

import "github.com/vovakirdan/season-quest/internal/core"

// grid is the raw tile storage shared by the generator and the decorators.
type grid struct {
	width, height int
	tiles         []TileKind
}

func newGrid(width, height int) grid {
	return grid{width: width, height: height, tiles: make([]TileKind, width*height)}
}

func (g *grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// place writes a tile, ignoring out-of-bounds coordinates.
func (g *grid) place(x, y int, k TileKind) {
	if g.inBounds(x, y) {
		g.tiles[y*g.width+x] = k
	}
}

func (g *grid) at(x, y int) TileKind {
	if !g.inBounds(x, y) {
		return TileTree
	}
	return g.tiles[y*g.width+x]
}

// Map is the generated world. Tiles, walkability and locations are read-only
// after Generate; NPC facings are the only mutable state.
type Map struct {
	grid
	walkable  []bool
	weekIndex map[int]int

	Locations []Location
	NPCs      []NPC
}

// Width returns the map width in tiles.
func (m *Map) Width() int { return m.width }

// Height returns the map height in tiles.
func (m *Map) Height() int { return m.height }

// PixelWidth returns the map width in world pixels.
func (m *Map) PixelWidth() float64 { return float64(m.width * TileSize) }

// PixelHeight returns the map height in world pixels.
func (m *Map) PixelHeight() float64 { return float64(m.height * TileSize) }

// InBounds reports whether (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool { return m.inBounds(x, y) }

// At returns the tile at (x, y). Off-map cells read as trees.
func (m *Map) At(x, y int) TileKind { return m.at(x, y) }

// IsWalkable reports the precomputed walkability of a cell.
func (m *Map) IsWalkable(x, y int) bool {
	if !m.inBounds(x, y) {
		return false
	}
	return m.walkable[y*m.width+x]
}

// Passable reports whether the avatar may step into (x, y): the cell must be
// walkable and not occupied by an NPC.
func (m *Map) Passable(x, y int) bool {
	return m.IsWalkable(x, y) && m.NPCAt(x, y) == nil
}

// NPCAt returns the NPC standing on (x, y), or nil.
func (m *Map) NPCAt(x, y int) *NPC {
	for i := range m.NPCs {
		if m.NPCs[i].X == x && m.NPCs[i].Y == y {
			return &m.NPCs[i]
		}
	}
	return nil
}

// Location returns the town for a week.
func (m *Map) Location(week int) (Location, bool) {
	i, ok := m.weekIndex[week]
	if !ok {
		return Location{}, false
	}
	return m.Locations[i], true
}

// LocationAt returns the town whose door or anchor is at (x, y).
func (m *Map) LocationAt(x, y int) (Location, bool) {
	for _, l := range m.Locations {
		if (l.DoorX == x && l.DoorY == y) || (l.X == x && l.Y == y) {
			return l, true
		}
	}
	return Location{}, false
}

// DoorAt returns the town whose door is at (x, y).
func (m *Map) DoorAt(x, y int) (Location, bool) {
	if m.at(x, y) != TileDoor {
		return Location{}, false
	}
	for _, l := range m.Locations {
		if l.DoorX == x && l.DoorY == y {
			return l, true
		}
	}
	return Location{}, false
}

// NearLocation returns the first town in table order within Manhattan
// distance d of (x, y).
func (m *Map) NearLocation(x, y, d int) (Location, bool) {
	for _, l := range m.Locations {
		if core.Manhattan(x, y, l.X, l.Y) <= d {
			return l, true
		}
	}
	return Location{}, false
}

// SignLocation returns the first town whose anchor lies within r tiles on
// both axes of a sign at (x, y).
func (m *Map) SignLocation(x, y, r int) (Location, bool) {
	for _, l := range m.Locations {
		if core.Abs(x-l.X) <= r && core.Abs(y-l.Y) <= r {
			return l, true
		}
	}
	return Location{}, false
}
