package world

// pathBrush is the half-width of a carved route; routes are three cells wide.
const pathBrush = 1

// neighbourhoodRadius is how far around an anchor the closing pass clears.
const neighbourhoodRadius = 2

// Generate builds the default-sized map for a validated location table.
func Generate(locs []Location, links []Link) *Map {
	return GenerateSize(DefaultWidth, DefaultHeight, locs, links)
}

// GenerateSize builds a width x height map. Steps run in a fixed order and
// later steps overwrite earlier ones:
//
//  1. base terrain from CellHash, with the southern lake and north-eastern
//     highlands overriding it
//  2. tree scatter on plain grass
//  3. connecting routes for every link
//  4. one town per location, then its theme decoration
//  5. NPC placement
//  6. the closing pass that keeps towns and NPC cells reachable
//
// Walkability is computed once at the end and never recomputed.
func GenerateSize(width, height int, locs []Location, links []Link) *Map {
	m := &Map{
		grid:      newGrid(width, height),
		Locations: make([]Location, len(locs)),
	}
	copy(m.Locations, locs)

	m.fillTerrain()
	m.scatterTrees()

	for _, ln := range links {
		a, b := m.Locations[ln[0]], m.Locations[ln[1]]
		m.carveRoute(a.X, a.Y, b.X, b.Y)
	}

	for i := range m.Locations {
		m.buildTown(&m.Locations[i])
	}

	m.placeResidents()
	m.closeNeighbourhoods()
	m.computeWalkable()

	m.weekIndex = make(map[int]int, len(m.Locations))
	for i, l := range m.Locations {
		m.weekIndex[l.Week] = i
	}
	return m
}

func (m *Map) fillTerrain() {
	w, h := float64(m.width), float64(m.height)
	for y := 0; y < m.height; y++ {
		ny := float64(y) / h
		for x := 0; x < m.width; x++ {
			nx := float64(x) / w
			var k TileKind
			switch {
			case ny > 0.82 && nx > 0.2 && nx < 0.55:
				k = TileWater
			case ny < 0.15 && nx > 0.65:
				k = TileRock
				if (x+y)%3 == 0 {
					k = TileMountain
				}
			case ny < 0.2 && nx > 0.55:
				k = TileDarkGrass
			default:
				k = baseTerrain(x, y)
			}
			m.place(x, y, k)
		}
	}
}

func (m *Map) scatterTrees() {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.at(x, y) == TileGrass && hasTree(x, y) {
				m.place(x, y, TileTree)
			}
		}
	}
}

// carveRoute draws a three-wide path: horizontal to the midpoint column,
// vertical to the target row, then horizontal again. Building cells survive.
func (m *Map) carveRoute(x1, y1, x2, y2 int) {
	midX := (x1 + x2 + 1) / 2
	for x := min(x1, midX); x <= max(x1, midX); x++ {
		m.brush(x, y1, false)
	}
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.brush(midX, y, true)
	}
	for x := min(midX, x2); x <= max(midX, x2); x++ {
		m.brush(x, y2, false)
	}
}

func (m *Map) brush(x, y int, vertical bool) {
	for d := -pathBrush; d <= pathBrush; d++ {
		tx, ty := x, y+d
		if vertical {
			tx, ty = x+d, y
		}
		if !m.inBounds(tx, ty) {
			continue
		}
		switch m.at(tx, ty) {
		case TileWall, TileRoof, TileDoor:
			continue
		}
		m.place(tx, ty, TilePath)
	}
}

// buildTown clears a 9x9 plaza, raises the gym and applies the theme.
func (m *Map) buildTown(loc *Location) {
	cx, cy := loc.X, loc.Y
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			m.place(cx+dx, cy+dy, TilePath)
		}
	}

	for _, c := range gymFootprint(cx, cy) {
		m.place(c.x, c.y, c.kind)
	}
	loc.DoorX, loc.DoorY = cx, cy-1

	if d := decorators[loc.Theme]; d != nil {
		d(&m.grid, cx, cy)
	}
}

type stamp struct {
	x, y int
	kind TileKind
}

// gymFootprint is the town's main building: three roof cells over wall, door, wall.
func gymFootprint(cx, cy int) []stamp {
	return []stamp{
		{cx - 1, cy - 2, TileRoof},
		{cx, cy - 2, TileRoof},
		{cx + 1, cy - 2, TileRoof},
		{cx - 1, cy - 1, TileWall},
		{cx, cy - 1, TileDoor},
		{cx + 1, cy - 1, TileWall},
	}
}

func (m *Map) placeResidents() {
	id := 0
	for _, loc := range m.Locations {
		for _, s := range townResidents(loc.Theme) {
			x, y := loc.X+s.dx, loc.Y+s.dy
			if !m.inBounds(x, y) {
				continue
			}
			m.NPCs = append(m.NPCs, NPC{
				ID:     id,
				Name:   residentName(s.kind, loc.Name),
				X:      x,
				Y:      y,
				Week:   loc.Week,
				Facing: s.facing,
				Kind:   s.kind,
			})
			id++
		}
	}
}

// closeNeighbourhoods forces every anchor's radius-2 square and every NPC cell
// onto walkable ground. The gym footprint is left as stamped.
func (m *Map) closeNeighbourhoods() {
	for _, loc := range m.Locations {
		keep := make(map[[2]int]bool, 6)
		for _, c := range gymFootprint(loc.X, loc.Y) {
			keep[[2]int{c.x, c.y}] = true
		}
		for dy := -neighbourhoodRadius; dy <= neighbourhoodRadius; dy++ {
			for dx := -neighbourhoodRadius; dx <= neighbourhoodRadius; dx++ {
				x, y := loc.X+dx, loc.Y+dy
				if keep[[2]int{x, y}] {
					continue
				}
				if !m.at(x, y).Walkable() {
					m.place(x, y, TilePath)
				}
			}
		}
	}
	for _, n := range m.NPCs {
		m.place(n.X, n.Y, TilePath)
	}
}

func (m *Map) computeWalkable() {
	m.walkable = make([]bool, len(m.tiles))
	for i, k := range m.tiles {
		m.walkable[i] = k.Walkable()
	}
}
