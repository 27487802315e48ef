// Package world builds the season map: terrain, towns, connecting routes and
// the villagers standing in them. Generation is pure and deterministic; the
// same location table always yields the same map.
package world

// TileKind is the terrain or decoration occupying one map cell.
type TileKind uint8

const (
	TileGrass TileKind = iota
	TileTallGrass
	TilePath
	TileWater
	TileTree
	TileWall
	TileRoof
	TileFence
	TileFlowerRed
	TileFlowerYellow
	TileSand
	TileRock
	TileLedge
	TileSign
	TileDoor
	TileDarkGrass
	TileSnow
	TileCave
	TileBridge
	TileMountain
	tileKindCount
)

var tileNames = [tileKindCount]string{
	TileGrass:        "grass",
	TileTallGrass:    "tall_grass",
	TilePath:         "path",
	TileWater:        "water",
	TileTree:         "tree",
	TileWall:         "wall",
	TileRoof:         "roof",
	TileFence:        "fence",
	TileFlowerRed:    "flower_red",
	TileFlowerYellow: "flower_yellow",
	TileSand:         "sand",
	TileRock:         "rock",
	TileLedge:        "ledge",
	TileSign:         "sign",
	TileDoor:         "door",
	TileDarkGrass:    "dark_grass",
	TileSnow:         "snow",
	TileCave:         "cave",
	TileBridge:       "bridge",
	TileMountain:     "mountain",
}

// walkableKinds is consulted once per cell at the end of generation.
var walkableKinds = [tileKindCount]bool{
	TileGrass:        true,
	TileTallGrass:    true,
	TilePath:         true,
	TileSand:         true,
	TileBridge:       true,
	TileDoor:         true,
	TileDarkGrass:    true,
	TileSnow:         true,
	TileFlowerRed:    true,
	TileFlowerYellow: true,
	TileSign:         true,
	TileLedge:        true,
}

// String returns the tile's snake_case name.
func (k TileKind) String() string {
	if k >= tileKindCount {
		return "unknown"
	}
	return tileNames[k]
}

// Walkable reports whether the avatar may stand on this kind of tile.
func (k TileKind) Walkable() bool {
	return k < tileKindCount && walkableKinds[k]
}
