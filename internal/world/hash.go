package world

// Coordinate hashes give the map visual variety without a random source.
// They are intentionally cheap and deterministic: not cryptographic and not
// seeded per run. Inputs are non-negative map coordinates.

// TreeThreshold is the ScatterHash cutoff below which plain grass becomes a tree.
const TreeThreshold = 8

// CellHash picks the base terrain variant for a cell. Range [0, 17).
func CellHash(x, y int) int {
	return (x*7 + y*13) % 17
}

// ScatterHash decides blocking decoration placement. Range [0, 100).
func ScatterHash(x, y int) int {
	return (x*9973 + y*4231) % 100
}

// baseTerrain maps CellHash onto the three plain ground variants.
func baseTerrain(x, y int) TileKind {
	switch h := CellHash(x, y); {
	case h < 2:
		return TileTallGrass
	case h < 4:
		return TileDarkGrass
	default:
		return TileGrass
	}
}

// hasTree reports whether a plain grass cell carries a tree.
func hasTree(x, y int) bool {
	return ScatterHash(x, y) < TreeThreshold
}
