package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

// Palette used by the world and battle renderers.
const (
	ColorDefault Color = iota
	ColorGrass
	ColorTallGrass
	ColorDarkGrass
	ColorPath
	ColorWater
	ColorTree
	ColorWall
	ColorRoof
	ColorDoor
	ColorFence
	ColorFlowerRed
	ColorFlowerYellow
	ColorSand
	ColorRock
	ColorSnow
	ColorPlayer
	ColorNPC
	ColorText
	ColorHighlight
	ColorHPGreen
	ColorHPYellow
	ColorHPRed
	ColorDim
	ColorCover
)
