package world

import (
	"errors"
	"fmt"
	"strings"
)

// Map dimensions in tiles, and the pixel size of one tile.
const (
	DefaultWidth  = 100
	DefaultHeight = 70
	TileSize      = 16
)

// townMargin keeps every anchor's radius-2 neighbourhood and building on the map.
const townMargin = 2

// Theme selects the decoration stamped around a town.
type Theme uint8

const (
	ThemeStarter Theme = iota
	ThemeCity
	ThemeRock
	ThemeWater
	ThemeElectric
	ThemeGhost
	ThemeNature
	ThemePoison
	ThemePsychic
	ThemeFire
	ThemeIce
	ThemeDark
	ThemeChampion
	ThemeLeague
	themeCount
)

var themeNames = [themeCount]string{
	ThemeStarter:  "starter",
	ThemeCity:     "city",
	ThemeRock:     "rock",
	ThemeWater:    "water",
	ThemeElectric: "electric",
	ThemeGhost:    "ghost",
	ThemeNature:   "nature",
	ThemePoison:   "poison",
	ThemePsychic:  "psychic",
	ThemeFire:     "fire",
	ThemeIce:      "ice",
	ThemeDark:     "dark",
	ThemeChampion: "champion",
	ThemeLeague:   "league",
}

func (t Theme) String() string {
	if t >= themeCount {
		return "unknown"
	}
	return themeNames[t]
}

// ParseTheme resolves a theme name, case-insensitively.
func ParseTheme(s string) (Theme, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range themeNames {
		if name == s {
			return Theme(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Location is a town standing for one week of the season.
// DoorX/DoorY are filled in by Generate.
type Location struct {
	Week  int
	Name  string
	X, Y  int
	Theme Theme
	DoorX int
	DoorY int
}

// Link connects two locations by index into the location table.
type Link [2]int

// Validation errors.
var (
	ErrNoLocations   = errors.New("world: no locations")
	ErrInvalidWeek   = errors.New("world: week must be >= 1")
	ErrDuplicateWeek = errors.New("world: duplicate week")
	ErrOutOfBounds   = errors.New("world: location out of bounds")
	ErrBadLink       = errors.New("world: link references unknown location")
	ErrUnknownTheme  = errors.New("world: unknown theme")
	ErrOverlap       = errors.New("world: towns overlap")
)

// DefaultLocations returns the fourteen-town season layout.
func DefaultLocations() []Location {
	return []Location{
		{Week: 1, Name: "Kickoff Town", X: 12, Y: 55, Theme: ThemeStarter},
		{Week: 2, Name: "Waiver City", X: 12, Y: 44, Theme: ThemeCity},
		{Week: 3, Name: "Bedrock City", X: 25, Y: 36, Theme: ThemeRock},
		{Week: 4, Name: "Riverbend City", X: 40, Y: 28, Theme: ThemeWater},
		{Week: 5, Name: "Voltage City", X: 50, Y: 40, Theme: ThemeElectric},
		{Week: 6, Name: "Benchwarmer Town", X: 62, Y: 30, Theme: ThemeGhost},
		{Week: 7, Name: "Greenfield City", X: 42, Y: 18, Theme: ThemeNature},
		{Week: 8, Name: "Bustville", X: 55, Y: 52, Theme: ThemePoison},
		{Week: 9, Name: "Projection City", X: 50, Y: 18, Theme: ThemePsychic},
		{Week: 10, Name: "Firestorm Island", X: 20, Y: 62, Theme: ThemeFire},
		{Week: 11, Name: "Frostbite Isles", X: 35, Y: 60, Theme: ThemeIce},
		{Week: 12, Name: "Deadline Road", X: 72, Y: 16, Theme: ThemeDark},
		{Week: 13, Name: "Playoff Plateau", X: 82, Y: 10, Theme: ThemeChampion},
		{Week: 14, Name: "Championship League", X: 88, Y: 6, Theme: ThemeLeague},
	}
}

// ChainLinks connects each location to the next one in table order.
func ChainLinks(n int) []Link {
	if n < 2 {
		return nil
	}
	links := make([]Link, 0, n-1)
	for i := 0; i < n-1; i++ {
		links = append(links, Link{i, i + 1})
	}
	return links
}

// WeekRange keeps the locations whose week falls in [start, end], in table order.
func WeekRange(locs []Location, start, end int) []Location {
	out := make([]Location, 0, len(locs))
	for _, l := range locs {
		if l.Week >= start && l.Week <= end {
			out = append(out, l)
		}
	}
	return out
}

// ValidateLocations rejects tables the generator cannot honour.
func ValidateLocations(locs []Location, links []Link, width, height int) error {
	if len(locs) == 0 {
		return ErrNoLocations
	}
	seen := make(map[int]string, len(locs))
	for _, l := range locs {
		if l.Week < 1 {
			return fmt.Errorf("%w: %q has week %d", ErrInvalidWeek, l.Name, l.Week)
		}
		if prev, ok := seen[l.Week]; ok {
			return fmt.Errorf("%w: week %d used by %q and %q", ErrDuplicateWeek, l.Week, prev, l.Name)
		}
		seen[l.Week] = l.Name
		if l.X < townMargin || l.X >= width-townMargin || l.Y < townMargin || l.Y >= height-townMargin {
			return fmt.Errorf("%w: %q at (%d,%d) on %dx%d map", ErrOutOfBounds, l.Name, l.X, l.Y, width, height)
		}
		if l.Theme >= themeCount {
			return fmt.Errorf("%w: %q", ErrUnknownTheme, l.Name)
		}
	}
	for i := range locs {
		for j := range locs {
			if i != j && reaches(locs[i], locs[j]) {
				return fmt.Errorf("%w: %q at (%d,%d) stamps over the gym of %q at (%d,%d)",
					ErrOverlap, locs[i].Name, locs[i].X, locs[i].Y, locs[j].Name, locs[j].X, locs[j].Y)
			}
		}
	}
	for _, ln := range links {
		for _, idx := range ln {
			if idx < 0 || idx >= len(locs) {
				return fmt.Errorf("%w: %v", ErrBadLink, ln)
			}
		}
	}
	return nil
}

// townReach bounds every cell a town stamp touches: the plaza, the theme
// decoration, the residents and the closing pass.
const townReach = 4

// reaches reports whether a's stamp touches any cell of b's gym.
func reaches(a, b Location) bool {
	for _, c := range gymFootprint(b.X, b.Y) {
		if abs(c.x-a.X) <= townReach && abs(c.y-a.Y) <= townReach {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
