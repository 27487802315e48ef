// Package config provides YAML-based configuration loading for Season Quest:
// which league and team to explore, where results come from, and how the
// game runs.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/season-quest/internal/world"
)

// Provider kinds.
const (
	ProviderHTTP    = "http"
	ProviderFile    = "file"
	ProviderArchive = "archive"
)

// Config contains all configuration for a session.
type Config struct {
	League    LeagueConfig     `yaml:"league"`
	Game      GameConfig       `yaml:"game"`
	Provider  ProviderConfig   `yaml:"provider"`
	Storage   StorageConfig    `yaml:"storage"`
	Log       LogConfig        `yaml:"log"`
	Locations []LocationConfig `yaml:"locations,omitempty"`
	Links     [][2]int         `yaml:"links,omitempty"` // pairs of weeks; default chains towns in order
}

// LeagueConfig selects the season to explore.
type LeagueConfig struct {
	ID        string `yaml:"id"`
	Year      int    `yaml:"year"`
	TeamID    int    `yaml:"team_id"`
	Team      string `yaml:"team"` // case-insensitive name match, used when team_id is 0
	StartWeek int    `yaml:"start_week"`
	EndWeek   int    `yaml:"end_week"`
}

// GameConfig defines timing parameters.
type GameConfig struct {
	TickRate    int     `yaml:"tick_rate"`
	MoveSpeed   float64 `yaml:"move_speed"`   // cells per tick
	LoadTimeout float64 `yaml:"load_timeout"` // seconds before a load gives up
	Prefetch    bool    `yaml:"prefetch"`
}

// ProviderConfig says where weekly results come from.
type ProviderConfig struct {
	Kind       string        `yaml:"kind"` // "http", "file" or "archive"
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout"`
	SeasonFile string        `yaml:"season_file"`
	// WriteThrough archives every HTTP result in the SQLite store and
	// falls back to it when the API is unreachable.
	WriteThrough bool `yaml:"write_through"`
}

// StorageConfig locates the results archive.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// LocationConfig overrides one town of the default layout.
type LocationConfig struct {
	Week  int    `yaml:"week"`
	Name  string `yaml:"name"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Theme string `yaml:"theme"`
}

// Validation errors.
var (
	ErrTickRate   = errors.New("config: tick_rate must be between 1 and 240")
	ErrMoveSpeed  = errors.New("config: move_speed must be in (0, 1]")
	ErrWeekRange  = errors.New("config: invalid week range")
	ErrProvider   = errors.New("config: unknown provider kind")
	ErrMissingURL = errors.New("config: http provider needs base_url")
	ErrNoSeason   = errors.New("config: file provider needs season_file")
	ErrNoLeague   = errors.New("config: league id is required")
)

// Validate rejects configurations the game cannot run with.
func (c Config) Validate() error {
	if c.Game.TickRate < 1 || c.Game.TickRate > 240 {
		return fmt.Errorf("%w: got %d", ErrTickRate, c.Game.TickRate)
	}
	if c.Game.MoveSpeed <= 0 || c.Game.MoveSpeed > 1 {
		return fmt.Errorf("%w: got %v", ErrMoveSpeed, c.Game.MoveSpeed)
	}
	if c.League.StartWeek < 1 || c.League.EndWeek < c.League.StartWeek {
		return fmt.Errorf("%w: %d..%d", ErrWeekRange, c.League.StartWeek, c.League.EndWeek)
	}
	switch c.Provider.Kind {
	case ProviderHTTP:
		if c.Provider.BaseURL == "" {
			return ErrMissingURL
		}
		if c.League.ID == "" {
			return ErrNoLeague
		}
	case ProviderFile:
		if c.Provider.SeasonFile == "" {
			return ErrNoSeason
		}
	case ProviderArchive:
		if c.League.ID == "" {
			return ErrNoLeague
		}
	default:
		return fmt.Errorf("%w: %q", ErrProvider, c.Provider.Kind)
	}
	if _, _, err := c.World(); err != nil {
		return err
	}
	return nil
}

// World returns the validated location table and its links, restricted to
// the configured week range.
func (c Config) World() ([]world.Location, []world.Link, error) {
	locs := world.DefaultLocations()
	if len(c.Locations) > 0 {
		locs = make([]world.Location, 0, len(c.Locations))
		for _, lc := range c.Locations {
			theme, err := world.ParseTheme(lc.Theme)
			if err != nil {
				return nil, nil, fmt.Errorf("config: location %q: %w", lc.Name, err)
			}
			locs = append(locs, world.Location{Week: lc.Week, Name: lc.Name, X: lc.X, Y: lc.Y, Theme: theme})
		}
	}

	index := make(map[int]int, len(locs))
	for i, l := range locs {
		index[l.Week] = i
	}
	for _, l := range c.Links {
		for _, w := range l {
			if _, ok := index[w]; !ok {
				return nil, nil, fmt.Errorf("config: %w: week %d", world.ErrBadLink, w)
			}
		}
	}

	locs = world.WeekRange(locs, c.League.StartWeek, c.League.EndWeek)
	links := world.ChainLinks(len(locs))
	if len(c.Links) > 0 {
		index = make(map[int]int, len(locs))
		for i, l := range locs {
			index[l.Week] = i
		}
		links = links[:0]
		for _, l := range c.Links {
			a, okA := index[l[0]]
			b, okB := index[l[1]]
			if okA && okB {
				links = append(links, world.Link{a, b})
			}
		}
	}
	if err := world.ValidateLocations(locs, links, world.DefaultWidth, world.DefaultHeight); err != nil {
		return nil, nil, err
	}
	return locs, links, nil
}
