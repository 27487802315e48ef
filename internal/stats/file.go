package stats

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SeasonFile is the offline season format: every game of every week for one
// league, from which any team's view can be derived.
type SeasonFile struct {
	LeagueID string       `yaml:"league_id"`
	Year     int          `yaml:"year"`
	Teams    []Team       `yaml:"teams"`
	Weeks    []SeasonWeek `yaml:"weeks"`
}

// SeasonWeek is one week of a season file.
type SeasonWeek struct {
	Week      int        `yaml:"week"`
	Games     []Game     `yaml:"games"`
	Standings []Standing `yaml:"standings,omitempty"`
}

// LoadSeasonFile reads and parses a YAML season file.
func LoadSeasonFile(path string) (*SeasonFile, error) {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stats: read season file: %w", err)
	}
	var sf SeasonFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("stats: parse season file %s: %w", path, err)
	}
	return &sf, nil
}

// FileProvider serves results from a season file held in memory.
type FileProvider struct {
	season *SeasonFile
	byWeek map[int]SeasonWeek
}

// NewFileProvider indexes a parsed season file.
func NewFileProvider(sf *SeasonFile) *FileProvider {
	p := &FileProvider{season: sf, byWeek: make(map[int]SeasonWeek, len(sf.Weeks))}
	for _, w := range sf.Weeks {
		p.byWeek[w.Week] = w
	}
	return p
}

// FetchWeek implements Provider.
func (p *FileProvider) FetchWeek(ctx context.Context, key Key) (*WeekResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w, ok := p.byWeek[key.Week]
	if !ok {
		return nil, fmt.Errorf("%w: week %d", ErrNotFound, key.Week)
	}
	return BuildWeek(w.Week, key.TeamID, w.Games, w.Standings), nil
}

// Teams implements Provider.
func (p *FileProvider) Teams(ctx context.Context, leagueID string, year int) ([]Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.season.Teams, nil
}
