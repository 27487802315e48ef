package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/season-quest/internal/world"
)

func TestDefaultParsesEmbedded(t *testing.T) {
	cfg := Default()
	if cfg.Game.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", cfg.Game.TickRate)
	}
	if cfg.Game.MoveSpeed != 0.12 {
		t.Errorf("MoveSpeed = %v, want 0.12", cfg.Game.MoveSpeed)
	}
	if cfg.Provider.Timeout != 15*time.Second {
		t.Errorf("Timeout = %v, want 15s", cfg.Provider.Timeout)
	}
	if cfg.League.StartWeek != 1 || cfg.League.EndWeek != 14 {
		t.Errorf("week range = %d..%d, want 1..14", cfg.League.StartWeek, cfg.League.EndWeek)
	}
	if len(DefaultYAML()) == 0 {
		t.Error("embedded default is empty")
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("league:\n  id: \"99\"\n  team: gurus\n  start_week: 3\n  end_week: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.League.ID != "99" || cfg.League.Team != "gurus" {
		t.Errorf("league = %+v", cfg.League)
	}
	if cfg.Game.TickRate != 60 {
		t.Errorf("unset keys should keep defaults, TickRate = %d", cfg.Game.TickRate)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("game: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := Default()
		cfg.League.ID = "42"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"defaults with league", func(*Config) {}, nil},
		{"zero tick rate", func(c *Config) { c.Game.TickRate = 0 }, ErrTickRate},
		{"huge tick rate", func(c *Config) { c.Game.TickRate = 1000 }, ErrTickRate},
		{"zero speed", func(c *Config) { c.Game.MoveSpeed = 0 }, ErrMoveSpeed},
		{"reversed weeks", func(c *Config) { c.League.StartWeek, c.League.EndWeek = 5, 2 }, ErrWeekRange},
		{"week zero", func(c *Config) { c.League.StartWeek = 0 }, ErrWeekRange},
		{"unknown provider", func(c *Config) { c.Provider.Kind = "carrier-pigeon" }, ErrProvider},
		{"http without url", func(c *Config) { c.Provider.BaseURL = "" }, ErrMissingURL},
		{"http without league", func(c *Config) { c.League.ID = "" }, ErrNoLeague},
		{"file without path", func(c *Config) { c.Provider.Kind = ProviderFile }, ErrNoSeason},
		{"file with path", func(c *Config) {
			c.Provider.Kind = ProviderFile
			c.Provider.SeasonFile = "season.yaml"
		}, nil},
		{"bad theme", func(c *Config) {
			c.Locations = []LocationConfig{{Week: 1, Name: "X", X: 10, Y: 10, Theme: "lava"}}
		}, world.ErrUnknownTheme},
		{"duplicate week", func(c *Config) {
			c.Locations = []LocationConfig{
				{Week: 1, Name: "A", X: 10, Y: 10, Theme: "city"},
				{Week: 1, Name: "B", X: 30, Y: 10, Theme: "city"},
			}
		}, world.ErrDuplicateWeek},
		{"towns too close", func(c *Config) {
			c.Locations = []LocationConfig{
				{Week: 1, Name: "A", X: 10, Y: 10, Theme: "city"},
				{Week: 2, Name: "B", X: 13, Y: 10, Theme: "city"},
			}
		}, world.ErrOverlap},
		{"link to unknown week", func(c *Config) { c.Links = [][2]int{{1, 40}} }, world.ErrBadLink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWorldWeekRange(t *testing.T) {
	cfg := Default()
	cfg.League.StartWeek, cfg.League.EndWeek = 3, 6

	locs, links, err := cfg.World()
	if err != nil {
		t.Fatalf("World() failed: %v", err)
	}
	if len(locs) != 4 {
		t.Fatalf("got %d locations, want 4", len(locs))
	}
	if locs[0].Week != 3 || locs[3].Week != 6 {
		t.Errorf("weeks = %d..%d, want 3..6", locs[0].Week, locs[3].Week)
	}
	if len(links) != 3 {
		t.Errorf("got %d links, want a chain of 3", len(links))
	}
}

func TestWorldExplicitLinks(t *testing.T) {
	cfg := Default()
	cfg.League.StartWeek, cfg.League.EndWeek = 1, 3
	cfg.Links = [][2]int{{1, 3}, {3, 2}, {2, 9}}

	_, links, err := cfg.World()
	if err != nil {
		t.Fatalf("World() failed: %v", err)
	}
	// The link to week 9 falls outside the range and is dropped.
	want := []world.Link{{0, 2}, {2, 1}}
	if len(links) != len(want) {
		t.Fatalf("links = %v, want %v", links, want)
	}
	for i := range want {
		if links[i] != want[i] {
			t.Errorf("links[%d] = %v, want %v", i, links[i], want[i])
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x.db"); got != filepath.Join(home, "x.db") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/x.db"); got != "/abs/x.db" {
		t.Errorf("ExpandHome changed an absolute path: %q", got)
	}
}
