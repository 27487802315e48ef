package config

import (
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/seasonquest.yaml
var defaultYAML []byte

// Default returns the embedded default configuration, falling back to the
// hardcoded one if the embedded file does not parse.
func Default() Config {
	cfg := hardcoded()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return hardcoded()
	}
	return cfg
}

// DefaultYAML returns the embedded default file, for `seasonquest config`.
func DefaultYAML() []byte {
	return defaultYAML
}

func hardcoded() Config {
	return Config{
		League: LeagueConfig{
			Year:      2024,
			StartWeek: 1,
			EndWeek:   14,
		},
		Game: GameConfig{
			TickRate:    60,
			MoveSpeed:   0.12,
			LoadTimeout: 20,
			Prefetch:    true,
		},
		Provider: ProviderConfig{
			Kind:    ProviderHTTP,
			BaseURL: "http://localhost:8000/api",
			Timeout: 15 * time.Second,
		},
		Storage: StorageConfig{
			DBPath: "~/.seasonquest/archive.db",
		},
		Log: LogConfig{
			Path:  "~/.seasonquest/seasonquest.log",
			Level: "info",
		},
	}
}
