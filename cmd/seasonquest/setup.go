package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/season-quest/internal/config"
	"github.com/vovakirdan/season-quest/internal/stats"
	"github.com/vovakirdan/season-quest/internal/storage"
)

// Season selection flags shared by play and serve.
var (
	flagLeague     string
	flagYear       int
	flagTeamID     int
	flagTeam       string
	flagStartWeek  int
	flagEndWeek    int
	flagProvider   string
	flagSeasonFile string
)

func addSeasonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLeague, "league", "", "League id")
	cmd.Flags().IntVar(&flagYear, "year", 0, "Season year")
	cmd.Flags().IntVar(&flagTeamID, "team-id", 0, "Team id to explore")
	cmd.Flags().StringVar(&flagTeam, "team", "", "Team name (case-insensitive match)")
	cmd.Flags().IntVar(&flagStartWeek, "start-week", 0, "First week with a town")
	cmd.Flags().IntVar(&flagEndWeek, "end-week", 0, "Last week with a town")
	cmd.Flags().StringVar(&flagProvider, "provider", "", "Results source: http, file or archive")
	cmd.Flags().StringVar(&flagSeasonFile, "season-file", "", "YAML season file for the file provider")
}

// loadConfig reads the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS > 0 {
		cfg.Game.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}

	flags := cmd.Flags()
	if flags.Changed("league") {
		cfg.League.ID = flagLeague
	}
	if flags.Changed("year") {
		cfg.League.Year = flagYear
	}
	if flags.Changed("team-id") {
		cfg.League.TeamID = flagTeamID
	}
	if flags.Changed("team") {
		cfg.League.Team = flagTeam
		if !flags.Changed("team-id") {
			cfg.League.TeamID = 0
		}
	}
	if flags.Changed("start-week") {
		cfg.League.StartWeek = flagStartWeek
	}
	if flags.Changed("end-week") {
		cfg.League.EndWeek = flagEndWeek
	}
	if flags.Changed("provider") {
		cfg.Provider.Kind = flagProvider
	}
	if flags.Changed("season-file") {
		cfg.Provider.SeasonFile = flagSeasonFile
		if !flags.Changed("provider") {
			cfg.Provider.Kind = config.ProviderFile
		}
	}
	return cfg, nil
}

// newLogger builds the structured logger. In TUI mode it writes to the
// configured log file so it cannot corrupt the alternate screen.
func newLogger(cfg config.Config, prefix string, toFile bool) (*log.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	closeLog := func() error { return nil }

	if toFile {
		if cfg.Log.Path == "" {
			w = io.Discard
		} else {
			path := config.ExpandHome(cfg.Log.Path)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, nil, fmt.Errorf("create log directory: %w", err)
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err != nil {
				return nil, nil, fmt.Errorf("open log file: %w", err)
			}
			w, closeLog = f, f.Close
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if cfg.Log.Level != "" {
		level, err := log.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
		}
		logger.SetLevel(level)
	}
	return logger, closeLog, nil
}

// openProvider builds the configured results source. The returned close
// function releases the archive database when one was opened.
func openProvider(cfg config.Config, logger *log.Logger) (stats.Provider, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Provider.Kind {
	case config.ProviderFile:
		sf, err := stats.LoadSeasonFile(cfg.Provider.SeasonFile)
		if err != nil {
			return nil, nil, err
		}
		return stats.NewFileProvider(sf), noop, nil

	case config.ProviderArchive:
		store, err := storage.Open(cfg.Storage.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case config.ProviderHTTP:
		api := stats.NewHTTPProvider(cfg.Provider.BaseURL, cfg.Provider.Timeout)
		if !cfg.Provider.WriteThrough {
			return api, noop, nil
		}
		store, err := storage.Open(cfg.Storage.DBPath)
		if err != nil {
			logger.Warn("archive unavailable, continuing without it", "error", err)
			return api, noop, nil
		}
		return storage.NewArchive(api, store, logger), store.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", config.ErrProvider, cfg.Provider.Kind)
}
