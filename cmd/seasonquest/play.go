package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/season-quest/internal/core"
	"github.com/vovakirdan/season-quest/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Explore a season in this terminal",
	Long: `Start exploring the configured season.

Controls:
  Arrows/WASD   - Walk (menus: move cursor)
  Enter/Z/Space - Talk, read signs, advance text
  X/M           - Open the menu
  Esc           - Close, or run from a battle
  [ / ]         - Browse weeks in the stats view
  Q/Ctrl+C      - Quit

If neither --team-id nor --team is given you pick a team from the league.

Examples:
  seasonquest play --league 1234 --year 2024 --team-id 7
  seasonquest play --team "gurus" --start-week 1 --end-week 8
  seasonquest play --provider archive --league 1234`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addSeasonFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, "seasonquest", true)
	if err != nil {
		return err
	}
	defer closeLog()

	provider, closeProvider, err := openProvider(cfg, logger)
	if err != nil {
		return err
	}
	defer closeProvider()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Game.TickRate,
	}

	logger.Info("starting local session", "league", cfg.League.ID, "year", cfg.League.Year,
		"provider", cfg.Provider.Kind, "weeks", fmt.Sprintf("%d-%d", cfg.League.StartWeek, cfg.League.EndWeek))
	if err := tui.Run(cfg, provider, rt, logger); err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}
