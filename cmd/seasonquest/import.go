package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/season-quest/internal/stats"
	"github.com/vovakirdan/season-quest/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <season.yaml>",
	Short: "Archive a YAML season file in the local database",
	Long: `Reads a season file (league id, year, teams and every week's games)
and stores it in the SQLite archive. Weeks already archived are replaced.
Afterwards the season can be played offline with --provider archive.

Examples:
  seasonquest import ./season-2024.yaml
  seasonquest import ./season.yaml --db ./results.db`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sf, err := stats.LoadSeasonFile(args[0])
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.ImportSeason(context.Background(), sf, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d weeks of league %s (%d), %d teams.\n", n, sf.LeagueID, sf.Year, len(sf.Teams))
	fmt.Printf("Run 'seasonquest play --provider archive --league %s --year %d' to explore it.\n", sf.LeagueID, sf.Year)
	return nil
}
