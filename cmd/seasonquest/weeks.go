package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/season-quest/internal/storage"
)

var flagImports int

var weeksCmd = &cobra.Command{
	Use:   "weeks",
	Short: "Show archived weeks and recent imports",
	Long: `Lists the weeks of the configured league and year held in the
SQLite archive, followed by the most recent imports.

Examples:
  seasonquest weeks --league 1234 --year 2024
  seasonquest weeks --imports 0`,
	Args: cobra.NoArgs,
	RunE: runWeeks,
}

func init() {
	weeksCmd.Flags().StringVar(&flagLeague, "league", "", "League id")
	weeksCmd.Flags().IntVar(&flagYear, "year", 0, "Season year")
	weeksCmd.Flags().IntVar(&flagImports, "imports", 5, "Number of recent imports to show")
}

func runWeeks(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	weeks, err := store.Weeks(ctx, cfg.League.ID, cfg.League.Year)
	if err != nil {
		return err
	}

	fmt.Printf("Archived weeks - league %s, %d\n", cfg.League.ID, cfg.League.Year)
	fmt.Println()
	if len(weeks) == 0 {
		fmt.Println("No weeks archived yet.")
	} else {
		fmt.Printf("  %-4s  %-5s  %s\n", "Week", "Games", "Updated")
		fmt.Printf("  %-4s  %-5s  %s\n", "----", "-----", "-------")
		for _, w := range weeks {
			fmt.Printf("  %-4d  %-5d  %s\n", w.Week, w.Games, w.UpdatedAt.Format("2006-01-02 15:04"))
		}
	}

	if flagImports <= 0 {
		return nil
	}
	imports, err := store.RecentImports(ctx, flagImports)
	if err != nil {
		return err
	}
	if len(imports) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent imports:")
	for _, im := range imports {
		fmt.Printf("  %s  league %s (%d)  %d weeks  %s\n",
			im.CreatedAt.Format("2006-01-02 15:04"), im.LeagueID, im.Year, im.Weeks, im.Source)
	}
	return nil
}
