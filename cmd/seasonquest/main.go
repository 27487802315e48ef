// seasonquest turns a fantasy football season into a tile world you can
// walk around in the terminal. Every week is a town; every town's door
// replays that week's matchup as a battle.
//
// Usage:
//
//	seasonquest play         - Explore a season locally
//	seasonquest serve        - Start SSH server for remote play
//	seasonquest locations    - List the towns of the configured season
//	seasonquest import FILE  - Archive a YAML season file in SQLite
//	seasonquest weeks        - Show archived weeks and imports
//	seasonquest config       - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Override the tick rate
//	--config <path>  - Use a specific configuration file
//	--db <path>      - Override the archive database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seasonquest",
	Short: "Season Quest - walk through your fantasy football season",
	Long: `Season Quest turns one fantasy football team's season into a small
tile world. Each week of the season is a town; walk into a town's door to
replay that week's matchup as a turn-based battle.

Available commands:
  play       - Explore a season in this terminal
  serve      - Start SSH server for remote play
  locations  - List the towns of the configured season
  import     - Archive a YAML season file in the local database
  weeks      - Show archived weeks and recent imports
  config     - Print the default configuration

Examples:
  seasonquest play --league 1234 --team "Gridiron Gurus"
  seasonquest play --provider file --season-file ./season.yaml --team-id 3
  seasonquest import ./season.yaml
  seasonquest serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results archive (default from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(locationsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(weeksCmd)
	rootCmd.AddCommand(configCmd)
}
