package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/season-quest/internal/world"
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List the towns of the configured season",
	Long: `Shows every town of the world that would be generated for the
configured week range, with its anchor, door and theme.`,
	Args: cobra.NoArgs,
	RunE: runLocations,
}

func init() {
	locationsCmd.Flags().IntVar(&flagStartWeek, "start-week", 0, "First week with a town")
	locationsCmd.Flags().IntVar(&flagEndWeek, "end-week", 0, "Last week with a town")
}

func runLocations(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	locs, links, err := cfg.World()
	if err != nil {
		return err
	}
	// Doors are placed by generation.
	locs = world.Generate(locs, links).Locations

	if len(locs) == 0 {
		fmt.Println("No towns in this week range.")
		return nil
	}

	// Calculate column widths
	nameW := runewidth.StringWidth("Town")
	for _, l := range locs {
		nameW = max(nameW, runewidth.StringWidth(l.Name))
	}

	fmt.Printf("  %-4s  %s  %-9s  %-9s  %s\n", "Week", runewidth.FillRight("Town", nameW), "Anchor", "Door", "Theme")
	fmt.Printf("  %-4s  %s  %-9s  %-9s  %s\n", "----", runewidth.FillRight("----", nameW), "------", "----", "-----")
	for _, l := range locs {
		fmt.Printf("  %-4d  %s  %-9s  %-9s  %s\n",
			l.Week,
			runewidth.FillRight(l.Name, nameW),
			fmt.Sprintf("%d,%d", l.X, l.Y),
			fmt.Sprintf("%d,%d", l.DoorX, l.DoorY),
			l.Theme,
		)
	}

	fmt.Println()
	fmt.Printf("%d towns, %d roads.\n", len(locs), len(links))
	return nil
}
