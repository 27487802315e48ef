package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/season-quest/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.seasonquest/config.yaml or ./configs/seasonquest.yaml and edit the keys
you want to change; missing keys keep their defaults.

Examples:
  seasonquest config > ~/.seasonquest/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
