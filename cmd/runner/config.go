package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the
config search and the --difficulty preset are applied.

Config search order:
  1. --config <path>
  2. ~/.runner/configs/runner.yaml
  3. ./configs/runner.yaml
  4. Built-in defaults

Examples:
  runner config
  runner config --difficulty hard
  runner config > ~/.runner/configs/runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	data, err := loadConfig().Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck
}
