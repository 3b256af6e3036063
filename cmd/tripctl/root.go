package main

import (
	"github.com/spf13/cobra"

	"github.com/srajal5/vacationplanner/internal/client"
)

const version = "0.1.0"

// Global flag values.
var (
	flagConfig string
	flagServer string
	flagJSON   bool
)

var rootCmd = &cobra.Command{
	Use:     "tripctl",
	Short:   "tripctl plans, books and manages vacation trips",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.tripctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "planner service base URL (default: http://localhost:8080)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(versionCmd)
}

// newRepository builds the HTTP client for the configured server.
// Precedence for the base URL: --server flag > TRIPCTL_SERVER env /
// config file > default.
func newRepository() *client.TripRepository {
	base := flagServer
	if base == "" {
		base = cfg.GetString("server")
	}
	return client.NewTripRepository(base)
}
