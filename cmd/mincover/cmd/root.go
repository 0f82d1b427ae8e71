package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/mincover/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "mincover",
	Short: "Minimal covering enumerator for Z^2 and Z",
	Long: `A CLI tool for exhaustively enumerating the minimal coverings of the
plane lattice Z^2 by finite-index sublattices, or of the integers Z by
arithmetic progressions.

Features:
  - Recursive backtracking search with maximality pruning
  - Classification into strongly minimal (exact partitions) and
    overlapping coverings, ordered by total weight
  - Index pattern statistics in discovery order
  - Candidate index sequences from the weight equation, for cross-checking`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (optional)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Search overrides
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log every accepted covering, not just new patterns")
}

// loadConfig loads the configuration file when one was given and falls back
// to defaults otherwise, then applies the CLI overrides shared by all
// subcommands. Command-specific overrides are applied by the caller.
func loadConfig(universe string, size int, noPrune bool) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.ApplyOverrides(universe, size, logLevel, logFormat, verbose, noPrune)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
