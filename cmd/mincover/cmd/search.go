package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/mincover/internal/config"
	"github.com/dbsmedya/mincover/internal/covering"
	"github.com/dbsmedya/mincover/internal/lattice"
	"github.com/dbsmedya/mincover/internal/logger"
	"github.com/dbsmedya/mincover/internal/residue"
)

// ErrUnknownUniverse is returned when the requested universe name does not
// match any supported universe.
var ErrUnknownUniverse = errors.New("unknown universe")

var (
	searchUniverse string
	searchSize     int
	searchNoPrune  bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Enumerate minimal coverings of a given size",
	Long: `Search runs the exhaustive backtracking enumeration of minimal coverings
by the requested number of components.

For the lattice universe the components are finite-index sublattices of
Z^2; for the residue universe they are arithmetic progressions in Z. The
report lists every minimal covering (strongly minimal ones first) together
with index pattern statistics and search diagnostics.

Example:
  mincover search --universe lattice --size 4`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchUniverse, "universe", "u", "",
		"Universe to cover: lattice (Z^2) or residue (Z)")
	searchCmd.Flags().IntVarP(&searchSize, "size", "n", 0,
		"Number of components in each covering")
	searchCmd.Flags().BoolVar(&searchNoPrune, "no-prune", false,
		"Disable the maximal-component prune (slower, same results)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(searchUniverse, searchSize, searchNoPrune)
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	return dispatchSearch(cfg, log)
}

// dispatchSearch picks the universe named by the configuration and runs the
// enumeration on it.
func dispatchSearch(cfg *config.Config, log *logger.Logger) error {
	switch cfg.Search.Universe {
	case "lattice":
		return searchUniverseOf(lattice.NewUniverse(), cfg, log)
	case "residue":
		return searchUniverseOf(residue.NewUniverse(), cfg, log)
	default:
		return fmt.Errorf("%w %q", ErrUnknownUniverse, cfg.Search.Universe)
	}
}

// searchUniverseOf runs the enumeration for one universe and renders the
// report. Generic so that both universes share the driver and rendering
// path without loss of component type.
func searchUniverseOf[C covering.Component[C, P], P any](u covering.Universe[C, P], cfg *config.Config, log *logger.Logger) error {
	report, err := covering.MinimalCoverings(u, cfg.Search.Size,
		covering.WithPruning(cfg.Search.Pruning),
		covering.WithVerbose(cfg.Search.Verbose),
		covering.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("enumeration failed: %w", err)
	}

	renderReport(report)
	return nil
}
