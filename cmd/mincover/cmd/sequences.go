package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/mincover/internal/sequences"
)

var sequencesSize int

var sequencesCmd = &cobra.Command{
	Use:   "sequences",
	Short: "List candidate index sequences for strongly minimal lattice coverings",
	Long: `Sequences solves the weight equation sum(1/psi(N_i)) = 1 and filters the
solutions through the known necessary conditions, producing every index
sequence a strongly minimal covering of Z^2 by the given number of
sublattices could have.

This is independent of the search itself and much faster; comparing its
output against the patterns found by 'search' is the standard
cross-check.

Example:
  mincover sequences --size 6`,
	RunE: runSequences,
}

func init() {
	sequencesCmd.Flags().IntVarP(&sequencesSize, "size", "n", 4,
		"Number of components in each covering")

	rootCmd.AddCommand(sequencesCmd)
}

func runSequences(cmd *cobra.Command, args []string) error {
	lists, err := sequences.AllIndexSequences(sequencesSize)
	if err != nil {
		return err
	}

	printHeader("Candidate Index Sequences: n=%d", sequencesSize)
	fmt.Fprintln(outputWriter)
	if len(lists) == 0 {
		fmt.Fprintln(outputWriter, "  none")
		return nil
	}
	for i, list := range lists {
		parts := make([]string, len(list))
		for j, n := range list {
			parts[j] = fmt.Sprint(n)
		}
		fmt.Fprintf(outputWriter, "  [%d] (%s)\n", i+1, strings.Join(parts, ", "))
	}
	return nil
}
