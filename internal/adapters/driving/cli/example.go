package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// exampleValues is the sample sequence sorted by `radix example`.
var exampleValues = []int64{170, 45, 75, 90, 802, 24, 2, 66}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Sort the built-in sample array",
	Long: `Sorts the sample array 170 45 75 90 802 24 2 66 and prints the result.
Use --trace to watch each digit pass.`,
	Args: cobra.NoArgs,
	RunE: runExample,
}

var exampleTrace bool

func init() {
	exampleCmd.Flags().BoolVar(&exampleTrace, "trace", false, "print the sequence after every pass")
	rootCmd.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, _ []string) error {
	if sortService == nil {
		return errors.New("sort service not configured")
	}

	run, err := sortService.Sort(cmd.Context(), domain.SortRequest{
		Values:      slices.Clone(exampleValues),
		Source:      "example",
		Trace:       exampleTrace,
		SkipHistory: true,
	})
	if err != nil {
		return fmt.Errorf("sort failed: %w", err)
	}

	printTrace(cmd, run.Trace, " ")
	fmt.Fprintln(cmd.OutOrStdout(), "Sorted array:")
	fmt.Fprintln(cmd.OutOrStdout(), joinValues(run.Output, " "))
	return nil
}
