package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded sort runs",
	Long: `Lists recorded sort runs, newest first.

The number of runs kept is controlled by the history.limit setting.`,
	RunE: runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a run in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded run",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of runs to list (default all kept)")
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if sortService == nil {
		return errors.New("sort service not configured")
	}

	runs, err := sortService.History(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		out := make([]runJSON, len(runs))
		for i := range runs {
			out[i] = toRunJSON(&runs[i])
		}
		return printJSON(cmd, out)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	for i := range runs {
		run := &runs[i]
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-8s %4d values  max %-6d %d pass(es)\n",
			run.ID, run.CreatedAt.Local().Format(time.DateTime), run.Source, run.Len(), run.Max, run.Passes)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if sortService == nil {
		return errors.New("sort service not configured")
	}

	run, err := sortService.Run(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("run %s not found", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	if historyJSON {
		return printJSON(cmd, toRunJSON(run))
	}

	sep := currentSettings().Output.Separator
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s\n", run.ID)
	fmt.Fprintf(out, "  Source:   %s\n", run.Source)
	fmt.Fprintf(out, "  Created:  %s\n", run.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(out, "  Duration: %s\n", run.Duration)
	fmt.Fprintf(out, "  Max:      %d\n", run.Max)
	fmt.Fprintf(out, "  Passes:   %d\n", run.Passes)
	fmt.Fprintf(out, "  Input:    %s\n", joinValues(run.Input, sep))
	fmt.Fprintf(out, "  Output:   %s\n", joinValues(run.Output, sep))
	if len(run.Trace) > 0 {
		fmt.Fprintln(out)
		printTrace(cmd, run.Trace, sep)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if sortService == nil {
		return errors.New("sort service not configured")
	}

	if err := sortService.ClearHistory(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
	return nil
}
