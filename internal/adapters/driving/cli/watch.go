package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/adapters/driven/input"
	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

var (
	watchFormat   string
	watchInterval time.Duration
	watchRecord   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-sort a file every time it changes",
	Long: `Sorts the values in a file, then sorts them again each time the file is
written. Reloads are throttled to at most one per --interval.

Decode and validation errors are reported and the watch continues.
Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchFormat, "format", "", "input format (default from file extension)")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", input.DefaultWatchInterval, "minimum time between reloads")
	watchCmd.Flags().BoolVar(&watchRecord, "record", false, "record every re-sort in history")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if sortService == nil || sequenceDecoder == nil {
		return errors.New("sort service not configured")
	}

	path := args[0]
	format := domain.InputFormat(watchFormat)
	if watchFormat == "" {
		format = domain.InputFormatFromPath(path)
	}
	if !format.IsValid() {
		return fmt.Errorf("%w: input format %q", domain.ErrUnsupportedType, watchFormat)
	}

	watcher := input.NewWatcher(path, format, sequenceDecoder, watchInterval)
	updates, err := watcher.Watch(cmd.Context())
	if err != nil {
		return err
	}

	cmd.PrintErrf("Watching %s (Ctrl+C to stop)\n", watcher.Path())
	sep := currentSettings().Output.Separator
	for update := range updates {
		stamp := time.Now().Format(time.TimeOnly)
		if update.Err != nil {
			cmd.PrintErrf("[%s] %v\n", stamp, update.Err)
			continue
		}

		run, err := sortService.Sort(cmd.Context(), domain.SortRequest{
			Values:      update.Values,
			Source:      path,
			SkipHistory: !watchRecord,
		})
		if err != nil {
			cmd.PrintErrf("[%s] %v\n", stamp, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", stamp, joinValues(run.Output, sep))
	}
	return nil
}
