package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

var errNoInput = errors.New("no values given: pass them as arguments, with --file, or on stdin")

var (
	sortFile      string
	sortFormat    string
	sortJSON      bool
	sortTrace     bool
	sortNoHistory bool
	sortRecords   bool
)

var sortCmd = &cobra.Command{
	Use:   "sort [values...]",
	Short: "Sort non-negative integers",
	Long: `Sorts non-negative integers ascending with a base-10 LSD radix sort.

Values are read from the arguments, from --file, or from stdin when it is
piped. Arguments and text input may be separated by spaces, commas or
newlines. Structured input is a JSON or YAML array, or a document with a
top-level "values" field (the only form TOML supports).

With --records, input is keyed records instead ("key payload" per line in
text, or "records" objects with key and payload fields) and records with
equal keys keep their input order.

Examples:
  radix sort 170 45 75 90 802 24 2 66
  radix sort --file values.yaml --trace
  seq 100 -1 1 | radix sort --json`,
	RunE: runSort,
}

func init() {
	sortCmd.Flags().StringVarP(&sortFile, "file", "f", "", "read values from a file")
	sortCmd.Flags().StringVar(&sortFormat, "format", "",
		"input format: text, json, yaml or toml (default from file extension, else text)")
	sortCmd.Flags().BoolVar(&sortJSON, "json", false, "output the run as JSON")
	sortCmd.Flags().BoolVar(&sortTrace, "trace", false, "print the sequence after every pass")
	sortCmd.Flags().BoolVar(&sortNoHistory, "no-history", false, "do not record this run")
	sortCmd.Flags().BoolVar(&sortRecords, "records", false, "sort keyed records instead of plain values")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	if sortService == nil || sequenceDecoder == nil {
		return errors.New("sort service not configured")
	}

	in, format, source, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	if sortRecords {
		return runSortRecords(cmd, in, format)
	}

	values, err := sequenceDecoder.Decode(in, format)
	if err != nil {
		return fmt.Errorf("failed to read values: %w", err)
	}

	settings := currentSettings()
	run, err := sortService.Sort(cmd.Context(), domain.SortRequest{
		Values:      values,
		Source:      source,
		Trace:       sortTrace || settings.Trace.Enabled,
		SkipHistory: sortNoHistory,
	})
	if err != nil {
		return fmt.Errorf("sort failed: %w", err)
	}

	if sortJSON || settings.Output.Format == domain.OutputFormatJSON {
		return printJSON(cmd, toRunJSON(run))
	}

	printTrace(cmd, run.Trace, settings.Output.Separator)
	fmt.Fprintln(cmd.OutOrStdout(), joinValues(run.Output, settings.Output.Separator))
	return nil
}

func runSortRecords(cmd *cobra.Command, in io.Reader, format domain.InputFormat) error {
	records, err := sequenceDecoder.DecodeRecords(in, format)
	if err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}

	sorted, err := sortService.SortRecords(cmd.Context(), records)
	if err != nil {
		return fmt.Errorf("sort failed: %w", err)
	}

	if sortJSON || currentSettings().Output.Format == domain.OutputFormatJSON {
		return printJSON(cmd, sorted)
	}
	for _, r := range sorted {
		if r.Payload == "" {
			fmt.Fprintln(cmd.OutOrStdout(), r.Key)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", r.Key, r.Payload)
	}
	return nil
}

// openInput picks the value source: arguments, --file, then stdin.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, domain.InputFormat, string, error) {
	format := domain.InputFormat(sortFormat)
	if sortFormat != "" && !format.IsValid() {
		return nil, "", "", fmt.Errorf("%w: input format %q", domain.ErrUnsupportedType, sortFormat)
	}

	switch {
	case len(args) > 0 && sortFile != "":
		return nil, "", "", errors.New("pass values as arguments or with --file, not both")
	case len(args) > 0:
		sep := " "
		if sortRecords {
			sep = "\n"
		}
		return io.NopCloser(strings.NewReader(strings.Join(args, sep))), domain.InputFormatText, "args", nil
	case sortFile != "":
		f, err := os.Open(sortFile)
		if err != nil {
			return nil, "", "", fmt.Errorf("failed to open %s: %w", sortFile, err)
		}
		if format == "" {
			format = domain.InputFormatFromPath(sortFile)
		}
		return f, format, sortFile, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, "", "", errNoInput
	}
	if format == "" {
		format = domain.InputFormatText
	}
	return io.NopCloser(in), format, "stdin", nil
}
