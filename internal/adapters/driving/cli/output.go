package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// runJSON is the JSON shape of a sort run.
type runJSON struct {
	ID         string     `json:"id,omitempty"`
	Source     string     `json:"source,omitempty"`
	Input      []int64    `json:"input"`
	Sorted     []int64    `json:"sorted"`
	Max        int64      `json:"max"`
	Passes     int        `json:"passes"`
	DurationMS float64    `json:"duration_ms"`
	CreatedAt  time.Time  `json:"created_at"`
	Trace      []passJSON `json:"trace,omitempty"`
}

type passJSON struct {
	Index    int     `json:"index"`
	Exponent int64   `json:"exponent"`
	Counts   []int   `json:"counts"`
	Values   []int64 `json:"values"`
}

func toRunJSON(run *domain.SortRun) runJSON {
	out := runJSON{
		ID:         run.ID,
		Source:     run.Source,
		Input:      run.Input,
		Sorted:     run.Output,
		Max:        run.Max,
		Passes:     run.Passes,
		DurationMS: float64(run.Duration) / float64(time.Millisecond),
		CreatedAt:  run.CreatedAt,
	}
	for _, p := range run.Trace {
		out.Trace = append(out.Trace, passJSON{
			Index:    p.Index,
			Exponent: p.Exponent,
			Counts:   p.Counts,
			Values:   p.Snapshot,
		})
	}
	return out
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// joinValues formats values separated by sep.
func joinValues(values []int64, sep string) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}

// printTrace prints one line per pass.
func printTrace(cmd *cobra.Command, trace []domain.PassTrace, sep string) {
	for _, p := range trace {
		fmt.Fprintf(cmd.OutOrStdout(), "pass %d (exp %d): %s\n", p.Index+1, p.Exponent, joinValues(p.Snapshot, sep))
		fmt.Fprintf(cmd.OutOrStdout(), "  buckets: %v\n", p.Counts)
	}
}

// currentSettings returns stored settings, or defaults when unavailable.
func currentSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := settingsService.Get()
	if err != nil || settings == nil {
		return domain.DefaultAppSettings()
	}
	return *settings
}
