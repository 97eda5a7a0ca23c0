package domain

import (
	"errors"
	"fmt"
)

// Default setting values.
const (
	DefaultSeparator    = " "
	DefaultHistoryLimit = 20
)

// AppSettings holds user preferences for radix.
type AppSettings struct {
	Output  OutputSettings
	History HistorySettings
	Trace   TraceSettings
}

// OutputSettings controls how results are printed.
type OutputSettings struct {
	Format    OutputFormat
	Separator string
}

// HistorySettings controls persistence of sort runs.
type HistorySettings struct {
	Enabled bool

	// Limit is the number of runs kept. Older runs are dropped after each save.
	Limit int
}

// TraceSettings controls per-pass tracing.
type TraceSettings struct {
	Enabled bool
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{
			Format:    OutputFormatText,
			Separator: DefaultSeparator,
		},
		History: HistorySettings{
			Enabled: true,
			Limit:   DefaultHistoryLimit,
		},
	}
}

// Validate checks the settings are usable.
func (s *AppSettings) Validate() error {
	if !s.Output.Format.IsValid() {
		return fmt.Errorf("%w: output format %q", ErrInvalidInput, s.Output.Format)
	}
	if s.Output.Separator == "" {
		return fmt.Errorf("%w: output separator must not be empty", ErrInvalidInput)
	}
	if s.History.Limit < 1 {
		return errors.Join(ErrInvalidInput, fmt.Errorf("history limit must be at least 1, got %d", s.History.Limit))
	}
	return nil
}
