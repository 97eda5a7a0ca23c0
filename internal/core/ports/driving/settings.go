package driving

import "github.com/custodia-labs/radix-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetOutputFormat updates the default output format.
	SetOutputFormat(format domain.OutputFormat) error

	// SetSeparator updates the separator used for text output.
	SetSeparator(sep string) error

	// SetHistoryEnabled turns run history on or off.
	SetHistoryEnabled(enabled bool) error

	// SetHistoryLimit updates how many runs are kept.
	SetHistoryLimit(limit int) error

	// SetTrace turns per-pass tracing on or off by default.
	SetTrace(enabled bool) error

	// SetByKey parses value for a dotted config key such as
	// "history.limit" and applies it.
	SetByKey(key, value string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
