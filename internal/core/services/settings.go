package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driven"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOutputFormat   = "output.format"
	keyOutputSep      = "output.separator"
	keyHistoryEnabled = "history.enabled"
	keyHistoryLimit   = "history.limit"
	keyTraceEnabled   = "trace.enabled"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			Format:    s.getOutputFormat(defaults.Output.Format),
			Separator: s.getString(keyOutputSep, defaults.Output.Separator),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			Limit:   s.getLimit(defaults.History.Limit),
		},
		Trace: domain.TraceSettings{
			Enabled: s.getBool(keyTraceEnabled, defaults.Trace.Enabled),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyOutputFormat, settings.Output.Format.String()); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}
	if err := s.configStore.Set(keyOutputSep, settings.Output.Separator); err != nil {
		return fmt.Errorf("save output separator: %w", err)
	}
	if err := s.configStore.Set(keyHistoryEnabled, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	if err := s.configStore.Set(keyHistoryLimit, settings.History.Limit); err != nil {
		return fmt.Errorf("save history limit: %w", err)
	}
	if err := s.configStore.Set(keyTraceEnabled, settings.Trace.Enabled); err != nil {
		return fmt.Errorf("save trace enabled: %w", err)
	}

	return nil
}

// SetOutputFormat updates the default output format.
func (s *SettingsService) SetOutputFormat(format domain.OutputFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("%w: output format %q", domain.ErrInvalidInput, format)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.Output.Format = format
	})
}

// SetSeparator updates the separator used for text output.
func (s *SettingsService) SetSeparator(sep string) error {
	if sep == "" {
		return fmt.Errorf("%w: separator must not be empty", domain.ErrInvalidInput)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.Output.Separator = sep
	})
}

// SetHistoryEnabled turns run history on or off.
func (s *SettingsService) SetHistoryEnabled(enabled bool) error {
	return s.update(func(settings *domain.AppSettings) {
		settings.History.Enabled = enabled
	})
}

// SetHistoryLimit updates how many runs are kept.
func (s *SettingsService) SetHistoryLimit(limit int) error {
	if limit < 1 {
		return fmt.Errorf("%w: history limit must be at least 1", domain.ErrInvalidInput)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.History.Limit = limit
	})
}

// SetTrace turns per-pass tracing on or off by default.
func (s *SettingsService) SetTrace(enabled bool) error {
	return s.update(func(settings *domain.AppSettings) {
		settings.Trace.Enabled = enabled
	})
}

// SetByKey parses value for the named config key and applies it.
func (s *SettingsService) SetByKey(key, value string) error {
	switch key {
	case keyOutputFormat:
		return s.SetOutputFormat(domain.OutputFormat(value))
	case keyOutputSep:
		return s.SetSeparator(value)
	case keyHistoryEnabled:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		return s.SetHistoryEnabled(b)
	case keyHistoryLimit:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: history limit %q is not a number", domain.ErrInvalidInput, value)
		}
		return s.SetHistoryLimit(n)
	case keyTraceEnabled:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		return s.SetTrace(b)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) update(apply func(settings *domain.AppSettings)) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	apply(settings)
	return s.Save(settings)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getLimit(defaultVal int) int {
	val := s.configStore.GetInt(keyHistoryLimit)
	if val < 1 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	val := s.configStore.GetString(keyOutputFormat)
	if val == "" {
		return defaultVal
	}
	format := domain.OutputFormat(val)
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func parseBool(value string) (bool, error) {
	switch value {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean", domain.ErrInvalidInput, value)
	}
}
