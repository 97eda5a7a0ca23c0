package mcp

import (
	"context"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// mockSortService is a mock implementation of driving.SortService.
type mockSortService struct {
	run     *domain.SortRun
	runs    []domain.SortRun
	records []domain.Record
	err     error

	lastRequest domain.SortRequest
	lastLimit   int
}

func (m *mockSortService) Sort(_ context.Context, req domain.SortRequest) (*domain.SortRun, error) {
	m.lastRequest = req
	return m.run, m.err
}

func (m *mockSortService) SortRecords(_ context.Context, _ []domain.Record) ([]domain.Record, error) {
	return m.records, m.err
}

func (m *mockSortService) History(_ context.Context, limit int) ([]domain.SortRun, error) {
	m.lastLimit = limit
	return m.runs, m.err
}

func (m *mockSortService) Run(_ context.Context, _ string) (*domain.SortRun, error) {
	return m.run, m.err
}

func (m *mockSortService) ClearHistory(_ context.Context) error {
	return m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }

func (m *mockSettingsService) SetOutputFormat(_ domain.OutputFormat) error { return m.err }

func (m *mockSettingsService) SetSeparator(_ string) error { return m.err }

func (m *mockSettingsService) SetHistoryEnabled(_ bool) error { return m.err }

func (m *mockSettingsService) SetHistoryLimit(_ int) error { return m.err }

func (m *mockSettingsService) SetTrace(_ bool) error { return m.err }

func (m *mockSettingsService) SetByKey(_, _ string) error { return m.err }

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
