package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driven"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
	"github.com/custodia-labs/radix-cli/internal/core/radix"
	"github.com/custodia-labs/radix-cli/internal/logger"
)

// Ensure SortService implements the interface.
var _ driving.SortService = (*SortService)(nil)

// SortService sorts sequences with the radix core and records each run.
type SortService struct {
	runStore driven.RunStore
	settings driving.SettingsService
	now      func() time.Time
}

// NewSortService creates a new sort service.
// runStore and settings are optional. Without a run store nothing is
// recorded; without settings the defaults apply.
func NewSortService(runStore driven.RunStore, settings driving.SettingsService) *SortService {
	return &SortService{
		runStore: runStore,
		settings: settings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Sort validates and sorts the request's values.
func (s *SortService) Sort(ctx context.Context, req domain.SortRequest) (*domain.SortRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Radix Sort")
	logger.Values("input", req.Values)

	if err := radix.Validate(req.Values); err != nil {
		return nil, fmt.Errorf("validating input: %w", err)
	}

	output := slices.Clone(req.Values)
	maxVal, err := radix.Max(output)
	if err != nil {
		return nil, fmt.Errorf("finding maximum: %w", err)
	}
	logger.Debug("max=%d, %d pass(es) of base %d", maxVal, radix.Passes(maxVal), radix.Base)

	run := &domain.SortRun{
		ID:        uuid.New().String(),
		Source:    req.Source,
		Input:     slices.Clone(req.Values),
		Max:       maxVal,
		CreatedAt: s.now(),
	}

	start := time.Now()
	if req.Trace || logger.IsVerbose() {
		err = radix.SortFunc(output, func(p domain.PassTrace) {
			run.Passes++
			logger.Debug("pass %d exp=%d buckets=%v", p.Index, p.Exponent, p.Counts)
			logger.Values(fmt.Sprintf("after pass %d", p.Index), p.Snapshot)
			if req.Trace {
				run.Trace = append(run.Trace, p)
			}
		})
	} else {
		err = radix.Sort(output)
		run.Passes = radix.Passes(maxVal)
	}
	if err != nil {
		return nil, fmt.Errorf("sorting: %w", err)
	}
	run.Duration = time.Since(start)
	run.Output = output

	logger.Info("sorted %d values in %d pass(es) (%s)", len(output), run.Passes, run.Duration)

	if !req.SkipHistory {
		s.record(ctx, run)
	}

	return run, nil
}

// SortRecords stably sorts records by key.
func (s *SortService) SortRecords(ctx context.Context, records []domain.Record) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sorted := slices.Clone(records)
	if err := radix.SortBy(sorted, recordKey); err != nil {
		return nil, fmt.Errorf("sorting records: %w", err)
	}
	logger.Info("sorted %d records", len(sorted))
	return sorted, nil
}

// History returns the most recent runs, newest first.
func (s *SortService) History(ctx context.Context, limit int) ([]domain.SortRun, error) {
	if s.runStore == nil {
		return []domain.SortRun{}, nil
	}
	runs, err := s.runStore.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

// Run retrieves a single run by ID.
func (s *SortService) Run(ctx context.Context, id string) (*domain.SortRun, error) {
	if s.runStore == nil {
		return nil, domain.ErrNotFound
	}
	return s.runStore.Get(ctx, id)
}

// ClearHistory deletes every recorded run.
func (s *SortService) ClearHistory(ctx context.Context) error {
	if s.runStore == nil {
		return nil
	}
	if err := s.runStore.Clear(ctx); err != nil {
		return fmt.Errorf("clearing runs: %w", err)
	}
	return nil
}

// record persists a run and trims old history. Failures are logged, not
// returned: the sort itself already succeeded.
func (s *SortService) record(ctx context.Context, run *domain.SortRun) {
	if s.runStore == nil {
		return
	}

	settings := s.currentSettings()
	if !settings.History.Enabled {
		logger.Debug("history disabled, run %s not recorded", run.ID)
		return
	}

	if err := s.runStore.Save(ctx, run); err != nil {
		logger.Warn("failed to record run %s: %v", run.ID, err)
		return
	}
	if err := s.runStore.Prune(ctx, settings.History.Limit); err != nil {
		logger.Warn("failed to prune history: %v", err)
		return
	}
	logger.Debug("recorded run %s", run.ID)
}

func (s *SortService) currentSettings() domain.AppSettings {
	if s.settings == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := s.settings.Get()
	if err != nil || settings == nil {
		return domain.DefaultAppSettings()
	}
	return *settings
}

func recordKey(r domain.Record) int64 {
	return r.Key
}
