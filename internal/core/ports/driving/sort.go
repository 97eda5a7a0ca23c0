package driving

import (
	"context"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// SortService sorts sequences and exposes the run history.
type SortService interface {
	// Sort validates and sorts the request's values.
	// The returned run holds the sorted output; the request is not modified.
	Sort(ctx context.Context, req domain.SortRequest) (*domain.SortRun, error)

	// SortRecords stably sorts records by key.
	SortRecords(ctx context.Context, records []domain.Record) ([]domain.Record, error)

	// History returns the most recent runs, newest first.
	History(ctx context.Context, limit int) ([]domain.SortRun, error)

	// Run retrieves a single run by ID.
	Run(ctx context.Context, id string) (*domain.SortRun, error)

	// ClearHistory deletes every recorded run.
	ClearHistory(ctx context.Context) error
}
