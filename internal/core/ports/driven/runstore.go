package driven

import (
	"context"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// RunStore persists sort run history.
type RunStore interface {
	// Save stores a completed run.
	Save(ctx context.Context, run *domain.SortRun) error

	// Get retrieves a run by ID.
	// Returns domain.ErrNotFound if no run has that ID.
	Get(ctx context.Context, id string) (*domain.SortRun, error)

	// List returns the most recent runs, newest first.
	// A limit of zero or less returns every run.
	List(ctx context.Context, limit int) ([]domain.SortRun, error)

	// Prune deletes all but the newest keep runs.
	Prune(ctx context.Context, keep int) error

	// Delete removes a run.
	Delete(ctx context.Context, id string) error

	// Clear removes every run.
	Clear(ctx context.Context) error
}
