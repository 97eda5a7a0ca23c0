package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
// Runs are kept in insertion order; the newest run is last.
type RunStore struct {
	mu   sync.RWMutex
	runs []domain.SortRun
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

// Save stores a completed run, replacing any run with the same ID.
func (s *RunStore) Save(_ context.Context, run *domain.SortRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneRun(run)
	if i := s.indexOf(run.ID); i >= 0 {
		s.runs[i] = stored
		return nil
	}
	s.runs = append(s.runs, stored)
	return nil
}

// Get retrieves a run by ID.
func (s *RunStore) Get(_ context.Context, id string) (*domain.SortRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	run := cloneRun(&s.runs[i])
	return &run, nil
}

// List returns the most recent runs, newest first.
func (s *RunStore) List(_ context.Context, limit int) ([]domain.SortRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.runs)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]domain.SortRun, 0, n)
	for i := len(s.runs) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, cloneRun(&s.runs[i]))
	}
	return result, nil
}

// Prune deletes all but the newest keep runs.
func (s *RunStore) Prune(_ context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 0 {
		keep = 0
	}
	if len(s.runs) > keep {
		s.runs = slices.Clone(s.runs[len(s.runs)-keep:])
	}
	return nil
}

// Delete removes a run.
func (s *RunStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.runs = slices.Delete(s.runs, i, i+1)
	}
	return nil
}

// Clear removes every run.
func (s *RunStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = nil
	return nil
}

// indexOf returns the position of id (caller must hold lock).
func (s *RunStore) indexOf(id string) int {
	return slices.IndexFunc(s.runs, func(r domain.SortRun) bool {
		return r.ID == id
	})
}

func cloneRun(run *domain.SortRun) domain.SortRun {
	c := *run
	c.Input = slices.Clone(run.Input)
	c.Output = slices.Clone(run.Output)
	if run.Trace != nil {
		c.Trace = make([]domain.PassTrace, len(run.Trace))
		for i, p := range run.Trace {
			p.Counts = slices.Clone(p.Counts)
			p.Snapshot = slices.Clone(p.Snapshot)
			c.Trace[i] = p
		}
	}
	return c
}
