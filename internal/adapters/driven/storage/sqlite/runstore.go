package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driven"
)

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

const selectRun = `
	SELECT id, source, input, output, max_value, passes, duration_ns, created_at
	FROM sort_runs`

// Save stores a completed run and its pass traces.
func (s *runStore) Save(ctx context.Context, run *domain.SortRun) error {
	inputJSON, err := json.Marshal(run.Input)
	if err != nil {
		return fmt.Errorf("marshalling input: %w", err)
	}
	outputJSON, err := json.Marshal(run.Output)
	if err != nil {
		return fmt.Errorf("marshalling output: %w", err)
	}

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sort_runs (id, source, input, output, max_value, passes, duration_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source = excluded.source,
			input = excluded.input,
			output = excluded.output,
			max_value = excluded.max_value,
			passes = excluded.passes,
			duration_ns = excluded.duration_ns,
			created_at = excluded.created_at
	`, run.ID, run.Source, string(inputJSON), string(outputJSON),
		run.Max, run.Passes, int64(run.Duration), createdAt)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM pass_traces WHERE run_id = ?", run.ID); err != nil {
		return fmt.Errorf("clearing pass traces: %w", err)
	}

	for _, pass := range run.Trace {
		countsJSON, err := json.Marshal(pass.Counts)
		if err != nil {
			return fmt.Errorf("marshalling counts: %w", err)
		}
		snapshotJSON, err := json.Marshal(pass.Snapshot)
		if err != nil {
			return fmt.Errorf("marshalling snapshot: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO pass_traces (run_id, pass_index, exponent, counts, snapshot)
			VALUES (?, ?, ?, ?, ?)
		`, run.ID, pass.Index, pass.Exponent, string(countsJSON), string(snapshotJSON))
		if err != nil {
			return fmt.Errorf("saving pass trace %d: %w", pass.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// Get retrieves a run by ID, including its pass traces.
func (s *runStore) Get(ctx context.Context, id string) (*domain.SortRun, error) {
	row := s.store.db.QueryRowContext(ctx, selectRun+" WHERE id = ?", id)

	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}

	trace, err := s.traces(ctx, id)
	if err != nil {
		return nil, err
	}
	run.Trace = trace

	return run, nil
}

// List returns the most recent runs, newest first. Traces are not loaded.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.SortRun, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, selectRun+" ORDER BY seq DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.SortRun{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}

// Prune deletes all but the newest keep runs.
func (s *runStore) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM sort_runs
		WHERE seq NOT IN (SELECT seq FROM sort_runs ORDER BY seq DESC LIMIT ?)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning runs: %w", err)
	}
	return nil
}

// Delete removes a run and its traces.
func (s *runStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM sort_runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	return nil
}

// Clear removes every run.
func (s *runStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM sort_runs"); err != nil {
		return fmt.Errorf("clearing runs: %w", err)
	}
	return nil
}

func (s *runStore) traces(ctx context.Context, runID string) ([]domain.PassTrace, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT pass_index, exponent, counts, snapshot
		FROM pass_traces WHERE run_id = ? ORDER BY pass_index
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying pass traces: %w", err)
	}
	defer rows.Close()

	var trace []domain.PassTrace //nolint:prealloc // size unknown from query
	for rows.Next() {
		var pass domain.PassTrace
		var countsJSON, snapshotJSON string
		if err := rows.Scan(&pass.Index, &pass.Exponent, &countsJSON, &snapshotJSON); err != nil {
			return nil, fmt.Errorf("scanning pass trace: %w", err)
		}
		if err := json.Unmarshal([]byte(countsJSON), &pass.Counts); err != nil {
			return nil, fmt.Errorf("unmarshaling counts: %w", err)
		}
		if err := json.Unmarshal([]byte(snapshotJSON), &pass.Snapshot); err != nil {
			return nil, fmt.Errorf("unmarshaling snapshot: %w", err)
		}
		trace = append(trace, pass)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pass traces: %w", err)
	}

	return trace, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.SortRun, error) {
	var run domain.SortRun
	var inputJSON, outputJSON string
	var durationNS int64
	var createdAt sql.NullTime
	if err := row.Scan(&run.ID, &run.Source, &inputJSON, &outputJSON,
		&run.Max, &run.Passes, &durationNS, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	if err := json.Unmarshal([]byte(inputJSON), &run.Input); err != nil {
		return nil, fmt.Errorf("unmarshaling input: %w", err)
	}
	if err := json.Unmarshal([]byte(outputJSON), &run.Output); err != nil {
		return nil, fmt.Errorf("unmarshaling output: %w", err)
	}

	run.Duration = time.Duration(durationNS)
	if createdAt.Valid {
		run.CreatedAt = createdAt.Time
	}

	return &run, nil
}
