package domain

import "time"

// SortRequest is a sequence submitted for sorting.
type SortRequest struct {
	// Values are the integers to sort. They must be non-negative.
	Values []int64

	// Source labels where the values came from (args, stdin, a file path, mcp).
	Source string

	// Trace requests per-pass snapshots in the resulting run.
	Trace bool

	// SkipHistory prevents the run from being persisted.
	SkipHistory bool
}

// SortRun records the outcome of a single sort.
type SortRun struct {
	ID        string
	Source    string
	Input     []int64
	Output    []int64
	Max       int64
	Passes    int
	Trace     []PassTrace
	Duration  time.Duration
	CreatedAt time.Time
}

// Len returns the number of values sorted.
func (r *SortRun) Len() int {
	return len(r.Output)
}

// PassTrace captures the state after one counting sort pass.
type PassTrace struct {
	// Index is the zero-based pass number.
	Index int

	// Exponent is the digit position the pass keyed on (1, 10, 100, ...).
	Exponent int64

	// Counts holds the per-digit bucket sizes for this pass.
	Counts []int

	// Snapshot is a copy of the sequence after the pass.
	Snapshot []int64
}

// Record is a keyed value. Records with equal keys keep their input order
// when sorted.
type Record struct {
	Key     int64  `json:"key" yaml:"key" toml:"key"`
	Payload string `json:"payload" yaml:"payload" toml:"payload"`
}
