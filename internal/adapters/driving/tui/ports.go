// Package tui provides an interactive terminal user interface for radix.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/radix-cli/internal/core/ports/driven"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
)

// Ports aggregates the services the TUI depends on.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Sort runs traced sorts.
	Sort driving.SortService

	// Settings reports whether runs are kept in history. Optional.
	Settings driving.SettingsService

	// Decoder parses the values typed into the input line.
	Decoder driven.SequenceDecoder
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Sort == nil {
		return ErrMissingSortService
	}
	if p.Decoder == nil {
		return ErrMissingDecoder
	}
	return nil
}
