package mcp

import (
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Sort sorts sequences and exposes the run history.
	Sort driving.SortService

	// Settings exposes the current configuration. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Sort == nil {
		return ErrMissingSortService
	}
	return nil
}
