// Package mcp provides an MCP (Model Context Protocol) server adapter for radix.
// It lets AI assistants sort sequences, inspect digit positions and browse
// the run history.
package mcp

import "errors"

// ErrMissingSortService is returned when the sort service is not provided.
var ErrMissingSortService = errors.New("mcp: sort service is required")
