// Package domain defines the core business entities for radix.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SortRequest: A sequence of non-negative integers and where it came from
//   - SortRun: The recorded outcome of one sort, including per-pass traces
//   - Record: A keyed value for stable sorts with a payload
//   - AppSettings: Output, history and trace preferences
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
