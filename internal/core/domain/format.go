package domain

import (
	"path/filepath"
	"strings"
)

const unknownDescription = "Unknown"

// InputFormat identifies how a sequence is encoded on disk or stdin.
type InputFormat string

// Supported input formats.
const (
	// InputFormatText is whitespace or comma separated integers.
	InputFormatText InputFormat = "text"

	// InputFormatJSON is a JSON array of integers.
	InputFormatJSON InputFormat = "json"

	// InputFormatYAML is a YAML sequence of integers.
	InputFormatYAML InputFormat = "yaml"

	// InputFormatTOML is a TOML document with a top-level "values" array.
	InputFormatTOML InputFormat = "toml"
)

// AllInputFormats returns every supported input format.
func AllInputFormats() []InputFormat {
	return []InputFormat{InputFormatText, InputFormatJSON, InputFormatYAML, InputFormatTOML}
}

// IsValid returns true if the input format is recognised.
func (f InputFormat) IsValid() bool {
	switch f {
	case InputFormatText, InputFormatJSON, InputFormatYAML, InputFormatTOML:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f InputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f InputFormat) Description() string {
	switch f {
	case InputFormatText:
		return "Text (whitespace or comma separated)"
	case InputFormatJSON:
		return "JSON array"
	case InputFormatYAML:
		return "YAML sequence"
	case InputFormatTOML:
		return "TOML values array"
	default:
		return unknownDescription
	}
}

// InputFormatFromPath guesses the format from a file extension.
// Unknown extensions are treated as text.
func InputFormatFromPath(path string) InputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return InputFormatJSON
	case ".yaml", ".yml":
		return InputFormatYAML
	case ".toml":
		return InputFormatTOML
	default:
		return InputFormatText
	}
}

// OutputFormat controls how sorted sequences are printed.
type OutputFormat string

// Supported output formats.
const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	return f == OutputFormatText || f == OutputFormatJSON
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatText:
		return "Text (separated values)"
	case OutputFormatJSON:
		return "JSON"
	default:
		return unknownDescription
	}
}
