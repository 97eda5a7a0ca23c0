package tui

import "errors"

// ErrMissingSortService is returned when the sort service is not provided.
var ErrMissingSortService = errors.New("tui: sort service is required")

// ErrMissingDecoder is returned when the sequence decoder is not provided.
var ErrMissingDecoder = errors.New("tui: sequence decoder is required")
