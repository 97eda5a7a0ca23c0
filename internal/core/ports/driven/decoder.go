package driven

import (
	"io"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// SequenceDecoder reads a sequence of integers in a given encoding.
type SequenceDecoder interface {
	// Decode parses every value in r.
	// Returns domain.ErrUnsupportedType for unknown formats and
	// domain.ErrInvalidInput for malformed content.
	Decode(r io.Reader, format domain.InputFormat) ([]int64, error)

	// DecodeRecords parses keyed records. Text input is one "key payload"
	// pair per line.
	DecodeRecords(r io.Reader, format domain.InputFormat) ([]domain.Record, error)
}
