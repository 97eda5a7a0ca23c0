package input

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.SequenceDecoder = (*Decoder)(nil)

// Decoder parses sequences and records in every domain.InputFormat.
//
// Structured formats accept either a bare array or a document with a
// top-level "values" (or "records") field. TOML has no bare arrays, so
// only the second form applies there.
type Decoder struct{}

// NewDecoder creates a new decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

type valuesDoc struct {
	Values []int64 `json:"values" yaml:"values" toml:"values"`
}

type recordsDoc struct {
	Records []domain.Record `json:"records" yaml:"records" toml:"records"`
}

// Decode parses every value in r.
func (d *Decoder) Decode(r io.Reader, format domain.InputFormat) ([]int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	switch format {
	case domain.InputFormatText:
		return decodeText(data)
	case domain.InputFormatJSON:
		var doc valuesDoc
		if err := decodeJSON(data, &doc.Values, &doc); err != nil {
			return nil, err
		}
		return orEmpty(doc.Values), nil
	case domain.InputFormatYAML:
		var doc valuesDoc
		if err := decodeYAML(data, &doc.Values, &doc); err != nil {
			return nil, err
		}
		return orEmpty(doc.Values), nil
	case domain.InputFormatTOML:
		var doc valuesDoc
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: toml: %v", domain.ErrInvalidInput, err)
		}
		return orEmpty(doc.Values), nil
	default:
		return nil, fmt.Errorf("%w: input format %q", domain.ErrUnsupportedType, format)
	}
}

// DecodeRecords parses keyed records in r.
func (d *Decoder) DecodeRecords(r io.Reader, format domain.InputFormat) ([]domain.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	switch format {
	case domain.InputFormatText:
		return decodeTextRecords(data)
	case domain.InputFormatJSON:
		var doc recordsDoc
		if err := decodeJSON(data, &doc.Records, &doc); err != nil {
			return nil, err
		}
		return orEmpty(doc.Records), nil
	case domain.InputFormatYAML:
		var doc recordsDoc
		if err := decodeYAML(data, &doc.Records, &doc); err != nil {
			return nil, err
		}
		return orEmpty(doc.Records), nil
	case domain.InputFormatTOML:
		var doc recordsDoc
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: toml: %v", domain.ErrInvalidInput, err)
		}
		return orEmpty(doc.Records), nil
	default:
		return nil, fmt.Errorf("%w: input format %q", domain.ErrUnsupportedType, format)
	}
}

// decodeText splits on whitespace and commas.
func decodeText(data []byte) ([]int64, error) {
	fields := strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	values := make([]int64, 0, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d (%q) is not an integer", domain.ErrInvalidInput, i, field)
		}
		values = append(values, v)
	}
	return values, nil
}

// decodeTextRecords reads one record per line: a key, then an optional
// payload that runs to the end of the line. Blank lines and lines starting
// with # are skipped.
func decodeTextRecords(data []byte) ([]domain.Record, error) {
	records := []domain.Record{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		keyField, payload := text, ""
		if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
			keyField, payload = text[:i], text[i+1:]
		}
		key, err := strconv.ParseInt(keyField, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: key %q is not an integer", domain.ErrInvalidInput, line, keyField)
		}
		records = append(records, domain.Record{Key: key, Payload: strings.TrimSpace(payload)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return records, nil
}

// decodeJSON decodes a bare array into list or an object into doc.
func decodeJSON(data []byte, list, doc any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	target := doc
	if trimmed[0] == '[' {
		target = list
	}
	if err := json.Unmarshal(trimmed, target); err != nil {
		return fmt.Errorf("%w: json: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// decodeYAML decodes a sequence node into list or a mapping node into doc.
func decodeYAML(data []byte, list, doc any) error {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("%w: yaml: %v", domain.ErrInvalidInput, err)
	}
	// Empty documents decode to a zero node.
	if len(node.Content) == 0 {
		return nil
	}

	root := node.Content[0]
	target := doc
	switch root.Kind {
	case yaml.SequenceNode:
		target = list
	case yaml.MappingNode:
	default:
		return fmt.Errorf("%w: yaml: expected a sequence or mapping", domain.ErrInvalidInput)
	}
	if err := root.Decode(target); err != nil {
		return fmt.Errorf("%w: yaml: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
