package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/radix"
)

// SortInput is the input schema for the radix_sort tool.
type SortInput struct {
	Values []int64 `json:"values" jsonschema:"the non-negative integers to sort"`
	Trace  bool    `json:"trace,omitempty" jsonschema:"include the sequence after every counting pass"`
}

// SortOutput is the output schema for the radix_sort tool.
type SortOutput struct {
	RunID  string       `json:"run_id"`
	Sorted []int64      `json:"sorted"`
	Max    int64        `json:"max"`
	Passes int          `json:"passes"`
	Trace  []PassOutput `json:"trace,omitempty"`
}

// PassOutput describes one counting pass.
type PassOutput struct {
	Index    int     `json:"index"`
	Exponent int64   `json:"exponent"`
	Counts   []int   `json:"counts"`
	Values   []int64 `json:"values"`
}

// SortRecordsInput is the input schema for the radix_sort_records tool.
type SortRecordsInput struct {
	Records []domain.Record `json:"records" jsonschema:"records with a non-negative integer key and a string payload"`
}

// SortRecordsOutput is the output schema for the radix_sort_records tool.
type SortRecordsOutput struct {
	Records []domain.Record `json:"records"`
}

// DigitInput is the input schema for the radix_digit tool.
type DigitInput struct {
	Value    int64 `json:"value" jsonschema:"a non-negative integer"`
	Position int   `json:"position" jsonschema:"zero-based decimal digit position, 0 is the ones digit"`
}

// DigitOutput is the output schema for the radix_digit tool.
type DigitOutput struct {
	Digit    int   `json:"digit"`
	Exponent int64 `json:"exponent"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "radix_sort",
		Description: "Sort non-negative integers ascending with a base-10 LSD radix sort",
	}, s.handleSort)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "radix_sort_records",
		Description: "Stably sort records by their non-negative integer key",
	}, s.handleSortRecords)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "radix_digit",
		Description: "Return the bucket digit a value falls into at a given decimal position",
	}, s.handleDigit)
}

// handleSort handles the radix_sort tool invocation.
func (s *Server) handleSort(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SortInput,
) (*mcp.CallToolResult, SortOutput, error) {
	run, err := s.ports.Sort.Sort(ctx, domain.SortRequest{
		Values: input.Values,
		Source: "mcp",
		Trace:  input.Trace,
	})
	if err != nil {
		return nil, SortOutput{}, err
	}

	output := SortOutput{
		RunID:  run.ID,
		Sorted: run.Output,
		Max:    run.Max,
		Passes: run.Passes,
	}
	for _, p := range run.Trace {
		output.Trace = append(output.Trace, PassOutput{
			Index:    p.Index,
			Exponent: p.Exponent,
			Counts:   p.Counts,
			Values:   p.Snapshot,
		})
	}

	return nil, output, nil
}

// handleSortRecords handles the radix_sort_records tool invocation.
func (s *Server) handleSortRecords(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SortRecordsInput,
) (*mcp.CallToolResult, SortRecordsOutput, error) {
	records, err := s.ports.Sort.SortRecords(ctx, input.Records)
	if err != nil {
		return nil, SortRecordsOutput{}, err
	}
	return nil, SortRecordsOutput{Records: records}, nil
}

// handleDigit handles the radix_digit tool invocation.
func (s *Server) handleDigit(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DigitInput,
) (*mcp.CallToolResult, DigitOutput, error) {
	if input.Value < 0 {
		return nil, DigitOutput{}, &domain.ValueError{Index: 0, Value: input.Value, Err: domain.ErrNegativeValue}
	}

	exp, err := radix.Exponent(input.Position)
	if err != nil {
		return nil, DigitOutput{}, fmt.Errorf("digit position %d: %w", input.Position, err)
	}

	return nil, DigitOutput{
		Digit:    radix.Digit(input.Value, exp),
		Exponent: exp,
	}, nil
}
