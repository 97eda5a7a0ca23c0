package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for radix resources.
	uriScheme = "radix://"

	// historyLimit caps the runs listed by the history resource.
	historyLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Most recent sort runs, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}",
		Name:        "run",
		Description: "Input, output and pass trace of a recorded sort run",
		MIMEType:    "application/json",
	}, s.handleRunResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current radix settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

type runSummary struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Count     int       `json:"count"`
	Max       int64     `json:"max"`
	Passes    int       `json:"passes"`
	CreatedAt time.Time `json:"created_at"`
}

type runDetail struct {
	runSummary
	Input      []int64      `json:"input"`
	Output     []int64      `json:"output"`
	DurationMS float64      `json:"duration_ms"`
	Trace      []PassOutput `json:"trace,omitempty"`
}

func summarise(run *domain.SortRun) runSummary {
	return runSummary{
		ID:        run.ID,
		Source:    run.Source,
		Count:     run.Len(),
		Max:       run.Max,
		Passes:    run.Passes,
		CreatedAt: run.CreatedAt,
	}
}

// handleHistoryResource returns the recent run summaries.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	runs, err := s.ports.Sort.History(ctx, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	summaries := make([]runSummary, len(runs))
	for i := range runs {
		summaries[i] = summarise(&runs[i])
	}

	return jsonResult(req.Params.URI, summaries)
}

// handleRunResource returns a single run in full.
func (s *Server) handleRunResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract runId from URI: radix://runs/{runId}
	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	run, err := s.ports.Sort.Run(ctx, runID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}

	detail := runDetail{
		runSummary: summarise(run),
		Input:      run.Input,
		Output:     run.Output,
		DurationMS: float64(run.Duration) / float64(time.Millisecond),
	}
	for _, p := range run.Trace {
		detail.Trace = append(detail.Trace, PassOutput{
			Index:    p.Index,
			Exponent: p.Exponent,
			Counts:   p.Counts,
			Values:   p.Snapshot,
		})
	}

	return jsonResult(req.Params.URI, detail)
}

// handleSettingsResource returns the current settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	return jsonResult(req.Params.URI, map[string]any{
		"output.format":    settings.Output.Format,
		"output.separator": settings.Output.Separator,
		"history.enabled":  settings.History.Enabled,
		"history.limit":    settings.History.Limit,
		"trace.enabled":    settings.Trace.Enabled,
	})
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRunID extracts the run ID from a URI like radix://runs/{runId}.
func extractRunID(uri string) string {
	const prefix = uriScheme + "runs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
