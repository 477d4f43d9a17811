package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docsift/docsift/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for docsift resources.
	uriScheme = "docsift://"

	// reportListLimit caps how many stored runs the list resource returns.
	reportListLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing stored analysis runs.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "reports",
		Name:        "reports",
		Description: "List of stored analysis runs, newest first",
		MIMEType:    "application/json",
	}, s.handleReportsResource)

	// Template for a single stored report.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "reports/{reportId}",
		Name:        "report",
		Description: "Full report of a stored analysis run",
		MIMEType:    "application/json",
	}, s.handleReportResource)
}

// handleReportsResource returns a list of stored analysis runs.
func (s *Server) handleReportsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	records, err := s.ports.History.List(ctx, reportListLimit)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	// Build simplified run list.
	type runInfo struct {
		ID        string `json:"id"`
		CreatedAt string `json:"created_at"`
		Persona   string `json:"persona"`
		Task      string `json:"task"`
		Documents int    `json:"documents"`
	}

	infos := make([]runInfo, len(records))
	for i := range records {
		infos[i] = runInfo{
			ID:        records[i].ID,
			CreatedAt: records[i].CreatedAt.Format(time.RFC3339),
			Persona:   records[i].Persona,
			Task:      records[i].Task,
			Documents: records[i].DocumentCount,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling reports: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleReportResource returns the full report of one stored run.
func (s *Server) handleReportResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract reportId from URI: docsift://reports/{reportId}
	reportID := extractReportID(req.Params.URI)
	if reportID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.History.Get(ctx, reportID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting report: %w", err)
	}

	data, err := json.MarshalIndent(record.Report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling report: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractReportID extracts the report ID from a URI like docsift://reports/{reportId}.
func extractReportID(uri string) string {
	const prefix = uriScheme + "reports/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
