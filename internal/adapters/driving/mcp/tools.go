package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/extractors"
)

// AnalyzeInput is the input schema for the analyze tool.
type AnalyzeInput struct {
	Persona     string `json:"persona,omitempty" jsonschema:"who the analysis is for, e.g. Travel Planner (default Analyst)"`
	Task        string `json:"task" jsonschema:"the job to be done, e.g. Plan a 4 day trip for a group of 10 college friends"`
	Description string `json:"description,omitempty" jsonschema:"optional run description"`
	Folder      string `json:"folder,omitempty" jsonschema:"documents folder to scan (defaults to the configured folder)"`
	TopN        int    `json:"top_n,omitempty" jsonschema:"maximum number of ranked sections to return (default 5)"`
}

// AnalyzeOutput is the output schema for the analyze tool.
type AnalyzeOutput struct {
	Sections  []SectionOutput `json:"sections"`
	Documents int             `json:"documents"`
	Timestamp string          `json:"timestamp"`
}

// SectionOutput represents a single ranked section.
type SectionOutput struct {
	Document   string  `json:"document"`
	Title      string  `json:"title"`
	Page       int     `json:"page"`
	Rank       int     `json:"rank"`
	Similarity float64 `json:"similarity"`
	Content    string  `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze",
		Description: "Rank document sections by relevance to a persona and task",
	}, s.handleAnalyze)
}

// handleAnalyze handles the analyze tool invocation.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	if strings.TrimSpace(input.Task) == "" {
		return nil, AnalyzeOutput{}, errors.New("task is required")
	}
	persona := strings.TrimSpace(input.Persona)
	if persona == "" {
		persona = "Analyst"
	}
	description := input.Description
	if description == "" {
		description = "Document analysis for " + strings.ToLower(persona)
	}

	settings := s.ports.Settings()
	if input.Folder != "" {
		settings.Folder = input.Folder
	}
	if input.TopN > 0 {
		settings.TopN = input.TopN
	}
	settings = settings.Normalised()

	docs, err := extractors.ScanFolder(s.ports.Registry, settings.Folder)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}
	if len(docs) == 0 {
		return nil, AnalyzeOutput{}, fmt.Errorf("no supported documents in %s", settings.Folder)
	}

	task := domain.Task{
		ChallengeInfo: domain.NewChallengeInfo(description),
		Documents:     docs,
		Persona:       domain.Persona{Role: persona},
		JobToBeDone:   domain.JobToBeDone{Task: input.Task},
	}

	analyzer, err := s.ports.NewAnalyzer(settings)
	if err != nil {
		return nil, AnalyzeOutput{}, fmt.Errorf("configure analyzer: %w", err)
	}

	result, err := analyzer.Analyze(ctx, task)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	output := AnalyzeOutput{
		Sections:  make([]SectionOutput, len(result.Ranked)),
		Documents: len(docs),
		Timestamp: result.Report.Metadata.ProcessingTimestamp,
	}

	for i := range result.Ranked {
		section := result.Ranked[i].Section
		output.Sections[i] = SectionOutput{
			Document:   section.Document,
			Title:      section.Title,
			Page:       section.PageNumber,
			Rank:       i + 1,
			Similarity: result.Ranked[i].Similarity,
			Content:    domain.RefineText(section.Content, settings.MaxRefinedTextLength),
		}
	}

	return nil, output, nil
}
