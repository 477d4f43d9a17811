package mcp

import (
	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
	"github.com/docsift/docsift/internal/core/ports/driving"
)

// AnalyzerFactory builds an analyzer for one call's settings.
type AnalyzerFactory func(settings domain.AnalysisSettings) (driving.Analyzer, error)

// Ports aggregates everything the MCP server drives.
// This provides a single injection point for dependency injection.
type Ports struct {
	// NewAnalyzer builds the pipeline for one analyze call.
	NewAnalyzer AnalyzerFactory

	// Settings supplies the base settings a call starts from.
	Settings func() domain.AnalysisSettings

	// Registry scans the documents folder for the analyze tool.
	Registry driven.ProviderRegistry

	// History serves the report resources. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.NewAnalyzer == nil {
		return ErrMissingAnalyzer
	}
	if p.Settings == nil {
		return ErrMissingSettings
	}
	if p.Registry == nil {
		return ErrMissingRegistry
	}
	// History is optional; the report resources answer empty.
	return nil
}
