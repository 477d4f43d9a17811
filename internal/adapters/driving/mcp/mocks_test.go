package mcp

import (
	"context"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
	"github.com/docsift/docsift/internal/core/ports/driving"
)

// mockAnalyzer is a mock implementation of driving.Analyzer.
type mockAnalyzer struct {
	result  *driving.AnalysisResult
	err     error
	gotTask domain.Task
}

func (m *mockAnalyzer) Analyze(_ context.Context, task domain.Task) (*driving.AnalysisResult, error) {
	m.gotTask = task
	return m.result, m.err
}

// mockRegistry is a mock implementation of driven.ProviderRegistry.
type mockRegistry struct {
	extensions []string
}

func (m *mockRegistry) ForFile(_ string) (driven.PageTextProvider, error) {
	return nil, domain.ErrUnsupportedType
}

func (m *mockRegistry) SupportedExtensions() []string {
	return m.extensions
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	records []domain.ReportRecord
	record  *domain.ReportRecord
	err     error
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.ReportRecord, error) {
	return m.records, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.ReportRecord, error) {
	return m.record, m.err
}

func (m *mockHistoryService) Delete(_ context.Context, _ string) error {
	return m.err
}

// validPorts builds Ports that pass validation, backed by the given analyzer.
func validPorts(analyzer driving.Analyzer) *Ports {
	return &Ports{
		NewAnalyzer: func(_ domain.AnalysisSettings) (driving.Analyzer, error) {
			return analyzer, nil
		},
		Settings: domain.DefaultAnalysisSettings,
		Registry: &mockRegistry{extensions: []string{".txt"}},
	}
}
