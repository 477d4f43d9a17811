package cli

// Shared test doubles. Tests swap the injected services they need and
// restore them through the returned cleanup.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driving"
	"github.com/docsift/docsift/internal/extractors"
)

// setupTestServices installs working doubles for every injected
// service and returns a cleanup restoring the previous set.
func setupTestServices() func() {
	oldConfig := configStore
	oldHistory := historyService
	oldFactory := newAnalyzer
	oldRegistry := registry

	configStore = newMockConfigStore()
	historyService = newMockHistoryService()
	newAnalyzer = func(_ domain.AnalysisSettings) (driving.Analyzer, error) {
		return &mockAnalyzer{}, nil
	}
	registry = extractors.Defaults()

	return func() {
		configStore = oldConfig
		historyService = oldHistory
		newAnalyzer = oldFactory
		registry = oldRegistry
	}
}

// resetAnalyzeFlags restores analyze command flags to their defaults.
// Flag variables persist across Execute calls within the test binary.
func resetAnalyzeFlags() {
	analyzeInput = ""
	analyzeFolder = ""
	analyzeOutput = defaultReportFile
	analyzeTop = 0
	analyzeMinSim = minSimUnset
	analyzePersona = ""
	analyzeTask = ""
	analyzeDescription = ""
	analyzeJSON = false
	analyzeWatch = false
}

// resetSetupFlags restores setup command flags to their defaults.
func resetSetupFlags() {
	setupFolder = ""
	setupOutput = defaultTaskFile
	setupPlain = false
}

// Config store double.

type mockConfigStore struct {
	values map[string]any
	path   string
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{
		values: make(map[string]any),
		path:   "/tmp/docsift-test-config.toml",
	}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	if v, ok := m.values[key].(int); ok {
		return v
	}
	return 0
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	switch v := m.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if v, ok := m.values[key].(bool); ok {
		return v
	}
	return false
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }
func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return m.path }

// History service doubles.

type mockHistoryService struct {
	records []domain.ReportRecord
}

func newMockHistoryService() *mockHistoryService {
	return &mockHistoryService{
		records: []domain.ReportRecord{
			{
				ID:            "run-1",
				CreatedAt:     time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
				Persona:       "Travel Planner",
				Task:          "Plan a trip",
				DocumentCount: 3,
				Report: domain.Report{
					Metadata: domain.ReportMetadata{
						InputDocuments: []string{"guide.pdf"},
						Persona:        "Travel Planner",
						JobToBeDone:    "Plan a trip",
					},
				},
			},
		},
	}
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.ReportRecord, error) {
	if limit > 0 && limit < len(m.records) {
		return m.records[:limit], nil
	}
	return m.records, nil
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.ReportRecord, error) {
	for i := range m.records {
		if m.records[i].ID == id {
			return &m.records[i], nil
		}
	}
	return nil, fmt.Errorf("run %s: %w", id, domain.ErrNotFound)
}

func (m *mockHistoryService) Delete(_ context.Context, id string) error {
	for i := range m.records {
		if m.records[i].ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type mockHistoryServiceError struct{}

func (m *mockHistoryServiceError) List(_ context.Context, _ int) ([]domain.ReportRecord, error) {
	return nil, errors.New("store unavailable")
}

func (m *mockHistoryServiceError) Get(_ context.Context, _ string) (*domain.ReportRecord, error) {
	return nil, errors.New("store unavailable")
}

func (m *mockHistoryServiceError) Delete(_ context.Context, _ string) error {
	return errors.New("store unavailable")
}

// Analyzer doubles.

type mockAnalyzer struct{}

func (m *mockAnalyzer) Analyze(_ context.Context, task domain.Task) (*driving.AnalysisResult, error) {
	section := domain.Section{
		Document:   "guide.pdf",
		Title:      "Coastal Adventures",
		Content:    "Beaches and coves along the coast, with hidden swimming spots reachable only on foot.",
		PageNumber: 2,
	}
	report := domain.Report{
		Metadata: domain.ReportMetadata{
			InputDocuments:      []string{"guide.pdf"},
			Persona:             task.Persona.Role,
			JobToBeDone:         task.JobToBeDone.Task,
			ProcessingTimestamp: "2025-03-10T14:30:00Z",
			Description:         task.Description(),
		},
		ExtractedSections: []domain.ExtractedSection{
			{Document: "guide.pdf", SectionTitle: "Coastal Adventures", ImportanceRank: 1, PageNumber: 2},
		},
		SubsectionAnalysis: []domain.SubsectionAnalysis{
			{Document: "guide.pdf", RefinedText: "Beaches and coves along the coast.", PageNumber: 2},
		},
	}
	return &driving.AnalysisResult{
		Report: report,
		Ranked: []domain.ScoredSection{{Section: section, Similarity: 0.42}},
	}, nil
}

type mockAnalyzerError struct{}

func (m *mockAnalyzerError) Analyze(_ context.Context, _ domain.Task) (*driving.AnalysisResult, error) {
	return nil, domain.ErrEmbeddingUnavailable
}
