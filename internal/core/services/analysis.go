package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
	"github.com/docsift/docsift/internal/core/ports/driving"
	"github.com/docsift/docsift/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.Analyzer = (*AnalysisService)(nil)

// AnalysisService runs the document analysis pipeline: load and segment
// the requested documents, rank every section against the job to be
// done, and assemble the ranked report.
type AnalysisService struct {
	registry  driven.ProviderRegistry
	extractor driven.SectionExtractor
	embedder  driven.EmbeddingService
	settings  domain.AnalysisSettings

	reportStore driven.ReportStore
}

// NewAnalysisService creates a new analysis service. Settings must be
// validated by the caller; they are treated as immutable for the
// lifetime of the service.
func NewAnalysisService(
	registry driven.ProviderRegistry,
	extractor driven.SectionExtractor,
	embedder driven.EmbeddingService,
	settings domain.AnalysisSettings,
) *AnalysisService {
	return &AnalysisService{
		registry:  registry,
		extractor: extractor,
		embedder:  embedder,
		settings:  settings,
	}
}

// SetReportStore enables run history persistence. Optional: without a
// store, completed runs are not recorded.
func (s *AnalysisService) SetReportStore(store driven.ReportStore) {
	s.reportStore = store
}

// Analyze runs the full pipeline for one task.
//
// Per-document problems (missing file, unsupported type, unreadable
// content) are logged and skipped. An empty section pool and an
// unreachable embedding service abort the run: there is nothing to
// rank, or no way to rank honestly.
func (s *AnalysisService) Analyze(ctx context.Context, task domain.Task) (*driving.AnalysisResult, error) {
	logger.Section("Document Analysis")

	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("validate task: %w", err)
	}
	if err := s.settings.Validate(); err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}

	// Check the embedding service before doing any extraction work.
	if err := s.embedder.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}
	logger.Debug("Embedding service ready: model=%s dims=%d", s.embedder.ModelName(), s.embedder.Dimensions())

	sections := s.loadSections(ctx, task.Documents)
	logger.Info("Extracted %d sections from %d documents", len(sections), len(task.Documents))

	ranked, err := s.rankSections(ctx, task.JobToBeDone.Task, sections)
	if err != nil {
		return nil, err
	}
	logger.Info("Ranked %d relevant sections", len(ranked))

	report := s.assembleReport(task, ranked)

	if s.reportStore != nil {
		if err := s.saveRun(ctx, task, report); err != nil {
			// History is best effort; the report itself is already built.
			logger.Warn("Failed to record run history: %v", err)
		}
	}

	return &driving.AnalysisResult{Report: report, Ranked: ranked}, nil
}

// saveRun records one completed run in the report store.
func (s *AnalysisService) saveRun(ctx context.Context, task domain.Task, report domain.Report) error {
	record := domain.ReportRecord{
		ID:            uuid.New().String(),
		CreatedAt:     time.Now(),
		Persona:       task.Persona.Role,
		Task:          task.JobToBeDone.Task,
		DocumentCount: len(task.Documents),
		Report:        report,
	}
	return s.reportStore.Save(ctx, record)
}
