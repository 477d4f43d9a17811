package driving

import (
	"context"

	"github.com/docsift/docsift/internal/core/domain"
)

// AnalysisResult is a completed pipeline run. Ranked carries the scored
// sections behind the report so callers can show similarities and
// content previews; both are ordered by descending relevance.
type AnalysisResult struct {
	Report domain.Report
	Ranked []domain.ScoredSection
}

// Analyzer runs the full pipeline for one task: load and segment the
// requested documents, rank the sections against the job to be done,
// and assemble the report.
type Analyzer interface {
	Analyze(ctx context.Context, task domain.Task) (*AnalysisResult, error)
}
