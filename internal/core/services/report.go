package services

import (
	"time"

	"github.com/docsift/docsift/internal/core/domain"
)

// assembleReport builds the output report from the ranked sections.
// The extracted-section and subsection-analysis arrays are parallel:
// entry i of both describes the section ranked i+1.
func (s *AnalysisService) assembleReport(task domain.Task, ranked []domain.ScoredSection) domain.Report {
	metadata := domain.ReportMetadata{
		InputDocuments:      make([]string, len(task.Documents)),
		Persona:             task.Persona.Role,
		JobToBeDone:         task.JobToBeDone.Task,
		ProcessingTimestamp: time.Now().Format(time.RFC3339),
		Description:         task.Description(),
	}
	for i, doc := range task.Documents {
		metadata.InputDocuments[i] = doc.Filename
	}

	extracted := make([]domain.ExtractedSection, len(ranked))
	analysis := make([]domain.SubsectionAnalysis, len(ranked))
	for i, item := range ranked {
		extracted[i] = domain.ExtractedSection{
			Document:       item.Section.Document,
			SectionTitle:   item.Section.Title,
			ImportanceRank: i + 1,
			PageNumber:     item.Section.PageNumber,
		}
		analysis[i] = domain.SubsectionAnalysis{
			Document:    item.Section.Document,
			RefinedText: domain.RefineText(item.Section.Content, s.settings.MaxRefinedTextLength),
			PageNumber:  item.Section.PageNumber,
		}
	}

	return domain.Report{
		Metadata:           metadata,
		ExtractedSections:  extracted,
		SubsectionAnalysis: analysis,
	}
}
