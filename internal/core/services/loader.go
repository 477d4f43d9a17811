package services

import (
	"context"
	"os"
	"path/filepath"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/logger"
)

// loadSections builds the section pool for the requested documents.
//
// Documents are processed in task order and pages in page order, and
// each section's Index records its position in that sequence, so the
// pool order is deterministic and ranking ties break the same way on
// every run. No per-document failure stops the pool from being built:
// missing files and unsupported types are skipped, unreadable documents
// contribute zero pages.
func (s *AnalysisService) loadSections(ctx context.Context, docs []domain.DocumentRef) []domain.Section {
	var pool []domain.Section

	for _, doc := range docs {
		path := filepath.Join(s.settings.Folder, doc.Filename)

		if _, err := os.Stat(path); err != nil {
			logger.Warn("File not found: %s", doc.Filename)
			continue
		}

		provider, err := s.registry.ForFile(doc.Filename)
		if err != nil {
			logger.Warn("Unsupported file type: %s", doc.Filename)
			continue
		}

		pages, err := provider.Pages(ctx, path)
		if err != nil {
			logger.Warn("Failed to read %s: %v", doc.Filename, err)
			continue
		}

		for _, page := range pages {
			for _, section := range s.extractor.Extract(page.Text, page.Number) {
				section.Document = doc.Filename
				section.Index = len(pool)
				pool = append(pool, section)
			}
		}
		logger.Debug("Processed %s: %d pages", doc.Filename, len(pages))
	}

	return pool
}
