package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/logger"
)

// rankSections scores every section against the task text and returns
// the most relevant ones, best first.
//
// The task is encoded once and the sections in one batch. Sections
// below the similarity floor are dropped; ties are broken by pool
// order, so equal scores rank in extraction order. At most TopN
// sections survive.
//
// An empty pool returns domain.ErrNoSections before any encoder call.
// Encoder failures abort the ranking; there is no partial result.
func (s *AnalysisService) rankSections(ctx context.Context, taskText string, sections []domain.Section) ([]domain.ScoredSection, error) {
	if len(sections) == 0 {
		return nil, domain.ErrNoSections
	}

	logger.Debug("Ranking %d sections against task", len(sections))

	taskVector, err := s.embedder.Embed(ctx, taskText)
	if err != nil {
		return nil, fmt.Errorf("embed task: %w", err)
	}

	texts := make([]string, len(sections))
	for i, section := range sections {
		texts[i] = section.CombinedText()
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed sections: %w", err)
	}
	if len(vectors) != len(sections) {
		return nil, fmt.Errorf("embed sections: got %d vectors for %d sections", len(vectors), len(sections))
	}

	scored := make([]domain.ScoredSection, 0, len(sections))
	for i, section := range sections {
		similarity := domain.CosineSimilarity(taskVector, vectors[i])
		if similarity >= s.settings.MinSimilarity {
			scored = append(scored, domain.ScoredSection{Section: section, Similarity: similarity})
		}
	}
	logger.Debug("%d sections above similarity floor %.2f", len(scored), s.settings.MinSimilarity)

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Similarity != scored[j].Similarity {
			return scored[i].Similarity > scored[j].Similarity
		}
		return scored[i].Section.Index < scored[j].Section.Index
	})

	if len(scored) > s.settings.TopN {
		scored = scored[:s.settings.TopN]
	}
	return scored, nil
}
