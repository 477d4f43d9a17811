package driving

import (
	"context"

	"github.com/docsift/docsift/internal/core/domain"
)

// HistoryService exposes stored analysis runs to external actors.
type HistoryService interface {
	// List returns the most recent runs, newest first, at most limit.
	List(ctx context.Context, limit int) ([]domain.ReportRecord, error)

	// Get retrieves one run by ID.
	Get(ctx context.Context, id string) (*domain.ReportRecord, error)

	// Delete removes one run by ID.
	Delete(ctx context.Context, id string) error
}
