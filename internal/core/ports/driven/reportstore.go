package driven

import (
	"context"

	"github.com/docsift/docsift/internal/core/domain"
)

// ReportStore persists analysis runs for the history command.
// Stored reports are output artifacts; the section pool itself is never
// persisted.
type ReportStore interface {
	// Save stores one completed run.
	Save(ctx context.Context, record domain.ReportRecord) error

	// Get retrieves a run by ID.
	// Returns domain.ErrNotFound when the ID is unknown.
	Get(ctx context.Context, id string) (*domain.ReportRecord, error)

	// List returns the most recent runs, newest first, at most limit.
	List(ctx context.Context, limit int) ([]domain.ReportRecord, error)

	// Delete removes a run by ID.
	// Returns domain.ErrNotFound when the ID is unknown.
	Delete(ctx context.Context, id string) error
}

// VectorCache memoises embedding calls across runs, keyed by a content
// hash that includes the model name. A miss is reported via
// domain.ErrNotFound.
type VectorCache interface {
	// Get returns the cached vector for key.
	Get(ctx context.Context, key string) ([]float32, error)

	// Put stores the vector for key. Existing entries are replaced.
	Put(ctx context.Context, key, model string, vector []float32) error
}
