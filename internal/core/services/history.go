package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
	"github.com/docsift/docsift/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// DefaultHistoryLimit bounds listings when the caller does not ask for
// a specific count.
const DefaultHistoryLimit = 20

// HistoryService exposes stored analysis runs.
type HistoryService struct {
	store driven.ReportStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.ReportStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns the most recent runs, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.ReportRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	records, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return records, nil
}

// Get retrieves one run by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.ReportRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidInput
	}
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return record, nil
}

// Delete removes one run by ID.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidInput
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete run %s: %w", id, err)
	}
	return nil
}
