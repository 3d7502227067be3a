package services

import (
	"context"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gsearch/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes recorded searches.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a history service. store may be nil when
// history is disabled.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns the most recent searches, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx, limit)
}

// Clear forgets every recorded search.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Clear(ctx)
}
