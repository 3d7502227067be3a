package driving

import (
	"context"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// HistoryService exposes past searches.
type HistoryService interface {
	// List returns the most recent searches, newest first.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear forgets every recorded search.
	Clear(ctx context.Context) error
}
