package driven

import (
	"context"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// HistoryStore persists completed searches.
type HistoryStore interface {
	// Save records a search.
	Save(ctx context.Context, entry domain.HistoryEntry) error

	// List returns the most recent entries, newest first.
	// A limit of zero or less returns every entry.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// Close releases resources.
	Close() error
}
