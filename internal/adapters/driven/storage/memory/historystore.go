package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// Entries live for the lifetime of the process.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Save records a search. An entry with an existing ID replaces it.
func (s *HistoryStore) Save(_ context.Context, entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == entry.ID {
			s.entries[i] = entry
			return nil
		}
	}
	s.entries = append(s.entries, entry)
	return nil
}

// List returns the most recent entries, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	result := slices.Clone(s.entries)
	s.mu.RUnlock()

	// Stable so entries with equal timestamps keep insertion order reversed.
	slices.Reverse(result)
	slices.SortStableFunc(result, func(a, b domain.HistoryEntry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	if result == nil {
		result = []domain.HistoryEntry{}
	}
	return result, nil
}

// Clear removes every entry.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}

// Close is a no-op for the memory store.
func (s *HistoryStore) Close() error {
	return nil
}
