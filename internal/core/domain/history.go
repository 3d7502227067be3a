package domain

import "time"

// HistoryEntry records one completed search.
type HistoryEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// Kind is the search service used.
	Kind Kind

	// Keyword is the query.
	Keyword string

	// Requested is the result count asked for.
	Requested int

	// Returned is the result count delivered.
	Returned int

	// Backend names the backend that served the search.
	Backend string

	// CreatedAt is when the search completed.
	CreatedAt time.Time
}
