// Package tui provides an interactive terminal user interface for gsearch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/gsearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs searches against every kind.
	Search driving.SearchService

	// History lists and clears past searches. Nil when history is disabled.
	History driving.HistoryService

	// ResultAction opens and copies result URLs. Optional.
	ResultAction driving.ResultActionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchService,
	history driving.HistoryService,
	resultAction driving.ResultActionService,
) *Ports {
	return &Ports{
		Search:       search,
		History:      history,
		ResultAction: resultAction,
	}
}

// Validate ensures all required ports are set.
// Only the search service is required.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
