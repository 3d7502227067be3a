// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// KindChanged is sent when the active search kind changes.
type KindChanged struct {
	Kind domain.Kind
}

// SearchRequested is a command to perform a search.
type SearchRequested struct {
	Kind  domain.Kind
	Query string
}

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Kind  domain.Kind
	Query string
	Items []domain.Item
	Err   error
}

// ActionCompleted reports the outcome of an action on a result.
type ActionCompleted struct {
	Action string
	Err    error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the search input and results view.
	ViewSearch
	// ViewHistory lists past searches.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// HistoryLoaded carries recorded searches from the service.
type HistoryLoaded struct {
	Entries []domain.HistoryEntry
	Err     error
}

// HistoryCleared signals the history was cleared.
type HistoryCleared struct {
	Err error
}
