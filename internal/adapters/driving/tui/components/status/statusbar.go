// Package status provides the status bar shown under the search and history views.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// State selects what the left side of the bar reports and which key
// hints the right side shows.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateError     State = "error"
	StateResults   State = "results"
	StateHistory   State = "history"
)

// Bar is a one-line status display. It is driven entirely through its
// setters; Update ignores every message.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	state   State
	message string
	kind    domain.Kind
	count   int
	width   int
}

// NewBar creates a status bar in the ready state for web searches.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, state: StateReady, kind: domain.KindWeb, width: 80}
}

func (s *Bar) Init() tea.Cmd { return nil }

func (s *Bar) Update(tea.Msg) (*Bar, tea.Cmd) { return s, nil }

// View renders the status on the left and key hints on the right,
// padded to the bar width.
func (s *Bar) View() string {
	left, right := s.status(), s.hints()
	gap := max(s.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *Bar) status() string {
	st := s.styles
	switch s.state {
	case StateSearching:
		return st.Muted.Render(fmt.Sprintf("Searching %s...", s.kind))
	case StateError:
		if s.message == "" {
			return st.Error.Render("Error")
		}
		return st.Error.Render("Error: " + s.message)
	case StateHistory:
		return st.Normal.Render(fmt.Sprintf("%d searches", s.count))
	}

	switch {
	case s.message != "":
		return st.Success.Render(s.message)
	case s.count > 0:
		return st.Normal.Render(fmt.Sprintf("%d %s results", s.count, s.kind))
	case s.state == StateResults:
		return st.Muted.Render(fmt.Sprintf("No %s results", s.kind))
	default:
		return st.Muted.Render("Ready")
	}
}

func (s *Bar) hints() string {
	var bindings []key.Binding
	switch {
	case s.state == StateHistory:
		bindings = s.keymap.HistoryHelp()
	case s.state == StateResults && s.count > 0:
		bindings = s.keymap.ResultsHelp()
	default:
		bindings = s.keymap.ShortHelp()
	}

	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.Help().Key + ": " + b.Help().Desc
	}
	return s.styles.Muted.Render(strings.Join(parts, " | "))
}

func (s *Bar) SetState(state State) { s.state = state }
func (s *Bar) State() State { return s.state }
func (s *Bar) SetMessage(message string) { s.message = message }
func (s *Bar) Message() string { return s.message }
func (s *Bar) SetKind(kind domain.Kind) { s.kind = kind }
func (s *Bar) Kind() domain.Kind { return s.kind }
func (s *Bar) SetResultCount(count int) { s.count = count }
func (s *Bar) ResultCount() int { return s.count }
func (s *Bar) SetWidth(width int) { s.width = width }
func (s *Bar) Width() int { return s.width }

// Clear returns the bar to the ready state. The kind is kept.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.count = 0
}
