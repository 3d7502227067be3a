// Package history provides the search history view for the TUI.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driving"
)

// Limit is the number of entries the view loads.
const Limit = 50

// ErrHistoryDisabled is shown when no history service is configured.
var ErrHistoryDisabled = errors.New("search history is disabled")

// View lists past searches. Selecting an entry runs it again.
type View struct {
	styles         *styles.Styles
	statusbar      *status.Bar
	historyService driving.HistoryService
	ctx            context.Context

	entries  []domain.HistoryEntry
	selected int
	width    int
	height   int
	ready    bool
	err      error
	loading  bool
}

// NewView creates a new history view.
func NewView(s *styles.Styles, historyService driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	bar := status.NewBar(s, nil)
	bar.SetState(status.StateHistory)

	return &View{
		styles:         s,
		statusbar:      bar,
		historyService: historyService,
		ctx:            context.Background(),
		entries:        []domain.HistoryEntry{},
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads the history.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadHistory()
}

// loadHistory returns a command that loads entries from the service.
func (v *View) loadHistory() tea.Cmd {
	ctx := v.ctx
	service := v.historyService

	return func() tea.Msg {
		if service == nil {
			return messages.HistoryLoaded{Err: ErrHistoryDisabled}
		}

		entries, err := service.List(ctx, Limit)
		return messages.HistoryLoaded{Entries: entries, Err: err}
	}
}

// clearHistory returns a command that forgets every entry.
func (v *View) clearHistory() tea.Cmd {
	ctx := v.ctx
	service := v.historyService

	return func() tea.Msg {
		if service == nil {
			return messages.HistoryCleared{Err: ErrHistoryDisabled}
		}
		return messages.HistoryCleared{Err: service.Clear(ctx)}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.HistoryLoaded:
		v.loading = false
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.entries = msg.Entries
		if v.entries == nil {
			v.entries = []domain.HistoryEntry{}
		}
		v.selected = min(v.selected, max(len(v.entries)-1, 0))
		v.err = nil
		v.statusbar.SetState(status.StateHistory)
		v.statusbar.SetMessage("")
		v.statusbar.SetResultCount(len(v.entries))
		return v, nil

	case messages.HistoryCleared:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		// Reload after clearing
		v.loading = true
		return v, v.loadHistory()
	}

	return v, nil
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.entries)-1 {
			v.selected++
		}
	case "enter":
		// Run the selected search again
		if entry, ok := v.SelectedEntry(); ok {
			return v, func() tea.Msg {
				return messages.SearchRequested{Kind: entry.Kind, Query: entry.Keyword}
			}
		}
	case "c":
		return v, v.clearHistory()
	case "r":
		v.loading = true
		return v, v.loadHistory()
	case "q":
		return v, tea.Quit
	}

	return v, nil
}

// View renders the history view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("History"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading history..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	case len(v.entries) == 0:
		b.WriteString(v.styles.Muted.Render("No searches yet."))
		b.WriteString("\n")
	default:
		start, end := v.visibleRange()
		for i := start; i < end; i++ {
			b.WriteString(v.renderEntry(i, &v.entries[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())

	return b.String()
}

// visibleRange returns the half-open range of entries that fit on
// screen, keeping the selection visible.
func (v *View) visibleRange() (start, end int) {
	visible := max(v.height-6, 1)
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	return start, min(start+visible, len(v.entries))
}

// renderEntry renders a single entry line.
func (v *View) renderEntry(index int, entry *domain.HistoryEntry) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	// Format: > [kind] keyword  returned/requested  timestamp
	kindStr := fmt.Sprintf("[%s]", entry.Kind)
	counts := fmt.Sprintf("%d/%d", entry.Returned, entry.Requested)
	when := entry.CreatedAt.Local().Format("2006-01-02 15:04")

	keyword := entry.Keyword
	maxKeywordLen := max(v.width-len(kindStr)-len(counts)-len(when)-12, 10)
	if r := []rune(keyword); len(r) > maxKeywordLen {
		keyword = string(r[:maxKeywordLen-3]) + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-9s %-*s %7s  %s",
			indicator, kindStr, maxKeywordLen, keyword, counts, when))
	}
	return v.styles.Normal.Render(indicator) +
		v.styles.Subtitle.Render(fmt.Sprintf("%-9s ", kindStr)) +
		v.styles.Normal.Render(fmt.Sprintf("%-*s ", maxKeywordLen, keyword)) +
		v.styles.Muted.Render(fmt.Sprintf("%7s  %s", counts, when))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Entries returns the loaded entries.
func (v *View) Entries() []domain.HistoryEntry {
	return v.entries
}

// SelectedIndex returns the currently selected entry index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedEntry returns the currently selected entry.
func (v *View) SelectedEntry() (domain.HistoryEntry, bool) {
	if v.selected < 0 || v.selected >= len(v.entries) {
		return domain.HistoryEntry{}, false
	}
	return v.entries[v.selected], true
}

// Loading reports whether a load is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
