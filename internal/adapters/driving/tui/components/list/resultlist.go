// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// linesPerItem is the rendered height of one result: title, URL, summary.
const linesPerItem = 3

// ResultList displays search results in a navigable list.
type ResultList struct {
	items    []domain.Item
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		items:    nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.items) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.items)*linesPerItem+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.items)))
	lines = append(lines, header, "")

	visibleCount := (r.height - 4) / linesPerItem
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := min(start+visibleCount, len(r.items))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderItem(i, r.items[i]))
	}

	return strings.Join(lines, "\n")
}

// renderItem formats a single result as title, URL and summary lines.
func (r *ResultList) renderItem(index int, item domain.Item) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := item.Title()
	if title == "" {
		title = "(Untitled)"
	}
	title = truncate(title, max(r.width-6, 10))

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(indicator + title)
	} else {
		titleLine = r.styles.Normal.Render(indicator + title)
	}

	maxDetail := max(r.width-6, 20)
	urlLine := r.styles.Link.Render("    " + truncate(item.URL(), maxDetail))
	summaryLine := r.styles.Muted.Render("    " + truncate(domain.Summary(item), maxDetail))

	return titleLine + "\n" + urlLine + "\n" + summaryLine
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// SetItems replaces the list contents and resets the selection.
func (r *ResultList) SetItems(items []domain.Item) {
	r.items = items
	r.selected = 0
}

// Items returns the current results.
func (r *ResultList) Items() []domain.Item {
	return r.items
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.items) {
		r.selected = index
	}
}

// SelectedItem returns the currently selected result, or nil if none.
func (r *ResultList) SelectedItem() domain.Item {
	if len(r.items) == 0 || r.selected < 0 || r.selected >= len(r.items) {
		return nil
	}
	return r.items[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.items)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.items)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.items) == 0
}
