// Package menu provides the start screen of the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// Item is one menu entry. An entry with Quit set exits the app.
type Item struct {
	Label string
	View  messages.ViewType
	Quit  bool
}

var defaultItems = []Item{
	{Label: "Search", View: messages.ViewSearch},
	{Label: "History", View: messages.ViewHistory},
	{Label: "Help", View: messages.ViewHelp},
	{Label: "Quit", Quit: true},
}

// View is the start screen. Besides navigation it holds the kind the
// next search starts with, changed with h/l on the Search entry.
type View struct {
	styles        *styles.Styles
	items         []Item
	kinds         []domain.Kind
	kindIndex     int
	cursor        int
	width, height int
	ready         bool
}

// NewView creates the menu with the cursor on Search and web selected.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		items:  defaultItems,
		kinds:  domain.AllKinds(),
		width:  80,
		height: 24,
	}
}

func (v *View) Init() tea.Cmd { return nil }

// Update handles key presses and resizes.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		return v, v.handleKey(msg.String())
	}
	return v, nil
}

func (v *View) handleKey(k string) tea.Cmd {
	switch k {
	case "up", "k":
		v.cursor = max(v.cursor-1, 0)
	case "down", "j":
		v.cursor = min(v.cursor+1, len(v.items)-1)
	case "left", "h":
		v.shiftKind(-1)
	case "right", "l":
		v.shiftKind(1)
	case "enter":
		return v.choose(v.items[v.cursor])
	case "q":
		return tea.Quit
	}
	return nil
}

// shiftKind only acts while the cursor is on the search entry.
func (v *View) shiftKind(step int) {
	if v.items[v.cursor].View != messages.ViewSearch {
		return
	}
	n := len(v.kinds)
	v.kindIndex = ((v.kindIndex+step)%n + n) % n
}

func (v *View) choose(item Item) tea.Cmd {
	if item.Quit {
		return tea.Quit
	}
	changed := func() tea.Msg { return messages.ViewChanged{View: item.View} }
	if item.View != messages.ViewSearch {
		return changed
	}
	kind := v.Kind()
	return tea.Sequence(
		func() tea.Msg { return messages.KindChanged{Kind: kind} },
		changed,
	)
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("gsearch") + "\n\n")
	b.WriteString(v.styles.Muted.Render("Google Search from the terminal") + "\n\n")

	for i, item := range v.items {
		label := item.Label
		if item.View == messages.ViewSearch {
			label = fmt.Sprintf("%s  < %s >", label, v.Kind())
		}
		if i == v.cursor {
			b.WriteString("> " + v.styles.Subtitle.Render(label) + "\n")
		} else {
			b.WriteString("  " + v.styles.Normal.Render(label) + "\n")
		}
	}

	b.WriteString("\n" + v.styles.Help.Render("[j/k] Navigate  [h/l] Kind  [Enter] Select  [q] Quit"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width, v.height = width, height
	v.ready = true
}

// Items returns the menu entries in display order.
func (v *View) Items() []Item { return v.items }

// Selected returns the cursor position.
func (v *View) Selected() int { return v.cursor }

// Kind returns the kind the next search starts with.
func (v *View) Kind() domain.Kind { return v.kinds[v.kindIndex] }
