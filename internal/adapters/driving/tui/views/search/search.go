// Package search provides the main search view for the TUI.
package search

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driving"
)

// DefaultCount is the number of results requested per search.
const DefaultCount = 8

// Action names reported in messages.ActionCompleted.
const (
	actionOpen = "open"
	actionCopy = "copy"
)

// View represents the search view with kind tabs, input, results list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	actionService driving.ResultActionService
	ctx           context.Context

	kinds      []domain.Kind
	kindIndex  int
	count      int
	lastQuery  string
	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = input mode (typing), false = results mode (navigating)
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	actionService driving.ResultActionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		actionService: actionService,
		ctx:           context.Background(),
		kinds:         domain.AllKinds(),
		count:         DefaultCount,
		width:         80,
		height:        24,
		focusInput:    true, // Start in input mode
	}
	v.SetKind(domain.KindWeb)
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithCount sets how many results each search requests.
// Non-positive values keep the current count.
func (v *View) WithCount(count int) *View {
	if count > 0 {
		v.count = count
	}
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ActionCompleted:
		v.handleActionCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	// Forward to input component (cursor blink)
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc always signals to go back to menu
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	keyStr := msg.String()

	// Tab cycles the kind in both modes
	switch {
	case keymap.Matches(keyStr, v.keymap.NextKind):
		return v.cycleKind(1)
	case keymap.Matches(keyStr, v.keymap.PrevKind):
		return v.cycleKind(-1)
	}

	// Enter in input mode submits search
	if v.focusInput {
		if msg.Type == tea.KeyEnter {
			return v, v.Submit(v.input.Value())
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	// Results mode
	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(keyStr, v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(keyStr, v.keymap.NewSearch):
		v.statusbar.SetMessage("")
		v.focusInput = true
		v.input.SetValue("")
		return v, v.input.Focus()
	case keymap.Matches(keyStr, v.keymap.Open):
		return v, v.runAction(actionOpen)
	case keymap.Matches(keyStr, v.keymap.Copy):
		return v, v.runAction(actionCopy)
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, tea.Quit
	}

	return v, nil
}

// cycleKind moves the active kind by step. In results mode the last
// query is re-run against the new kind.
func (v *View) cycleKind(step int) (*View, tea.Cmd) {
	n := len(v.kinds)
	v.SetKind(v.kinds[((v.kindIndex+step)%n+n)%n])

	if !v.focusInput && v.lastQuery != "" {
		return v, v.Submit(v.lastQuery)
	}
	return v, nil
}

// Submit starts a search for query against the active kind.
// Blank queries are ignored.
func (v *View) Submit(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	v.input.SetValue(query)
	v.lastQuery = query
	v.err = nil
	v.statusbar.SetMessage("")
	v.statusbar.SetState(status.StateSearching)
	v.focusInput = false // Move to results mode after search
	v.input.Blur()
	return v.performSearch(v.Kind(), query)
}

// performSearch executes a search and returns results.
func (v *View) performSearch(kind domain.Kind, query string) tea.Cmd {
	ctx := v.ctx
	count := v.count
	service := v.searchService

	return func() tea.Msg {
		if service == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}

		items, err := service.Search(ctx, kind, query, count)
		return messages.SearchCompleted{Kind: kind, Query: query, Items: items, Err: err}
	}
}

// handleSearchCompleted processes search results.
// Results for a kind or query that is no longer active are dropped.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Kind != v.Kind() || msg.Query != v.lastQuery {
		return
	}

	if msg.Err != nil {
		v.list.SetItems(nil)
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.list.SetItems(msg.Items)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(msg.Items))

	// Switch to results mode after successful search
	v.focusInput = false
	v.input.Blur()
}

// runAction opens or copies the selected result's URL.
func (v *View) runAction(action string) tea.Cmd {
	item := v.list.SelectedItem()
	if item == nil {
		return nil
	}

	ctx := v.ctx
	service := v.actionService

	return func() tea.Msg {
		if service == nil {
			return messages.ActionCompleted{Action: action, Err: ErrNoActionService}
		}

		var err error
		switch action {
		case actionOpen:
			err = service.OpenURL(ctx, item)
		case actionCopy:
			err = service.CopyURL(ctx, item)
		}
		return messages.ActionCompleted{Action: action, Err: err}
	}
}

// handleActionCompleted reports an action outcome in the status bar.
func (v *View) handleActionCompleted(msg messages.ActionCompleted) {
	if msg.Err != nil {
		v.statusbar.SetMessage("")
		v.err = msg.Err
		return
	}

	switch msg.Action {
	case actionOpen:
		v.statusbar.SetMessage("Opening in browser...")
	case actionCopy:
		v.statusbar.SetMessage("Copied URL to clipboard")
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)

	// Header and kind tabs
	sections = append(sections, v.styles.Title.Render("gsearch"), v.renderTabs(), "")

	// Search input
	sections = append(sections, v.input.View(), "")

	// Error display
	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	// Results list
	sections = append(sections, v.list.View())

	// Status bar at bottom
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTabs renders one tab per kind with the active kind highlighted.
func (v *View) renderTabs() string {
	tabs := make([]string, len(v.kinds))
	for i, k := range v.kinds {
		if i == v.kindIndex {
			tabs[i] = v.styles.KindTab(k).Render(k.String())
		} else {
			tabs[i] = v.styles.Tab.Render(k.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// SetKind makes kind the active search kind. Unknown kinds are ignored.
func (v *View) SetKind(kind domain.Kind) {
	for i, k := range v.kinds {
		if k == kind {
			v.kindIndex = i
			v.input.SetKind(kind)
			v.input.SetWidth(v.width)
			v.statusbar.SetKind(kind)
			return
		}
	}
}

// Kind returns the active search kind.
func (v *View) Kind() domain.Kind {
	return v.kinds[v.kindIndex]
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Allocate space to components
	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-12) // Reserve space for header, tabs, input, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Count returns how many results each search requests.
func (v *View) Count() int {
	return v.count
}

// Items returns the current search results.
func (v *View) Items() []domain.Item {
	return v.list.Items()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedItem returns the currently selected result.
func (v *View) SelectedItem() domain.Item {
	return v.list.SelectedItem()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// StatusMessage returns the message shown in the status bar.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset resets the view to initial input mode. The active kind is kept.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.lastQuery = ""
	v.list.SetItems(nil)
	v.err = nil
	v.statusbar.Clear()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
