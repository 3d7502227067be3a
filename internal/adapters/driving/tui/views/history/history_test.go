package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driving"
)

// MockHistoryService implements driving.HistoryService for testing.
type MockHistoryService struct {
	entries  []domain.HistoryEntry
	listErr  error
	clearErr error
	gotLimit int
	cleared  bool
}

func (m *MockHistoryService) List(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	m.gotLimit = limit
	if m.listErr != nil {
		return nil, m.listErr
	}
	if m.cleared {
		return []domain.HistoryEntry{}, nil
	}
	return m.entries, nil
}

func (m *MockHistoryService) Clear(context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = true
	return nil
}

func testEntries() []domain.HistoryEntry {
	at := time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC)
	return []domain.HistoryEntry{
		{ID: "h-2", Kind: domain.KindNews, Keyword: "barack obama", Requested: 21, Returned: 21, CreatedAt: at},
		{ID: "h-1", Kind: domain.KindBook, Keyword: "golang", Requested: 8, Returned: 4, CreatedAt: at.Add(-time.Hour)},
	}
}

// loadedView returns a view that has loaded entries from service.
func loadedView(t *testing.T, service driving.HistoryService) *View {
	t.Helper()

	view := NewView(nil, service)
	view.SetDimensions(120, 30)
	cmd := view.Init()
	require.NotNil(t, cmd)
	view.Update(cmd())
	return view
}

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles(), &MockHistoryService{})

	require.NotNil(t, view)
	assert.Empty(t, view.Entries())
	assert.Equal(t, 0, view.SelectedIndex())
	assert.False(t, view.Loading())
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil, nil)

	assert.NotNil(t, view.styles)
}

func TestView_Init_LoadsHistory(t *testing.T) {
	mock := &MockHistoryService{entries: testEntries()}
	view := NewView(nil, mock)

	cmd := view.Init()

	assert.True(t, view.Loading())
	msg := cmd()
	loaded, ok := msg.(messages.HistoryLoaded)
	require.True(t, ok)
	assert.Equal(t, Limit, mock.gotLimit)

	view.Update(loaded)

	assert.False(t, view.Loading())
	assert.Len(t, view.Entries(), 2)
	assert.NoError(t, view.Err())
}

func TestView_Init_NoService(t *testing.T) {
	view := loadedView(t, nil)

	assert.ErrorIs(t, view.Err(), ErrHistoryDisabled)
	assert.Contains(t, view.View(), "search history is disabled")
}

func TestView_LoadError(t *testing.T) {
	view := loadedView(t, &MockHistoryService{listErr: errors.New("database is locked")})

	require.Error(t, view.Err())
	assert.Contains(t, view.View(), "database is locked")
}

func TestView_Navigation(t *testing.T) {
	view := loadedView(t, &MockHistoryService{entries: testEntries()})

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, view.SelectedIndex())

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.SelectedIndex())

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.SelectedIndex())
}

func TestView_Enter_RequestsSearch(t *testing.T) {
	view := loadedView(t, &MockHistoryService{entries: testEntries()})
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.SearchRequested{Kind: domain.KindBook, Query: "golang"}, cmd())
}

func TestView_Enter_Empty(t *testing.T) {
	view := loadedView(t, &MockHistoryService{})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	_, ok := view.SelectedEntry()
	assert.False(t, ok)
}

func TestView_Clear(t *testing.T) {
	mock := &MockHistoryService{entries: testEntries()}
	view := loadedView(t, mock)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	require.NotNil(t, cmd)
	cleared, ok := cmd().(messages.HistoryCleared)
	require.True(t, ok)
	assert.True(t, mock.cleared)

	_, reload := view.Update(cleared)
	require.NotNil(t, reload)
	view.Update(reload())

	assert.Empty(t, view.Entries())
	assert.Equal(t, 0, view.SelectedIndex())
	assert.Contains(t, view.View(), "No searches yet.")
}

func TestView_Clear_Error(t *testing.T) {
	view := loadedView(t, &MockHistoryService{entries: testEntries(), clearErr: errors.New("read-only")})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	_, reload := view.Update(cmd())

	assert.Nil(t, reload)
	assert.EqualError(t, view.Err(), "read-only")
}

func TestView_Reload(t *testing.T) {
	mock := &MockHistoryService{}
	view := loadedView(t, mock)
	mock.entries = testEntries()

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.True(t, view.Loading())
	assert.Contains(t, view.View(), "Loading history...")

	view.Update(cmd())
	assert.Len(t, view.Entries(), 2)
}

func TestView_Quit(t *testing.T) {
	view := loadedView(t, &MockHistoryService{})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_View_Entries(t *testing.T) {
	view := loadedView(t, &MockHistoryService{entries: testEntries()})

	output := view.View()

	assert.Contains(t, output, "History")
	assert.Contains(t, output, "[news]")
	assert.Contains(t, output, "barack obama")
	assert.Contains(t, output, "21/21")
	assert.Contains(t, output, "[book]")
	assert.Contains(t, output, "4/8")
	assert.Contains(t, output, "c: clear")
	assert.Contains(t, output, "2 searches")
}

func TestView_View_ScrollsToSelection(t *testing.T) {
	view := loadedView(t, &MockHistoryService{entries: testEntries()})
	view.SetDimensions(120, 7) // room for one entry
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	output := view.View()

	assert.Contains(t, output, "golang")
	assert.NotContains(t, output, "barack obama")
}

func TestView_WindowSize(t *testing.T) {
	view := NewView(nil, nil)

	_, cmd := view.Update(tea.WindowSizeMsg{Width: 90, Height: 30})

	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 90, view.width)
}
