package list

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gsearch/internal/core/domain"
)

func sampleItems() []domain.Item {
	return []domain.Item{
		domain.NewBook(domain.BookFields{
			BookID: "b-1", Title: "The Go Programming Language",
			Authors: "Alan Donovan", PublishedYear: 2015, URL: "https://books.google.com/b-1",
		}),
		domain.NewBook(domain.BookFields{BookID: "b-2", Title: "Concurrency in Go", URL: "https://books.google.com/b-2"}),
		domain.NewBook(domain.BookFields{BookID: "b-3", Title: "Learning Go", URL: "https://books.google.com/b-3"}),
	}
}

func TestNewResultList(t *testing.T) {
	list := NewResultList(styles.DefaultStyles())

	require.NotNil(t, list)
	assert.Equal(t, 0, list.Selected())
	assert.True(t, list.IsEmpty())
	assert.Equal(t, 80, list.Width())
	assert.Equal(t, 10, list.Height())
}

func TestNewResultList_NilStyles(t *testing.T) {
	list := NewResultList(nil)

	require.NotNil(t, list)
	assert.NotNil(t, list.styles)
	assert.Nil(t, list.Init())
}

func TestResultList_SetItems(t *testing.T) {
	list := NewResultList(nil)
	items := sampleItems()
	list.SetSelected(0)

	list.SetItems(items)

	assert.Equal(t, 3, list.Count())
	assert.False(t, list.IsEmpty())
	assert.Equal(t, items, list.Items())
	assert.Equal(t, 0, list.Selected())
}

func TestResultList_SetItems_ResetsSelection(t *testing.T) {
	list := NewResultList(nil)
	list.SetItems(sampleItems())
	list.SetSelected(2)

	list.SetItems(sampleItems()[:1])

	assert.Equal(t, 0, list.Selected())
}

func TestResultList_SetSelected(t *testing.T) {
	list := NewResultList(nil)
	list.SetItems(sampleItems())

	list.SetSelected(1)
	assert.Equal(t, 1, list.Selected())

	list.SetSelected(10)
	assert.Equal(t, 1, list.Selected())

	list.SetSelected(-1)
	assert.Equal(t, 1, list.Selected())
}

func TestResultList_SelectedItem(t *testing.T) {
	list := NewResultList(nil)
	assert.Nil(t, list.SelectedItem())

	list.SetItems(sampleItems())
	list.SetSelected(1)

	item := list.SelectedItem()
	require.NotNil(t, item)
	assert.Equal(t, "b-2", item.ID())
}

func TestResultList_MoveBounds(t *testing.T) {
	list := NewResultList(nil)
	list.SetItems(sampleItems())

	list.MoveUp()
	assert.Equal(t, 0, list.Selected())

	list.MoveDown()
	list.MoveDown()
	list.MoveDown()
	assert.Equal(t, 2, list.Selected())
}

func TestResultList_Update_Keys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want int
	}{
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, 2},
		{"j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, 2},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, 0},
		{"k", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, 0},
		{"other", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewResultList(nil)
			list.SetItems(sampleItems())
			list.SetSelected(1)

			updated, cmd := list.Update(tt.msg)

			assert.Equal(t, list, updated)
			assert.Nil(t, cmd)
			assert.Equal(t, tt.want, list.Selected())
		})
	}
}

func TestResultList_View_Empty(t *testing.T) {
	list := NewResultList(nil)

	assert.Contains(t, list.View(), "No results")
}

func TestResultList_View_WithItems(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(100, 30)
	list.SetItems(sampleItems())

	view := list.View()

	assert.Contains(t, view, "Results (3)")
	assert.Contains(t, view, "> The Go Programming Language")
	assert.Contains(t, view, "https://books.google.com/b-1")
	assert.Contains(t, view, "Alan Donovan · 2015")
	assert.Contains(t, view, "Learning Go")
}

func TestResultList_View_ScrollsToSelection(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(100, 7) // room for one item
	list.SetItems(sampleItems())
	list.SetSelected(2)

	view := list.View()

	assert.Contains(t, view, "Learning Go")
	assert.NotContains(t, view, "Concurrency in Go")
}

func TestResultList_View_Untitled(t *testing.T) {
	list := NewResultList(nil)
	list.SetItems([]domain.Item{domain.NewBook(domain.BookFields{BookID: "x"})})

	assert.Contains(t, list.View(), "(Untitled)")
}

func TestResultList_View_LongTitle(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(30, 20)
	long := strings.Repeat("gopher ", 20)
	list.SetItems([]domain.Item{domain.NewBook(domain.BookFields{BookID: "x", Title: long})})

	view := list.View()

	assert.Contains(t, view, "...")
	assert.NotContains(t, view, long)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "héll...", truncate("héllo wörld", 7))
}
