package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gsearch/internal/core/domain"
)

func newWideBar() *Bar {
	bar := NewBar(nil, nil)
	bar.SetWidth(140)
	return bar
}

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ResultCount())
	assert.Equal(t, domain.KindWeb, bar.Kind())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
	assert.Nil(t, bar.Init())
}

func TestStatusBar_Update(t *testing.T) {
	bar := NewBar(nil, nil)

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_Setters(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(StateSearching)
	bar.SetMessage("copied")
	bar.SetResultCount(8)
	bar.SetKind(domain.KindNews)
	bar.SetWidth(120)

	assert.Equal(t, StateSearching, bar.State())
	assert.Equal(t, "copied", bar.Message())
	assert.Equal(t, 8, bar.ResultCount())
	assert.Equal(t, domain.KindNews, bar.Kind())
	assert.Equal(t, 120, bar.Width())
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetResultCount(4)
	bar.SetKind(domain.KindImage)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ResultCount())
	assert.Equal(t, domain.KindImage, bar.Kind(), "kind survives a clear")
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(b *Bar)
		want    []string
		notWant []string
	}{
		{
			name:  "ready",
			setup: func(*Bar) {},
			want:  []string{"Ready", "tab: next kind", "enter: search"},
		},
		{
			name:  "searching names kind",
			setup: func(b *Bar) { b.SetState(StateSearching); b.SetKind(domain.KindVideo) },
			want:  []string{"Searching video..."},
		},
		{
			name:  "error without message",
			setup: func(b *Bar) { b.SetState(StateError) },
			want:  []string{"Error"},
		},
		{
			name:  "error with message",
			setup: func(b *Bar) { b.SetState(StateError); b.SetMessage("quota exceeded") },
			want:  []string{"Error: quota exceeded"},
		},
		{
			name: "results",
			setup: func(b *Bar) {
				b.SetState(StateResults)
				b.SetKind(domain.KindBook)
				b.SetResultCount(8)
			},
			want: []string{"8 book results", "n: new search", "o: open", "y: copy url"},
		},
		{
			name:    "no results",
			setup:   func(b *Bar) { b.SetState(StateResults) },
			want:    []string{"No web results", "tab: next kind"},
			notWant: []string{"o: open"},
		},
		{
			name:  "results with message",
			setup: func(b *Bar) { b.SetState(StateResults); b.SetResultCount(2); b.SetMessage("Copied URL") },
			want:  []string{"Copied URL"},
		},
		{
			name:  "history",
			setup: func(b *Bar) { b.SetState(StateHistory); b.SetResultCount(3) },
			want:  []string{"3 searches", "r: reload", "c: clear"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := newWideBar()
			tt.setup(bar)

			view := bar.View()

			for _, w := range tt.want {
				assert.Contains(t, view, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, view, w)
			}
		})
	}
}

func TestState_Constants(t *testing.T) {
	assert.Equal(t, State("ready"), StateReady)
	assert.Equal(t, State("searching"), StateSearching)
	assert.Equal(t, State("error"), StateError)
	assert.Equal(t, State("results"), StateResults)
	assert.Equal(t, State("history"), StateHistory)
}
