// Package input provides the keyword input of the search view.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gsearch/internal/core/domain"
)

const (
	charLimit     = 256
	minFieldWidth = 20
	// fieldChrome is the border and padding InputField adds around the text.
	fieldChrome = 4
)

var placeholders = map[domain.Kind]string{
	domain.KindBook:   "title, author or ISBN...",
	domain.KindLocal:  "place or business...",
	domain.KindPatent: "invention keywords...",
	domain.KindImage:  "describe the image...",
}

// SearchInput is a single-line keyword field labelled with the active kind.
type SearchInput struct {
	field  textinput.Model
	styles *styles.Styles
	kind   domain.Kind
	width  int
}

// NewSearchInput returns a focused input for web searches.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := textinput.New()
	field.CharLimit = charLimit
	field.Width = 50
	field.Focus()

	in := &SearchInput{field: field, styles: s, width: 50}
	in.SetKind(domain.KindWeb)
	return in
}

func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.field, cmd = s.field.Update(msg)
	return s, cmd
}

func (s *SearchInput) View() string {
	//nolint:misspell // lipgloss.Center is the library's spelling
	return lipgloss.JoinHorizontal(lipgloss.Center,
		s.styles.Title.Render(s.Label()),
		s.styles.InputField.Render(s.field.View()),
	)
}

// Label is the prompt rendered before the field.
func (s *SearchInput) Label() string {
	return "Search " + s.kind.String() + ": "
}

// SetKind changes the label and placeholder. Call SetWidth afterwards
// since the label width changes with the kind.
func (s *SearchInput) SetKind(kind domain.Kind) {
	s.kind = kind
	s.field.Placeholder = Placeholder(kind)
}

func (s *SearchInput) Kind() domain.Kind {
	return s.kind
}

// Placeholder returns the hint shown in an empty field for kind.
func Placeholder(kind domain.Kind) string {
	if p, ok := placeholders[kind]; ok {
		return p
	}
	return "Enter keywords..."
}

func (s *SearchInput) Value() string { return s.field.Value() }
func (s *SearchInput) SetValue(value string) { s.field.SetValue(value) }
func (s *SearchInput) Focus() tea.Cmd { return s.field.Focus() }
func (s *SearchInput) Blur() { s.field.Blur() }
func (s *SearchInput) Focused() bool { return s.field.Focused() }
func (s *SearchInput) Reset() { s.field.Reset() }

// SetWidth sizes the field to fill width after the label.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	s.field.Width = max(width-lipgloss.Width(s.Label())-fieldChrome, minFieldWidth)
}

func (s *SearchInput) Width() int {
	return s.width
}
