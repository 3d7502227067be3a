// Package styles provides the colour palette and lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// Theme is the colour palette the styles are built from.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Link       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
	Bar        lipgloss.Color

	// Kinds colours the active tab per search kind. Kinds without an
	// entry fall back to Secondary.
	Kinds map[domain.Kind]lipgloss.Color
}

// DefaultTheme returns a dark palette in Google's brand colours.
func DefaultTheme() *Theme {
	const (
		blue      = lipgloss.Color("#4285F4")
		lightBlue = lipgloss.Color("#8AB4F8")
		red       = lipgloss.Color("#EA4335")
		yellow    = lipgloss.Color("#FBBC05")
		green     = lipgloss.Color("#34A853")
	)

	return &Theme{
		Primary:    blue,
		Secondary:  lightBlue,
		Background: lipgloss.Color("#202124"),
		Foreground: lipgloss.Color("#E8EAED"),
		Muted:      lipgloss.Color("#9AA0A6"),
		Link:       lipgloss.Color("#81C995"),
		Success:    green,
		Warning:    yellow,
		Error:      red,
		Border:     lipgloss.Color("#5F6368"),
		Bar:        lipgloss.Color("#303134"),
		Kinds: map[domain.Kind]lipgloss.Color{
			domain.KindWeb:    lightBlue,
			domain.KindNews:   red,
			domain.KindBook:   yellow,
			domain.KindVideo:  red,
			domain.KindImage:  green,
			domain.KindLocal:  green,
			domain.KindPatent: blue,
		},
	}
}

// Styles holds the lipgloss styles the views render with.
type Styles struct {
	theme *Theme

	Title, Subtitle, Normal, Muted lipgloss.Style
	Selected, Link                 lipgloss.Style
	Tab, ActiveTab                 lipgloss.Style
	Error, Success, Warning        lipgloss.Style
	InputField, StatusBar          lipgloss.Style
	Help, Border                   lipgloss.Style
}

// NewStyles builds styles from theme. A nil theme selects DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	rounded := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	return &Styles{
		theme: theme,

		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Selected: fg(theme.Foreground).Background(theme.Primary).Bold(true),
		Link:     fg(theme.Link),

		Tab:       fg(theme.Muted).Padding(0, 1),
		ActiveTab: fg(theme.Background).Background(theme.Secondary).Bold(true).Padding(0, 1),

		Error:   fg(theme.Error),
		Success: fg(theme.Success),
		Warning: fg(theme.Warning),

		InputField: rounded.Padding(0, 1),
		StatusBar:  fg(theme.Muted).Background(theme.Bar).Padding(0, 1),
		Help:       fg(theme.Muted),
		Border:     rounded,
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// KindTab returns the active tab style coloured for kind.
func (s *Styles) KindTab(kind domain.Kind) lipgloss.Style {
	c, ok := s.theme.Kinds[kind]
	if !ok {
		return s.ActiveTab
	}
	return s.ActiveTab.Background(c)
}
