// Package styles provides the colour palette and lipgloss styles for the
// TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color

	// Proximity is the badge colour for proximity queries. Boolean
	// queries use Primary.
	Proximity lipgloss.Color
}

// DefaultTheme returns the default palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2563EB"),
		Secondary:  lipgloss.Color("#14B8A6"),
		Background: lipgloss.Color("#111827"),
		Foreground: lipgloss.Color("#E5E7EB"),
		Muted:      lipgloss.Color("#6B7280"),
		Success:    lipgloss.Color("#22C55E"),
		Warning:    lipgloss.Color("#F59E0B"),
		Error:      lipgloss.Color("#EF4444"),
		Border:     lipgloss.Color("#374151"),
		Proximity:  lipgloss.Color("#A855F7"),
	}
}

// Styles holds the rendered styles derived from a Theme.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Help     lipgloss.Style

	// InputField frames the query box.
	InputField lipgloss.Style

	StatusBar lipgloss.Style

	// Pane frames an unfocused list; FocusedPane the list with focus.
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style

	// Modal frames the document overlay.
	Modal lipgloss.Style

	badge lipgloss.Style
}

// NewStyles derives styles from theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	pane := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(c).Padding(0, 1)
	}

	return &Styles{
		theme:    theme,
		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Selected: fg(theme.Foreground).Background(theme.Primary).Bold(true),
		Error:    fg(theme.Error),
		Success:  fg(theme.Success),
		Warning:  fg(theme.Warning).Bold(true),
		Help:     fg(theme.Muted),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: fg(theme.Muted).
			Background(theme.Background).
			Padding(0, 1),

		Pane:        pane(theme.Border),
		FocusedPane: pane(theme.Primary),

		Modal: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(theme.Secondary).
			Padding(0, 2),

		badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Background).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// ModeBadge returns the badge style for a query mode name.
func (s *Styles) ModeBadge(mode string) lipgloss.Style {
	if mode == "proximity" {
		return s.badge.Background(s.theme.Proximity)
	}
	return s.badge.Background(s.theme.Primary)
}

// Frame returns the pane style for the focus state.
func (s *Styles) Frame(focused bool) lipgloss.Style {
	if focused {
		return s.FocusedPane
	}
	return s.Pane
}
