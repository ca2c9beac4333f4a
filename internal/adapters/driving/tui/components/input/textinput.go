// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
)

// QueryInput is the search bar: a text input plus the query mode.
type QueryInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	mode      domain.QueryMode
	width     int
}

// NewQueryInput creates a focused search bar in boolean mode.
func NewQueryInput(s *styles.Styles) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "cat AND (dog OR NOT mouse)"
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	return &QueryInput{
		textinput: ti,
		styles:    s,
		mode:      domain.QueryModeBoolean,
		width:     50,
	}
}

// Init initialises the input.
func (q *QueryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	var cmd tea.Cmd
	q.textinput, cmd = q.textinput.Update(msg)
	return q, cmd
}

// View renders the search bar.
func (q *QueryInput) View() string {
	label := q.styles.Title.Render("Search ")
	badge := q.styles.ModeBadge(string(q.mode)).Render(string(q.mode))
	input := q.styles.InputField.Render(q.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, badge, " ", input)
}

// Mode returns the current query mode.
func (q *QueryInput) Mode() domain.QueryMode {
	return q.mode
}

// ToggleMode switches between boolean and proximity.
func (q *QueryInput) ToggleMode() domain.QueryMode {
	if q.mode == domain.QueryModeBoolean {
		q.mode = domain.QueryModeProximity
		q.textinput.Placeholder = "#5(term1 term2)"
	} else {
		q.mode = domain.QueryModeBoolean
		q.textinput.Placeholder = "cat AND (dog OR NOT mouse)"
	}
	return q.mode
}

// Value returns the current input value.
func (q *QueryInput) Value() string {
	return q.textinput.Value()
}

// SetValue sets the input value.
func (q *QueryInput) SetValue(value string) {
	q.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (q *QueryInput) Focus() tea.Cmd {
	return q.textinput.Focus()
}

// Blur removes focus from the input.
func (q *QueryInput) Blur() {
	q.textinput.Blur()
}

// Focused returns whether the input is focused.
func (q *QueryInput) Focused() bool {
	return q.textinput.Focused()
}

// SetWidth sets the width of the input.
func (q *QueryInput) SetWidth(width int) {
	q.width = width
	// Account for label, badge and padding
	q.textinput.Width = max(width-24, 20)
}

// Width returns the current width.
func (q *QueryInput) Width() int {
	return q.width
}

// Reset clears the input. The mode is kept.
func (q *QueryInput) Reset() {
	q.textinput.Reset()
}
