// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/styles"
)

// Context selects which keybinding hints are shown.
type Context string

const (
	ContextList  Context = "list"
	ContextInput Context = "input"
	ContextModal Context = "modal"
)

// Bar displays the controller's banners and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	context Context

	processing bool
	spinner    string
	success    string
	err        string
	width      int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:  s,
		keymap:  km,
		context: ContextList,
		width:   80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	inner := s.width - s.styles.StatusBar.GetHorizontalFrameSize()
	padding := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the banners. An error takes precedence.
func (s *Bar) renderLeft() string {
	switch {
	case s.err != "":
		return s.styles.Error.Render(s.err)
	case s.processing:
		return s.styles.Muted.Render(strings.TrimSpace(s.spinner + " Processing..."))
	case s.success != "":
		return s.styles.Success.Render(s.success)
	}
	return s.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.context {
	case ContextInput:
		bindings = s.keymap.InputHelp()
	case ContextModal:
		bindings = s.keymap.ModalHelp()
	default:
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetContext sets which hints are shown.
func (s *Bar) SetContext(c Context) {
	s.context = c
}

// Context returns the current hint context.
func (s *Bar) Context() Context {
	return s.context
}

// SetMessages sets the success and error banners.
func (s *Bar) SetMessages(success, err string) {
	s.success = success
	s.err = err
}

// Success returns the success banner.
func (s *Bar) Success() string {
	return s.success
}

// Error returns the error banner.
func (s *Bar) Error() string {
	return s.err
}

// SetProcessing sets the in-flight indicator and its spinner frame.
func (s *Bar) SetProcessing(processing bool, spinner string) {
	s.processing = processing
	s.spinner = spinner
}

// Processing reports whether the in-flight indicator is shown.
func (s *Bar) Processing() bool {
	return s.processing
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
