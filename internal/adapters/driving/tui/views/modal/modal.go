// Package modal provides the document modal view for the TUI.
package modal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
)

// View renders the modal state machine: title, then a spinner while
// content loads, the scrollable content once it arrives, or the
// document's snippet when only metadata is known.
type View struct {
	styles   *styles.Styles
	viewport viewport.Model
	spinner  spinner.Model

	state  driving.ModalView
	docID  string
	width  int
	height int
}

// NewView creates a closed modal.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	return &View{
		styles:   s,
		viewport: viewport.New(60, 10),
		spinner:  sp,
		width:    80,
		height:   24,
	}
}

// SetState applies a controller modal view. The scroll position resets
// when a different document is opened.
func (v *View) SetState(state driving.ModalView) tea.Cmd {
	prevID := v.docID
	prevLoading := v.state.State.IsLoading()
	v.state = state

	if state.Document == nil {
		v.docID = ""
		v.viewport.SetContent("")
		return nil
	}
	v.docID = state.Document.ID

	v.viewport.SetContent(v.wrap(v.body()))
	if prevID != v.docID {
		v.viewport.GotoTop()
	}
	if state.State.IsLoading() && !prevLoading {
		return v.spinner.Tick
	}
	return nil
}

// body returns the text shown under the title.
func (v *View) body() string {
	doc := v.state.Document
	if v.state.State == domain.ModalOpenWithContent || doc.HasContent() {
		if doc.Body() == "" {
			return "(No content)"
		}
		return doc.Body()
	}
	return doc.Snippet
}

func (v *View) wrap(s string) string {
	return lipgloss.NewStyle().Width(v.viewport.Width).Render(s)
}

// Update handles scrolling and spinner ticks.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !v.state.State.IsLoading() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}
	return v, nil
}

// View renders the modal.
func (v *View) View() string {
	if !v.state.State.IsOpen() || v.state.Document == nil {
		return ""
	}
	doc := v.state.Document

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(doc.Title()))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("ID: " + doc.ID))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", v.viewport.Width))
	b.WriteString("\n")

	switch {
	case v.state.State.IsLoading():
		b.WriteString(v.spinner.View() + " " + v.styles.Muted.Render("Loading content..."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Normal.Render(doc.Snippet))
	default:
		b.WriteString(v.viewport.View())
		if v.state.Err != nil {
			b.WriteString("\n")
			b.WriteString(v.styles.Error.Render(fmt.Sprintf("Could not load content: %v", v.state.Err)))
		}
		if v.viewport.TotalLineCount() > v.viewport.Height {
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("[%d%%]", int(v.viewport.ScrollPercent()*100))))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("↑/↓ scroll • esc close"))
	return v.styles.Modal.Render(b.String())
}

// SetDimensions sizes the modal to fit inside width x height.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = max(width-10, 20)
	v.viewport.Height = max(height-12, 3)
	if v.state.Document != nil {
		v.viewport.SetContent(v.wrap(v.body()))
	}
}

// State returns the last applied modal view.
func (v *View) State() driving.ModalView {
	return v.state
}

// IsOpen reports whether the modal is shown.
func (v *View) IsOpen() bool {
	return v.state.State.IsOpen()
}
