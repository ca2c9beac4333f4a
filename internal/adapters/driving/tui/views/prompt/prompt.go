// Package prompt provides the single-line prompts of the TUI: document
// paths for upload, a stopword file, and the clear confirmation.
package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/styles"
)

// View is the active prompt, if any.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	input  textinput.Model
	kind   messages.PromptKind
}

// NewView creates a closed prompt.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	ti := textinput.New()
	ti.CharLimit = 4096
	ti.Width = 60
	return &View{styles: s, keymap: km, input: ti}
}

// Open shows a prompt of the given kind.
func (v *View) Open(kind messages.PromptKind) tea.Cmd {
	v.kind = kind
	v.input.Reset()
	switch kind {
	case messages.PromptUpload:
		v.input.Placeholder = "paths to .txt files, space separated"
	case messages.PromptStopwords:
		v.input.Placeholder = "path to stopwords .txt file"
	default:
		v.input.Blur()
		return nil
	}
	return v.input.Focus()
}

// Close hides the prompt.
func (v *View) Close() {
	v.kind = messages.PromptNone
	v.input.Blur()
}

// Kind returns the open prompt kind.
func (v *View) Kind() messages.PromptKind {
	return v.kind
}

// IsOpen reports whether a prompt is shown.
func (v *View) IsOpen() bool {
	return v.kind != messages.PromptNone
}

// Update handles keys while the prompt is open.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !v.IsOpen() {
		return v, nil
	}
	kind := v.kind

	if kind == messages.PromptClear {
		v.Close()
		if keymap.Matches(keyMsg.String(), v.keymap.Confirm) {
			return v, emit(messages.PromptSubmitted{Kind: kind})
		}
		return v, emit(messages.PromptCancelled{Kind: kind})
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		v.Close()
		return v, emit(messages.PromptCancelled{Kind: kind})
	case tea.KeyEnter:
		value := strings.TrimSpace(v.input.Value())
		v.Close()
		return v, emit(messages.PromptSubmitted{Kind: kind, Value: value})
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// View renders the prompt line.
func (v *View) View() string {
	switch v.kind {
	case messages.PromptUpload:
		return v.styles.Title.Render("Upload: ") + v.input.View()
	case messages.PromptStopwords:
		return v.styles.Title.Render("Stopwords: ") + v.input.View()
	case messages.PromptClear:
		return v.styles.Warning.Render("Remove all documents from the service? (y/N)")
	}
	return ""
}

// SetWidth sets the input width.
func (v *View) SetWidth(width int) {
	v.input.Width = max(width-16, 20)
}
