// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the full key reference.
	Help key.Binding

	// Back closes the modal or leaves the search bar.
	Back key.Binding

	// Search runs the query in the search bar.
	Search key.Binding

	// FocusSearch moves focus to the search bar.
	FocusSearch key.Binding

	// ToggleMode switches between boolean and proximity queries.
	ToggleMode key.Binding

	// SwitchPane moves list focus between corpus and results.
	SwitchPane key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select opens the selected document.
	Select key.Binding

	// CorpusPrev and CorpusNext page through the corpus.
	CorpusPrev key.Binding
	CorpusNext key.Binding

	// ResultsPrev and ResultsNext page through the results.
	ResultsPrev key.Binding
	ResultsNext key.Binding

	// Upload prompts for document paths.
	Upload key.Binding

	// Stopwords prompts for a stopword file.
	Stopwords key.Binding

	// Clear asks to remove every document.
	Clear key.Binding

	// Confirm accepts a confirmation prompt.
	Confirm key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "mode"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "pane"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		CorpusPrev: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev docs"),
		),
		CorpusNext: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next docs"),
		),
		ResultsPrev: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "prev results"),
		),
		ResultsNext: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "next results"),
		),
		Upload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upload"),
		),
		Stopwords: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "stopwords"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusSearch, k.Upload, k.Select, k.Help, k.Quit}
}

// InputHelp returns keybindings shown while the search bar is focused.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Search, k.ToggleMode, k.Back}
}

// ModalHelp returns keybindings shown while the modal is open.
func (k *KeyMap) ModalHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusSearch, k.Search, k.ToggleMode, k.Back},
		{k.Up, k.Down, k.Select, k.SwitchPane},
		{k.CorpusPrev, k.CorpusNext, k.ResultsPrev, k.ResultsNext},
		{k.Upload, k.Stopwords, k.Clear},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
