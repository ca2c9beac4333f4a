package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/views/corpus"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/views/modal"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/views/prompt"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/views/results"
	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch-cli/internal/logger"
)

// focus identifies which pane receives keys.
type focus int

const (
	focusInput focus = iota
	focusResults
	focusCorpus
)

// resultPaneHeight is the height reserved for the results pane.
const resultPaneHeight = 10

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea. All interface state is
// owned by the controller; App only mirrors the latest snapshot.
type App struct {
	ports *Ports
	ctx   context.Context
	log   *logger.Logger

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	input   *input.QueryInput
	results *results.View
	corpus  *corpus.View
	modal   *modal.View
	prompt  *prompt.View
	status  *status.Bar
	spinner spinner.Model

	snap     driving.Snapshot
	focus    focus
	spinning bool
	showHelp bool

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	a := &App{
		ports:   ports,
		ctx:     context.Background(),
		log:     logger.New("tui"),
		styles:  s,
		keymap:  km,
		help:    help.New(),
		input:   input.NewQueryInput(s),
		results: results.NewView(s),
		corpus:  corpus.NewView(s, ports.RowHeight),
		modal:   modal.NewView(s),
		prompt:  prompt.NewView(s, km),
		status:  status.NewBar(s, km),
		spinner: sp,
	}
	a.setFocus(focusInput)
	a.apply()
	return a, nil
}

// WithContext sets the context for controller operations.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Attach forwards controller notifications to send, typically
// tea.Program.Send. Controller methods called from Update publish
// synchronously, so delivery happens off the event loop.
func (a *App) Attach(send func(tea.Msg)) (detach func()) {
	return a.ports.Controller.Subscribe(func(driving.Snapshot) {
		go send(messages.StateChanged{})
	})
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("docsearch"),
		a.input.Init(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout()
		return a, nil

	case messages.StateChanged:
		return a, a.apply()

	case messages.OperationDone:
		if msg.Err != nil {
			a.log.Debug("operation failed", "op", msg.Op.String(), "error", msg.Err)
		}
		return a, a.apply()

	case messages.PromptSubmitted:
		return a, a.handlePrompt(msg)

	case messages.PromptCancelled:
		return a, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if msg.ID == a.spinner.ID() {
			if !a.snap.Processing {
				a.spinning = false
				return a, nil
			}
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			a.status.SetProcessing(true, a.spinner.View())
			cmds = append(cmds, cmd)
		} else {
			var cmd tea.Cmd
			a.modal, cmd = a.modal.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	return a, nil
}

// handleKey routes a key press by what is on screen.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	var cmd tea.Cmd
	switch {
	case a.prompt.IsOpen():
		a.prompt, cmd = a.prompt.Update(msg)
		return cmd

	case a.modal.IsOpen():
		if keymap.Matches(msg.String(), a.keymap.Back) {
			a.ports.Controller.CloseModal()
			return a.apply()
		}
		a.modal, cmd = a.modal.Update(msg)
		return cmd

	case a.focus == focusInput:
		return a.handleInputKey(msg)
	}
	return a.handleListKey(msg)
}

func (a *App) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case keymap.Matches(msg.String(), a.keymap.Search):
		return a.search(a.input.Value(), a.input.Mode())
	case keymap.Matches(msg.String(), a.keymap.ToggleMode):
		a.input.ToggleMode()
		return nil
	case keymap.Matches(msg.String(), a.keymap.Back):
		a.setFocus(focusResults)
		return nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return cmd
}

//nolint:gocyclo // one case per binding
func (a *App) handleListKey(msg tea.KeyMsg) tea.Cmd {
	ctrl := a.ports.Controller
	k := msg.String()

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return tea.Quit
	case keymap.Matches(k, a.keymap.Help):
		a.showHelp = !a.showHelp
	case keymap.Matches(k, a.keymap.FocusSearch):
		a.setFocus(focusInput)
		return a.input.Focus()
	case keymap.Matches(k, a.keymap.SwitchPane):
		if a.focus == focusResults {
			a.setFocus(focusCorpus)
		} else {
			a.setFocus(focusResults)
		}
	case keymap.Matches(k, a.keymap.Up):
		if a.focus == focusCorpus {
			a.corpus.MoveUp()
		} else {
			a.results.MoveUp()
		}
	case keymap.Matches(k, a.keymap.Down):
		if a.focus == focusCorpus {
			a.corpus.MoveDown()
		} else {
			a.results.MoveDown()
		}
	case keymap.Matches(k, a.keymap.Select):
		doc, ok := a.results.Selected()
		if a.focus == focusCorpus {
			doc, ok = a.corpus.Selected()
		}
		if ok {
			return a.open(doc)
		}
	case keymap.Matches(k, a.keymap.CorpusPrev):
		ctrl.SetCorpusPage(a.snap.Corpus.Window.Page - 1)
		return a.apply()
	case keymap.Matches(k, a.keymap.CorpusNext):
		ctrl.SetCorpusPage(a.snap.Corpus.Window.Page + 1)
		return a.apply()
	case keymap.Matches(k, a.keymap.ResultsPrev):
		ctrl.SetResultPage(a.snap.Results.Window.Page - 1)
		return a.apply()
	case keymap.Matches(k, a.keymap.ResultsNext):
		ctrl.SetResultPage(a.snap.Results.Window.Page + 1)
		return a.apply()
	case keymap.Matches(k, a.keymap.Upload):
		return a.prompt.Open(messages.PromptUpload)
	case keymap.Matches(k, a.keymap.Stopwords):
		return a.prompt.Open(messages.PromptStopwords)
	case keymap.Matches(k, a.keymap.Clear):
		return a.prompt.Open(messages.PromptClear)
	}
	return nil
}

// open selects doc and, when its content is unknown, runs the fetch.
func (a *App) open(doc domain.Document) tea.Cmd {
	fetch := a.ports.Controller.Select(doc)
	cmd := a.apply()
	if fetch == nil {
		return cmd
	}
	ctx := a.ctx
	return tea.Batch(cmd, func() tea.Msg {
		return messages.OperationDone{Op: messages.OpFetch, Err: fetch.Run(ctx)}
	})
}

func (a *App) search(query string, mode domain.QueryMode) tea.Cmd {
	ctrl, ctx := a.ports.Controller, a.ctx
	return tea.Batch(a.startSpinner(), func() tea.Msg {
		return messages.OperationDone{Op: messages.OpSearch, Err: ctrl.Search(ctx, query, mode)}
	})
}

// handlePrompt starts the operation a prompt asked for.
func (a *App) handlePrompt(msg messages.PromptSubmitted) tea.Cmd {
	ctrl, ctx, read := a.ports.Controller, a.ctx, a.ports.ReadFiles

	var op tea.Cmd
	switch msg.Kind {
	case messages.PromptUpload:
		paths := strings.Fields(msg.Value)
		op = func() tea.Msg {
			files, err := read(ctx, paths)
			if err != nil {
				ctrl.ReportError("Error reading files: " + err.Error())
				return messages.OperationDone{Op: messages.OpUpload, Err: err}
			}
			_, err = ctrl.Upload(ctx, files)
			return messages.OperationDone{Op: messages.OpUpload, Err: err}
		}
	case messages.PromptStopwords:
		if msg.Value == "" {
			return nil
		}
		op = func() tea.Msg {
			files, err := read(ctx, []string{msg.Value})
			if err != nil {
				ctrl.ReportError("Error reading files: " + err.Error())
				return messages.OperationDone{Op: messages.OpStopwords, Err: err}
			}
			_, err = ctrl.UploadStopwords(ctx, files[0])
			return messages.OperationDone{Op: messages.OpStopwords, Err: err}
		}
	case messages.PromptClear:
		op = func() tea.Msg {
			return messages.OperationDone{Op: messages.OpClear, Err: ctrl.Clear(ctx)}
		}
	default:
		return nil
	}
	return tea.Batch(a.startSpinner(), op)
}

// apply mirrors the latest controller snapshot into the views.
func (a *App) apply() tea.Cmd {
	a.snap = a.ports.Controller.Snapshot()
	a.results.SetPage(a.snap.Results)
	a.corpus.SetPage(a.snap.Corpus)
	a.status.SetMessages(a.snap.Success, a.snap.Error)
	a.status.SetProcessing(a.snap.Processing, a.spinner.View())

	cmd := a.modal.SetState(a.snap.Modal)
	if a.modal.IsOpen() {
		a.status.SetContext(status.ContextModal)
	} else if a.focus == focusInput {
		a.status.SetContext(status.ContextInput)
	} else {
		a.status.SetContext(status.ContextList)
	}

	if a.snap.Processing {
		return tea.Batch(cmd, a.startSpinner())
	}
	return cmd
}

func (a *App) startSpinner() tea.Cmd {
	if a.spinning {
		return nil
	}
	a.spinning = true
	return a.spinner.Tick
}

func (a *App) setFocus(f focus) {
	a.focus = f
	a.results.SetFocused(f == focusResults)
	a.corpus.SetFocused(f == focusCorpus)
	if f == focusInput {
		a.status.SetContext(status.ContextInput)
	} else {
		a.input.Blur()
		a.status.SetContext(status.ContextList)
	}
}

// layout sizes every component for the terminal.
func (a *App) layout() {
	a.input.SetWidth(a.width)
	a.prompt.SetWidth(a.width)
	a.status.SetWidth(a.width)
	a.modal.SetDimensions(a.width, a.height)
	a.help.Width = a.width

	// header, search bar (3), prompt, status bar
	remaining := max(a.height-7, 4)
	resultsHeight := min(resultPaneHeight, remaining/2)
	a.results.SetDimensions(a.width, resultsHeight)
	a.corpus.SetDimensions(a.width, remaining-resultsHeight)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.modal.IsOpen() {
		body := lipgloss.Place(a.width, max(a.height-1, 1), lipgloss.Center, lipgloss.Center, a.modal.View())
		return lipgloss.JoinVertical(lipgloss.Left, body, a.status.View())
	}

	sections := []string{
		a.styles.Title.Render("docsearch"),
		a.input.View(),
	}
	if a.prompt.IsOpen() {
		sections = append(sections, a.prompt.View())
	}
	if a.showHelp {
		sections = append(sections, a.help.FullHelpView(a.keymap.FullHelp()))
	} else {
		sections = append(sections, a.results.View(), a.corpus.View())
	}
	sections = append(sections, a.status.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Snapshot returns the snapshot currently displayed.
func (a *App) Snapshot() driving.Snapshot {
	return a.snap
}
