package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docsearch-cli/internal/adapters/driven/localfs"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/docsearch-cli/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for docsearch.

The TUI lists uploaded documents, runs boolean or proximity searches and
shows full document content in a modal.

Controls:
  /        - Focus the search box
  Tab      - Toggle query mode / switch pane
  ↑/k, ↓/j - Navigate
  [ ] { }  - Corpus / result pages
  Enter    - Search / Open document
  u w x    - Upload, stopwords, clear
  Esc      - Back / Close
  ?        - Toggle help
  q        - Quit`,
	RunE: runTUI,
}

// stdoutIsTerminal reports whether the TUI can take over the terminal.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if controller == nil {
		return errors.New("controller not configured")
	}
	if !stdoutIsTerminal() {
		return errors.New("the TUI requires an interactive terminal")
	}

	// The alternate screen owns stdout; logs go to a file instead.
	if f, err := tea.LogToFile(tuiLogPath(), "docsearch"); err == nil {
		logger.SetOutput(f)
		defer func() {
			logger.SetOutput(os.Stderr)
			_ = f.Close()
		}()
	}

	app, err := tui.NewApp(&tui.Ports{
		Controller: controller,
		ReadFiles:  localfs.ReadFiles,
		RowHeight:  settings.RowHeight,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	detach := app.Attach(p.Send)
	defer detach()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// tuiLogPath returns the TUI log file next to the config file, creating
// the directory if needed. Falls back to the temp directory.
func tuiLogPath() string {
	dir := os.TempDir()
	if settingsService != nil && settingsService.Path() != "" {
		d := filepath.Dir(settingsService.Path())
		if err := os.MkdirAll(d, 0o700); err == nil {
			dir = d
		}
	}
	return filepath.Join(dir, "tui.log")
}
