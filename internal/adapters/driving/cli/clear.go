package cli

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var clearYes bool

// stdinIsTerminal reports whether confirmation can be prompted for.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all documents from the retrieval service",
	Long: `Clears the retrieval service index, including every uploaded document.

Asks for confirmation unless --yes is given. Non-interactive sessions must
pass --yes.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	if controller == nil {
		return errors.New("controller not configured")
	}

	if !clearYes {
		if !stdinIsTerminal() {
			return errors.New("refusing to clear without confirmation; pass --yes")
		}
		cmd.Print("Remove all documents from the service? [y/N]: ")
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			cmd.Println("Aborted.")
			return nil
		}
	}

	if err := controller.Clear(cmd.Context()); err != nil {
		return errors.New(controller.Snapshot().Error)
	}
	printMessages(cmd)
	return nil
}
