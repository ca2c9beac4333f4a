package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content [doc-id]",
	Short: "Print the full text of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runContent,
}

func init() {
	rootCmd.AddCommand(contentCmd)
}

func runContent(cmd *cobra.Command, args []string) error {
	if controller == nil {
		return errors.New("controller not configured")
	}

	content, err := controller.Content(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("fetching content: %w", err)
	}
	cmd.Println(content)
	return nil
}
