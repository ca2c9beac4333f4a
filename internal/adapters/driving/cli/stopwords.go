package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch-cli/internal/adapters/driven/localfs"
)

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords [file]",
	Short: "Upload a stopword list",
	Long: `Uploads a plain-text stopword list, one word per line. The service
drops these words from the index and from queries.`,
	Args: cobra.ExactArgs(1),
	RunE: runStopwords,
}

func init() {
	rootCmd.AddCommand(stopwordsCmd)
}

func runStopwords(cmd *cobra.Command, args []string) error {
	if controller == nil {
		return errors.New("controller not configured")
	}

	f, err := localfs.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading stopwords: %w", err)
	}

	if _, err := controller.UploadStopwords(cmd.Context(), f); err != nil {
		return errors.New(controller.Snapshot().Error)
	}
	printMessages(cmd)
	return nil
}
