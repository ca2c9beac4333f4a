package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show retrieval service index statistics",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output status as JSON")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if controller == nil {
		return errors.New("controller not configured")
	}

	st, err := controller.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching status: %w", err)
	}

	if statusJSON {
		data, err := json.MarshalIndent(st, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal status: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Service:          %s\n", settings.ServiceURL)
	cmd.Printf("Processed files:  %d\n", st.ProcessedFiles)
	cmd.Printf("Unique terms:     %d\n", st.UniqueTerms)
	cmd.Printf("Stopwords:        %d\n", st.StopwordsCount)
	return nil
}
