package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
)

var (
	searchMode string
	searchPage int
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search uploaded documents",
	Long: `Runs a query against the retrieval service and prints one page of
matching document IDs.

Boolean mode accepts AND, OR and NOT with parentheses. Proximity mode
matches terms within a window, written as "#5(term1 term2)".`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchMode, "mode", "m", string(domain.QueryModeBoolean), "query mode: boolean or proximity")
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 1, "results page to show")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	res, err := searchService.Query(cmd.Context(), args[0], domain.QueryMode(searchMode), searchPage)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, res)
	}
	outputSearchTable(cmd, res)
	return nil
}

func outputSearchJSON(cmd *cobra.Command, res *driving.QueryResult) error {
	out := struct {
		*driving.QueryResult
		Page       int `json:"page"`
		TotalPages int `json:"total_pages"`
	}{res, res.Window.Page, res.Window.DisplayTotal()}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, res *driving.QueryResult) {
	if res.Total == 0 {
		cmd.Println("No results found.")
		return
	}

	cmd.Printf("Found %d matching documents (page %d of %d)\n\n", res.Total, res.Window.Page, res.Window.DisplayTotal())
	for i, id := range res.IDs {
		cmd.Printf("  [%d] %s\n", res.Window.Start+i+1, id)
	}
}
