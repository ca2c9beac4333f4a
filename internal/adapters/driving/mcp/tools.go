package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to run against the uploaded corpus"`
	Mode  string `json:"mode,omitempty" jsonschema:"boolean (default) or proximity"`
	Page  int    `json:"page,omitempty" jsonschema:"1-based results page (default 1)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Query      string   `json:"query"`
	Mode       string   `json:"mode"`
	DocIDs     []string `json:"doc_ids"`
	URIs       []string `json:"uris"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	TotalPages int      `json:"total_pages"`
}

// StatusInput is the (empty) input schema for the status tool.
type StatusInput struct{}

// StatusOutput is the output schema for the status tool.
type StatusOutput struct {
	ProcessedFiles int `json:"processed_files"`
	UniqueTerms    int `json:"unique_terms"`
	StopwordsCount int `json:"stopwords_count"`
}

// errStatusUnavailable is returned by the status tool when no status port is wired.
var errStatusUnavailable = errors.New("status is not available")

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the uploaded corpus with a boolean or proximity query",
	}, s.handleSearch)

	if s.ports.Status != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "status",
			Description: "Report retrieval service index statistics",
		}, s.handleStatus)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	page := input.Page
	if page <= 0 {
		page = 1
	}

	res, err := s.ports.Search.Query(ctx, input.Query, domain.QueryMode(input.Mode), page)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Query:      res.Query,
		Mode:       string(res.Mode),
		DocIDs:     res.IDs,
		URIs:       make([]string, len(res.IDs)),
		Total:      res.Total,
		Page:       res.Window.Page,
		TotalPages: res.Window.DisplayTotal(),
	}
	for i, id := range res.IDs {
		output.URIs[i] = documentURI(id)
	}

	return nil, output, nil
}

// handleStatus handles the status tool invocation.
func (s *Server) handleStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ StatusInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	if s.ports.Status == nil {
		return nil, StatusOutput{}, errStatusUnavailable
	}

	st, err := s.ports.Status.Status(ctx)
	if err != nil {
		return nil, StatusOutput{}, err
	}

	return nil, StatusOutput{
		ProcessedFiles: st.ProcessedFiles,
		UniqueTerms:    st.UniqueTerms,
		StopwordsCount: st.StopwordsCount,
	}, nil
}
