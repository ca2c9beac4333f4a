package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch-cli/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.SearchService = (*QueryService)(nil)

// QueryService runs stateless paginated queries for one-shot callers
// (CLI, MCP). Interactive sessions use SearchController instead.
type QueryService struct {
	retrieval driven.RetrievalService
	pageSize  int
	log       *logger.Logger
}

// NewQueryService creates a query service paginating by pageSize.
func NewQueryService(retrieval driven.RetrievalService, pageSize int) *QueryService {
	if pageSize < 1 {
		pageSize = domain.DefaultResultPageSize
	}
	return &QueryService{retrieval: retrieval, pageSize: pageSize, log: logger.New("query")}
}

// Query validates and runs query, returning the requested page.
// Out-of-range pages are clamped.
func (s *QueryService) Query(ctx context.Context, query string, mode domain.QueryMode, page int) (*driving.QueryResult, error) {
	if err := domain.ValidateQuery(query); err != nil {
		return nil, err
	}
	if mode == "" {
		mode = domain.QueryModeBoolean
	}
	if !mode.IsValid() {
		return nil, &domain.ValidationError{Field: "mode", Reason: "must be boolean or proximity", Err: domain.ErrInvalidQueryMode}
	}
	query = strings.TrimSpace(query)

	ids, err := s.retrieval.RunQuery(ctx, query, mode)
	if err != nil {
		return nil, err
	}

	w := domain.Paginate(len(ids), s.pageSize, page)
	s.log.Debug("query answered", "query", query, "results", len(ids), "page", w.Page)
	return &driving.QueryResult{
		Query:  query,
		Mode:   mode,
		IDs:    append([]string{}, ids[w.Start:w.End]...),
		Total:  len(ids),
		Window: w,
	}, nil
}
