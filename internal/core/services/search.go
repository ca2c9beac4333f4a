package services

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch-cli/internal/logger"
)

// SearchController runs queries and owns the result sequence and the
// result pagination cursor.
//
// A successful search replaces the results wholesale and resets the
// cursor to page 1. A failed search leaves the previous results in place.
// When searches overlap, the most recently issued one wins: a response to
// an older request never overwrites results applied by a newer one.
type SearchController struct {
	retrieval driven.RetrievalService
	pageSize  int

	mu      sync.RWMutex
	query   string
	mode    domain.QueryMode
	ids     []string
	page    int
	issued  uint64
	applied uint64

	log *logger.Logger
}

// NewSearchController creates a controller paginating results by pageSize.
func NewSearchController(retrieval driven.RetrievalService, pageSize int) *SearchController {
	if pageSize < 1 {
		pageSize = domain.DefaultResultPageSize
	}
	return &SearchController{
		retrieval: retrieval,
		pageSize:  pageSize,
		mode:      domain.QueryModeBoolean,
		page:      1,
		log:       logger.New("search"),
	}
}

// RunSearch validates and executes a query. Validation failures are
// returned without contacting the service. It returns the result IDs
// the service produced and whether they replaced the current results; a
// search superseded by a newer one or by Clear is not applied.
func (s *SearchController) RunSearch(ctx context.Context, query string, mode domain.QueryMode) ([]string, bool, error) {
	if err := domain.ValidateQuery(query); err != nil {
		return nil, false, err
	}
	if mode == "" {
		mode = domain.QueryModeBoolean
	}
	if !mode.IsValid() {
		return nil, false, &domain.ValidationError{Field: "mode", Reason: "must be boolean or proximity", Err: domain.ErrInvalidQueryMode}
	}
	query = strings.TrimSpace(query)

	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	s.log.Debug("running query", "query", query, "mode", mode, "seq", seq)
	ids, err := s.retrieval.RunQuery(ctx, query, mode)
	if err != nil {
		s.log.Warn("query failed", "query", query, "error", err)
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.applied {
		s.log.Debug("superseded results dropped", "seq", seq, "applied", s.applied)
		return ids, false, nil
	}
	s.applied = seq
	s.query = query
	s.mode = mode
	s.ids = append([]string(nil), ids...)
	s.page = 1
	return ids, true, nil
}

// Clear empties the results and resets the cursor. Searches in flight
// when Clear is called are not applied.
func (s *SearchController) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = ""
	s.ids = nil
	s.page = 1
	s.applied = s.issued + 1
	s.issued = s.applied
}

// SetPage moves the result cursor, clamping out-of-range pages.
func (s *SearchController) SetPage(page int) domain.PageWindow {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := domain.Paginate(len(s.ids), s.pageSize, page)
	s.page = w.Page
	return w
}

// CurrentPage returns the result IDs under the cursor.
func (s *SearchController) CurrentPage() ([]string, domain.PageWindow) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w := domain.Paginate(len(s.ids), s.pageSize, s.page)
	out := make([]string, w.Len())
	copy(out, s.ids[w.Start:w.End])
	return out, w
}

// Results returns a copy of the whole result sequence.
func (s *SearchController) Results() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.ids...)
}

// Query returns the query and mode of the applied results.
func (s *SearchController) Query() (string, domain.QueryMode) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query, s.mode
}
