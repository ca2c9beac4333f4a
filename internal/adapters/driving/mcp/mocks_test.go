package mcp

import (
	"context"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	result *driving.QueryResult
	err    error

	gotQuery string
	gotMode  domain.QueryMode
	gotPage  int
}

func (m *mockSearchService) Query(
	_ context.Context,
	query string,
	mode domain.QueryMode,
	page int,
) (*driving.QueryResult, error) {
	m.gotQuery, m.gotMode, m.gotPage = query, mode, page
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return &driving.QueryResult{Query: query, Mode: domain.QueryModeBoolean, IDs: []string{}}, nil
	}
	return m.result, nil
}

// mockContentService is a mock implementation of driving.ContentService.
type mockContentService struct {
	content string
	err     error
	gotID   string
}

func (m *mockContentService) Content(_ context.Context, docID string) (string, error) {
	m.gotID = docID
	return m.content, m.err
}

// mockStatusService is a mock implementation of driving.StatusService.
type mockStatusService struct {
	status *domain.ServiceStatus
	err    error
}

func (m *mockStatusService) Status(_ context.Context) (*domain.ServiceStatus, error) {
	return m.status, m.err
}
