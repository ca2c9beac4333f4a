package mcp

import (
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs paginated queries.
	Search driving.SearchService

	// Content resolves document content through the content cache.
	Content driving.ContentService

	// Status reports index statistics. Optional.
	Status driving.StatusService

	// Version is reported to clients in the server implementation info.
	Version string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Content == nil {
		return ErrMissingContentService
	}
	return nil
}
