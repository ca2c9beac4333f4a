// Package mcp provides an MCP (Model Context Protocol) server adapter for docsearch.
// It lets AI assistants query the retrieval service and read document content.
package mcp

import "errors"

var (
	// ErrMissingSearchService is returned when the search service is not provided.
	ErrMissingSearchService = errors.New("mcp: search service is required")

	// ErrMissingContentService is returned when the content service is not provided.
	ErrMissingContentService = errors.New("mcp: content service is required")
)
