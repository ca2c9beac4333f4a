// Package tui provides the interactive terminal user interface for docsearch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"context"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
)

// FileReader loads local files for upload.
type FileReader func(ctx context.Context, paths []string) ([]domain.UploadFile, error)

// Ports aggregates everything the TUI drives.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Controller owns all interface state.
	Controller driving.Controller

	// ReadFiles loads the files named in the upload and stopword prompts.
	ReadFiles FileReader

	// RowHeight is the fixed corpus row height in lines.
	RowHeight int
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Controller == nil {
		return ErrMissingController
	}
	if p.ReadFiles == nil {
		return ErrMissingFileReader
	}
	return nil
}
