package driven

import (
	"context"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
)

// RetrievalService is the network contract of the indexing and retrieval
// service. Implementations report failures as *domain.ServiceError.
type RetrievalService interface {
	// SubmitDocuments sends one batch of raw files for indexing.
	// A response reporting per-file errors is not an error.
	SubmitDocuments(ctx context.Context, files []domain.UploadFile) (*domain.UploadResult, error)

	// RunQuery evaluates a query and returns matching document IDs in
	// service order.
	RunQuery(ctx context.Context, query string, mode domain.QueryMode) ([]string, error)

	// ClearCorpus removes every indexed document on the service.
	ClearCorpus(ctx context.Context) error

	// FetchContent returns the full text of a document.
	FetchContent(ctx context.Context, docID string) (string, error)

	// UploadStopwords replaces the service's stopword list.
	UploadStopwords(ctx context.Context, file domain.UploadFile) (*domain.StopwordsResult, error)

	// Status returns index statistics.
	Status(ctx context.Context) (*domain.ServiceStatus, error)
}
