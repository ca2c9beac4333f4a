package driving

import (
	"context"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
)

// Controller is the interaction/state controller for the search interface.
// Blocking methods suspend only at the network boundary; callers may run
// several of them concurrently.
type Controller interface {
	// Upload submits a batch of files and appends the ingested documents
	// to the corpus. A partial failure returns the outcome together with
	// a *domain.PartialFailureError.
	Upload(ctx context.Context, files []domain.UploadFile) (*UploadOutcome, error)

	// UploadStopwords validates and submits a stopword file.
	UploadStopwords(ctx context.Context, file domain.UploadFile) (*domain.StopwordsResult, error)

	// Search runs a query and replaces the result sequence on success.
	Search(ctx context.Context, query string, mode domain.QueryMode) error

	// Clear wipes the service index, the corpus and the results.
	Clear(ctx context.Context) error

	// Select opens the modal for a document. When its content must be
	// fetched the returned ContentFetch is non-nil and must be run to
	// complete the transition.
	Select(doc domain.Document) ContentFetch

	// CloseModal clears the selection. In-flight fetches still complete.
	CloseModal()

	// ReportError posts an error banner for a failure that happened
	// before any controller operation ran, such as reading local files.
	ReportError(msg string)

	// SetCorpusPage moves the corpus cursor, clamping out-of-range pages.
	SetCorpusPage(page int) domain.PageWindow

	// SetResultPage moves the result cursor, clamping out-of-range pages.
	SetResultPage(page int) domain.PageWindow

	// Status returns service index statistics.
	Status(ctx context.Context) (*domain.ServiceStatus, error)

	// Snapshot returns the current read-only state.
	Snapshot() Snapshot

	// Subscribe registers fn to receive a snapshot after every mutation.
	// The returned function unsubscribes.
	Subscribe(fn func(Snapshot)) (unsubscribe func())
}

// ContentFetch is a pending content fetch issued by a selection.
type ContentFetch interface {
	// DocID returns the document being fetched.
	DocID() string

	// Run performs the fetch and applies its result.
	Run(ctx context.Context) error
}

// ContentService looks up document content through the content cache.
type ContentService interface {
	// Content returns the cached content or fetches it.
	Content(ctx context.Context, docID string) (string, error)
}

// UploadOutcome summarises a committed upload.
type UploadOutcome struct {
	// Processed is the count reported by the service.
	Processed int

	// Added holds the records appended to the corpus, in service order.
	Added []domain.Document

	// Failed lists per-file failures reported by the service.
	Failed []string
}

// SearchService runs one-shot paginated queries. It keeps no result
// state between calls.
type SearchService interface {
	Query(ctx context.Context, query string, mode domain.QueryMode, page int) (*QueryResult, error)
}

// StatusService reports service index statistics.
type StatusService interface {
	Status(ctx context.Context) (*domain.ServiceStatus, error)
}

// QueryResult is one page of a one-shot query.
type QueryResult struct {
	Query string           `json:"query"`
	Mode  domain.QueryMode `json:"mode"`

	// IDs are the identifiers on the requested page, in service order.
	IDs []string `json:"results"`

	// Total is the number of results across all pages.
	Total int `json:"total"`

	Window domain.PageWindow `json:"-"`
}
