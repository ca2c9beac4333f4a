package driving

import (
	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
)

// Snapshot is an immutable view of controller state for presentation.
type Snapshot struct {
	Corpus  CorpusPage
	Results ResultPage
	Modal   ModalView

	// Processing is true while an upload or search is in flight.
	Processing bool

	// Success and Error are the last user-visible messages.
	Success string
	Error   string
}

// CorpusPage is the current page of the corpus.
type CorpusPage struct {
	Documents []domain.Document
	Window    domain.PageWindow
}

// ResultPage is the current page of the search results.
type ResultPage struct {
	// Query and Mode are those of the search that produced the results.
	Query string
	Mode  domain.QueryMode

	// IDs are the result identifiers on this page, in service order.
	IDs []string

	// Documents resolves IDs against the corpus. IDs with no corpus
	// record are omitted.
	Documents []domain.Document

	Window domain.PageWindow
}

// ModalView is the modal state machine's current state.
type ModalView struct {
	State domain.ModalState

	// Document is the selection. Nil when closed.
	Document *domain.Document

	// Err is the last fetch error for the selection.
	Err error
}
