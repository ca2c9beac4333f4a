package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch-cli/internal/logger"
)

// ModalController tracks the selected document and drives its content
// fetch through the content cache.
//
// States move Closed -> OpenMetadataOnly when the selection already has
// content, and Closed -> OpenLoadingContent -> OpenWithContent (or back
// to OpenMetadataOnly on error) otherwise. A fetch result only changes
// state when the selection still refers to the requested document and is
// still loading; the cache write happens regardless.
type ModalController struct {
	cache  *ContentCache
	corpus *CorpusStore

	mu       sync.Mutex
	state    domain.ModalState
	selected *domain.Document
	err      error

	// onChange is called after an asynchronous transition.
	onChange func()

	// onError is called when a fetch for the current selection fails.
	onError func(error)

	log *logger.Logger
}

// NewModalController creates a closed modal. corpus may be nil.
func NewModalController(cache *ContentCache, corpus *CorpusStore) *ModalController {
	return &ModalController{
		cache:  cache,
		corpus: corpus,
		state:  domain.ModalClosed,
		log:    logger.New("modal"),
	}
}

// OnChange registers a callback run after every fetch resolution.
func (m *ModalController) OnChange(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// OnError registers a callback for fetch failures that hit the current
// selection. Failures of superseded fetches are not reported.
func (m *ModalController) OnError(fn func(error)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onError = fn
}

// Select opens the modal for doc, replacing any current selection.
// It returns nil when the content is already known, otherwise a fetch
// that the caller must run to complete the transition.
func (m *ModalController) Select(doc domain.Document) driving.ContentFetch {
	if !doc.HasContent() && m.corpus != nil {
		if stored, ok := m.corpus.Get(doc.ID); ok && stored.HasContent() {
			doc = stored
		}
	}
	if !doc.HasContent() {
		if content, ok := m.cache.Get(doc.ID); ok {
			doc = doc.WithContent(content)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.selected = &doc
	m.err = nil
	if doc.HasContent() {
		m.state = domain.ModalOpenMetadataOnly
		return nil
	}
	m.state = domain.ModalOpenLoadingContent
	m.log.Debug("selection needs content", "doc_id", doc.ID)
	return &contentFetch{modal: m, docID: doc.ID}
}

// Close clears the selection. An in-flight fetch still fills the cache
// but no longer affects the modal.
func (m *ModalController) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = domain.ModalClosed
	m.selected = nil
	m.err = nil
}

// View returns the current modal state.
func (m *ModalController) View() driving.ModalView {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := driving.ModalView{State: m.state, Err: m.err}
	if m.selected != nil {
		doc := *m.selected
		v.Document = &doc
	}
	return v
}

// State returns the current state.
func (m *ModalController) State() domain.ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// resolve applies a fetch result to the selection it was issued for. It
// reports whether the modal changed. Results from a fetch superseded by a
// clear never apply, even if a document with the same ID is now loading.
func (m *ModalController) resolve(docID, content string, err error) bool {
	m.mu.Lock()
	applied := false
	if !errors.Is(err, errStaleFetch) &&
		m.selected != nil && m.selected.ID == docID && m.state == domain.ModalOpenLoadingContent {
		applied = true
		if err != nil {
			m.state = domain.ModalOpenMetadataOnly
			m.err = err
		} else {
			doc := m.selected.WithContent(content)
			m.selected = &doc
			m.state = domain.ModalOpenWithContent
		}
	}
	notify, report := m.onChange, m.onError
	m.mu.Unlock()

	if !applied {
		m.log.Debug("fetch resolved for stale selection", "doc_id", docID)
	}
	if applied && err != nil && report != nil {
		report(err)
	}
	if notify != nil {
		notify()
	}
	return applied
}

// contentFetch is the pending fetch for one selection.
type contentFetch struct {
	modal *ModalController
	docID string
}

func (f *contentFetch) DocID() string {
	return f.docID
}

func (f *contentFetch) Run(ctx context.Context) error {
	content, err := f.modal.cache.Fetch(ctx, f.docID)
	f.modal.resolve(f.docID, content, err)
	return err
}
