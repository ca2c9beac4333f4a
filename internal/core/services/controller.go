package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch-cli/internal/logger"
)

// Ensure Controller implements the interface.
var _ driving.Controller = (*Controller)(nil)

// Controller coordinates the corpus, search results, content cache and
// modal, and keeps the user-visible message board. It publishes a
// snapshot to subscribers after every mutation.
type Controller struct {
	retrieval driven.RetrievalService

	corpus *CorpusStore
	cache  *ContentCache
	search *SearchController
	modal  *ModalController
	upload *UploadCoordinator

	mu         sync.Mutex
	processing int
	success    string
	errMsg     string

	notifier *Notifier[driving.Snapshot]
	log      *logger.Logger
}

// NewController wires a controller against the retrieval service.
func NewController(retrieval driven.RetrievalService, settings domain.Settings) *Controller {
	settings = settings.WithDefaults()

	corpus := NewCorpusStore(settings.CorpusPageSize)
	cache := NewContentCache(retrieval, corpus)

	c := &Controller{
		retrieval: retrieval,
		corpus:    corpus,
		cache:     cache,
		search:    NewSearchController(retrieval, settings.ResultPageSize),
		modal:     NewModalController(cache, corpus),
		upload:    NewUploadCoordinator(retrieval, corpus),
		notifier:  NewNotifier[driving.Snapshot](),
		log:       logger.New("controller"),
	}
	c.modal.OnChange(c.publish)
	c.modal.OnError(func(err error) {
		c.setError("Error fetching document content: " + reason(err))
	})
	return c
}

// Upload submits files and appends the ingested documents to the corpus.
func (c *Controller) Upload(ctx context.Context, files []domain.UploadFile) (*driving.UploadOutcome, error) {
	c.begin()
	defer c.end()

	outcome, err := c.upload.Submit(ctx, files)
	var partial *domain.PartialFailureError
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.setError(reason(err))
	case errors.As(err, &partial):
		c.setMessages(fmt.Sprintf("Successfully processed %d documents", outcome.Processed),
			"Some files had errors: "+strings.Join(partial.Failed, ", "))
	case err != nil:
		c.setError("Error uploading documents: " + reason(err))
	default:
		c.setMessages(fmt.Sprintf("Successfully processed %d documents", outcome.Processed), "")
	}
	return outcome, err
}

// UploadStopwords validates and submits a stopword list.
func (c *Controller) UploadStopwords(ctx context.Context, file domain.UploadFile) (*domain.StopwordsResult, error) {
	c.begin()
	defer c.end()

	res, err := c.upload.SubmitStopwords(ctx, file)
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.setError(reason(err))
	case err != nil:
		c.setError("Error uploading stopwords: " + reason(err))
	default:
		c.setMessages(fmt.Sprintf("Stopwords file uploaded successfully (%d words)", res.Count), "")
	}
	return res, err
}

// Search runs a query. On failure the previous results are kept.
func (c *Controller) Search(ctx context.Context, query string, mode domain.QueryMode) error {
	if err := domain.ValidateQuery(query); err != nil {
		c.setError(reason(err))
		return err
	}

	c.begin()
	defer c.end()

	ids, applied, err := c.search.RunSearch(ctx, query, mode)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.setError(reason(err))
		} else {
			c.setError("Error performing search: " + reason(err))
		}
		return err
	}
	if applied {
		c.setMessages(fmt.Sprintf("Found %d matching documents", len(ids)), "")
	}
	return nil
}

// Clear wipes the service index. Local state is only reset once the
// service confirms; the open modal is closed and the content cache is
// dropped, since the service may reuse document IDs afterwards.
func (c *Controller) Clear(ctx context.Context) error {
	if err := c.retrieval.ClearCorpus(ctx); err != nil {
		c.setError("Error clearing documents: " + reason(err))
		return err
	}

	c.cache.Reset()
	c.corpus.Clear()
	c.search.Clear()
	c.modal.Close()
	c.setMessages("All documents cleared successfully", "")
	c.publish()
	return nil
}

// Select opens the modal for doc.
func (c *Controller) Select(doc domain.Document) driving.ContentFetch {
	fetch := c.modal.Select(doc)
	c.publish()
	return fetch
}

// CloseModal clears the selection.
func (c *Controller) CloseModal() {
	c.modal.Close()
	c.publish()
}

// ReportError posts msg as the current error.
func (c *Controller) ReportError(msg string) {
	c.setError(msg)
}

// SetCorpusPage moves the corpus cursor.
func (c *Controller) SetCorpusPage(page int) domain.PageWindow {
	w := c.corpus.SetPage(page)
	c.publish()
	return w
}

// SetResultPage moves the result cursor.
func (c *Controller) SetResultPage(page int) domain.PageWindow {
	w := c.search.SetPage(page)
	c.publish()
	return w
}

// Status returns service index statistics. It does not touch local state.
func (c *Controller) Status(ctx context.Context) (*domain.ServiceStatus, error) {
	return c.retrieval.Status(ctx)
}

// Content returns document content through the cache.
func (c *Controller) Content(ctx context.Context, docID string) (string, error) {
	return c.cache.Fetch(ctx, docID)
}

// Snapshot returns the current read-only state.
func (c *Controller) Snapshot() driving.Snapshot {
	docs, cw := c.corpus.CurrentPage()
	ids, rw := c.search.CurrentPage()
	query, mode := c.search.Query()

	results := make([]domain.Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := c.corpus.Get(id); ok {
			results = append(results, doc)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return driving.Snapshot{
		Corpus: driving.CorpusPage{Documents: docs, Window: cw},
		Results: driving.ResultPage{
			Query:     query,
			Mode:      mode,
			IDs:       ids,
			Documents: results,
			Window:    rw,
		},
		Modal:      c.modal.View(),
		Processing: c.processing > 0,
		Success:    c.success,
		Error:      c.errMsg,
	}
}

// Subscribe registers fn to receive a snapshot after every mutation.
func (c *Controller) Subscribe(fn func(driving.Snapshot)) func() {
	return c.notifier.Subscribe(fn)
}

// Corpus returns the corpus store.
func (c *Controller) Corpus() *CorpusStore {
	return c.corpus
}

// Cache returns the content cache.
func (c *Controller) Cache() *ContentCache {
	return c.cache
}

func (c *Controller) publish() {
	if c.notifier.Len() == 0 {
		return
	}
	c.notifier.Publish(c.Snapshot())
}

func (c *Controller) begin() {
	c.mu.Lock()
	c.processing++
	c.errMsg = ""
	c.mu.Unlock()
	c.publish()
}

func (c *Controller) end() {
	c.mu.Lock()
	c.processing--
	c.mu.Unlock()
	c.publish()
}

func (c *Controller) setMessages(success, errMsg string) {
	c.mu.Lock()
	c.success = success
	c.errMsg = errMsg
	c.mu.Unlock()
}

func (c *Controller) setError(msg string) {
	c.mu.Lock()
	c.errMsg = msg
	c.mu.Unlock()
	c.publish()
}

// reason returns the user-facing part of an error.
func reason(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) && verr.Reason != "" {
		return capitalize(verr.Reason)
	}
	var serr *domain.ServiceError
	if errors.As(err, &serr) && serr.Message != "" {
		return serr.Message
	}
	return err.Error()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
