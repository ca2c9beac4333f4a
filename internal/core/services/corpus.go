package services

import (
	"sync"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/logger"
)

// CorpusStore holds the ordered corpus of document records and the
// corpus pagination cursor. Insertion order is preserved; records are
// only ever appended, given content, or wiped by Clear.
type CorpusStore struct {
	mu       sync.RWMutex
	docs     []domain.Document
	index    map[string][]int
	pageSize int
	page     int
	log      *logger.Logger
}

// NewCorpusStore creates an empty corpus paginated by pageSize.
func NewCorpusStore(pageSize int) *CorpusStore {
	if pageSize < 1 {
		pageSize = domain.DefaultCorpusPageSize
	}
	return &CorpusStore{
		index:    make(map[string][]int),
		pageSize: pageSize,
		page:     1,
		log:      logger.New("corpus"),
	}
}

// Append adds documents to the end of the corpus in input order.
// Duplicate IDs are not filtered. The current page is kept unless it is
// now out of range.
func (s *CorpusStore) Append(docs ...domain.Document) domain.PageWindow {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range docs {
		s.index[doc.ID] = append(s.index[doc.ID], len(s.docs))
		s.docs = append(s.docs, doc)
	}
	w := domain.Paginate(len(s.docs), s.pageSize, s.page)
	s.page = w.Page
	s.log.Debug("appended documents", "count", len(docs), "total", len(s.docs))
	return w
}

// Clear empties the corpus and resets the cursor to page 1.
func (s *CorpusStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = nil
	s.index = make(map[string][]int)
	s.page = 1
}

// SetContent attaches fetched content to the record with the given ID.
// It reports whether a record was found; an absent ID is not an error,
// since a fetch may complete after the corpus was cleared.
func (s *CorpusStore) SetContent(docID, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	positions, ok := s.index[docID]
	if !ok {
		s.log.Debug("content for absent document dropped", "doc_id", docID)
		return false
	}
	for _, i := range positions {
		s.docs[i] = s.docs[i].WithContent(content)
	}
	return true
}

// GetPage returns a copy of the requested page, clamped into range.
// It never moves the cursor.
func (s *CorpusStore) GetPage(page int) ([]domain.Document, domain.PageWindow) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageLocked(page)
}

// CurrentPage returns a copy of the page under the cursor.
func (s *CorpusStore) CurrentPage() ([]domain.Document, domain.PageWindow) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageLocked(s.page)
}

// SetPage moves the cursor, clamping out-of-range pages.
func (s *CorpusStore) SetPage(page int) domain.PageWindow {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := domain.Paginate(len(s.docs), s.pageSize, page)
	s.page = w.Page
	return w
}

// Window returns the window under the cursor.
func (s *CorpusStore) Window() domain.PageWindow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Paginate(len(s.docs), s.pageSize, s.page)
}

// Get returns the first record with the given ID.
func (s *CorpusStore) Get(docID string) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	positions, ok := s.index[docID]
	if !ok {
		return domain.Document{}, false
	}
	return s.docs[positions[0]], true
}

// Documents returns a copy of the whole corpus.
func (s *CorpusStore) Documents() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Len returns the number of records.
func (s *CorpusStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// PageSize returns the page size.
func (s *CorpusStore) PageSize() int {
	return s.pageSize
}

func (s *CorpusStore) pageLocked(page int) ([]domain.Document, domain.PageWindow) {
	w := domain.Paginate(len(s.docs), s.pageSize, page)
	out := make([]domain.Document, w.Len())
	copy(out, s.docs[w.Start:w.End])
	return out, w
}
