package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driven"
)

// mockRetrieval implements driven.RetrievalService for testing.
type mockRetrieval struct {
	SubmitDocumentsFunc func(ctx context.Context, files []domain.UploadFile) (*domain.UploadResult, error)
	RunQueryFunc        func(ctx context.Context, query string, mode domain.QueryMode) ([]string, error)
	ClearCorpusFunc     func(ctx context.Context) error
	FetchContentFunc    func(ctx context.Context, docID string) (string, error)
	UploadStopwordsFunc func(ctx context.Context, file domain.UploadFile) (*domain.StopwordsResult, error)
	StatusFunc          func(ctx context.Context) (*domain.ServiceStatus, error)

	mu      sync.Mutex
	calls   map[string]int
	fetches map[string]int
}

var _ driven.RetrievalService = (*mockRetrieval)(nil)

func newMockRetrieval() *mockRetrieval {
	return &mockRetrieval{calls: make(map[string]int), fetches: make(map[string]int)}
}

func (m *mockRetrieval) record(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[op]++
}

func (m *mockRetrieval) callCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *mockRetrieval) fetchCount(docID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches[docID]
}

func (m *mockRetrieval) SubmitDocuments(ctx context.Context, files []domain.UploadFile) (*domain.UploadResult, error) {
	m.record("submit")
	if m.SubmitDocumentsFunc != nil {
		return m.SubmitDocumentsFunc(ctx, files)
	}
	res := &domain.UploadResult{}
	for _, f := range files {
		res.Results = append(res.Results, domain.UploadedDocument{Name: f.Name, DocID: f.Name})
		res.Processed++
	}
	return res, nil
}

func (m *mockRetrieval) RunQuery(ctx context.Context, query string, mode domain.QueryMode) ([]string, error) {
	m.record("query")
	if m.RunQueryFunc != nil {
		return m.RunQueryFunc(ctx, query, mode)
	}
	return nil, nil
}

func (m *mockRetrieval) ClearCorpus(ctx context.Context) error {
	m.record("clear")
	if m.ClearCorpusFunc != nil {
		return m.ClearCorpusFunc(ctx)
	}
	return nil
}

func (m *mockRetrieval) FetchContent(ctx context.Context, docID string) (string, error) {
	m.record("fetch")
	m.mu.Lock()
	m.fetches[docID]++
	m.mu.Unlock()
	if m.FetchContentFunc != nil {
		return m.FetchContentFunc(ctx, docID)
	}
	return "content of " + docID, nil
}

func (m *mockRetrieval) UploadStopwords(ctx context.Context, file domain.UploadFile) (*domain.StopwordsResult, error) {
	m.record("stopwords")
	if m.UploadStopwordsFunc != nil {
		return m.UploadStopwordsFunc(ctx, file)
	}
	return &domain.StopwordsResult{Message: "ok", Count: 3}, nil
}

func (m *mockRetrieval) Status(ctx context.Context) (*domain.ServiceStatus, error) {
	m.record("status")
	if m.StatusFunc != nil {
		return m.StatusFunc(ctx)
	}
	return &domain.ServiceStatus{}, nil
}

// gatedFetch makes FetchContent block per document until released.
// Once released, every fetch of that document returns the reply.
type gatedFetch struct {
	mu    sync.Mutex
	gates map[string]*fetchGate
}

type fetchGate struct {
	open    chan struct{}
	content string
	err     error
}

func newGatedFetch() *gatedFetch {
	return &gatedFetch{gates: make(map[string]*fetchGate)}
}

func (g *gatedFetch) gate(docID string) *fetchGate {
	g.mu.Lock()
	defer g.mu.Unlock()
	fg, ok := g.gates[docID]
	if !ok {
		fg = &fetchGate{open: make(chan struct{})}
		g.gates[docID] = fg
	}
	return fg
}

func (g *gatedFetch) fetch(ctx context.Context, docID string) (string, error) {
	fg := g.gate(docID)
	select {
	case <-fg.open:
		return fg.content, fg.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (g *gatedFetch) release(docID, content string, err error) {
	fg := g.gate(docID)
	fg.content = content
	fg.err = err
	close(fg.open)
}

func makeDocs(n int) []domain.Document {
	docs := make([]domain.Document, n)
	for i := range docs {
		id := fmt.Sprintf("doc%03d", i)
		docs[i] = domain.NewDocument(id, id+".txt")
	}
	return docs
}

func serviceErr(op string) error {
	return &domain.ServiceError{Op: op, Status: 500, Message: "boom"}
}
