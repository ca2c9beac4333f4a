package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
)

func newTestController(svc *mockRetrieval) *Controller {
	settings := domain.DefaultSettings()
	settings.CorpusPageSize = 2
	settings.ResultPageSize = 2
	return NewController(svc, settings)
}

func TestController_UploadMessages(t *testing.T) {
	svc := newMockRetrieval()
	c := newTestController(svc)

	_, err := c.Upload(context.Background(), files("a.txt", "b.txt", "c.txt"))
	require.NoError(t, err)

	snap := c.Snapshot()
	assert.Equal(t, "Successfully processed 3 documents", snap.Success)
	assert.Empty(t, snap.Error)
	assert.False(t, snap.Processing)
	assert.Len(t, snap.Corpus.Documents, 2)
	assert.Equal(t, 2, snap.Corpus.Window.TotalPages)
}

func TestController_UploadPartialFailure(t *testing.T) {
	svc := newMockRetrieval()
	svc.SubmitDocumentsFunc = func(_ context.Context, _ []domain.UploadFile) (*domain.UploadResult, error) {
		return &domain.UploadResult{
			Processed: 2,
			Results:   []domain.UploadedDocument{{Name: "f1.txt", DocID: "f1"}, {Name: "f3.txt", DocID: "f3"}},
			Errors:    []string{"f2.txt"},
		}, nil
	}
	c := newTestController(svc)

	_, err := c.Upload(context.Background(), files("f1.txt", "f2.txt", "f3.txt"))
	assert.True(t, errors.Is(err, domain.ErrPartialFailure))

	snap := c.Snapshot()
	assert.Equal(t, "Successfully processed 2 documents", snap.Success)
	assert.Equal(t, "Some files had errors: f2.txt", snap.Error)
	assert.Equal(t, 2, c.Corpus().Len())
}

func TestController_UploadFailure(t *testing.T) {
	svc := newMockRetrieval()
	svc.SubmitDocumentsFunc = func(_ context.Context, _ []domain.UploadFile) (*domain.UploadResult, error) {
		return nil, serviceErr("upload")
	}
	c := newTestController(svc)

	_, err := c.Upload(context.Background(), files("a.txt"))
	require.Error(t, err)
	assert.Equal(t, "Error uploading documents: boom", c.Snapshot().Error)
	assert.Equal(t, 0, c.Corpus().Len())
}

func TestController_SearchResolvesAgainstCorpus(t *testing.T) {
	svc := newMockRetrieval()
	svc.RunQueryFunc = func(_ context.Context, _ string, _ domain.QueryMode) ([]string, error) {
		return []string{"b.txt", "ghost", "a.txt"}, nil
	}
	c := newTestController(svc)
	_, err := c.Upload(context.Background(), files("a.txt", "b.txt"))
	require.NoError(t, err)

	require.NoError(t, c.Search(context.Background(), "x", domain.QueryModeBoolean))

	snap := c.Snapshot()
	assert.Equal(t, "Found 3 matching documents", snap.Success)
	assert.Equal(t, []string{"b.txt", "ghost"}, snap.Results.IDs)
	require.Len(t, snap.Results.Documents, 1)
	assert.Equal(t, "b.txt", snap.Results.Documents[0].ID)
	assert.Equal(t, 2, snap.Results.Window.TotalPages)
}

func TestController_SearchValidation(t *testing.T) {
	svc := newMockRetrieval()
	c := newTestController(svc)

	err := c.Search(context.Background(), "  ", domain.QueryModeBoolean)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, "Please enter a search query", c.Snapshot().Error)
	assert.Equal(t, 0, svc.callCount("query"))
}

func TestController_SearchFailureKeepsResults(t *testing.T) {
	svc := newMockRetrieval()
	svc.RunQueryFunc = func(_ context.Context, _ string, _ domain.QueryMode) ([]string, error) {
		return []string{"1", "2", "3"}, nil
	}
	c := newTestController(svc)
	require.NoError(t, c.Search(context.Background(), "x", domain.QueryModeBoolean))
	c.SetResultPage(2)
	before := c.Snapshot().Results

	svc.RunQueryFunc = func(_ context.Context, _ string, _ domain.QueryMode) ([]string, error) {
		return nil, serviceErr("search")
	}
	require.Error(t, c.Search(context.Background(), "y", domain.QueryModeBoolean))

	snap := c.Snapshot()
	assert.Equal(t, before, snap.Results)
	assert.Equal(t, "Error performing search: boom", snap.Error)
}

func TestController_ClearResetsEverything(t *testing.T) {
	svc := newMockRetrieval()
	svc.RunQueryFunc = func(_ context.Context, _ string, _ domain.QueryMode) ([]string, error) {
		return []string{"a.txt", "b.txt", "c.txt"}, nil
	}
	c := newTestController(svc)
	_, err := c.Upload(context.Background(), files("a.txt", "b.txt", "c.txt"))
	require.NoError(t, err)
	require.NoError(t, c.Search(context.Background(), "x", domain.QueryModeBoolean))
	c.SetCorpusPage(2)
	c.SetResultPage(2)
	fetch := c.Select(domain.NewDocument("a.txt", "a.txt"))
	require.NotNil(t, fetch)
	require.NoError(t, fetch.Run(context.Background()))
	require.Equal(t, 1, c.Cache().Len())

	require.NoError(t, c.Clear(context.Background()))

	snap := c.Snapshot()
	assert.Empty(t, snap.Corpus.Documents)
	assert.Equal(t, 1, snap.Corpus.Window.Page)
	assert.Empty(t, snap.Results.IDs)
	assert.Equal(t, 1, snap.Results.Window.Page)
	assert.Equal(t, domain.ModalClosed, snap.Modal.State)
	assert.Equal(t, 0, c.Cache().Len())
	assert.Equal(t, "All documents cleared successfully", snap.Success)
}

func TestController_ClearFailureKeepsState(t *testing.T) {
	svc := newMockRetrieval()
	svc.ClearCorpusFunc = func(context.Context) error { return serviceErr("clear") }
	c := newTestController(svc)
	_, err := c.Upload(context.Background(), files("a.txt"))
	require.NoError(t, err)

	require.Error(t, c.Clear(context.Background()))
	assert.Equal(t, 1, c.Corpus().Len())
	assert.Equal(t, "Error clearing documents: boom", c.Snapshot().Error)
}

func TestController_SelectFetchFailureReported(t *testing.T) {
	svc := newMockRetrieval()
	svc.FetchContentFunc = func(context.Context, string) (string, error) { return "", serviceErr("fetch content") }
	c := newTestController(svc)

	fetch := c.Select(domain.NewDocument("a", "a.txt"))
	require.NotNil(t, fetch)
	require.Error(t, fetch.Run(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, domain.ModalOpenMetadataOnly, snap.Modal.State)
	assert.Equal(t, "Error fetching document content: boom", snap.Error)
}

func TestController_FetchFromBeforeClearIsDiscarded(t *testing.T) {
	svc := newMockRetrieval()
	old := make(chan struct{})
	var mu sync.Mutex
	calls := 0
	svc.FetchContentFunc = func(_ context.Context, _ string) (string, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-old
			return "OLD pre-clear body", nil
		}
		return "NEW body", nil
	}
	c := newTestController(svc)
	ctx := context.Background()

	_, err := c.Upload(ctx, files("x.txt"))
	require.NoError(t, err)
	first := c.Select(domain.NewDocument("x.txt", "x.txt"))
	require.NotNil(t, first)
	firstErr := make(chan error, 1)
	go func() { firstErr <- first.Run(ctx) }()
	require.Eventually(t, func() bool { return svc.fetchCount("x.txt") == 1 }, time.Second, time.Millisecond)

	require.NoError(t, c.Clear(ctx))
	_, err = c.Upload(ctx, files("x.txt"))
	require.NoError(t, err)
	second := c.Select(domain.NewDocument("x.txt", "x.txt"))
	require.NotNil(t, second)

	close(old)
	require.ErrorIs(t, <-firstErr, errStaleFetch)
	snap := c.Snapshot()
	assert.Equal(t, domain.ModalOpenLoadingContent, snap.Modal.State)
	assert.Empty(t, snap.Error)
	_, cached := c.Cache().Get("x.txt")
	assert.False(t, cached)

	require.NoError(t, second.Run(ctx))
	snap = c.Snapshot()
	assert.Equal(t, domain.ModalOpenWithContent, snap.Modal.State)
	require.NotNil(t, snap.Modal.Document)
	require.NotNil(t, snap.Modal.Document.Content)
	assert.Equal(t, "NEW body", *snap.Modal.Document.Content)
}

func TestController_SupersededFetchFailureNotReported(t *testing.T) {
	svc := newMockRetrieval()
	svc.FetchContentFunc = func(_ context.Context, docID string) (string, error) {
		if docID == "a" {
			return "", serviceErr("fetch content")
		}
		return "content of " + docID, nil
	}
	c := newTestController(svc)

	fetchA := c.Select(domain.NewDocument("a", "a.txt"))
	require.NotNil(t, fetchA)
	fetchB := c.Select(domain.NewDocument("b", "b.txt"))
	require.NotNil(t, fetchB)

	require.Error(t, fetchA.Run(context.Background()))
	snap := c.Snapshot()
	assert.Empty(t, snap.Error)
	assert.Equal(t, domain.ModalOpenLoadingContent, snap.Modal.State)

	require.NoError(t, fetchB.Run(context.Background()))
	assert.Equal(t, domain.ModalOpenWithContent, c.Snapshot().Modal.State)
}

func TestController_SupersededSearchKeepsNewerMessage(t *testing.T) {
	svc := newMockRetrieval()
	slow := make(chan struct{})
	svc.RunQueryFunc = func(_ context.Context, query string, _ domain.QueryMode) ([]string, error) {
		if query == "old" {
			<-slow
			return []string{"1", "2", "3"}, nil
		}
		return []string{"9"}, nil
	}
	c := newTestController(svc)

	oldErr := make(chan error, 1)
	go func() { oldErr <- c.Search(context.Background(), "old", domain.QueryModeBoolean) }()
	require.Eventually(t, func() bool { return svc.callCount("query") == 1 }, time.Second, time.Millisecond)

	require.NoError(t, c.Search(context.Background(), "new", domain.QueryModeBoolean))
	assert.Equal(t, "Found 1 matching documents", c.Snapshot().Success)

	close(slow)
	require.NoError(t, <-oldErr)
	snap := c.Snapshot()
	assert.Equal(t, "Found 1 matching documents", snap.Success)
	assert.Equal(t, []string{"9"}, snap.Results.IDs)
}

func TestController_ProcessingFlag(t *testing.T) {
	svc := newMockRetrieval()
	release := make(chan struct{})
	svc.RunQueryFunc = func(_ context.Context, _ string, _ domain.QueryMode) ([]string, error) {
		<-release
		return nil, nil
	}
	c := newTestController(svc)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.Search(context.Background(), "x", domain.QueryModeBoolean)
	}()
	require.Eventually(t, func() bool { return c.Snapshot().Processing }, time.Second, time.Millisecond)

	close(release)
	<-done
	assert.False(t, c.Snapshot().Processing)
}

func TestController_SubscribePublishes(t *testing.T) {
	svc := newMockRetrieval()
	c := newTestController(svc)

	var mu sync.Mutex
	var snaps []driving.Snapshot
	unsub := c.Subscribe(func(s driving.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		snaps = append(snaps, s)
	})

	_, err := c.Upload(context.Background(), files("a.txt"))
	require.NoError(t, err)
	unsub()
	c.SetCorpusPage(1)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, snaps)
	assert.True(t, snaps[0].Processing)
	last := snaps[len(snaps)-1]
	assert.False(t, last.Processing)
	assert.Equal(t, "Successfully processed 1 documents", last.Success)
}

func TestController_StopwordsValidation(t *testing.T) {
	svc := newMockRetrieval()
	c := newTestController(svc)

	_, err := c.UploadStopwords(context.Background(), domain.UploadFile{Name: "s.csv", ContentType: "text/csv"})
	require.Error(t, err)
	assert.Equal(t, "Please upload a valid .txt file for stopwords", c.Snapshot().Error)

	res, err := c.UploadStopwords(context.Background(), domain.UploadFile{Name: "s.txt"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, "Stopwords file uploaded successfully (3 words)", c.Snapshot().Success)
}

func TestController_Status(t *testing.T) {
	svc := newMockRetrieval()
	svc.StatusFunc = func(context.Context) (*domain.ServiceStatus, error) {
		return &domain.ServiceStatus{ProcessedFiles: 4, UniqueTerms: 10, StopwordsCount: 2}, nil
	}
	c := newTestController(svc)

	st, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, st.ProcessedFiles)
}
