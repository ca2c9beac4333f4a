package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driven"
)

// fakeRetrieval is an in-memory retrieval service. Uploaded documents get
// the ID "id-<name>" and queries match IDs containing the query text.
type fakeRetrieval struct {
	mu        sync.Mutex
	docs      []string
	contents  map[string]string
	stopwords int
	cleared   int

	ClearErr error
	QueryErr error
}

func newFakeRetrieval() *fakeRetrieval {
	return &fakeRetrieval{contents: make(map[string]string)}
}

func (f *fakeRetrieval) SubmitDocuments(_ context.Context, files []domain.UploadFile) (*domain.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := &domain.UploadResult{}
	for _, file := range files {
		id := "id-" + file.Name
		f.docs = append(f.docs, id)
		f.contents[id] = string(file.Data)
		res.Results = append(res.Results, domain.UploadedDocument{Name: file.Name, DocID: id})
		res.Processed++
	}
	return res, nil
}

func (f *fakeRetrieval) RunQuery(_ context.Context, query string, _ domain.QueryMode) ([]string, error) {
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for _, id := range f.docs {
		if strings.Contains(id, query) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeRetrieval) ClearCorpus(context.Context) error {
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs = nil
	f.contents = make(map[string]string)
	f.cleared++
	return nil
}

func (f *fakeRetrieval) FetchContent(_ context.Context, docID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contents[docID]
	if !ok {
		return "", &domain.ServiceError{Op: "fetch", Status: 404, Message: "Document not found", Err: domain.ErrNotFound}
	}
	return c, nil
}

func (f *fakeRetrieval) UploadStopwords(_ context.Context, file domain.UploadFile) (*domain.StopwordsResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopwords = len(strings.Fields(string(file.Data)))
	return &domain.StopwordsResult{Message: "ok", Count: f.stopwords}, nil
}

func (f *fakeRetrieval) Status(context.Context) (*domain.ServiceStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &domain.ServiceStatus{ProcessedFiles: len(f.docs), UniqueTerms: 7, StopwordsCount: f.stopwords}, nil
}

// setupTestServices swaps the service factories for in-memory fakes and
// resets command flags. Call the returned func to restore them.
func setupTestServices() (*fakeRetrieval, func()) {
	fake := newFakeRetrieval()
	store := memory.NewConfigStore()

	origStore, origRetrieval, origTerminal := openConfigStore, newRetrieval, stdinIsTerminal
	openConfigStore = func(string) (driven.ConfigStore, error) { return store, nil }
	newRetrieval = func(domain.Settings) driven.RetrievalService { return fake }
	resetFlags()

	return fake, func() {
		openConfigStore, newRetrieval, stdinIsTerminal = origStore, origRetrieval, origTerminal
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}
}

func resetFlags() {
	configDir, serviceURL, verbose = "", "", false
	searchMode, searchPage, searchJSON = string(domain.QueryModeBoolean), 1, false
	statusJSON, clearYes, uploadWatchDir = false, false, ""
	resetHelp(rootCmd)
}

// resetHelp clears --help on cmd and its children. Cobra keeps parsed flag
// values on the command between Execute calls.
func resetHelp(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}
	for _, c := range cmd.Commands() {
		resetHelp(c)
	}
}

// execute runs the root command and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// writeFiles creates text files in a temp directory and returns their paths.
func writeFiles(t *testing.T, contents map[string]string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(contents))
	for name, body := range contents {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		paths = append(paths, p)
	}
	return paths
}

// seed uploads n documents named doc<i>.txt directly to the fake.
func seed(f *fakeRetrieval, n int) {
	files := make([]domain.UploadFile, n)
	for i := range files {
		files[i] = domain.UploadFile{Name: fmt.Sprintf("doc%02d.txt", i), Data: []byte("body")}
	}
	_, _ = f.SubmitDocuments(context.Background(), files)
}
