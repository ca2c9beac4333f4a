package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch-cli/internal/logger"
)

// errStaleFetch is returned by Fetch when the cache was reset while the
// fetch was in flight. The content belongs to a cleared corpus.
var errStaleFetch = errors.New("content fetch superseded by clear")

// Ensure ContentCache implements the interface.
var _ driving.ContentService = (*ContentCache)(nil)

// ContentCache maps document IDs to fetched content. It is filled lazily
// and every successful fetch is merged into the corpus record.
//
// Entries are immutable: once a document's content is cached it is never
// refetched. Concurrent fetches for the same ID share one service call.
// Reset starts a new generation; fetches issued before it are discarded
// when they complete, because the service may hand the same ID to a
// different document after a clear.
type ContentCache struct {
	retrieval driven.RetrievalService
	corpus    *CorpusStore

	mu         sync.RWMutex
	entries    map[string]string
	generation uint64

	flights singleflight.Group
	log     *logger.Logger
}

// NewContentCache creates a cache that merges fetched content into corpus.
// corpus may be nil when no corpus is kept (one-shot CLI commands).
func NewContentCache(retrieval driven.RetrievalService, corpus *CorpusStore) *ContentCache {
	return &ContentCache{
		retrieval: retrieval,
		corpus:    corpus,
		entries:   make(map[string]string),
		log:       logger.New("content"),
	}
}

// Get returns cached content without fetching.
func (c *ContentCache) Get(docID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	content, ok := c.entries[docID]
	return content, ok
}

// Put stores content unless an entry already exists.
func (c *ContentCache) Put(docID, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[docID]; !ok {
		c.entries[docID] = content
	}
}

// Content returns cached content, fetching it on a miss.
func (c *ContentCache) Content(ctx context.Context, docID string) (string, error) {
	return c.Fetch(ctx, docID)
}

// Fetch returns cached content or fetches it from the service, caching it
// and attaching it to the corpus record. Concurrent callers share one
// service call; each caller stops waiting when its own ctx is done.
func (c *ContentCache) Fetch(ctx context.Context, docID string) (string, error) {
	c.mu.RLock()
	content, ok := c.entries[docID]
	gen := c.generation
	c.mu.RUnlock()
	if ok {
		return content, nil
	}

	key := fmt.Sprintf("%d/%s", gen, docID)
	shared := context.WithoutCancel(ctx)
	ch := c.flights.DoChan(key, func() (any, error) {
		c.log.Debug("fetching content", "doc_id", docID)
		return c.retrieval.FetchContent(shared, docID)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		c.log.Warn("content fetch failed", "doc_id", docID, "error", res.Err)
		if c.stale(gen) {
			return "", errStaleFetch
		}
		return "", res.Err
	}
	content = res.Val.(string)
	if !c.commit(gen, docID, content) {
		return "", errStaleFetch
	}
	return content, nil
}

func (c *ContentCache) stale(gen uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation != gen
}

// Reset drops all entries and starts a new generation.
func (c *ContentCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
	c.generation++
}

// Len returns the number of cached entries.
func (c *ContentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// commit stores content fetched in generation gen. It reports false when
// the cache has been reset since.
func (c *ContentCache) commit(gen uint64, docID, content string) bool {
	c.mu.Lock()
	if c.generation != gen {
		c.mu.Unlock()
		c.log.Debug("stale content discarded", "doc_id", docID)
		return false
	}
	if _, ok := c.entries[docID]; !ok {
		c.entries[docID] = content
	}
	c.mu.Unlock()

	if c.corpus != nil {
		c.corpus.SetContent(docID, content)
	}
	return true
}
