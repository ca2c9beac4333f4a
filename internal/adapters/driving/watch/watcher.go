// Package watch uploads plain-text files as they appear in a directory.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docsearch-cli/internal/adapters/driven/localfs"
	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch-cli/internal/logger"
)

// DefaultDebounce is how long the watcher waits for a burst of events
// to settle before submitting.
const DefaultDebounce = 500 * time.Millisecond

// Uploader submits a batch of files.
type Uploader interface {
	Upload(ctx context.Context, files []domain.UploadFile) (*driving.UploadOutcome, error)
}

// Result reports one submitted batch.
type Result struct {
	Paths   []string
	Outcome *driving.UploadOutcome
	Err     error
}

// Watcher batches file events in one directory into uploads.
type Watcher struct {
	dir      string
	uploader Uploader
	debounce time.Duration
	log      *logger.Logger

	mu      sync.Mutex
	pending map[string]struct{}
}

// New creates a watcher for dir.
func New(dir string, uploader Uploader) *Watcher {
	return &Watcher{
		dir:      dir,
		uploader: uploader,
		debounce: DefaultDebounce,
		log:      logger.New("watch").With("dir", dir),
		pending:  make(map[string]struct{}),
	}
}

// WithDebounce overrides the debounce interval.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Run watches until ctx is cancelled. Each submitted batch is reported on
// results, which is closed when Run returns. results may be nil.
func (w *Watcher) Run(ctx context.Context, results chan<- Result) error {
	if results != nil {
		defer close(results)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.log.Info("watching for new documents")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.handleEvent(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "error", err)

		case <-timer.C:
			res, ok := w.flush(ctx)
			if ok && results != nil {
				select {
				case results <- res:
				case <-ctx.Done():
					return nil
				}
			}
		}
	}
}

// handleEvent records eligible Create/Write events. It reports whether
// the event was queued.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	if !eligible(event.Name) {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[event.Name] = struct{}{}
	return true
}

// flush reads and uploads every pending path in one batch.
func (w *Watcher) flush(ctx context.Context) (Result, bool) {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	if len(paths) == 0 {
		return Result{}, false
	}
	sort.Strings(paths)

	res := Result{Paths: paths}
	files, err := localfs.ReadFiles(ctx, paths)
	if err != nil {
		res.Err = err
		w.log.Warn("read batch failed", "error", err)
		return res, true
	}

	res.Outcome, res.Err = w.uploader.Upload(ctx, files)
	var partial *domain.PartialFailureError
	switch {
	case errors.As(res.Err, &partial):
		w.log.Warn("batch partially uploaded", "failed", partial.Failed)
	case res.Err != nil:
		w.log.Warn("batch upload failed", "files", len(paths), "error", res.Err)
	default:
		w.log.Info("batch uploaded", "files", len(paths))
	}
	return res, true
}

// eligible reports whether path is a visible .txt file.
func eligible(path string) bool {
	name := filepath.Base(path)
	if localfs.IsHidden(name) {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), ".txt")
}
