package services

import (
	"context"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch-cli/internal/logger"
)

// UploadCoordinator submits file batches to the indexing service and
// folds the ingested documents into the corpus.
type UploadCoordinator struct {
	retrieval driven.RetrievalService
	corpus    *CorpusStore
	log       *logger.Logger
}

// NewUploadCoordinator creates a coordinator. corpus may be nil when the
// caller does not keep a corpus.
func NewUploadCoordinator(retrieval driven.RetrievalService, corpus *CorpusStore) *UploadCoordinator {
	return &UploadCoordinator{
		retrieval: retrieval,
		corpus:    corpus,
		log:       logger.New("upload"),
	}
}

// Submit sends files as one batch. On a request failure nothing is
// appended. When the service reports per-file errors the successful
// subset is still appended and a *domain.PartialFailureError is returned
// alongside the outcome.
func (u *UploadCoordinator) Submit(ctx context.Context, files []domain.UploadFile) (*driving.UploadOutcome, error) {
	if len(files) == 0 {
		return nil, &domain.ValidationError{Reason: "please select files to upload", Err: domain.ErrNoFiles}
	}

	u.log.Debug("submitting batch", "files", len(files))
	res, err := u.retrieval.SubmitDocuments(ctx, files)
	if err != nil {
		u.log.Warn("upload failed", "files", len(files), "error", err)
		return nil, err
	}

	outcome := &driving.UploadOutcome{
		Processed: res.Processed,
		Added:     make([]domain.Document, 0, len(res.Results)),
		Failed:    append([]string(nil), res.Errors...),
	}
	for _, r := range res.Results {
		outcome.Added = append(outcome.Added, domain.NewDocument(r.DocID, r.Name))
	}
	if u.corpus != nil && len(outcome.Added) > 0 {
		u.corpus.Append(outcome.Added...)
	}

	if len(outcome.Failed) > 0 {
		u.log.Warn("upload partially failed", "failed", outcome.Failed)
		return outcome, &domain.PartialFailureError{Failed: outcome.Failed}
	}
	return outcome, nil
}

// SubmitStopwords validates and uploads a stopword list.
func (u *UploadCoordinator) SubmitStopwords(ctx context.Context, file domain.UploadFile) (*domain.StopwordsResult, error) {
	if !file.IsPlainText() {
		return nil, &domain.ValidationError{
			Reason: "please upload a valid .txt file for stopwords",
			Err:    domain.ErrInvalidStopwords,
		}
	}
	return u.retrieval.UploadStopwords(ctx, file)
}
