package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent controller-level failures.
// No error is fatal: after any of them the controller stays usable.
var (
	// ErrValidation indicates input rejected before any network call.
	ErrValidation = errors.New("validation failed")

	// ErrService indicates a retrieval service call failed or returned
	// a non-success status.
	ErrService = errors.New("service error")

	// ErrPartialFailure indicates an upload where some files failed.
	ErrPartialFailure = errors.New("partial failure")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// Validation causes.

	// ErrEmptyQuery indicates the query text was empty or whitespace.
	ErrEmptyQuery = errors.New("empty query")

	// ErrInvalidQueryMode indicates an unrecognised query mode.
	ErrInvalidQueryMode = errors.New("invalid query mode")

	// ErrNoFiles indicates an upload was requested with no files.
	ErrNoFiles = errors.New("no files selected")

	// ErrInvalidStopwords indicates a stopword file that is not plain text.
	ErrInvalidStopwords = errors.New("invalid stopwords file")
)

// ValidationError describes input rejected before any network call.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is matches ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ServiceError describes a failed retrieval service call.
// Status is zero when no response was received.
type ServiceError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Status != 0 {
		fmt.Fprintf(&b, ": status %d", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Is matches ErrService.
func (e *ServiceError) Is(target error) bool {
	return target == ErrService
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// PartialFailureError lists the files an upload could not ingest.
// The successful subset has already been committed.
type PartialFailureError struct {
	Failed []string
}

func (e *PartialFailureError) Error() string {
	return "some files had errors: " + strings.Join(e.Failed, ", ")
}

// Is matches ErrPartialFailure.
func (e *PartialFailureError) Is(target error) bool {
	return target == ErrPartialFailure
}
