package domain

import (
	"mime"
	"path/filepath"
	"strings"
)

// UploadFile is a raw file selected for submission.
type UploadFile struct {
	// Name is the base filename sent to the service.
	Name string

	// ContentType is the MIME type reported by the selector, if any.
	ContentType string

	// Data is the file body.
	Data []byte
}

// UploadedDocument is one successfully ingested file in an upload response.
type UploadedDocument struct {
	Name  string `json:"name"`
	DocID string `json:"doc_id"`
}

// UploadResult is the indexing service's response to a batch submission.
type UploadResult struct {
	// Processed is the number of files ingested.
	Processed int `json:"processed"`

	// Results lists ingested files in service order.
	Results []UploadedDocument `json:"results"`

	// Errors lists per-file failure descriptions.
	Errors []string `json:"errors"`

	// Message is the service's summary message.
	Message string `json:"message,omitempty"`
}

// StopwordsResult is the service's response to a stopwords upload.
type StopwordsResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// IsPlainText reports whether the file is a recognised plain-text file:
// either its content type is text/plain or its name ends in .txt.
func (f UploadFile) IsPlainText() bool {
	if f.ContentType != "" {
		mediaType, _, err := mime.ParseMediaType(f.ContentType)
		if err == nil && mediaType == "text/plain" {
			return true
		}
	}
	return strings.EqualFold(filepath.Ext(f.Name), ".txt")
}
