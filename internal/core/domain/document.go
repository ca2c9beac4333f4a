package domain

import "fmt"

// Document is a metadata record for a document ingested by the
// retrieval service. Records are created by a successful upload and are
// only ever mutated by attaching fetched content.
type Document struct {
	// ID is the opaque identifier assigned by the indexing service.
	// It is unique within the corpus.
	ID string `json:"doc_id"`

	// Name is the stored filename.
	Name string `json:"name"`

	// Snippet is the short display label shown in list views.
	Snippet string `json:"snippet"`

	// Content is the full text. Nil until fetched.
	Content *string `json:"content,omitempty"`
}

// NewDocument creates a record for a freshly uploaded document.
// The snippet is derived from the identifier.
func NewDocument(id, name string) Document {
	return Document{
		ID:      id,
		Name:    name,
		Snippet: SnippetFor(id),
	}
}

// SnippetFor returns the display label used for a document before its
// content is known.
func SnippetFor(id string) string {
	return fmt.Sprintf("Document ID: %s", id)
}

// HasContent reports whether full content has been fetched.
func (d Document) HasContent() bool {
	return d.Content != nil
}

// WithContent returns a copy of the document with content attached.
func (d Document) WithContent(content string) Document {
	d.Content = &content
	return d
}

// Body returns the full content when available, otherwise the snippet.
// Renderers use this so they never depend on content being present.
func (d Document) Body() string {
	if d.Content != nil {
		return *d.Content
	}
	return d.Snippet
}

// Title returns the name, falling back to the identifier.
func (d Document) Title() string {
	if d.Name == "" {
		return d.ID
	}
	return d.Name
}
