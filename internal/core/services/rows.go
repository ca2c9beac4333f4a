package services

import (
	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
)

// Row is one rendered corpus entry.
type Row struct {
	// Key is the document ID. Windowing primitives must key rows on it.
	Key   string
	Index int
	Title string

	// Body is the content when fetched, otherwise the snippet.
	Body       string
	HasContent bool
}

// Window draws a fixed-height list, rendering only the rows it needs.
type Window interface {
	Render(count, rowHeight int, key func(i int) string, row func(i int) string) string
}

// ListAdapter feeds a corpus page to a Window.
type ListAdapter struct {
	rowHeight int
}

// NewListAdapter creates an adapter with a fixed row height.
func NewListAdapter(rowHeight int) *ListAdapter {
	if rowHeight < 1 {
		rowHeight = domain.DefaultRowHeight
	}
	return &ListAdapter{rowHeight: rowHeight}
}

// RowHeight returns the fixed row height.
func (a *ListAdapter) RowHeight() int {
	return a.rowHeight
}

// Rows converts a page into rows. Index is the position in the corpus.
func (a *ListAdapter) Rows(page driving.CorpusPage) []Row {
	rows := make([]Row, len(page.Documents))
	for i, doc := range page.Documents {
		rows[i] = Row{
			Key:        doc.ID,
			Index:      page.Window.Start + i,
			Title:      doc.Title(),
			Body:       doc.Body(),
			HasContent: doc.HasContent(),
		}
	}
	return rows
}

// Draw renders the page through w using render for each row.
func (a *ListAdapter) Draw(w Window, page driving.CorpusPage, render func(Row) string) string {
	rows := a.Rows(page)
	return w.Render(len(rows), a.rowHeight,
		func(i int) string { return rows[i].Key },
		func(i int) string { return render(rows[i]) },
	)
}
