package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
)

// recordingWindow records the keys it was given.
type recordingWindow struct {
	keys      []string
	rowHeight int
}

func (w *recordingWindow) Render(count, rowHeight int, key func(int) string, row func(int) string) string {
	w.rowHeight = rowHeight
	w.keys = w.keys[:0]
	var b strings.Builder
	for i := 0; i < count; i++ {
		w.keys = append(w.keys, key(i))
		b.WriteString(row(i))
		b.WriteString("\n")
	}
	return b.String()
}

func TestListAdapter_RowsKeyedByID(t *testing.T) {
	store := NewCorpusStore(2)
	store.Append(makeDocs(5)...)
	store.SetContent("doc003", "full text")
	docs, w := store.GetPage(2)

	rows := NewListAdapter(4).Rows(driving.CorpusPage{Documents: docs, Window: w})
	require.Len(t, rows, 2)
	assert.Equal(t, "doc002", rows[0].Key)
	assert.Equal(t, 2, rows[0].Index)
	assert.Equal(t, "Document ID: doc002", rows[0].Body)
	assert.False(t, rows[0].HasContent)
	assert.Equal(t, "full text", rows[1].Body)
	assert.True(t, rows[1].HasContent)
}

func TestListAdapter_Draw(t *testing.T) {
	docs := []domain.Document{domain.NewDocument("x", "x.txt"), domain.NewDocument("y", "")}
	page := driving.CorpusPage{Documents: docs, Window: domain.Paginate(2, 10, 1)}
	win := &recordingWindow{}

	out := NewListAdapter(3).Draw(win, page, func(r Row) string {
		return fmt.Sprintf("%s|%s", r.Title, r.Body)
	})

	assert.Equal(t, []string{"x", "y"}, win.keys)
	assert.Equal(t, 3, win.rowHeight)
	assert.Equal(t, "x.txt|Document ID: x\ny|Document ID: y\n", out)
}

func TestNewListAdapter_DefaultRowHeight(t *testing.T) {
	assert.Equal(t, domain.DefaultRowHeight, NewListAdapter(0).RowHeight())
}
