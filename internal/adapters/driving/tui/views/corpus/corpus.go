// Package corpus provides the uploaded-documents list view for the TUI.
package corpus

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"

	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch-cli/internal/core/services"
)

// View lists the current corpus page. Rows have a fixed height and only
// the visible ones are rendered.
type View struct {
	styles    *styles.Styles
	adapter   *services.ListAdapter
	window    *list.Window
	paginator paginator.Model

	page    driving.CorpusPage
	focused bool
	width   int
	height  int
}

// NewView creates a corpus view with the given row height.
func NewView(s *styles.Styles, rowHeight int) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	p := paginator.New()
	p.Type = paginator.Arabic
	p.ArabicFormat = "Page %d of %d"

	return &View{
		styles:    s,
		adapter:   services.NewListAdapter(rowHeight),
		window:    list.NewWindow(s),
		paginator: p,
		width:     80,
		height:    20,
	}
}

// SetPage applies a corpus page from a controller snapshot.
func (v *View) SetPage(page driving.CorpusPage) {
	if page.Window.Page != v.page.Window.Page {
		v.window.Reset()
	}
	v.page = page
	v.paginator.TotalPages = page.Window.DisplayTotal()
	v.paginator.Page = page.Window.Page - 1
}

// View renders the corpus pane.
func (v *View) View() string {
	var b strings.Builder
	header := "Documents"
	if n := len(v.page.Documents); n > 0 {
		header = fmt.Sprintf("Documents %d-%d", v.page.Window.Start+1, v.page.Window.End)
	}
	b.WriteString(v.styles.Subtitle.Render(header))
	b.WriteString("\n")

	if len(v.page.Documents) == 0 {
		b.WriteString(v.styles.Muted.Render("No documents uploaded. Press u to upload."))
	} else {
		b.WriteString(v.adapter.Draw(v.window, v.page, v.renderRow))
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(v.paginator.View() + "  [ ]"))

	return v.styles.Frame(v.focused).Width(max(v.width-2, 20)).Render(b.String())
}

func (v *View) renderRow(row services.Row) string {
	title := fmt.Sprintf("%d. %s", row.Index+1, row.Title)
	body := strings.Join(strings.Fields(row.Body), " ")
	if !row.HasContent {
		return title + "\n" + v.styles.Muted.Render(body)
	}
	return title + "\n" + body
}

// MoveUp moves the selection up.
func (v *View) MoveUp() {
	v.window.MoveUp()
}

// MoveDown moves the selection down.
func (v *View) MoveDown() {
	v.window.MoveDown()
}

// Selected returns the selected document on the current page.
func (v *View) Selected() (domain.Document, bool) {
	i := v.window.Selected()
	if i < 0 || i >= len(v.page.Documents) {
		return domain.Document{}, false
	}
	return v.page.Documents[i], true
}

// Window returns the current page window.
func (v *View) Window() domain.PageWindow {
	return v.page.Window
}

// SetFocused marks the pane as focused.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
}

// SetDimensions sets the pane size. Four lines are reserved for the
// header, page indicator and border.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.window.SetDimensions(max(width-6, 20), max(height-4, v.adapter.RowHeight()))
}
