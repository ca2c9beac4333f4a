// Package results provides the search results view for the TUI.
package results

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"

	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driving"
)

// View lists the current page of search results. Result IDs with no
// corpus record are not shown.
type View struct {
	styles    *styles.Styles
	window    *list.Window
	paginator paginator.Model

	page    driving.ResultPage
	focused bool
	width   int
}

// NewView creates an empty results view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = s.Title.Render("•")
	p.InactiveDot = s.Muted.Render("•")

	return &View{
		styles:    s,
		window:    list.NewWindow(s),
		paginator: p,
		width:     80,
	}
}

// SetPage applies a result page from a controller snapshot.
func (v *View) SetPage(page driving.ResultPage) {
	if page.Window.Page != v.page.Window.Page || page.Query != v.page.Query {
		v.window.Reset()
	}
	v.page = page
	v.paginator.TotalPages = page.Window.DisplayTotal()
	v.paginator.Page = page.Window.Page - 1
}

// View renders the results pane.
func (v *View) View() string {
	var b strings.Builder

	switch {
	case v.page.Query == "":
		b.WriteString(v.styles.Subtitle.Render("Results"))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Press / to search."))
	case len(v.page.IDs) == 0:
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Results for %q", v.page.Query)))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("No matching documents."))
	default:
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Results for %q (%s)", v.page.Query, v.page.Mode)))
		b.WriteString("\n")
		docs := v.page.Documents
		b.WriteString(v.window.Render(len(docs), 1,
			func(i int) string { return docs[i].ID },
			func(i int) string { return fmt.Sprintf("%d. %s", v.page.Window.Start+i+1, docs[i].Title()) },
		))
		b.WriteString("\n")
		b.WriteString(v.paginator.View() + v.styles.Muted.Render("  { }"))
	}

	return v.styles.Frame(v.focused).Width(max(v.width-2, 20)).Render(b.String())
}

// MoveUp moves the selection up.
func (v *View) MoveUp() {
	v.window.MoveUp()
}

// MoveDown moves the selection down.
func (v *View) MoveDown() {
	v.window.MoveDown()
}

// Selected returns the selected result document.
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

// SetDimensions sets the pane size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.window.SetDimensions(max(width-6, 20), max(height-4, 1))
}
