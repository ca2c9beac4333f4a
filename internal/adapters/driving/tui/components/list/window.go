// Package list provides list display components for the TUI.
package list

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsearch-cli/internal/core/services"
)

// Ensure Window implements the services interface.
var _ services.Window = (*Window)(nil)

// Window is a virtualised list. Only rows inside the viewport are
// rendered, and every row is padded or clipped to the same height so the
// layout never shifts. Selection follows the row key across re-renders.
type Window struct {
	styles *styles.Styles

	selected    int
	selectedKey string
	offset      int
	count       int

	width  int
	height int
}

// NewWindow creates an empty list window.
func NewWindow(s *styles.Styles) *Window {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Window{styles: s, width: 80, height: 10}
}

// Render draws the visible rows of a count-row list.
func (w *Window) Render(count, rowHeight int, key func(i int) string, row func(i int) string) string {
	if rowHeight < 1 {
		rowHeight = 1
	}
	w.count = count
	if count == 0 {
		w.selected, w.offset, w.selectedKey = 0, 0, ""
		return ""
	}

	w.follow(count, key)

	visible := w.visibleRows(rowHeight)
	if w.selected < w.offset {
		w.offset = w.selected
	}
	if w.selected >= w.offset+visible {
		w.offset = w.selected - visible + 1
	}
	w.offset = max(0, min(w.offset, count-visible))

	end := min(w.offset+visible, count)
	blocks := make([]string, 0, end-w.offset)
	for i := w.offset; i < end; i++ {
		block := fitLines(row(i), rowHeight, w.width-2)
		if i == w.selected {
			block = w.styles.Selected.Render(block)
		}
		blocks = append(blocks, w.marker(i == w.selected, block))
	}
	w.selectedKey = key(w.selected)
	return strings.Join(blocks, "\n")
}

// follow re-resolves the selection by key after the rows changed.
func (w *Window) follow(count int, key func(i int) string) {
	if w.selectedKey != "" && (w.selected >= count || key(w.selected) != w.selectedKey) {
		for i := 0; i < count; i++ {
			if key(i) == w.selectedKey {
				w.selected = i
				return
			}
		}
	}
	w.selected = max(0, min(w.selected, count-1))
}

func (w *Window) marker(selected bool, block string) string {
	prefix := "  "
	if selected {
		prefix = "> "
	}
	lines := strings.Split(block, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = "  " + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func (w *Window) visibleRows(rowHeight int) int {
	return max(1, w.height/rowHeight)
}

// fitLines pads or truncates s to exactly n lines no wider than width.
func fitLines(s string, n, width int) string {
	width = max(width, 10)
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for i, l := range lines {
		if lipgloss.Width(l) > width {
			lines[i] = truncate(l, width)
		}
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// MoveUp moves the selection up.
func (w *Window) MoveUp() {
	if w.selected > 0 {
		w.selected--
		w.selectedKey = ""
	}
}

// MoveDown moves the selection down.
func (w *Window) MoveDown() {
	if w.selected < w.count-1 {
		w.selected++
		w.selectedKey = ""
	}
}

// Selected returns the selected row index within the current rows.
func (w *Window) Selected() int {
	return w.selected
}

// Reset moves the selection to the first row.
func (w *Window) Reset() {
	w.selected, w.offset, w.selectedKey = 0, 0, ""
}

// SetDimensions sets the component dimensions.
func (w *Window) SetDimensions(width, height int) {
	w.width = width
	w.height = height
}

// Width returns the current width.
func (w *Window) Width() int {
	return w.width
}

// Height returns the current height.
func (w *Window) Height() int {
	return w.height
}
