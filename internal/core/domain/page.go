package domain

// PageWindow is the Paginator result for one page of an ordered sequence.
// The slice bounds are always valid for a sequence of the given length.
type PageWindow struct {
	// TotalPages is ceil(itemCount/pageSize); zero for an empty sequence.
	TotalPages int

	// Page is the clamped 1-based page number. Never below 1.
	Page int

	// Start and End are the half-open slice bounds of the page.
	Start int
	End   int

	// ItemCount is the length of the paginated sequence.
	ItemCount int
}

// Paginate computes the window for requestedPage over itemCount items.
// The requested page is clamped into [1, max(totalPages, 1)].
// A non-positive page size is treated as 1.
func Paginate(itemCount, pageSize, requestedPage int) PageWindow {
	if pageSize < 1 {
		pageSize = 1
	}
	if itemCount < 0 {
		itemCount = 0
	}

	totalPages := (itemCount + pageSize - 1) / pageSize
	page := min(max(requestedPage, 1), max(totalPages, 1))

	start := min((page-1)*pageSize, itemCount)
	end := min(start+pageSize, itemCount)

	return PageWindow{
		TotalPages: totalPages,
		Page:       page,
		Start:      start,
		End:        end,
		ItemCount:  itemCount,
	}
}

// DisplayTotal returns the page count shown to users, which is at least 1.
func (w PageWindow) DisplayTotal() int {
	return max(w.TotalPages, 1)
}

// HasPrev reports whether a previous page exists.
func (w PageWindow) HasPrev() bool {
	return w.Page > 1
}

// HasNext reports whether a following page exists.
func (w PageWindow) HasNext() bool {
	return w.Page < w.TotalPages
}

// Len returns the number of items on the page.
func (w PageWindow) Len() int {
	return w.End - w.Start
}
