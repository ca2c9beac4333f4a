package domain

// ModalState is the state of the document modal.
type ModalState int

// Modal states.
const (
	// ModalClosed means no document is selected.
	ModalClosed ModalState = iota

	// ModalOpenMetadataOnly means a document is selected and no fetch is
	// pending: its content was already available, or the fetch failed.
	ModalOpenMetadataOnly

	// ModalOpenLoadingContent means a document is selected and its content
	// fetch is in flight.
	ModalOpenLoadingContent

	// ModalOpenWithContent means the content fetch completed and the
	// content is attached to the selection.
	ModalOpenWithContent
)

// String returns the string representation of the state.
func (s ModalState) String() string {
	switch s {
	case ModalClosed:
		return "closed"
	case ModalOpenMetadataOnly:
		return "open_metadata_only"
	case ModalOpenLoadingContent:
		return "open_loading_content"
	case ModalOpenWithContent:
		return "open_with_content"
	default:
		return "unknown"
	}
}

// IsOpen reports whether a document is selected.
func (s ModalState) IsOpen() bool {
	return s != ModalClosed
}

// IsLoading reports whether a content fetch is pending for the selection.
func (s ModalState) IsLoading() bool {
	return s == ModalOpenLoadingContent
}
