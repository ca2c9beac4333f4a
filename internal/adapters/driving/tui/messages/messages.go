// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// StateChanged signals the controller published a mutation. Notifications
// may arrive out of order, so receivers re-read the controller snapshot.
type StateChanged struct{}

// Op identifies a controller operation started from the TUI.
type Op int

const (
	// OpUpload submits documents.
	OpUpload Op = iota
	// OpStopwords submits a stopword list.
	OpStopwords
	// OpSearch runs a query.
	OpSearch
	// OpClear wipes the corpus.
	OpClear
	// OpFetch loads document content for the modal.
	OpFetch
)

// String returns the string representation of the operation.
func (o Op) String() string {
	switch o {
	case OpUpload:
		return "upload"
	case OpStopwords:
		return "stopwords"
	case OpSearch:
		return "search"
	case OpClear:
		return "clear"
	case OpFetch:
		return "fetch"
	default:
		return "unknown"
	}
}

// OperationDone signals a controller operation finished. User-facing
// messages are already on the controller; Err is for logging.
type OperationDone struct {
	Op  Op
	Err error
}

// PromptKind identifies what an open prompt collects.
type PromptKind int

const (
	// PromptNone means no prompt is open.
	PromptNone PromptKind = iota
	// PromptUpload collects space-separated document paths.
	PromptUpload
	// PromptStopwords collects a stopword file path.
	PromptStopwords
	// PromptClear asks for confirmation before clearing.
	PromptClear
)

// String returns the string representation of the prompt kind.
func (k PromptKind) String() string {
	switch k {
	case PromptNone:
		return "none"
	case PromptUpload:
		return "upload"
	case PromptStopwords:
		return "stopwords"
	case PromptClear:
		return "clear"
	default:
		return "unknown"
	}
}

// PromptSubmitted carries the value entered into a prompt.
type PromptSubmitted struct {
	Kind  PromptKind
	Value string
}

// PromptCancelled signals the prompt was dismissed.
type PromptCancelled struct {
	Kind PromptKind
}
