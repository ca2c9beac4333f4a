package domain

import "strings"

// QueryMode selects how the retrieval service evaluates a query.
type QueryMode string

// Available query modes.
const (
	// QueryModeBoolean combines terms with AND, OR and NOT.
	QueryModeBoolean QueryMode = "boolean"

	// QueryModeProximity additionally constrains the distance between terms.
	QueryModeProximity QueryMode = "proximity"
)

// IsValid returns true if the query mode is recognised.
func (m QueryMode) IsValid() bool {
	switch m {
	case QueryModeBoolean, QueryModeProximity:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m QueryMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m QueryMode) Description() string {
	switch m {
	case QueryModeBoolean:
		return "Boolean (AND, OR, NOT)"
	case QueryModeProximity:
		return "Proximity (term1 term2 /k)"
	default:
		return "Unknown"
	}
}

// Next returns the other mode. Used to toggle between modes.
func (m QueryMode) Next() QueryMode {
	if m == QueryModeProximity {
		return QueryModeBoolean
	}
	return QueryModeProximity
}

// ParseQueryMode converts a string to a QueryMode.
// An empty string selects boolean mode.
func ParseQueryMode(s string) (QueryMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return QueryModeBoolean, nil
	}
	m := QueryMode(s)
	if !m.IsValid() {
		return "", &ValidationError{Field: "mode", Reason: "must be boolean or proximity", Err: ErrInvalidQueryMode}
	}
	return m, nil
}

// ValidateQuery rejects empty or whitespace-only query text.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return &ValidationError{Field: "query", Reason: "please enter a search query", Err: ErrEmptyQuery}
	}
	return nil
}
