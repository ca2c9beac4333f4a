package domain

import "time"

// Default settings values.
const (
	DefaultServiceURL        = "http://localhost:5000"
	DefaultTimeout           = 30 * time.Second
	DefaultRequestsPerSecond = 10.0
	DefaultCorpusPageSize    = 50
	DefaultResultPageSize    = 5
	DefaultRowHeight         = 3
)

// Settings is the resolved client configuration.
// It is passed explicitly to the components that need it.
type Settings struct {
	// ServiceURL is the retrieval service base address.
	ServiceURL string

	// Token is an optional bearer token for the service.
	Token string

	// Timeout bounds a single service call.
	Timeout time.Duration

	// RequestsPerSecond paces outgoing service calls. Zero disables pacing.
	RequestsPerSecond float64

	// CorpusPageSize is the number of documents per corpus page.
	CorpusPageSize int

	// ResultPageSize is the number of results per result page.
	ResultPageSize int

	// RowHeight is the fixed height of a rendered corpus row, in lines.
	RowHeight int
}

// DefaultSettings returns settings with all defaults applied.
func DefaultSettings() Settings {
	return Settings{
		ServiceURL:        DefaultServiceURL,
		Timeout:           DefaultTimeout,
		RequestsPerSecond: DefaultRequestsPerSecond,
		CorpusPageSize:    DefaultCorpusPageSize,
		ResultPageSize:    DefaultResultPageSize,
		RowHeight:         DefaultRowHeight,
	}
}

// WithDefaults fills zero-valued fields from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.ServiceURL == "" {
		s.ServiceURL = d.ServiceURL
	}
	if s.Timeout <= 0 {
		s.Timeout = d.Timeout
	}
	if s.RequestsPerSecond < 0 {
		s.RequestsPerSecond = 0
	}
	if s.CorpusPageSize <= 0 {
		s.CorpusPageSize = d.CorpusPageSize
	}
	if s.ResultPageSize <= 0 {
		s.ResultPageSize = d.ResultPageSize
	}
	if s.RowHeight <= 0 {
		s.RowHeight = d.RowHeight
	}
	return s
}
