package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driven"
)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyServiceURL        = "service.url"
	KeyServiceToken      = "service.token"
	KeyServiceTimeout    = "service.timeout_seconds"
	KeyRequestsPerSecond = "service.requests_per_second"
	KeyCorpusPageSize    = "pagination.corpus_page_size"
	KeyResultPageSize    = "pagination.result_page_size"
	KeyRowHeight         = "list.row_height"
)

// Environment variables that override the config file.
//
//nolint:gosec // G101: variable names, not credentials.
const (
	EnvServiceURL   = "DOCSEARCH_API_URL"
	EnvServiceToken = "DOCSEARCH_API_TOKEN"
)

// SettingKeys lists every recognised key in display order.
var SettingKeys = []string{
	KeyServiceURL,
	KeyServiceToken,
	KeyServiceTimeout,
	KeyRequestsPerSecond,
	KeyCorpusPageSize,
	KeyResultPageSize,
	KeyRowHeight,
}

// Setting sources reported by Entries.
const (
	SourceDefault = "default"
	SourceConfig  = "config"
	SourceEnv     = "env"
)

// SettingEntry is one resolved setting for display.
type SettingEntry struct {
	Key    string
	Value  string
	Source string
}

// SettingsService resolves client settings from the config store and
// the environment. Environment variables win over the file.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a settings service reading the process
// environment.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// SetEnvLookup replaces the environment lookup.
func (s *SettingsService) SetEnvLookup(fn func(string) (string, bool)) {
	s.lookupEnv = fn
}

// Get resolves the current settings with defaults applied.
func (s *SettingsService) Get() domain.Settings {
	settings := domain.Settings{
		ServiceURL:        s.configStore.GetString(KeyServiceURL),
		Token:             s.configStore.GetString(KeyServiceToken),
		Timeout:           time.Duration(s.configStore.GetInt(KeyServiceTimeout)) * time.Second,
		RequestsPerSecond: s.getFloat(KeyRequestsPerSecond, domain.DefaultRequestsPerSecond),
		CorpusPageSize:    s.configStore.GetInt(KeyCorpusPageSize),
		ResultPageSize:    s.configStore.GetInt(KeyResultPageSize),
		RowHeight:         s.configStore.GetInt(KeyRowHeight),
	}
	if v, ok := s.env(EnvServiceURL); ok {
		settings.ServiceURL = v
	}
	if v, ok := s.env(EnvServiceToken); ok {
		settings.Token = v
	}
	return settings.WithDefaults()
}

// Set validates a raw value for key and stores it.
func (s *SettingsService) Set(key, raw string) error {
	raw = strings.TrimSpace(raw)

	var value any
	switch key {
	case KeyServiceURL:
		if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
			return &domain.ValidationError{Field: key, Reason: "must be an http or https URL", Err: domain.ErrValidation}
		}
		value = strings.TrimRight(raw, "/")
	case KeyServiceToken:
		value = raw
	case KeyRequestsPerSecond:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f < 0 {
			return &domain.ValidationError{Field: key, Reason: "must be a non-negative number", Err: domain.ErrValidation}
		}
		value = f
	case KeyServiceTimeout, KeyCorpusPageSize, KeyResultPageSize, KeyRowHeight:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return &domain.ValidationError{Field: key, Reason: "must be a positive integer", Err: domain.ErrValidation}
		}
		value = n
	default:
		return &domain.ValidationError{Field: "key", Reason: fmt.Sprintf("unknown setting %q", key), Err: domain.ErrNotFound}
	}

	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Entries returns every setting with its effective value and source.
// The token is masked.
func (s *SettingsService) Entries() []SettingEntry {
	resolved := s.Get()
	values := map[string]string{
		KeyServiceURL:        resolved.ServiceURL,
		KeyServiceToken:      maskToken(resolved.Token),
		KeyServiceTimeout:    strconv.Itoa(int(resolved.Timeout / time.Second)),
		KeyRequestsPerSecond: strconv.FormatFloat(resolved.RequestsPerSecond, 'g', -1, 64),
		KeyCorpusPageSize:    strconv.Itoa(resolved.CorpusPageSize),
		KeyResultPageSize:    strconv.Itoa(resolved.ResultPageSize),
		KeyRowHeight:         strconv.Itoa(resolved.RowHeight),
	}

	entries := make([]SettingEntry, 0, len(SettingKeys))
	for _, key := range SettingKeys {
		entries = append(entries, SettingEntry{Key: key, Value: values[key], Source: s.source(key)})
	}
	return entries
}

// Path returns the config file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) source(key string) string {
	switch {
	case key == KeyServiceURL && s.hasEnv(EnvServiceURL),
		key == KeyServiceToken && s.hasEnv(EnvServiceToken):
		return SourceEnv
	}
	if _, ok := s.configStore.Get(key); ok {
		return SourceConfig
	}
	return SourceDefault
}

func (s *SettingsService) env(name string) (string, bool) {
	if s.lookupEnv == nil {
		return "", false
	}
	v, ok := s.lookupEnv(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (s *SettingsService) hasEnv(name string) bool {
	_, ok := s.env(name)
	return ok
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func maskToken(token string) string {
	switch {
	case token == "":
		return ""
	case len(token) <= 4:
		return "****"
	default:
		return token[:2] + strings.Repeat("*", len(token)-4) + token[len(token)-2:]
	}
}
