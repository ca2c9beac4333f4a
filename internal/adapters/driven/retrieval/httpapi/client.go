package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
	"github.com/custodia-labs/docsearch-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.RetrievalService = (*Client)(nil)

// Default configuration values.
const (
	DefaultTimeout = 30 * time.Second

	// HeaderRequestID carries a per-request identifier for service logs.
	HeaderRequestID = "X-Request-ID"

	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 64 << 10
)

// Config holds configuration for the retrieval service client.
type Config struct {
	// BaseURL is the service base address, e.g. http://localhost:5000.
	BaseURL string

	// Token is an optional bearer token.
	Token string

	// Timeout bounds each request (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond paces requests. Zero disables pacing.
	RequestsPerSecond float64

	// Transport overrides the pooled default transport.
	Transport http.RoundTripper
}

// Client talks to the retrieval service over HTTP.
type Client struct {
	http    *http.Client
	baseURL string
	limiter *RateLimiter
	log     *logger.Logger
}

// NewClient creates a client from cfg.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	transport := cfg.Transport
	if transport == nil {
		transport = pooledTransport()
	}
	if cfg.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}),
			Base:   transport,
		}
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: NewRateLimiter(cfg.RequestsPerSecond),
		log:     logger.New("httpapi"),
	}
}

// NewClientFromSettings creates a client from resolved settings.
func NewClientFromSettings(s domain.Settings) *Client {
	return NewClient(Config{
		BaseURL:           s.ServiceURL,
		Token:             s.Token,
		Timeout:           s.Timeout,
		RequestsPerSecond: s.RequestsPerSecond,
	})
}

func pooledTransport() http.RoundTripper {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 90 * time.Second
	return t
}

// BaseURL returns the service base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// uploadResponse is the /upload response format.
type uploadResponse struct {
	Message   string                    `json:"message"`
	Processed int                       `json:"processed"`
	Results   []domain.UploadedDocument `json:"results"`
	Errors    []string                  `json:"errors"`
}

// searchRequest is the /search request format.
type searchRequest struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}

// searchResponse is the /search response format.
type searchResponse struct {
	Results []string `json:"results"`
	Query   string   `json:"query"`
	Type    string   `json:"type"`
}

// documentResponse is the /document/{id} response format.
type documentResponse struct {
	DocID   string `json:"doc_id"`
	Content string `json:"content"`
	Size    int    `json:"size"`
}

// errorResponse is the service's error body.
type errorResponse struct {
	Error string `json:"error"`
}

// SubmitDocuments uploads files as one multipart batch.
func (c *Client) SubmitDocuments(ctx context.Context, files []domain.UploadFile) (*domain.UploadResult, error) {
	const op = "upload documents"

	body, contentType, err := multipartBody("files[]", files...)
	if err != nil {
		return nil, &domain.ServiceError{Op: op, Err: err}
	}

	var resp uploadResponse
	if err := c.do(ctx, op, http.MethodPost, "/upload", body, contentType, &resp); err != nil {
		return nil, err
	}
	return &domain.UploadResult{
		Processed: resp.Processed,
		Results:   resp.Results,
		Errors:    resp.Errors,
		Message:   resp.Message,
	}, nil
}

// RunQuery evaluates query in the given mode and returns ranked IDs.
func (c *Client) RunQuery(ctx context.Context, query string, mode domain.QueryMode) ([]string, error) {
	const op = "search"

	payload, err := json.Marshal(searchRequest{Query: query, Type: mode.String()})
	if err != nil {
		return nil, &domain.ServiceError{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
	}

	var resp searchResponse
	if err := c.do(ctx, op, http.MethodPost, "/search", bytes.NewReader(payload), "application/json", &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return []string{}, nil
	}
	return resp.Results, nil
}

// ClearCorpus wipes the service index.
func (c *Client) ClearCorpus(ctx context.Context) error {
	return c.do(ctx, "clear documents", http.MethodPost, "/clear", nil, "", nil)
}

// FetchContent returns the full text of a document.
func (c *Client) FetchContent(ctx context.Context, docID string) (string, error) {
	var resp documentResponse
	path := "/document/" + url.PathEscape(docID)
	if err := c.do(ctx, "fetch content", http.MethodGet, path, nil, "", &resp); err != nil {
		return "", err
	}
	return resp.Content, nil
}

// UploadStopwords uploads a stopword list.
func (c *Client) UploadStopwords(ctx context.Context, file domain.UploadFile) (*domain.StopwordsResult, error) {
	const op = "upload stopwords"

	body, contentType, err := multipartBody("file", file)
	if err != nil {
		return nil, &domain.ServiceError{Op: op, Err: err}
	}

	var resp domain.StopwordsResult
	if err := c.do(ctx, op, http.MethodPost, "/upload-stopwords", body, contentType, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status returns index statistics.
func (c *Client) Status(ctx context.Context) (*domain.ServiceStatus, error) {
	var resp domain.ServiceStatus
	if err := c.do(ctx, "status", http.MethodGet, "/status", nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do sends one request and decodes a JSON response into out.
// out may be nil when the body is not needed.
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, contentType string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &domain.ServiceError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &domain.ServiceError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)

	c.log.Debug("request", "op", op, "method", method, "path", path, "request_id", requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", "op", op, "request_id", requestID, "error", err)
		return &domain.ServiceError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	c.limiter.Observe(resp)

	c.log.Debug("response", "op", op, "status", resp.StatusCode, "request_id", requestID,
		"elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.ServiceError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// statusError builds a ServiceError from a non-2xx response.
func statusError(op string, resp *http.Response) error {
	serr := &domain.ServiceError{Op: op, Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil {
		var body errorResponse
		if json.Unmarshal(raw, &body) == nil && body.Error != "" {
			serr.Message = body.Error
		} else if text := strings.TrimSpace(string(raw)); text != "" && !strings.HasPrefix(text, "<") {
			serr.Message = text
		}
	}
	if serr.Message == "" {
		serr.Message = http.StatusText(resp.StatusCode)
	}
	if resp.StatusCode == http.StatusNotFound {
		serr.Err = domain.ErrNotFound
	}
	return serr
}

// multipartBody encodes files under field. Each part carries the
// file's content type when known.
func multipartBody(field string, files ...domain.UploadFile) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range files {
		if f.Name == "" {
			return nil, "", errors.New("file has no name")
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(field), escapeQuotes(f.Name)))
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", f.Name, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", fmt.Errorf("write part %s: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
