package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/yoola"
)

// MaxQueryContent is how many characters of content the GET form sends.
const MaxQueryContent = 5000

// DefaultAPITimeout bounds a single summarization call.
const DefaultAPITimeout = 90 * time.Second

// Method selects how SummaryClient talks to the API.
type Method string

// Supported API methods.
const (
	MethodGet  Method = "get"
	MethodPost Method = "post"
)

// Ensure SummaryClient implements yoola.Summarizer at compile time.
var _ yoola.Summarizer = (*SummaryClient)(nil)

// SummaryClient calls the remote summarization API.
//
// The GET form, `GET {base}/get_summary?domain=&url=&language=&content=`, is
// the canonical contract. The POST form sends the same fields as JSON to
// `{base}/summary`.
type SummaryClient struct {
	mu      sync.RWMutex
	baseURL string

	method Method
	client *http.Client
}

// ClientOption configures a SummaryClient.
type ClientOption func(*SummaryClient)

// WithMethod selects the API method. Defaults to MethodGet.
func WithMethod(m Method) ClientOption {
	return func(c *SummaryClient) {
		c.method = m
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *SummaryClient) {
		c.client = hc
	}
}

// NewSummaryClient creates a SummaryClient for the API at baseURL.
func NewSummaryClient(baseURL string, opts ...ClientOption) *SummaryClient {
	c := &SummaryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		method:  MethodGet,
		client:  &http.Client{Timeout: DefaultAPITimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API endpoint currently in use.
func (c *SummaryClient) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL points the client at a new API endpoint. Safe to call while
// requests are in flight; they finish against the old endpoint.
func (c *SummaryClient) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// Summarize sends req to the API and decodes the returned summary.
func (c *SummaryClient) Summarize(ctx context.Context, req *yoola.SummaryRequest) (*yoola.Summary, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, yoola.Errorf(yoola.EINVALID, "No content provided")
	}

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, yoola.Errorf(yoola.EUNAVAILABLE, "API request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, yoola.Errorf(yoola.EUNAVAILABLE, "API request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, yoola.Errorf(yoola.EUNAVAILABLE, "API request failed: %v", err)
	}

	return decodeSummary(body)
}

func (c *SummaryClient) newRequest(ctx context.Context, req *yoola.SummaryRequest) (*http.Request, error) {
	base := c.BaseURL()

	switch c.method {
	case MethodPost:
		body, err := json.Marshal(req)
		if err != nil {
			return nil, yoola.Errorf(yoola.EINTERNAL, "encoding request: %v", err)
		}
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/summary", bytes.NewReader(body))
		if err != nil {
			return nil, yoola.Errorf(yoola.EINVALID, "invalid API URL %q", base)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		return httpReq, nil

	case MethodGet, "":
		q := url.Values{}
		q.Set("domain", req.Domain)
		q.Set("url", req.URL)
		q.Set("language", req.Language)
		q.Set("content", truncate(req.Content, MaxQueryContent))
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/get_summary?"+q.Encode(), nil)
		if err != nil {
			return nil, yoola.Errorf(yoola.EINVALID, "invalid API URL %q", base)
		}
		return httpReq, nil

	default:
		return nil, yoola.Errorf(yoola.EINVALID, "unknown API method %q", c.method)
	}
}

// summaryResponse is the wire form of a summary. createdAt is accepted with
// or without a zone offset.
type summaryResponse struct {
	KeyPoints      []string `json:"keyPoints"`
	DataCollection string   `json:"dataCollection"`
	UserRights     string   `json:"userRights"`
	Alerts         []string `json:"alerts"`
	IsReviewed     bool     `json:"isReviewed"`
	CreatedAt      string   `json:"createdAt"`
	OriginalURL    string   `json:"originalUrl"`
}

func decodeSummary(body []byte) (*yoola.Summary, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, yoola.Errorf(yoola.EMALFORMED, "No data returned from API")
	}

	var wire summaryResponse
	if err := json.Unmarshal(trimmed, &wire); err != nil {
		return nil, yoola.Errorf(yoola.EMALFORMED, "Malformed API response: %v", err)
	}

	createdAt, err := parseTimestamp(wire.CreatedAt)
	if err != nil {
		return nil, yoola.Errorf(yoola.EMALFORMED, "Malformed API response: bad createdAt %q", wire.CreatedAt)
	}

	s := &yoola.Summary{
		KeyPoints:      wire.KeyPoints,
		DataCollection: wire.DataCollection,
		UserRights:     wire.UserRights,
		Alerts:         wire.Alerts,
		IsReviewed:     wire.IsReviewed,
		CreatedAt:      createdAt,
		OriginalURL:    wire.OriginalURL,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
