package yoola

import (
	"context"
	"strings"
	"time"
)

// CacheTTL is how long a cached summary stays fresh.
const CacheTTL = 7 * 24 * time.Hour

// Summary is a structured digest of a terms document.
//
// The first seven fields come from the summarizer. Content, Domain, URL and
// Language are attached by the caller after the summarizer returns.
type Summary struct {
	KeyPoints      []string  `json:"keyPoints"`
	DataCollection string    `json:"dataCollection,omitempty"`
	UserRights     string    `json:"userRights,omitempty"`
	Alerts         []string  `json:"alerts"`
	IsReviewed     bool      `json:"isReviewed"`
	CreatedAt      time.Time `json:"createdAt"`
	OriginalURL    string    `json:"originalUrl,omitempty"`

	Content  string `json:"content,omitempty"`
	Domain   string `json:"domain,omitempty"`
	URL      string `json:"url,omitempty"`
	Language string `json:"language,omitempty"`

	// GenerationTime is how long the summarizer took, in milliseconds.
	GenerationTime int64 `json:"generationTime,omitempty"`
	FromCache      bool  `json:"fromCache"`
}

// Validate returns an error if the summary carries nothing to display.
func (s *Summary) Validate() error {
	if s == nil {
		return Errorf(EMALFORMED, "No data returned from API")
	}
	if len(s.KeyPoints) == 0 && len(s.Alerts) == 0 &&
		strings.TrimSpace(s.DataCollection) == "" && strings.TrimSpace(s.UserRights) == "" {
		return Errorf(EMALFORMED, "No data returned from API")
	}
	return nil
}

// SourceURL returns the URL the user should be sent to for the original text.
func (s *Summary) SourceURL() string {
	if s.OriginalURL != "" {
		return s.OriginalURL
	}
	return s.URL
}

// Badge returns the provenance label shown next to the summary.
func (s *Summary) Badge() string {
	if s.IsReviewed {
		return "Pre-Approved"
	}
	return "AI Generated"
}

// SummaryRequest is the input handed to a Summarizer.
type SummaryRequest struct {
	Domain   string `json:"domain"`
	URL      string `json:"url"`
	Language string `json:"language"`
	Content  string `json:"content"`
}

// Summarizer produces a Summary for page content.
type Summarizer interface {
	Summarize(ctx context.Context, req *SummaryRequest) (*Summary, error)
}

// CacheEntry is a summary stored locally for a domain.
type CacheEntry struct {
	Domain      string
	Summary     *Summary
	ContentHash string
	CachedAt    time.Time
}

// Fresh reports whether the entry is younger than CacheTTL at now.
func (e *CacheEntry) Fresh(now time.Time) bool {
	return now.Sub(e.CachedAt) < CacheTTL
}

// CacheService stores summaries by domain.
type CacheService interface {
	// FindCacheEntry returns the entry for domain.
	// Returns ENOTFOUND if no entry exists.
	FindCacheEntry(ctx context.Context, domain string) (*CacheEntry, error)

	// SaveCacheEntry inserts or replaces the entry for entry.Domain.
	SaveCacheEntry(ctx context.Context, entry *CacheEntry) error

	// ClearCache removes every entry.
	ClearCache(ctx context.Context) error
}

// SummaryWriter persists a summary outside the application, e.g. as a file.
type SummaryWriter interface {
	WriteSummary(ctx context.Context, s *Summary) (path string, err error)
}
