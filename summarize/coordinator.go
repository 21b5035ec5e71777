// Package summarize coordinates terms detection, extraction and
// summarization for a single user request, and scans pages for terms.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/yoola"
)

// Defaults used when the corresponding Coordinator field is zero.
const (
	DefaultStatusDelay       = 2 * time.Second
	DefaultNavigationTimeout = 15 * time.Second
	DefaultSettleDelay       = 1 * time.Second
)

// Presenter messages.
const (
	MsgAnalyzing  = "Analyzing page content..."
	MsgNavigating = "Navigating to page to analyze terms..."
	MsgStatus     = "Generating new summary (not found in database)..."
)

// ErrDeclined is returned by SummarizeLink when the user declines to
// summarize a link that does not look like terms.
var ErrDeclined = errors.New("summarize: declined by user")

// Coordinator runs summarization requests: extract, call the summarizer,
// attach metadata and deliver the result to the Presenter.
//
// Cache and Settings are optional. Fallback is used when Extractor fails.
type Coordinator struct {
	Fetcher    yoola.Fetcher
	Detector   yoola.TermsDetector
	Extractor  yoola.PageExtractor
	Fallback   yoola.PageExtractor
	Summarizer yoola.Summarizer
	Cache      yoola.CacheService
	Settings   yoola.SettingsService
	Presenter  yoola.Presenter
	Logger     *slog.Logger

	// NoCache skips the cache lookup. Results are still stored.
	NoCache bool

	StatusDelay       time.Duration
	NavigationTimeout time.Duration
	SettleDelay       time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// SummarizeCurrentPage summarizes page in language and presents the result.
// An empty language falls back to the preferred language from settings.
func (c *Coordinator) SummarizeCurrentPage(ctx context.Context, page *yoola.Page, language string) (*yoola.Summary, error) {
	language = c.language(ctx, language)
	c.Presenter.Loading(MsgAnalyzing)

	content, err := c.extract(page)
	if err != nil {
		return nil, c.fail(err)
	}
	if err := content.Validate(); err != nil {
		return nil, c.fail(err)
	}

	if s := c.lookup(ctx, content, language); s != nil {
		c.Presenter.Summary(s)
		return s, nil
	}

	c.Presenter.Loading(fmt.Sprintf("Generating summary in %s...", language))
	s, err := c.generate(ctx, content, language)
	if err != nil {
		return nil, c.fail(err)
	}
	c.Presenter.Summary(s)
	return s, nil
}

// SummarizeLink loads link and summarizes it. Links that do not look like
// terms need confirmation unless confirmed is set. Returns ErrDeclined when
// the user says no.
func (c *Coordinator) SummarizeLink(ctx context.Context, link yoola.TermsLink, language string, confirmed bool) (*yoola.Summary, error) {
	if !confirmed && !yoola.LooksLikeTermsLink(link.URL, link.Text) {
		domain, _ := yoola.Hostname(link.URL)
		ok, err := c.Presenter.Confirm(ctx, link.URL, domain)
		if err != nil {
			return nil, c.fail(err)
		}
		if !ok {
			return nil, ErrDeclined
		}
	}

	c.Presenter.Loading(MsgNavigating)
	page, err := c.LoadPage(ctx, link.URL)
	if err != nil {
		return nil, c.fail(err)
	}

	select {
	case <-time.After(c.settleDelay()):
	case <-ctx.Done():
		return nil, c.fail(ctx.Err())
	}

	return c.SummarizeCurrentPage(ctx, page, language)
}

// SummaryInLanguage summarizes already extracted content without touching
// the Presenter.
func (c *Coordinator) SummaryInLanguage(ctx context.Context, content, domain, url, language string) (*yoola.Summary, error) {
	if content == "" {
		return nil, yoola.Errorf(yoola.EINVALID, "No content provided")
	}
	pc := &yoola.PageContent{Domain: domain, URL: url, Content: content}
	if err := pc.Validate(); err != nil {
		return nil, err
	}
	return c.generate(ctx, pc, c.language(ctx, language))
}

// CheckForTerms runs the detector on page and notifies the Presenter when
// nothing is found.
func (c *Coordinator) CheckForTerms(ctx context.Context, page *yoola.Page) *yoola.TermsDetectionResult {
	result := c.Detector.Detect(page)
	if result.Error != "" {
		c.logger().WarnContext(ctx, "terms detection failed", "url", page.URL, "err", result.Error)
	}
	if !result.Found {
		c.Presenter.NoTerms()
	}
	return result
}

// LoadPage fetches url within the navigation timeout.
func (c *Coordinator) LoadPage(ctx context.Context, url string) (*yoola.Page, error) {
	if c.Fetcher == nil {
		return nil, yoola.Errorf(yoola.EINTERNAL, "no fetcher configured")
	}

	tctx, cancel := context.WithTimeout(ctx, c.navigationTimeout())
	defer cancel()

	html, err := c.Fetcher.Fetch(tctx, url)
	if err != nil {
		if ctx.Err() == nil && (errors.Is(err, context.DeadlineExceeded) || tctx.Err() != nil) {
			return nil, yoola.Errorf(yoola.ETIMEOUT, "Page loading timed out")
		}
		return nil, err
	}
	return &yoola.Page{URL: url, HTML: html}, nil
}

// CheckCache returns the fresh cached summary for domain, or nil.
func (c *Coordinator) CheckCache(ctx context.Context, domain string) (*yoola.Summary, error) {
	entry, err := c.freshEntry(ctx, domain)
	if err != nil || entry == nil {
		return nil, err
	}
	return entry.Summary, nil
}

// freshEntry returns the cache entry for domain if it has not expired.
func (c *Coordinator) freshEntry(ctx context.Context, domain string) (*yoola.CacheEntry, error) {
	if c.Cache == nil {
		return nil, nil
	}
	entry, err := c.Cache.FindCacheEntry(ctx, domain)
	if yoola.ErrorCode(err) == yoola.ENOTFOUND {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	if !entry.Fresh(c.now()) {
		return nil, nil
	}
	return entry, nil
}

// ClearCache removes every cached summary.
func (c *Coordinator) ClearCache(ctx context.Context) error {
	if c.Cache == nil {
		return nil
	}
	return c.Cache.ClearCache(ctx)
}

func (c *Coordinator) extract(page *yoola.Page) (*yoola.PageContent, error) {
	if c.Extractor != nil {
		content, err := c.Extractor.ExtractPage(page)
		if err == nil {
			return content, nil
		}
		if c.Fallback == nil {
			return nil, err
		}
		c.logger().Warn("extractor failed, using fallback", "url", page.URL, "err", err)
	}
	if c.Fallback == nil {
		return nil, yoola.Errorf(yoola.EINTERNAL, "no extractor configured")
	}
	return c.Fallback.ExtractPage(page)
}

// lookup returns a fresh cached summary in language, or nil. An entry
// generated from different page content is a miss. Entries without a
// content hash match any content.
func (c *Coordinator) lookup(ctx context.Context, content *yoola.PageContent, language string) *yoola.Summary {
	if c.NoCache || content.Domain == "" {
		return nil
	}
	entry, err := c.freshEntry(ctx, content.Domain)
	if err != nil {
		c.logger().WarnContext(ctx, "cache lookup failed", "domain", content.Domain, "err", err)
		return nil
	}
	if entry == nil || entry.Summary == nil || entry.Summary.Language != language {
		return nil
	}
	if entry.ContentHash != "" && entry.ContentHash != ContentHash(content.Content) {
		c.logger().DebugContext(ctx, "page content changed since cached", "domain", content.Domain)
		return nil
	}
	s := entry.Summary
	s.FromCache = true
	return s
}

// generate calls the summarizer while the status task is armed, then
// attaches request metadata and stores the result.
func (c *Coordinator) generate(ctx context.Context, content *yoola.PageContent, language string) (*yoola.Summary, error) {
	req := NewRequest(c.now())
	defer req.Finish()

	delay := c.statusDelay()
	req.AfterFunc(delay, func() { c.Presenter.Status(MsgStatus) })

	c.logger().DebugContext(ctx, "summarizing", "request", req.ID, "domain", content.Domain, "language", language)

	s, err := c.Summarizer.Summarize(ctx, &yoola.SummaryRequest{
		Domain:   content.Domain,
		URL:      content.URL,
		Language: language,
		Content:  content.Content,
	})
	req.Finish()
	elapsed := c.now().Sub(req.Begin)
	if err != nil {
		var appErr *yoola.Error
		if !errors.As(err, &appErr) {
			err = yoola.Errorf(yoola.EUNAVAILABLE, "API request failed: %v", err)
		}
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	s.Content = content.Content
	s.Domain = content.Domain
	s.URL = content.URL
	s.Language = language
	s.GenerationTime = elapsed.Milliseconds()
	s.FromCache = elapsed < delay

	if c.Cache != nil && s.Domain != "" {
		if err := c.Cache.SaveCacheEntry(ctx, &yoola.CacheEntry{
			Domain:      s.Domain,
			Summary:     s,
			ContentHash: ContentHash(content.Content),
			CachedAt:    c.now(),
		}); err != nil {
			c.logger().WarnContext(ctx, "cache save failed", "domain", s.Domain, "err", err)
		}
	}
	return s, nil
}

// fail reports err to the Presenter as the terminal state and returns it.
func (c *Coordinator) fail(err error) error {
	c.Presenter.Error(yoola.ErrorMessage(err))
	return err
}

func (c *Coordinator) language(ctx context.Context, language string) string {
	if language != "" {
		return language
	}
	if c.Settings != nil {
		settings, err := c.Settings.FindSettings(ctx)
		if err != nil {
			c.logger().WarnContext(ctx, "reading settings failed", "err", err)
		} else if settings.PreferredLanguage != "" {
			return settings.PreferredLanguage
		}
	}
	return yoola.DefaultLanguage
}

func (c *Coordinator) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Coordinator) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (c *Coordinator) statusDelay() time.Duration {
	if c.StatusDelay > 0 {
		return c.StatusDelay
	}
	return DefaultStatusDelay
}

func (c *Coordinator) navigationTimeout() time.Duration {
	if c.NavigationTimeout > 0 {
		return c.NavigationTimeout
	}
	return DefaultNavigationTimeout
}

func (c *Coordinator) settleDelay() time.Duration {
	if c.SettleDelay > 0 {
		return c.SettleDelay
	}
	return DefaultSettleDelay
}
