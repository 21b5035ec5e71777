package summarize

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fwojciec/yoola"
	"golang.org/x/sync/errgroup"
)

// DefaultScanConcurrency is used when Scanner.Concurrency is not positive.
const DefaultScanConcurrency = 4

// Scanner checks many pages for terms and reports a per-page indicator.
// Limiter, Seen and Settings are optional.
type Scanner struct {
	Fetcher     yoola.Fetcher
	Detector    yoola.TermsDetector
	Limiter     yoola.DomainLimiter
	Seen        yoola.URLSet
	Settings    yoola.SettingsService
	Concurrency int
	Logger      *slog.Logger
}

// ScanFunc receives one result per URL. Calls are serialized.
type ScanFunc func(result *yoola.ScanResult)

// Scan fetches and inspects every URL, skipping URLs seen before. Per-page
// failures are reported through ScanResult.Err and do not stop the scan.
// Returns EINVALID when auto-detection is turned off in settings.
func (s *Scanner) Scan(ctx context.Context, urls []string, report ScanFunc) error {
	if s.Settings != nil {
		settings, err := s.Settings.FindSettings(ctx)
		if err != nil {
			return err
		}
		if !settings.AutoDetect {
			return yoola.Errorf(yoola.EINVALID, "auto-detect disabled")
		}
	}

	var mu sync.Mutex
	emit := func(r *yoola.ScanResult) {
		if report == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		report(r)
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultScanConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, u := range urls {
		if s.Seen != nil && s.Seen.TestAndAdd(u) {
			emit(&yoola.ScanResult{URL: u, Skipped: true})
			continue
		}
		g.Go(func() error {
			emit(s.scan(gctx, u))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (s *Scanner) scan(ctx context.Context, url string) *yoola.ScanResult {
	result := &yoola.ScanResult{URL: url}

	domain, err := yoola.Hostname(url)
	if err != nil {
		result.Err = err
		return result
	}

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, domain); err != nil {
			result.Err = err
			return result
		}
	}

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		s.logger().Warn("scan fetch failed", "url", url, "err", err)
		result.Err = err
		return result
	}

	detection := s.Detector.Detect(&yoola.Page{URL: url, HTML: html})
	if detection.Error != "" {
		result.Err = yoola.Errorf(yoola.EMALFORMED, "%s", detection.Error)
	}
	result.Found = detection.Found
	result.OnTermsPage = detection.OnTermsPage
	result.Links = detection.Links
	return result
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}
