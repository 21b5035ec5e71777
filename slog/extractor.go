package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/yoola"
)

var _ yoola.PageExtractor = (*LoggingPageExtractor)(nil)

// LoggingPageExtractor wraps a PageExtractor with logging.
type LoggingPageExtractor struct {
	next   yoola.PageExtractor
	logger *slog.Logger
}

// NewLoggingPageExtractor creates a new LoggingPageExtractor.
func NewLoggingPageExtractor(next yoola.PageExtractor, logger *slog.Logger) *LoggingPageExtractor {
	return &LoggingPageExtractor{next: next, logger: logger}
}

// ExtractPage logs the extracted size and delegates to the wrapped extractor.
func (e *LoggingPageExtractor) ExtractPage(page *yoola.Page) (content *yoola.PageContent, err error) {
	defer func(begin time.Time) {
		chars := 0
		if content != nil {
			chars = len(content.Content)
		}
		e.logger.Info("extract",
			"url", page.URL,
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractPage(page)
}
