package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/yoola"
)

var _ yoola.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   yoola.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next yoola.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize logs the request and delegates to the wrapped summarizer.
func (s *LoggingSummarizer) Summarize(ctx context.Context, req *yoola.SummaryRequest) (summary *yoola.Summary, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"domain", req.Domain,
			"url", req.URL,
			"language", req.Language,
			"chars", len(req.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, req)
}
