package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/yoola"
)

var _ yoola.Presenter = (*Presenter)(nil)

// Presenter reports request states to a logger. It is used when no user is
// attached, e.g. while serving messages; confirmations are always declined.
type Presenter struct {
	logger *slog.Logger
}

// NewPresenter creates a new Presenter.
func NewPresenter(logger *slog.Logger) *Presenter {
	return &Presenter{logger: logger}
}

func (p *Presenter) Loading(msg string) { p.logger.Info("loading", "msg", msg) }

func (p *Presenter) Status(msg string) { p.logger.Info("status", "msg", msg) }

func (p *Presenter) NoTerms() { p.logger.Info("no terms found") }

func (p *Presenter) Summary(s *yoola.Summary) {
	p.logger.Info("summary",
		"domain", s.Domain,
		"language", s.Language,
		"key_points", len(s.KeyPoints),
		"from_cache", s.FromCache,
		"generation_ms", s.GenerationTime,
	)
}

func (p *Presenter) Error(msg string) { p.logger.Warn("summary failed", "msg", msg) }

func (p *Presenter) Confirm(_ context.Context, url, domain string) (bool, error) {
	p.logger.Info("confirmation required", "url", url, "domain", domain)
	return false, nil
}
