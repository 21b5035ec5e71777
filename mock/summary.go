package mock

import (
	"context"

	"github.com/fwojciec/yoola"
)

var (
	_ yoola.Summarizer    = (*Summarizer)(nil)
	_ yoola.CacheService  = (*CacheService)(nil)
	_ yoola.SummaryWriter = (*SummaryWriter)(nil)
)

// Summarizer is a mock implementation of yoola.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, req *yoola.SummaryRequest) (*yoola.Summary, error)
}

func (s *Summarizer) Summarize(ctx context.Context, req *yoola.SummaryRequest) (*yoola.Summary, error) {
	return s.SummarizeFn(ctx, req)
}

// CacheService is a mock implementation of yoola.CacheService.
type CacheService struct {
	FindCacheEntryFn func(ctx context.Context, domain string) (*yoola.CacheEntry, error)
	SaveCacheEntryFn func(ctx context.Context, entry *yoola.CacheEntry) error
	ClearCacheFn     func(ctx context.Context) error
}

func (s *CacheService) FindCacheEntry(ctx context.Context, domain string) (*yoola.CacheEntry, error) {
	return s.FindCacheEntryFn(ctx, domain)
}

func (s *CacheService) SaveCacheEntry(ctx context.Context, entry *yoola.CacheEntry) error {
	return s.SaveCacheEntryFn(ctx, entry)
}

func (s *CacheService) ClearCache(ctx context.Context) error {
	return s.ClearCacheFn(ctx)
}

// SummaryWriter is a mock implementation of yoola.SummaryWriter.
type SummaryWriter struct {
	WriteSummaryFn func(ctx context.Context, s *yoola.Summary) (string, error)
}

func (w *SummaryWriter) WriteSummary(ctx context.Context, s *yoola.Summary) (string, error) {
	return w.WriteSummaryFn(ctx, s)
}
