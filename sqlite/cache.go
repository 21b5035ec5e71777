package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fwojciec/yoola"
)

// Compile-time interface verification.
var _ yoola.CacheService = (*CacheService)(nil)

// CacheService implements yoola.CacheService using SQLite.
// There is one row per domain; the last write wins.
type CacheService struct {
	db *DB
}

// NewCacheService creates a new CacheService.
func NewCacheService(db *DB) *CacheService {
	return &CacheService{db: db}
}

// FindCacheEntry returns the entry for domain.
func (s *CacheService) FindCacheEntry(ctx context.Context, domain string) (*yoola.CacheEntry, error) {
	var data, hash string
	var cachedAt int64

	err := s.db.QueryRowContext(ctx, `
		SELECT data, content_hash, cached_at
		FROM summary_cache
		WHERE domain = ?
	`, domain).Scan(&data, &hash, &cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, yoola.Errorf(yoola.ENOTFOUND, "no cached summary for %s", domain)
	}
	if err != nil {
		return nil, err
	}

	var summary yoola.Summary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, fmt.Errorf("failed to decode cached summary: %w", err)
	}

	return &yoola.CacheEntry{
		Domain:      domain,
		Summary:     &summary,
		ContentHash: hash,
		CachedAt:    fromEpochMillis(cachedAt),
	}, nil
}

// SaveCacheEntry stores entry, replacing any entry for the same domain.
// A zero CachedAt is set to the current time.
func (s *CacheService) SaveCacheEntry(ctx context.Context, entry *yoola.CacheEntry) error {
	if entry.Domain == "" {
		return yoola.Errorf(yoola.EINVALID, "domain required")
	}
	if entry.Summary == nil {
		return yoola.Errorf(yoola.EINVALID, "summary required")
	}

	if entry.CachedAt.IsZero() {
		entry.CachedAt = s.db.Now()
	}

	data, err := json.Marshal(entry.Summary)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO summary_cache (domain, data, content_hash, cached_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(domain) DO UPDATE SET
			data = excluded.data,
			content_hash = excluded.content_hash,
			cached_at = excluded.cached_at
	`, entry.Domain, string(data), entry.ContentHash, toEpochMillis(entry.CachedAt))
	return err
}

// ClearCache removes every entry.
func (s *CacheService) ClearCache(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM summary_cache`)
	return err
}
