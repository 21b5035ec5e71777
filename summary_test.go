package yoola_test

import (
	"testing"
	"time"

	"github.com/fwojciec/yoola"
	"github.com/stretchr/testify/assert"
)

func TestSummary_Validate(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil summary", func(t *testing.T) {
		t.Parallel()

		var s *yoola.Summary

		err := s.Validate()

		assert.Equal(t, yoola.EMALFORMED, yoola.ErrorCode(err))
		assert.Equal(t, "No data returned from API", yoola.ErrorMessage(err))
	})

	t.Run("rejects empty summary", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, (&yoola.Summary{}).Validate())
	})

	t.Run("accepts summary with key points", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, (&yoola.Summary{KeyPoints: []string{"A"}}).Validate())
	})
}

func TestSummary_SourceURL(t *testing.T) {
	t.Parallel()

	s := &yoola.Summary{URL: "https://example.com/page"}
	assert.Equal(t, "https://example.com/page", s.SourceURL())

	s.OriginalURL = "https://example.com/terms"
	assert.Equal(t, "https://example.com/terms", s.SourceURL())
}

func TestCacheEntry_Fresh(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"one day old", 24 * time.Hour, true},
		{"just under a week", yoola.CacheTTL - time.Millisecond, true},
		{"exactly a week", yoola.CacheTTL, false},
		{"eight days old", 8 * 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := &yoola.CacheEntry{CachedAt: now.Add(-tt.age)}

			assert.Equal(t, tt.want, e.Fresh(now))
		})
	}
}
