package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/yoola"
	"github.com/fwojciec/yoola/mock"
	yslog "github.com/fwojciec/yoola/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("logs request attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, req *yoola.SummaryRequest) (*yoola.Summary, error) {
				return &yoola.Summary{KeyPoints: []string{"A"}}, nil
			},
		}

		s := yslog.NewLoggingSummarizer(inner, logger)
		summary, err := s.Summarize(context.Background(), &yoola.SummaryRequest{
			Domain:   "example.com",
			URL:      "https://example.com/terms",
			Language: "French",
			Content:  "12345",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, summary.KeyPoints)
		output := buf.String()
		assert.Contains(t, output, "msg=summarize")
		assert.Contains(t, output, "domain=example.com")
		assert.Contains(t, output, "language=French")
		assert.Contains(t, output, "chars=5")
	})

	t.Run("logs error message", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, req *yoola.SummaryRequest) (*yoola.Summary, error) {
				return nil, yoola.Errorf(yoola.EUNAVAILABLE, "API request failed with status 500")
			},
		}

		_, err := yslog.NewLoggingSummarizer(inner, logger).Summarize(context.Background(), &yoola.SummaryRequest{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "status 500")
	})
}

func TestLoggingPageExtractor_ExtractPage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.PageExtractor{
		ExtractPageFn: func(page *yoola.Page) (*yoola.PageContent, error) {
			return &yoola.PageContent{Content: "abc"}, nil
		},
	}

	content, err := yslog.NewLoggingPageExtractor(inner, logger).ExtractPage(&yoola.Page{URL: "https://example.com"})

	require.NoError(t, err)
	assert.Equal(t, "abc", content.Content)
	assert.Contains(t, buf.String(), "chars=3")
}

func TestPresenter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := yslog.NewPresenter(slog.New(slog.NewTextHandler(&buf, nil)))

	p.Loading("Analyzing page content...")
	p.Error("Page loading timed out")
	ok, err := p.Confirm(context.Background(), "https://example.com/blog", "example.com")

	require.NoError(t, err)
	assert.False(t, ok)
	output := buf.String()
	assert.Contains(t, output, "Analyzing page content...")
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "domain=example.com")
}
