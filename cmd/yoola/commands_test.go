package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/yoola"
	main "github.com/fwojciec/yoola/cmd/yoola"
	"github.com/fwojciec/yoola/mock"
	"github.com/fwojciec/yoola/summarize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Coordinator: &summarize.Coordinator{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<p>" + strings.Repeat("terms apply ", 20) + "</p>", nil
				},
			},
			Extractor: &mock.PageExtractor{
				ExtractPageFn: func(page *yoola.Page) (*yoola.PageContent, error) {
					return &yoola.PageContent{Domain: "example.com", URL: page.URL, Content: page.HTML}, nil
				},
			},
			Summarizer: &mock.Summarizer{
				SummarizeFn: func(ctx context.Context, req *yoola.SummaryRequest) (*yoola.Summary, error) {
					return &yoola.Summary{KeyPoints: []string{"Be careful."}, OriginalURL: req.URL}, nil
				},
			},
			Presenter:   &mock.Presenter{},
			SettleDelay: 1,
		},
	}
}

func TestSummarizeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("copies and opens the summary", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		var copied, opened string
		deps.Clipboard = &mock.Clipboard{CopyFn: func(text string) error {
			copied = text
			return nil
		}}
		deps.Opener = &mock.URLOpener{OpenFn: func(url string) error {
			opened = url
			return nil
		}}

		cmd := &main.SummarizeCmd{URL: "https://example.com/terms", Copy: true, Open: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, copied, "- Be careful.")
		assert.Equal(t, "https://example.com/terms", opened)
		assert.Contains(t, stdout.String(), "Copied!")
	})

	t.Run("requires url or file", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := (&main.SummarizeCmd{}).Run(testDeps(stdout, stderr))

		assert.Equal(t, yoola.EINVALID, yoola.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: a URL or --file is required")
	})

	t.Run("saves summary", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Writer = &mock.SummaryWriter{
			WriteSummaryFn: func(ctx context.Context, s *yoola.Summary) (string, error) {
				return "/tmp/example.com.md", nil
			},
		}

		err := (&main.SummarizeCmd{URL: "https://example.com/terms", Save: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved summary to /tmp/example.com.md")
	})
}

func TestLinkCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("declined link is skipped", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := (&main.LinkCmd{URL: "https://example.com/blog", Text: "Blog"}).Run(testDeps(stdout, stderr))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Skipped.")
	})

	t.Run("confirmed link is summarized", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		presenter := &mock.Presenter{}
		deps.Coordinator.Presenter = presenter

		err := (&main.LinkCmd{URL: "https://example.com/blog", Text: "Blog", Yes: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, presenter.Calls(), "Summary:example.com")
	})
}

func TestScanCmd_Run(t *testing.T) {
	t.Parallel()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	deps := testDeps(stdout, stderr)
	deps.Scanner = &summarize.Scanner{
		Fetcher: deps.Coordinator.Fetcher,
		Detector: &mock.TermsDetector{
			DetectFn: func(page *yoola.Page) *yoola.TermsDetectionResult {
				return &yoola.TermsDetectionResult{Found: strings.HasSuffix(page.URL, "/terms")}
			},
		},
		Concurrency: 1,
	}

	err := (&main.ScanCmd{URLs: []string{"https://example.com/terms", "https://example.com/"}}).Run(deps)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "!  https://example.com/terms\n")
	assert.Contains(t, stdout.String(), "   https://example.com/\n")
	assert.Contains(t, stdout.String(), "Terms found on 1 of 2 pages")
}

func TestSettingsSetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("parses booleans", func(t *testing.T) {
		t.Parallel()

		var got yoola.SettingsUpdate
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Settings = &mock.SettingsService{
			UpdateSettingsFn: func(ctx context.Context, upd yoola.SettingsUpdate) (*yoola.Settings, error) {
				got = upd
				return yoola.DefaultSettings(), nil
			},
		}

		err := (&main.SettingsSetCmd{Key: "highlightLinks", Value: "false"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.HighlightLinks)
		assert.False(t, *got.HighlightLinks)
		assert.Contains(t, stdout.String(), "Settings saved successfully!")
	})

	t.Run("rejects bad boolean", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Settings = &mock.SettingsService{}

		err := (&main.SettingsSetCmd{Key: "autoDetect", Value: "maybe"}).Run(deps)

		assert.Equal(t, yoola.EINVALID, yoola.ErrorCode(err))
		assert.Contains(t, stderr.String(), "autoDetect must be true or false")
	})

	t.Run("rejects unsupported language", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Settings = &mock.SettingsService{}

		err := (&main.SettingsSetCmd{Key: "preferredLanguage", Value: "Klingon"}).Run(deps)

		assert.Equal(t, yoola.EINVALID, yoola.ErrorCode(err))
	})
}
