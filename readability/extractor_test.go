package readability_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/yoola"
	"github.com/fwojciec/yoola/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.ExtractPage(&yoola.Page{URL: "https://example.com/terms"})

	require.Error(t, err)
	assert.Equal(t, yoola.EINVALID, yoola.ErrorCode(err))
}

func TestExtractor_AcceptsURLWithoutHost(t *testing.T) {
	t.Parallel()

	para := strings.Repeat("By using the service you agree to be bound by these terms. ", 10)
	html := `<html><body><article><p>` + para + `</p><p>` + para + `</p></article></body></html>`

	ext := readability.NewExtractor()
	result, err := ext.ExtractPage(&yoola.Page{URL: "terms.html", HTML: html})

	require.NoError(t, err)
	assert.Empty(t, result.Domain)
	assert.Contains(t, result.Content, "you agree to be bound")
}

func TestExtractor_ExtractsTitleAndText(t *testing.T) {
	t.Parallel()

	para := strings.Repeat("By using the service you agree to be bound by these terms. ", 10)
	html := `<!DOCTYPE html>
<html>
<head><title>Terms of Service</title></head>
<body>
<nav><a href="/">Home</a><a href="/pricing">Pricing</a></nav>
<article><h1>Terms of Service</h1><p>` + para + `</p><p>` + para + `</p></article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.ExtractPage(&yoola.Page{URL: "https://example.com/terms", HTML: html})

	require.NoError(t, err)
	assert.Equal(t, "example.com", result.Domain)
	assert.Equal(t, "https://example.com/terms", result.URL)
	assert.Equal(t, "Terms of Service", result.Title)
	assert.Contains(t, result.Content, "you agree to be bound")
	assert.NotContains(t, result.Content, "Pricing")
	assert.NotContains(t, result.Content, "\n")
}
