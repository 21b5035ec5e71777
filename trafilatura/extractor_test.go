package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/yoola"
	"github.com/fwojciec/yoola/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements yoola.PageExtractor at compile time.
var _ yoola.PageExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_ExtractPage(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main content", func(t *testing.T) {
		t.Parallel()

		para := strings.Repeat("We collect your email address and usage data to operate the service. ", 8)
		html := `<!DOCTYPE html>
<html>
<head>
<title>Privacy Policy - Example</title>
<meta property="og:title" content="Privacy Policy">
</head>
<body>
<nav><a href="/">Home</a><a href="/shop">Shop</a></nav>
<article>
<h1>Privacy Policy</h1>
<p>` + para + `</p>
<p>` + para + `</p>
</article>
<footer>Copyright 2025</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.ExtractPage(&yoola.Page{URL: "https://example.com/privacy-policy", HTML: html})

		require.NoError(t, err)
		assert.Equal(t, "example.com", result.Domain)
		assert.NotEmpty(t, result.Title)
		assert.Contains(t, result.Content, "We collect your email address")
		assert.NotContains(t, result.Content, "Copyright 2025")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.ExtractPage(&yoola.Page{URL: "https://example.com"})

		assert.Equal(t, yoola.EINVALID, yoola.ErrorCode(err))
	})
}
