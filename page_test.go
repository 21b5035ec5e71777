package yoola_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/yoola"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageContent_Validate(t *testing.T) {
	t.Parallel()

	t.Run("rejects content shorter than minimum", func(t *testing.T) {
		t.Parallel()

		c := &yoola.PageContent{Content: strings.Repeat("a", 99)}

		err := c.Validate()

		assert.Equal(t, yoola.EINSUFFICIENT, yoola.ErrorCode(err))
		assert.Equal(t, "Not enough content found on this page to summarize", yoola.ErrorMessage(err))
	})

	t.Run("accepts content at minimum", func(t *testing.T) {
		t.Parallel()

		c := &yoola.PageContent{Content: strings.Repeat("a", 100)}

		assert.NoError(t, c.Validate())
	})

	t.Run("counts characters rather than bytes", func(t *testing.T) {
		t.Parallel()

		c := &yoola.PageContent{Content: strings.Repeat("é", 60)}

		assert.Error(t, c.Validate())
	})

	t.Run("rejects nil content", func(t *testing.T) {
		t.Parallel()

		var c *yoola.PageContent

		assert.Equal(t, yoola.EINSUFFICIENT, yoola.ErrorCode(c.Validate()))
	})
}

func TestHostname(t *testing.T) {
	t.Parallel()

	t.Run("returns lowercased host without port", func(t *testing.T) {
		t.Parallel()

		host, err := yoola.Hostname("https://Example.COM:8443/terms")

		require.NoError(t, err)
		assert.Equal(t, "example.com", host)
	})

	t.Run("rejects URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := yoola.Hostname("/relative/path")

		assert.Equal(t, yoola.EINVALID, yoola.ErrorCode(err))
	})
}
