package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	main "github.com/fwojciec/yoola/cmd/yoola"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against the database at dbPath.
func run(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()

	m := main.NewMain()
	m.DBPath = dbPath
	m.Stdin = strings.NewReader("")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run_Languages(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, filepath.Join(t.TempDir(), "test.db"), "languages")

	require.NoError(t, err)
	assert.Contains(t, stdout, "English\n")
	assert.Contains(t, stdout, "Mandarin Chinese\n")
}

func TestMain_Run_Settings(t *testing.T) {
	t.Parallel()

	t.Run("set persists between runs", func(t *testing.T) {
		t.Parallel()

		db := filepath.Join(t.TempDir(), "test.db")

		_, _, err := run(t, db, "settings", "set", "theme", "dark")
		require.NoError(t, err)

		stdout, _, err := run(t, db, "settings", "show")
		require.NoError(t, err)
		assert.Contains(t, stdout, "theme: dark")
	})

	t.Run("set rejects invalid value", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, filepath.Join(t.TempDir(), "test.db"), "settings", "set", "apiBaseUrl", "ftp://example.com")

		require.Error(t, err)
		assert.Contains(t, stderr, "error: Please enter a valid URL")
	})

	t.Run("set rejects unknown key", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, filepath.Join(t.TempDir(), "test.db"), "settings", "set", "colour", "red")

		require.Error(t, err)
		assert.Contains(t, stderr, `unknown setting "colour"`)
	})

	t.Run("export and import round trip", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "src.db")
		dst := filepath.Join(dir, "dst.db")
		file := filepath.Join(dir, "settings.yaml")

		_, _, err := run(t, src, "settings", "set", "preferredLanguage", "Japanese")
		require.NoError(t, err)
		_, _, err = run(t, src, "settings", "export", file)
		require.NoError(t, err)

		_, _, err = run(t, dst, "settings", "import", file)
		require.NoError(t, err)

		stdout, _, err := run(t, dst, "settings", "show")
		require.NoError(t, err)
		assert.Contains(t, stdout, "preferredLanguage: Japanese")
	})

	t.Run("reset restores defaults", func(t *testing.T) {
		t.Parallel()

		db := filepath.Join(t.TempDir(), "test.db")
		_, _, err := run(t, db, "settings", "set", "autoDetect", "false")
		require.NoError(t, err)

		stdout, _, err := run(t, db, "settings", "reset")

		require.NoError(t, err)
		assert.Contains(t, stdout, "autoDetect: true")
	})
}

func TestMain_Run_Summarize(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/get_summary", r.URL.Path)
		assert.Equal(t, "example.com", r.URL.Query().Get("domain"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keyPoints":   []string{"You may cancel at any time."},
			"alerts":      []string{"Disputes go to arbitration."},
			"isReviewed":  true,
			"createdAt":   "2026-02-01T10:00:00Z",
			"originalUrl": "https://example.com/terms",
		})
	}))
	defer api.Close()

	dir := t.TempDir()
	db := filepath.Join(dir, "test.db")
	page := filepath.Join(dir, "terms.html")
	body := strings.Repeat("<p>By using this service you agree to these terms.</p>", 5)
	require.NoError(t, os.WriteFile(page, []byte("<html><head><title>Terms</title></head><body><main>"+body+"</main></body></html>"), 0644))

	_, _, err := run(t, db, "settings", "set", "apiBaseUrl", api.URL)
	require.NoError(t, err)

	stdout, stderr, err := run(t, db, "summarize", "https://example.com/terms", "--file", page, "--save", "--out", dir)
	require.NoError(t, err, stderr)

	assert.Contains(t, stdout, "Terms Summary")
	assert.Contains(t, stdout, "Pre-Approved")
	assert.Contains(t, stdout, "You may cancel at any time.")
	assert.FileExists(t, filepath.Join(dir, "example.com.md"))

	stdout, _, err = run(t, db, "cache", "check", "example.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "You may cancel at any time.")

	_, _, err = run(t, db, "summarize", "https://example.com/terms", "--file", page)
	require.NoError(t, err)
	assert.Equal(t, int32(1), requests.Load(), "second summary should come from the cache")

	_, _, err = run(t, db, "cache", "clear")
	require.NoError(t, err)
	stdout, _, err = run(t, db, "cache", "check", "example.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No cached summary for example.com")
}

func TestMain_Run_SummarizeShortPage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	page := filepath.Join(dir, "short.html")
	require.NoError(t, os.WriteFile(page, []byte("<html><body><main>Hi</main></body></html>"), 0644))

	stdout, stderr, err := run(t, filepath.Join(dir, "test.db"), "summarize", "https://example.com/", "--file", page)

	require.Error(t, err)
	assert.Contains(t, stderr, "error: Not enough content found on this page to summarize")
	assert.Contains(t, stdout, "Sorry, we couldn")
}

func TestMain_Run_SummarizeFileWithoutURL(t *testing.T) {
	t.Parallel()

	var content atomic.Value
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content.Store(r.URL.Query().Get("content"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keyPoints": []string{"You may cancel at any time."},
		})
	}))
	defer api.Close()

	dir := t.TempDir()
	db := filepath.Join(dir, "test.db")
	page := filepath.Join(dir, "terms.html")
	body := strings.Repeat("<p>By using this service   you agree to these terms.</p>\n", 5)
	require.NoError(t, os.WriteFile(page, []byte("<html><body><nav>Site menu</nav><main>"+body+"</main><footer>Copyright</footer></body></html>"), 0644))

	_, _, err := run(t, db, "settings", "set", "apiBaseUrl", api.URL)
	require.NoError(t, err)

	stdout, stderr, err := run(t, db, "summarize", "--file", page)
	require.NoError(t, err, stderr)

	assert.Contains(t, stdout, "You may cancel at any time.")
	sent, _ := content.Load().(string)
	assert.True(t, strings.HasPrefix(sent, "By using this service you agree to these terms."), sent)
	assert.NotContains(t, sent, "Site menu")
	assert.NotContains(t, sent, "Copyright")
	assert.NotContains(t, sent, "\n")
}

func TestMain_Run_Detect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	page := filepath.Join(dir, "home.html")
	require.NoError(t, os.WriteFile(page, []byte(`<html><body>
		<a href="/legal/terms-of-service">Terms of Service</a>
		<a href="/about">About</a>
	</body></html>`), 0644))

	stdout, _, err := run(t, filepath.Join(dir, "test.db"), "detect", "https://example.com/", "--file", page)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Found 1 terms links:")
	assert.Contains(t, stdout, "Terms of Service  https://example.com/legal/terms-of-service")
}
