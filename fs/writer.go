// Package fs exports summaries as Markdown files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/yoola"
	"gopkg.in/yaml.v3"
)

// SummaryPath returns the file name for a summary of domain.
// Example: www.example.com → www.example.com.md
func SummaryPath(domain string) (string, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" || strings.ContainsAny(domain, `/\`) || domain == "." || domain == ".." {
		return "", yoola.Errorf(yoola.EINVALID, "invalid domain %q", domain)
	}
	return domain + ".md", nil
}

type frontmatter struct {
	Source   string `yaml:"source"`
	Domain   string `yaml:"domain"`
	Language string `yaml:"language,omitempty"`
	Reviewed bool   `yaml:"reviewed"`
	Created  string `yaml:"created,omitempty"`
}

// FormatSummary formats a summary with YAML frontmatter.
func FormatSummary(s *yoola.Summary) (string, error) {
	fm := frontmatter{
		Source:   s.SourceURL(),
		Domain:   s.Domain,
		Language: s.Language,
		Reviewed: s.IsReviewed,
	}
	if !s.CreatedAt.IsZero() {
		fm.Created = s.CreatedAt.Format(time.DateOnly)
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(yoola.FormatSummary(s))
	return b.String(), nil
}

// Ensure Writer implements yoola.SummaryWriter at compile time.
var _ yoola.SummaryWriter = (*Writer)(nil)

// Writer writes summaries as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteSummary writes s to <dir>/<domain>.md and returns the path.
// The file is written to a temporary name first and renamed into place.
func (w *Writer) WriteSummary(ctx context.Context, s *yoola.Summary) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	domain := s.Domain
	if domain == "" {
		domain, _ = yoola.Hostname(s.SourceURL())
	}
	relPath, err := SummaryPath(domain)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	content, err := FormatSummary(s)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return fullPath, nil
}
