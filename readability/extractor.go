// Package readability implements yoola.PageExtractor with go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/yoola"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements yoola.PageExtractor at compile time.
var _ yoola.PageExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to pull the main article text from a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractPage returns the article title and whitespace-collapsed text.
func (e *Extractor) ExtractPage(page *yoola.Page) (*yoola.PageContent, error) {
	if page.HTML == "" {
		return nil, yoola.Errorf(yoola.EINVALID, "empty HTML input")
	}

	// Domain stays empty for URLs without a host, e.g. local files.
	domain, _ := yoola.Hostname(page.URL)

	pageURL, err := url.Parse(page.URL)
	if err != nil {
		pageURL = &url.URL{}
	}
	article, err := readability.FromReader(strings.NewReader(page.HTML), pageURL)
	if err != nil {
		return nil, yoola.Errorf(yoola.EINVALID, "readability: %v", err)
	}

	return &yoola.PageContent{
		Domain:  domain,
		URL:     page.URL,
		Title:   strings.TrimSpace(article.Title),
		Content: strings.Join(strings.Fields(article.TextContent), " "),
	}, nil
}
