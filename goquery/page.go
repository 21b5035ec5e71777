package goquery

import (
	"strings"

	"github.com/fwojciec/yoola"
)

var (
	_ yoola.PageExtractor = (*PageExtractor)(nil)
	_ yoola.PageExtractor = (*FallbackExtractor)(nil)
)

// PageExtractor builds PageContent with the ContentExtractor.
type PageExtractor struct {
	content *ContentExtractor
}

// NewPageExtractor creates a new PageExtractor.
func NewPageExtractor() *PageExtractor {
	return &PageExtractor{content: NewContentExtractor()}
}

// ExtractPage returns the title and cleaned text of page.
func (e *PageExtractor) ExtractPage(page *yoola.Page) (*yoola.PageContent, error) {
	// Domain stays empty for URLs without a host, e.g. local files.
	domain, _ := yoola.Hostname(page.URL)

	doc, err := NewDocument(page)
	if err != nil {
		return nil, err
	}

	return &yoola.PageContent{
		Domain:  domain,
		URL:     page.URL,
		Title:   doc.Title(),
		Content: e.content.ExtractContent(doc.Document),
	}, nil
}

// FallbackExtractor derives PageContent from the raw document body. It is
// used when the configured extractor fails.
type FallbackExtractor struct{}

// NewFallbackExtractor creates a new FallbackExtractor.
func NewFallbackExtractor() *FallbackExtractor {
	return &FallbackExtractor{}
}

// ExtractPage returns the trimmed body text of page, chrome included.
func (e *FallbackExtractor) ExtractPage(page *yoola.Page) (*yoola.PageContent, error) {
	doc, err := NewDocument(page)
	if err != nil {
		return nil, err
	}

	// Domain stays empty for URLs without a host, e.g. local files.
	domain, _ := yoola.Hostname(page.URL)

	return &yoola.PageContent{
		Domain:  domain,
		URL:     page.URL,
		Title:   doc.Title(),
		Content: strings.TrimSpace(doc.Find("body").Text()),
	}, nil
}
