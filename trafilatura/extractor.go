// Package trafilatura implements yoola.PageExtractor with go-trafilatura.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/fwojciec/yoola"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements yoola.PageExtractor at compile time.
var _ yoola.PageExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull the main text from a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractPage returns the page title and main text.
func (e *Extractor) ExtractPage(page *yoola.Page) (*yoola.PageContent, error) {
	if page.HTML == "" {
		return nil, yoola.Errorf(yoola.EINVALID, "empty HTML input")
	}

	// Domain stays empty for URLs without a host, e.g. local files.
	domain, _ := yoola.Hostname(page.URL)

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(page.URL); err == nil {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(page.HTML), opts)
	if err != nil {
		return nil, yoola.Errorf(yoola.EINVALID, "trafilatura: %v", err)
	}

	text := result.ContentText
	if strings.TrimSpace(text) == "" && result.ContentNode != nil {
		text = nodeText(result.ContentNode)
	}

	return &yoola.PageContent{
		Domain:  domain,
		URL:     page.URL,
		Title:   strings.TrimSpace(result.Metadata.Title),
		Content: strings.Join(strings.Fields(text), " "),
	}, nil
}

// nodeText concatenates the text nodes below n, separating blocks with
// spaces.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
