package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/yoola"
)

// Document is a parsed page handed to detection strategies.
type Document struct {
	*goquery.Document

	// URL is the page URL as loaded.
	URL string

	// base is used to resolve relative links. Nil when URL does not parse.
	base *url.URL
}

// NewDocument parses the HTML of page.
func NewDocument(page *yoola.Page) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, yoola.Errorf(yoola.EINVALID, "failed to parse HTML: %v", err)
	}

	d := &Document{Document: doc, URL: page.URL}
	if u, err := url.Parse(page.URL); err == nil && u.IsAbs() {
		d.base = u
	}
	return d, nil
}

// ResolveHref resolves href against the page URL the way a browser fills in
// an anchor's href property. A missing or unparsable href yields "".
func (d *Document) ResolveHref(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if d.base == nil {
		return ref.String()
	}
	return d.base.ResolveReference(ref).String()
}

// Title returns the trimmed text of the first <title> element.
func (d *Document) Title() string {
	return strings.TrimSpace(d.Find("title").First().Text())
}
