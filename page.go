package yoola

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// MinContentLength is the minimum number of characters a page must yield
// before it is sent for summarization.
const MinContentLength = 100

// Page is a loaded HTML document together with the URL it was loaded from.
type Page struct {
	URL  string
	HTML string
}

// PageContent is the text of a page prepared for summarization.
// It is created once per request and never persisted.
type PageContent struct {
	Domain  string `json:"domain"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate returns an error if the content is too short to summarize.
func (c *PageContent) Validate() error {
	if c == nil || utf8.RuneCountInString(c.Content) < MinContentLength {
		return Errorf(EINSUFFICIENT, "Not enough content found on this page to summarize")
	}
	return nil
}

// PageExtractor turns a loaded page into PageContent.
type PageExtractor interface {
	ExtractPage(page *Page) (*PageContent, error)
}

// Hostname returns the lowercased host of rawURL without its port.
func Hostname(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q", rawURL)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", Errorf(EINVALID, "URL %q has no host", rawURL)
	}
	return host, nil
}
