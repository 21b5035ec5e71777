package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// containerSelectors are tried in order; the first match is the content root.
var containerSelectors = []string{
	"main",
	"article",
	".content",
	"#content",
	".terms",
	"#terms",
	"body",
}

// noiseSelector matches page chrome that never belongs to the terms text.
const noiseSelector = "header, footer, nav, aside, script, style, .header, .footer, .navigation, .sidebar, .ad, .advertisement"

// ContentExtractor produces clean plain text from the main container of a
// document.
type ContentExtractor struct{}

// NewContentExtractor creates a new ContentExtractor.
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// ExtractContent returns the whitespace-collapsed text of the preferred
// container with noise elements removed. The document itself is left
// untouched; removal happens on a detached clone.
func (e *ContentExtractor) ExtractContent(doc *goquery.Document) string {
	for _, selector := range containerSelectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}

		clone := container.Clone()
		clone.Find(noiseSelector).Remove()
		return collapseWhitespace(clone.Text())
	}
	return ""
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
