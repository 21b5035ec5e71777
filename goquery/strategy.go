package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/yoola"
)

// Strategy is one terms detection heuristic. Detect reports ok=false when
// the strategy does not apply so the next one can run.
type Strategy interface {
	Name() string
	Detect(doc *Document) (result *yoola.TermsDetectionResult, ok bool)
}

// URLPatternStrategy treats the page as a terms page when its URL matches
// yoola.TermsURLPatterns.
type URLPatternStrategy struct {
	content *ContentExtractor
}

// NewURLPatternStrategy creates a URLPatternStrategy that extracts the page
// text with content.
func NewURLPatternStrategy(content *ContentExtractor) *URLPatternStrategy {
	return &URLPatternStrategy{content: content}
}

func (s *URLPatternStrategy) Name() string { return "url" }

func (s *URLPatternStrategy) Detect(doc *Document) (*yoola.TermsDetectionResult, bool) {
	if !yoola.MatchesTermsURL(strings.ToLower(doc.URL)) {
		return nil, false
	}
	return &yoola.TermsDetectionResult{
		Found:       true,
		OnTermsPage: true,
		Content:     s.content.ExtractContent(doc.Document),
		URL:         doc.URL,
	}, true
}

// LinkStrategy collects every anchor that points at a terms-like document.
// Links are kept in document order, duplicates included.
type LinkStrategy struct{}

// NewLinkStrategy creates a new LinkStrategy.
func NewLinkStrategy() *LinkStrategy {
	return &LinkStrategy{}
}

func (s *LinkStrategy) Name() string { return "links" }

func (s *LinkStrategy) Detect(doc *Document) (*yoola.TermsDetectionResult, bool) {
	var links []yoola.TermsLink
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		href, _ := sel.Attr("href")
		resolved := doc.ResolveHref(href)

		if yoola.MatchesTermsText(text) || (resolved != "" && yoola.MatchesTermsURL(resolved)) {
			links = append(links, yoola.TermsLink{Text: text, URL: resolved})
		}
	})

	if len(links) == 0 {
		return nil, false
	}
	return &yoola.TermsDetectionResult{Found: true, Links: links}, true
}

// HeadingStrategy builds the page content from the sections that follow
// terms-related headings.
type HeadingStrategy struct{}

// NewHeadingStrategy creates a new HeadingStrategy.
func NewHeadingStrategy() *HeadingStrategy {
	return &HeadingStrategy{}
}

func (s *HeadingStrategy) Name() string { return "headings" }

func (s *HeadingStrategy) Detect(doc *Document) (*yoola.TermsDetectionResult, bool) {
	var b strings.Builder
	matched := false

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, heading *goquery.Selection) {
		text := heading.Text()
		if !yoola.ContainsTermsKeyword(text) {
			return
		}
		matched = true

		b.WriteString(strings.TrimSpace(text))
		b.WriteString("\n\n")
		for sib := heading.Next(); sib.Length() > 0 && !isHeading(sib); sib = sib.Next() {
			b.WriteString(strings.TrimSpace(sib.Text()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	})

	if !matched {
		return nil, false
	}
	return &yoola.TermsDetectionResult{
		Found:       true,
		OnTermsPage: true,
		Content:     strings.TrimSpace(b.String()),
		URL:         doc.URL,
	}, true
}

func isHeading(sel *goquery.Selection) bool {
	switch goquery.NodeName(sel) {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}
