package yoola

import (
	"regexp"
	"strings"
)

// TermsLink is an anchor on a page that points at a terms-like document.
type TermsLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// TermsDetectionResult describes whether, and how, a page relates to terms of
// service. Links are kept in document order and may contain duplicates.
type TermsDetectionResult struct {
	Found       bool        `json:"found"`
	OnTermsPage bool        `json:"onTermsPage"`
	Content     string      `json:"content,omitempty"`
	URL         string      `json:"url,omitempty"`
	Links       []TermsLink `json:"links,omitempty"`
	Error       string      `json:"error,omitempty"`
}

// TermsDetector inspects a page for terms-of-service content.
// Detect never fails; problems are reported through the Error field.
type TermsDetector interface {
	Detect(page *Page) *TermsDetectionResult
}

// TermsURLPatterns match URLs of terms-like documents.
var TermsURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)terms[-_]of[-_]service`),
	regexp.MustCompile(`(?i)terms[-_]and[-_]conditions`),
	regexp.MustCompile(`(?i)user[-_]agreement`),
	regexp.MustCompile(`(?i)privacy[-_]policy`),
	regexp.MustCompile(`(?i)legal[-_]terms`),
	regexp.MustCompile(`(?i)terms[-_]of[-_]use`),
}

// TermsTextPatterns match human readable titles of terms-like documents.
var TermsTextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)terms of service`),
	regexp.MustCompile(`(?i)terms and conditions`),
	regexp.MustCompile(`(?i)user agreement`),
	regexp.MustCompile(`(?i)privacy policy`),
	regexp.MustCompile(`(?i)legal terms`),
	regexp.MustCompile(`(?i)terms of use`),
}

// TermsKeywords are the lowercase words that mark a heading as terms related.
var TermsKeywords = []string{"terms", "conditions", "agreement", "privacy", "policy", "legal"}

var termsLinkRe = regexp.MustCompile(`(?i)terms|conditions|privacy|policy|agreement|legal`)

// MatchesTermsURL reports whether s matches any of TermsURLPatterns.
func MatchesTermsURL(s string) bool {
	return matchAny(TermsURLPatterns, s)
}

// MatchesTermsText reports whether s matches any of TermsTextPatterns.
func MatchesTermsText(s string) bool {
	return matchAny(TermsTextPatterns, s)
}

// ContainsTermsKeyword reports whether the lowercased s contains one of
// TermsKeywords.
func ContainsTermsKeyword(s string) bool {
	s = strings.ToLower(s)
	for _, kw := range TermsKeywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// LooksLikeTermsLink is the loose check applied before summarizing a link the
// user picked. Links failing it need explicit confirmation.
func LooksLikeTermsLink(url, text string) bool {
	return termsLinkRe.MatchString(url) || termsLinkRe.MatchString(text)
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
