package yoola

import "context"

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until a request to the given domain is allowed.
	Wait(ctx context.Context, domain string) error
}

// URLSet remembers URLs that were already handled. TestAndAdd may report
// false positives but never false negatives.
type URLSet interface {
	// TestAndAdd records url and reports whether it was seen before.
	TestAndAdd(url string) bool
}

// ScanResult reports the terms indicator for one scanned page.
type ScanResult struct {
	URL         string      `json:"url"`
	Found       bool        `json:"found"`
	OnTermsPage bool        `json:"onTermsPage"`
	Links       []TermsLink `json:"links,omitempty"`
	Skipped     bool        `json:"skipped,omitempty"`
	Err         error       `json:"-"`
}

// Indicator returns the badge text for the result: "!" when terms were found.
func (r *ScanResult) Indicator() string {
	if r.Found {
		return "!"
	}
	return ""
}
