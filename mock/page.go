package mock

import "github.com/fwojciec/yoola"

var (
	_ yoola.PageExtractor = (*PageExtractor)(nil)
	_ yoola.TermsDetector = (*TermsDetector)(nil)
)

// PageExtractor is a mock implementation of yoola.PageExtractor.
type PageExtractor struct {
	ExtractPageFn func(page *yoola.Page) (*yoola.PageContent, error)
}

func (e *PageExtractor) ExtractPage(page *yoola.Page) (*yoola.PageContent, error) {
	return e.ExtractPageFn(page)
}

// TermsDetector is a mock implementation of yoola.TermsDetector.
type TermsDetector struct {
	DetectFn func(page *yoola.Page) *yoola.TermsDetectionResult
}

func (d *TermsDetector) Detect(page *yoola.Page) *yoola.TermsDetectionResult {
	return d.DetectFn(page)
}
