package goquery

import (
	"fmt"

	"github.com/fwojciec/yoola"
)

// Ensure Detector implements yoola.TermsDetector at compile time.
var _ yoola.TermsDetector = (*Detector)(nil)

// Detector runs an ordered list of strategies over a page. The first
// strategy that applies decides the result.
type Detector struct {
	strategies []Strategy
}

// NewDetector creates a Detector. Without arguments it uses
// DefaultStrategies.
func NewDetector(strategies ...Strategy) *Detector {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Detector{strategies: strategies}
}

// DefaultStrategies returns the URL pattern, link and heading strategies, in
// that order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		NewURLPatternStrategy(NewContentExtractor()),
		NewLinkStrategy(),
		NewHeadingStrategy(),
	}
}

// Detect analyzes the page. It never fails: parse errors and strategy panics
// come back as Found=false with Error set.
func (d *Detector) Detect(page *yoola.Page) (result *yoola.TermsDetectionResult) {
	defer func() {
		if r := recover(); r != nil {
			result = &yoola.TermsDetectionResult{Error: fmt.Sprint(r)}
		}
	}()

	doc, err := NewDocument(page)
	if err != nil {
		return &yoola.TermsDetectionResult{Error: yoola.ErrorMessage(err)}
	}

	for _, s := range d.strategies {
		if res, ok := s.Detect(doc); ok {
			return res
		}
	}
	return &yoola.TermsDetectionResult{}
}

// Strategies returns the names of the configured strategies in order.
func (d *Detector) Strategies() []string {
	names := make([]string, len(d.strategies))
	for i, s := range d.strategies {
		names[i] = s.Name()
	}
	return names
}
