package yoola

import "context"

// Presenter shows the states of a summarization request to the user.
// Methods may be called from a timer goroutine and must be safe for
// concurrent use.
type Presenter interface {
	Loading(msg string)
	Status(msg string)
	NoTerms()
	Summary(s *Summary)
	Error(msg string)

	// Confirm asks whether a link that does not look like terms should be
	// summarized anyway.
	Confirm(ctx context.Context, url, domain string) (bool, error)
}

// Clipboard copies text for the user.
type Clipboard interface {
	Copy(text string) error
}

// URLOpener opens a URL in the user's browser.
type URLOpener interface {
	Open(url string) error
}
