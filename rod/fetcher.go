// Package rod implements yoola.Fetcher with a headless Chrome browser, for
// pages that only render their terms with JavaScript.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/yoola"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds navigation plus the wait for the load event.
const DefaultFetchTimeout = 15 * time.Second

// Ensure Fetcher implements yoola.Fetcher at compile time.
var _ yoola.Fetcher = (*Fetcher)(nil)

// Fetcher navigates to a URL, waits for the document to finish loading and
// returns the rendered HTML.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets how long a single Fetch may take.
// Defaults to DefaultFetchTimeout; zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a Fetcher backed by a new BrowserManager.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(managerOpts []ManagerOption, opts ...Option) (*Fetcher, error) {
	manager, err := NewBrowserManager(managerOpts...)
	if err != nil {
		return nil, err
	}

	f := &Fetcher{manager: manager, timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL and returns the HTML once the load event fired.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// LauncherPID returns the process ID of the running browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
