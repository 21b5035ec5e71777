package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/yoola"
)

var (
	_ yoola.Presenter = (*Presenter)(nil)
	_ yoola.Clipboard = (*Clipboard)(nil)
	_ yoola.URLOpener = (*URLOpener)(nil)
)

// Presenter is a mock implementation of yoola.Presenter. Unset hooks are
// no-ops, and every call is recorded in Calls as "Method:arg".
type Presenter struct {
	LoadingFn func(msg string)
	StatusFn  func(msg string)
	NoTermsFn func()
	SummaryFn func(s *yoola.Summary)
	ErrorFn   func(msg string)
	ConfirmFn func(ctx context.Context, url, domain string) (bool, error)

	mu    sync.Mutex
	calls []string
}

func (p *Presenter) Loading(msg string) {
	p.record("Loading:" + msg)
	if p.LoadingFn != nil {
		p.LoadingFn(msg)
	}
}

func (p *Presenter) Status(msg string) {
	p.record("Status:" + msg)
	if p.StatusFn != nil {
		p.StatusFn(msg)
	}
}

func (p *Presenter) NoTerms() {
	p.record("NoTerms")
	if p.NoTermsFn != nil {
		p.NoTermsFn()
	}
}

func (p *Presenter) Summary(s *yoola.Summary) {
	p.record("Summary:" + s.Domain)
	if p.SummaryFn != nil {
		p.SummaryFn(s)
	}
}

func (p *Presenter) Error(msg string) {
	p.record("Error:" + msg)
	if p.ErrorFn != nil {
		p.ErrorFn(msg)
	}
}

func (p *Presenter) Confirm(ctx context.Context, url, domain string) (bool, error) {
	p.record("Confirm:" + url)
	if p.ConfirmFn != nil {
		return p.ConfirmFn(ctx, url, domain)
	}
	return false, nil
}

// Calls returns the recorded calls in order.
func (p *Presenter) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func (p *Presenter) record(call string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call)
}

// Clipboard is a mock implementation of yoola.Clipboard.
type Clipboard struct {
	CopyFn func(text string) error
}

func (c *Clipboard) Copy(text string) error {
	return c.CopyFn(text)
}

// URLOpener is a mock implementation of yoola.URLOpener.
type URLOpener struct {
	OpenFn func(url string) error
}

func (o *URLOpener) Open(url string) error {
	return o.OpenFn(url)
}
