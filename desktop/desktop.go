// Package desktop implements the copy and view-original actions with the
// system clipboard and browser.
package desktop

import (
	"net/url"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/yoola"
	"github.com/pkg/browser"
)

var (
	_ yoola.Clipboard = (*Clipboard)(nil)
	_ yoola.URLOpener = (*Browser)(nil)
)

// Clipboard writes to the system clipboard.
type Clipboard struct{}

// NewClipboard creates a new Clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Copy places text on the clipboard.
func (c *Clipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return yoola.Errorf(yoola.EUNAVAILABLE, "clipboard is not available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return yoola.Errorf(yoola.EUNAVAILABLE, "copy to clipboard: %v", err)
	}
	return nil
}

// Browser opens URLs in the default browser.
type Browser struct {
	open func(string) error
}

// NewBrowser creates a new Browser.
func NewBrowser() *Browser {
	return &Browser{open: browser.OpenURL}
}

// Open opens rawURL. Only http and https URLs are accepted.
func (b *Browser) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return yoola.Errorf(yoola.EINVALID, "cannot open %q", rawURL)
	}
	if err := b.open(u.String()); err != nil {
		return yoola.Errorf(yoola.EUNAVAILABLE, "open browser: %v", err)
	}
	return nil
}
