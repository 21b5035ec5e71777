package summarize

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/yoola"
	"golang.org/x/time/rate"
)

var _ yoola.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces scan fetches per site with a token bucket each.
// Hosts are keyed by site, so "WWW.Example.com:443" and "example.com" share
// a bucket. A non-positive rate disables limiting.
type DomainLimiter struct {
	mu    sync.Mutex
	sites map[string]*rate.Limiter
	rps   float64
}

// NewDomainLimiter returns a limiter allowing rps fetches per second to each
// site, with a burst of 1.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		sites: make(map[string]*rate.Limiter),
		rps:   rps,
	}
}

// Wait blocks until a fetch from domain is allowed. domain may be a bare
// host or a full URL. Returns the context error if ctx ends first.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.rps <= 0 {
		return ctx.Err()
	}
	return d.site(domain).Wait(ctx)
}

func (d *DomainLimiter) site(domain string) *rate.Limiter {
	key := siteKey(domain)

	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.sites[key]
	if !ok {
		l = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.sites[key] = l
	}
	return l
}

// siteKey reduces a host or URL to its lowercased host without port or a
// leading "www.".
func siteKey(domain string) string {
	domain = strings.TrimSpace(domain)
	if !strings.Contains(domain, "://") {
		domain = "//" + domain
	}
	host, err := yoola.Hostname(domain)
	if err != nil {
		return strings.ToLower(domain)
	}
	return strings.TrimPrefix(host, "www.")
}
