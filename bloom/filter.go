// Package bloom remembers visited URLs with a Bloom filter.
package bloom

import (
	"net/url"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/yoola"
)

var _ yoola.URLSet = (*URLSet)(nil)

// URLSet is a concurrency-safe set of URLs backed by a Bloom filter.
// URLs are normalized first, so "https://Example.com/terms#s2" and
// "https://example.com/terms" are the same member.
type URLSet struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewURLSet creates a set sized for n expected URLs with the given false
// positive rate.
func NewURLSet(n uint, fpRate float64) *URLSet {
	return &URLSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd reports whether the URL might already be in the set and adds
// it in one step. False positives are possible; false negatives are not.
func (s *URLSet) TestAndAdd(rawURL string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.TestAndAddString(normalize(rawURL))
}

// normalize lowercases scheme and host and drops the fragment and a
// trailing slash. Unparsable input is used as is.
func normalize(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return rawURL
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
		u.RawPath = ""
	}
	return u.String()
}
