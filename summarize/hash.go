package summarize

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ContentHash returns the hex xxhash fingerprint of page content. Cache
// entries carry it so a page that changed since it was summarized is not
// served from the cache.
func ContentHash(content string) string {
	return strconv.FormatUint(xxhash.Sum64String(content), 16)
}
