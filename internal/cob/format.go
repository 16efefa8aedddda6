package cob

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ShortID returns the truncated display form of an object id.
func ShortID(id string) string {
	if len(id) <= 7 {
		return id
	}
	return id[:7]
}

// Did shortens a DID for display: did:key:z6MkltTFi…NSVM.
func Did(did string) string {
	key := strings.TrimPrefix(did, "did:key:")
	if len(key) <= 14 {
		return key
	}
	return key[:9] + "…" + key[len(key)-4:]
}

// Timestamp renders a unix timestamp (seconds) relative to now,
// e.g. "3 days ago".
func Timestamp(ts int64) string {
	if ts == 0 {
		return ""
	}
	return humanize.Time(time.Unix(ts, 0))
}

// Labels joins labels for a table cell.
func Labels(labels []string) string {
	return strings.Join(labels, ", ")
}

// Authors joins author display names for a table cell.
func Authors(authors []AuthorItem) string {
	names := make([]string, len(authors))
	for i, author := range authors {
		names[i] = author.Label()
	}
	return strings.Join(names, ", ")
}
