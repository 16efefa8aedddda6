// Package cob converts collaborative objects into flat, filterable items
// for the browser tables. Items carry everything a row or a detail pane
// needs, so rendering never reaches back into the wire types.
package cob

import (
	"strings"

	"github.com/radicle-dev/rad-tui/internal/radicle"
)

// AuthorItem is a resolved reference to a peer.
type AuthorItem struct {
	// DID is the full decentralized identifier (did:key:z6Mk…).
	DID string
	// Alias is the human-readable name, when the node knows one.
	Alias string
	// You is true when the author is the local profile.
	You bool
}

// NewAuthorItem builds an AuthorItem, marking the local identity.
func NewAuthorItem(author radicle.Author, selfDID string) AuthorItem {
	return AuthorItem{
		DID:   author.ID,
		Alias: author.Alias,
		You:   selfDID != "" && author.ID == selfDID,
	}
}

// Label returns the display string for the author: the alias when known
// (suffixed for the local identity), the shortened DID otherwise.
func (a AuthorItem) Label() string {
	if a.Alias != "" {
		if a.You {
			return a.Alias + " (you)"
		}
		return a.Alias
	}
	return Did(a.DID)
}

// matchesAny reports whether the author is in the given DID list. Bare
// node ids are accepted alongside full DIDs.
func (a AuthorItem) matchesAny(dids []string) bool {
	for _, did := range dids {
		if a.DID == did || a.DID == "did:key:"+strings.TrimPrefix(did, "did:key:") {
			return true
		}
	}
	return false
}
