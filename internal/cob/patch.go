package cob

import (
	"sort"

	"github.com/radicle-dev/rad-tui/internal/radicle"
)

// PatchState is the lifecycle state of a patch.
type PatchState string

const (
	PatchDraft    PatchState = "draft"
	PatchOpen     PatchState = "open"
	PatchMerged   PatchState = "merged"
	PatchArchived PatchState = "archived"
)

// PatchItem is the flat row representation of a patch.
type PatchItem struct {
	ID    string
	State PatchState
	Title string
	// Author of the patch.
	Author AuthorItem
	// Base and Head delimit the latest revision.
	Base string
	Head string
	// Added and Removed are the diff stats of the latest revision,
	// filled in lazily since they require a diff request.
	Added   int
	Removed int
	// Description of the latest revision.
	Description string
	Timestamp   int64
}

// NewPatchItem converts a wire patch. selfDID marks "(you)" authors.
func NewPatchItem(patch radicle.Patch, selfDID string) PatchItem {
	item := PatchItem{
		ID:        patch.ID,
		State:     PatchState(patch.State.Status),
		Title:     patch.Title,
		Author:    NewAuthorItem(patch.Author, selfDID),
		Timestamp: patch.UpdatedAt(),
	}
	if revision := patch.Latest(); revision != nil {
		item.Base = revision.Base
		item.Head = revision.Oid
		item.Description = revision.Description
	}
	return item
}

// NewPatchItems converts and sorts a list of patches, newest first.
func NewPatchItems(patches []radicle.Patch, selfDID string) []PatchItem {
	items := make([]PatchItem, len(patches))
	for i, patch := range patches {
		items[i] = NewPatchItem(patch, selfDID)
	}
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Timestamp > items[b].Timestamp
	})
	return items
}
