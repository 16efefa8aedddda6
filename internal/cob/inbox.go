package cob

import (
	"github.com/radicle-dev/rad-tui/internal/radicle"
)

// NotificationKind classifies an inbox entry.
type NotificationKind string

const (
	KindIssue   NotificationKind = "issue"
	KindPatch   NotificationKind = "patch"
	KindBranch  NotificationKind = "branch"
	KindUnknown NotificationKind = "unknown"
)

// NotificationItem is the flat row representation of an inbox entry.
type NotificationItem struct {
	// ID is the store-local notification id.
	ID int64
	// RepoName is the project the notification belongs to.
	RepoName string
	Seen     bool
	Kind     NotificationKind
	// KindID is the COB id or the branch name, depending on Kind.
	KindID string
	// Summary is the issue/patch title or the branch ref.
	Summary string
	// Status is the object state ("open", "merged", …) for COBs and the
	// ref update ("created", "updated", "deleted") for branches.
	Status    string
	Author    AuthorItem
	Timestamp int64
}

// NotificationContext resolves COB ids referenced by notifications.
type NotificationContext struct {
	RepoName string
	SelfDID  string
	Issues   map[string]radicle.Issue
	Patches  map[string]radicle.Patch
	Aliases  map[string]string // NID -> alias
}

// NewNotificationItem converts a store notification. Returns false when
// the referenced object no longer exists (it may have been deleted after
// the notification was written).
func NewNotificationItem(n radicle.Notification, ctx NotificationContext) (NotificationItem, bool) {
	author := radicle.Author{}
	if n.Remote != "" {
		author.ID = "did:key:" + n.Remote
		author.Alias = ctx.Aliases[n.Remote]
	}

	item := NotificationItem{
		ID:        n.ID,
		RepoName:  ctx.RepoName,
		Seen:      n.Seen,
		Author:    NewAuthorItem(author, ctx.SelfDID),
		Timestamp: n.Timestamp,
	}

	ref := n.Kind()
	switch {
	case ref.Kind == "cob" && ref.Type == radicle.CobTypeIssue:
		issue, ok := ctx.Issues[ref.ID]
		if !ok {
			return item, false
		}
		item.Kind = KindIssue
		item.KindID = ref.ID
		item.Summary = issue.Title
		item.Status = string(issueState(issue.State))
	case ref.Kind == "cob" && ref.Type == radicle.CobTypePatch:
		patch, ok := ctx.Patches[ref.ID]
		if !ok {
			return item, false
		}
		item.Kind = KindPatch
		item.KindID = ref.ID
		item.Summary = patch.Title
		item.Status = patch.State.Status
	case ref.Kind == "branch":
		item.Kind = KindBranch
		item.KindID = ref.ID
		item.Summary = ref.ID
		item.Status = string(n.Update())
	default:
		item.Kind = KindUnknown
		item.KindID = ref.ID
		item.Summary = n.Ref
	}

	return item, true
}

// NewNotificationItems converts a list of notifications, dropping entries
// whose objects have disappeared. Store order is preserved; sorting is the
// store's concern.
func NewNotificationItems(notifications []radicle.Notification, ctx NotificationContext) []NotificationItem {
	var items []NotificationItem
	for _, n := range notifications {
		if item, ok := NewNotificationItem(n, ctx); ok {
			items = append(items, item)
		}
	}
	return items
}
