package cob

import (
	"testing"

	"github.com/radicle-dev/rad-tui/internal/radicle"
)

func TestNewIssueItem(t *testing.T) {
	issue := radicle.Issue{
		ID:     "aaaa1111",
		Author: radicle.Author{ID: aliceDID, Alias: "alice"},
		Title:  "Flaky test",
		State:  radicle.IssueState{Status: "closed", Reason: "solved"},
		Labels: []string{"bug", "ci"},
		Assignees: []radicle.Author{
			{ID: bobDID, Alias: "bob"},
		},
		Discussion: []radicle.Comment{
			{ID: "aaaa1111", Author: radicle.Author{ID: aliceDID, Alias: "alice"}, Body: "It fails.", Timestamp: 1700000000},
			{ID: "cccc3333", Author: radicle.Author{ID: bobDID, Alias: "bob"}, Body: "On it.", ReplyTo: "aaaa1111", Timestamp: 1700000100},
		},
	}

	item := NewIssueItem(issue, aliceDID)

	if item.State != IssueSolved {
		t.Errorf("State = %q, want solved", item.State)
	}
	if !item.Author.You {
		t.Error("Author should be marked as you")
	}
	if item.Timestamp != 1700000000 {
		t.Errorf("Timestamp = %d, want root comment timestamp", item.Timestamp)
	}
	if item.Description() != "It fails." {
		t.Errorf("Description() = %q", item.Description())
	}
	replies := item.Replies()
	if len(replies) != 1 || replies[0].Body != "On it." {
		t.Errorf("Replies() = %+v", replies)
	}
}

func TestNewIssueItems_SortsNewestFirst(t *testing.T) {
	issues := []radicle.Issue{
		{ID: "old", Discussion: []radicle.Comment{{Timestamp: 100}}},
		{ID: "new", Discussion: []radicle.Comment{{Timestamp: 300}}},
		{ID: "mid", Discussion: []radicle.Comment{{Timestamp: 200}}},
	}

	items := NewIssueItems(issues, "")
	want := []string{"new", "mid", "old"}
	for i, id := range want {
		if items[i].ID != id {
			t.Errorf("items[%d].ID = %q, want %q", i, items[i].ID, id)
		}
	}
}

func TestNewPatchItem(t *testing.T) {
	patch := radicle.Patch{
		ID:     "bbbb2222",
		Author: radicle.Author{ID: bobDID, Alias: "bob"},
		Title:  "Add codec",
		State:  radicle.PatchState{Status: "open"},
		Revisions: []radicle.Revision{
			{ID: "r1", Base: "c0", Oid: "c1", Description: "first", Timestamp: 100},
			{ID: "r2", Base: "c0", Oid: "c2", Description: "second", Timestamp: 200},
		},
	}

	item := NewPatchItem(patch, aliceDID)

	if item.State != PatchOpen {
		t.Errorf("State = %q", item.State)
	}
	if item.Base != "c0" || item.Head != "c2" {
		t.Errorf("revision range = %s..%s, want latest revision", item.Base, item.Head)
	}
	if item.Description != "second" {
		t.Errorf("Description = %q", item.Description)
	}
	if item.Timestamp != 200 {
		t.Errorf("Timestamp = %d", item.Timestamp)
	}
	if item.Author.You {
		t.Error("Author should not be you")
	}
}

func TestNewNotificationItem(t *testing.T) {
	ctx := NotificationContext{
		RepoName: "heartwood",
		SelfDID:  aliceDID,
		Issues: map[string]radicle.Issue{
			"aaaa": {ID: "aaaa", Title: "Flaky test", State: radicle.IssueState{Status: "open"}},
		},
		Patches: map[string]radicle.Patch{
			"bbbb": {ID: "bbbb", Title: "Add codec", State: radicle.PatchState{Status: "merged"}},
		},
		Aliases: map[string]string{"z6Mkt3Lq": "bob"},
	}

	tests := []struct {
		name    string
		n       radicle.Notification
		ok      bool
		kind    NotificationKind
		summary string
		status  string
	}{
		{
			name:    "issue",
			n:       radicle.Notification{ID: 1, Ref: "refs/cobs/xyz.radicle.issue/aaaa", New: "c1"},
			ok:      true,
			kind:    KindIssue,
			summary: "Flaky test",
			status:  "open",
		},
		{
			name:    "patch",
			n:       radicle.Notification{ID: 2, Ref: "refs/cobs/xyz.radicle.patch/bbbb", Old: "c1", New: "c2"},
			ok:      true,
			kind:    KindPatch,
			summary: "Add codec",
			status:  "merged",
		},
		{
			name:    "branch create",
			n:       radicle.Notification{ID: 3, Ref: "refs/heads/feature", New: "c3", Remote: "z6Mkt3Lq"},
			ok:      true,
			kind:    KindBranch,
			summary: "feature",
			status:  "created",
		},
		{
			name: "deleted issue is dropped",
			n:    radicle.Notification{ID: 4, Ref: "refs/cobs/xyz.radicle.issue/gone"},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := NewNotificationItem(tt.n, ctx)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if item.Kind != tt.kind || item.Summary != tt.summary || item.Status != tt.status {
				t.Errorf("item = %+v", item)
			}
			if item.RepoName != "heartwood" {
				t.Errorf("RepoName = %q", item.RepoName)
			}
		})
	}
}

func TestNewNotificationItem_ResolvesAlias(t *testing.T) {
	ctx := NotificationContext{
		RepoName: "heartwood",
		Aliases:  map[string]string{"z6Mkt3Lq": "bob"},
	}
	item, ok := NewNotificationItem(radicle.Notification{ID: 1, Ref: "refs/heads/master", New: "c1", Remote: "z6Mkt3Lq"}, ctx)
	if !ok {
		t.Fatal("expected item")
	}
	if item.Author.Alias != "bob" {
		t.Errorf("Author.Alias = %q, want bob", item.Author.Alias)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("aaaa1111bbbb2222"); got != "aaaa111" {
		t.Errorf("ShortID = %q", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID = %q", got)
	}
}

func TestDid(t *testing.T) {
	got := Did(aliceDID)
	if got != "z6MkltTFi…AliC" {
		t.Errorf("Did = %q", got)
	}
	if got := Did("did:key:short"); got != "short" {
		t.Errorf("Did = %q", got)
	}
}

func TestAuthorLabel(t *testing.T) {
	tests := []struct {
		author AuthorItem
		want   string
	}{
		{AuthorItem{Alias: "alice", You: true}, "alice (you)"},
		{AuthorItem{Alias: "bob"}, "bob"},
		{AuthorItem{DID: aliceDID}, "z6MkltTFi…AliC"},
	}
	for _, tt := range tests {
		if got := tt.author.Label(); got != tt.want {
			t.Errorf("Label(%+v) = %q, want %q", tt.author, got, tt.want)
		}
	}
}
