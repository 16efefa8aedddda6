package cob

import (
	"testing"
)

const (
	aliceDID = "did:key:z6MkltTFiW4hBuYiGb4nZbVW5nuSC8jK6qDpvtJcCNm1AliC"
	bobDID   = "did:key:z6Mkt3LqbbgBbG6GRT1Ls4Re9b7epprVQrqBCF8tAWUMBob9"
)

func testIssues() []IssueItem {
	return []IssueItem{
		{ID: "a1", State: IssueOpen, Title: "Flaky test on CI", Author: AuthorItem{DID: aliceDID, Alias: "alice", You: true}},
		{ID: "a2", State: IssueSolved, Title: "Panic on empty input", Author: AuthorItem{DID: bobDID, Alias: "bob"}},
		{ID: "a3", State: IssueClosed, Title: "Wrong color in footer", Author: AuthorItem{DID: bobDID, Alias: "bob"},
			Assignees: []AuthorItem{{DID: aliceDID, Alias: "alice", You: true}}},
	}
}

func TestParseIssueFilter(t *testing.T) {
	filter, err := ParseIssueFilter("is:solved is:authored flaky test")
	if err != nil {
		t.Fatalf("ParseIssueFilter() error: %v", err)
	}
	if filter.State == nil || *filter.State != IssueSolved {
		t.Errorf("State = %v, want solved", filter.State)
	}
	if !filter.Authored {
		t.Error("Authored not set")
	}
	if filter.Search != "flaky test" {
		t.Errorf("Search = %q", filter.Search)
	}
}

func TestParseIssueFilter_DidLists(t *testing.T) {
	filter, err := ParseIssueFilter("authors:[" + aliceDID + "," + bobDID + "] assignees:[" + aliceDID + "]")
	if err != nil {
		t.Fatalf("ParseIssueFilter() error: %v", err)
	}
	if len(filter.Authors) != 2 {
		t.Errorf("Authors = %v", filter.Authors)
	}
	if len(filter.Assignees) != 1 {
		t.Errorf("Assignees = %v", filter.Assignees)
	}
}

func TestParseIssueFilter_MalformedList(t *testing.T) {
	if _, err := ParseIssueFilter("authors:" + aliceDID); err == nil {
		t.Error("Expected error for missing brackets")
	}
}

func TestIssueFilter_MatchesState(t *testing.T) {
	issues := testIssues()

	filter, _ := ParseIssueFilter("is:open")
	if got := filter.Apply(issues); len(got) != 1 || got[0].ID != "a1" {
		t.Errorf("is:open = %+v", got)
	}

	// is:closed accepts any close reason, including solved.
	filter, _ = ParseIssueFilter("is:closed")
	if got := filter.Apply(issues); len(got) != 2 {
		t.Errorf("is:closed matched %d, want 2", len(got))
	}

	filter, _ = ParseIssueFilter("is:solved")
	if got := filter.Apply(issues); len(got) != 1 || got[0].ID != "a2" {
		t.Errorf("is:solved = %+v", got)
	}
}

func TestIssueFilter_MatchesInvolvement(t *testing.T) {
	issues := testIssues()

	filter, _ := ParseIssueFilter("is:authored")
	if got := filter.Apply(issues); len(got) != 1 || got[0].ID != "a1" {
		t.Errorf("is:authored = %+v", got)
	}

	filter, _ = ParseIssueFilter("is:assigned")
	if got := filter.Apply(issues); len(got) != 1 || got[0].ID != "a3" {
		t.Errorf("is:assigned = %+v", got)
	}

	filter, _ = ParseIssueFilter("authors:[" + bobDID + "]")
	if got := filter.Apply(issues); len(got) != 2 {
		t.Errorf("authors = %+v", got)
	}
}

func TestIssueFilter_FuzzySearch(t *testing.T) {
	issues := testIssues()

	filter, _ := ParseIssueFilter("flky")
	got := filter.Apply(issues)
	if len(got) != 1 || got[0].ID != "a1" {
		t.Errorf("fuzzy search = %+v", got)
	}

	// Empty search matches everything.
	filter, _ = ParseIssueFilter("")
	if got := filter.Apply(issues); len(got) != 3 {
		t.Errorf("empty search matched %d, want 3", len(got))
	}
}

func TestIssueFilter_RoundTrip(t *testing.T) {
	tests := []string{
		"is:open",
		"is:solved is:authored",
		"is:open is:assigned authors:[" + aliceDID + "] footer",
		"assignees:[" + bobDID + "]",
	}
	for _, line := range tests {
		filter, err := ParseIssueFilter(line)
		if err != nil {
			t.Fatalf("ParseIssueFilter(%q) error: %v", line, err)
		}
		if got := filter.String(); got != line {
			t.Errorf("round trip %q -> %q", line, got)
		}
	}
}

func TestParsePatchFilter(t *testing.T) {
	filter, err := ParsePatchFilter("is:merged authors:[" + aliceDID + "] codec")
	if err != nil {
		t.Fatalf("ParsePatchFilter() error: %v", err)
	}
	if filter.State == nil || *filter.State != PatchMerged {
		t.Errorf("State = %v", filter.State)
	}
	if len(filter.Authors) != 1 || filter.Search != "codec" {
		t.Errorf("filter = %+v", filter)
	}
}

func TestPatchFilter_Matches(t *testing.T) {
	patches := []PatchItem{
		{ID: "p1", State: PatchOpen, Title: "Add codec", Author: AuthorItem{DID: aliceDID, You: true}},
		{ID: "p2", State: PatchDraft, Title: "WIP refactor", Author: AuthorItem{DID: bobDID}},
		{ID: "p3", State: PatchMerged, Title: "Fix codec", Author: AuthorItem{DID: bobDID}},
	}

	filter, _ := ParsePatchFilter("is:draft")
	if got := filter.Apply(patches); len(got) != 1 || got[0].ID != "p2" {
		t.Errorf("is:draft = %+v", got)
	}

	filter, _ = ParsePatchFilter("is:authored")
	if got := filter.Apply(patches); len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("is:authored = %+v", got)
	}

	filter, _ = ParsePatchFilter("codec")
	if got := filter.Apply(patches); len(got) != 2 {
		t.Errorf("search matched %d, want 2", len(got))
	}
}

func TestParseNotificationFilter(t *testing.T) {
	filter, err := ParseNotificationFilter("is:unseen is:patch")
	if err != nil {
		t.Fatalf("ParseNotificationFilter() error: %v", err)
	}
	if filter.Seen == nil || *filter.Seen {
		t.Errorf("Seen = %v, want unseen", filter.Seen)
	}
	if filter.Kind == nil || *filter.Kind != KindPatch {
		t.Errorf("Kind = %v", filter.Kind)
	}
}

func TestNotificationFilter_Matches(t *testing.T) {
	items := []NotificationItem{
		{ID: 1, Seen: false, Kind: KindIssue, Summary: "Flaky test"},
		{ID: 2, Seen: true, Kind: KindPatch, Summary: "Add codec"},
		{ID: 3, Seen: false, Kind: KindBranch, Summary: "master"},
	}

	filter, _ := ParseNotificationFilter("is:unseen")
	if got := filter.Apply(items); len(got) != 2 {
		t.Errorf("is:unseen matched %d, want 2", len(got))
	}

	filter, _ = ParseNotificationFilter("is:patch")
	if got := filter.Apply(items); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("is:patch = %+v", got)
	}

	filter, _ = ParseNotificationFilter("is:unseen is:branch")
	if got := filter.Apply(items); len(got) != 1 || got[0].ID != 3 {
		t.Errorf("combined = %+v", got)
	}
}

func TestNotificationFilter_RoundTrip(t *testing.T) {
	line := "is:unseen is:issue"
	filter, err := ParseNotificationFilter(line)
	if err != nil {
		t.Fatalf("ParseNotificationFilter() error: %v", err)
	}
	if got := filter.String(); got != line {
		t.Errorf("round trip %q -> %q", line, got)
	}
}
