package cob

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// The search line grammar shared by all browsers:
//
//	is:<state> | is:authored | is:assigned | authors:[<did>,…] |
//	assignees:[<did>,…] | <free text>
//
// Tokens are whitespace-separated; free text tokens are collected and
// matched fuzzily against item titles. CLI flags are translated into the
// same grammar so the TUI always shows the active filter in its search
// line.

// parseDidList parses a `prefix:[a,b,c]` token. Returns ok=false when the
// token doesn't carry the prefix at all, an error when it does but the
// list is malformed.
func parseDidList(token, prefix string) ([]string, bool, error) {
	rest, found := strings.CutPrefix(token, prefix+":")
	if !found {
		return nil, false, nil
	}
	if !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") {
		return nil, true, fmt.Errorf("expected %s:[<did>,…], got %q", prefix, token)
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(rest, "["), "]")
	if inner == "" {
		return nil, true, nil
	}

	var dids []string
	for _, did := range strings.Split(inner, ",") {
		did = strings.TrimSpace(did)
		if did == "" {
			continue
		}
		dids = append(dids, did)
	}
	return dids, true, nil
}

// fuzzyMatches reports whether the search matches the title. An empty
// search matches everything.
func fuzzyMatches(search, title string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	return len(fuzzy.Find(search, []string{title})) > 0
}

// formatDidList renders a DID list token for a search line.
func formatDidList(prefix string, dids []string) string {
	return prefix + ":[" + strings.Join(dids, ",") + "]"
}

// IssueFilter selects issues by state, involvement and title.
type IssueFilter struct {
	State     *IssueState
	Authored  bool
	Authors   []string
	Assigned  bool
	Assignees []string
	Search    string
}

// ParseIssueFilter parses a search line into an issue filter. Unknown
// `is:` tokens are treated as free text, matching the original grammar's
// permissiveness.
func ParseIssueFilter(value string) (IssueFilter, error) {
	var filter IssueFilter
	var search []string

	for _, token := range strings.Fields(value) {
		switch token {
		case "is:open":
			state := IssueOpen
			filter.State = &state
		case "is:closed":
			state := IssueClosed
			filter.State = &state
		case "is:solved":
			state := IssueSolved
			filter.State = &state
		case "is:authored":
			filter.Authored = true
		case "is:assigned":
			filter.Assigned = true
		default:
			if dids, ok, err := parseDidList(token, "authors"); ok {
				if err != nil {
					return filter, err
				}
				filter.Authors = append(filter.Authors, dids...)
			} else if dids, ok, err := parseDidList(token, "assignees"); ok {
				if err != nil {
					return filter, err
				}
				filter.Assignees = append(filter.Assignees, dids...)
			} else {
				search = append(search, token)
			}
		}
	}

	filter.Search = strings.Join(search, " ")
	return filter, nil
}

// Matches applies the filter to an item.
func (f *IssueFilter) Matches(issue *IssueItem) bool {
	if f.State != nil {
		// `is:closed` means closed for any reason.
		if *f.State == IssueClosed {
			if issue.State == IssueOpen {
				return false
			}
		} else if issue.State != *f.State {
			return false
		}
	}
	if f.Authored && !issue.Author.You {
		return false
	}
	if len(f.Authors) > 0 && !issue.Author.matchesAny(f.Authors) {
		return false
	}
	if f.Assigned {
		assigned := false
		for _, assignee := range issue.Assignees {
			if assignee.You {
				assigned = true
				break
			}
		}
		if !assigned {
			return false
		}
	}
	if len(f.Assignees) > 0 {
		found := false
		for _, assignee := range issue.Assignees {
			if assignee.matchesAny(f.Assignees) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return fuzzyMatches(f.Search, issue.Title)
}

// String renders the filter back into the search line grammar.
func (f *IssueFilter) String() string {
	var tokens []string
	if f.State != nil {
		tokens = append(tokens, "is:"+string(*f.State))
	}
	if f.Authored {
		tokens = append(tokens, "is:authored")
	}
	if f.Assigned {
		tokens = append(tokens, "is:assigned")
	}
	if len(f.Authors) > 0 {
		tokens = append(tokens, formatDidList("authors", f.Authors))
	}
	if len(f.Assignees) > 0 {
		tokens = append(tokens, formatDidList("assignees", f.Assignees))
	}
	if f.Search != "" {
		tokens = append(tokens, f.Search)
	}
	return strings.Join(tokens, " ")
}

// Apply returns the items accepted by the filter.
func (f *IssueFilter) Apply(items []IssueItem) []IssueItem {
	var filtered []IssueItem
	for i := range items {
		if f.Matches(&items[i]) {
			filtered = append(filtered, items[i])
		}
	}
	return filtered
}

// PatchFilter selects patches by state, authorship and title.
type PatchFilter struct {
	State    *PatchState
	Authored bool
	Authors  []string
	Search   string
}

// ParsePatchFilter parses a search line into a patch filter.
func ParsePatchFilter(value string) (PatchFilter, error) {
	var filter PatchFilter
	var search []string

	for _, token := range strings.Fields(value) {
		switch token {
		case "is:draft":
			state := PatchDraft
			filter.State = &state
		case "is:open":
			state := PatchOpen
			filter.State = &state
		case "is:merged":
			state := PatchMerged
			filter.State = &state
		case "is:archived":
			state := PatchArchived
			filter.State = &state
		case "is:authored":
			filter.Authored = true
		default:
			if dids, ok, err := parseDidList(token, "authors"); ok {
				if err != nil {
					return filter, err
				}
				filter.Authors = append(filter.Authors, dids...)
			} else {
				search = append(search, token)
			}
		}
	}

	filter.Search = strings.Join(search, " ")
	return filter, nil
}

// Matches applies the filter to an item.
func (f *PatchFilter) Matches(patch *PatchItem) bool {
	if f.State != nil && patch.State != *f.State {
		return false
	}
	if f.Authored && !patch.Author.You {
		return false
	}
	if len(f.Authors) > 0 && !patch.Author.matchesAny(f.Authors) {
		return false
	}
	return fuzzyMatches(f.Search, patch.Title)
}

// String renders the filter back into the search line grammar.
func (f *PatchFilter) String() string {
	var tokens []string
	if f.State != nil {
		tokens = append(tokens, "is:"+string(*f.State))
	}
	if f.Authored {
		tokens = append(tokens, "is:authored")
	}
	if len(f.Authors) > 0 {
		tokens = append(tokens, formatDidList("authors", f.Authors))
	}
	if f.Search != "" {
		tokens = append(tokens, f.Search)
	}
	return strings.Join(tokens, " ")
}

// Apply returns the items accepted by the filter.
func (f *PatchFilter) Apply(items []PatchItem) []PatchItem {
	var filtered []PatchItem
	for i := range items {
		if f.Matches(&items[i]) {
			filtered = append(filtered, items[i])
		}
	}
	return filtered
}

// NotificationFilter selects inbox entries by seen-state, kind and summary.
type NotificationFilter struct {
	Seen    *bool
	Kind    *NotificationKind
	Authors []string
	Search  string
}

// ParseNotificationFilter parses a search line into an inbox filter.
func ParseNotificationFilter(value string) (NotificationFilter, error) {
	var filter NotificationFilter
	var search []string

	seen := func(v bool) *bool { return &v }
	kind := func(k NotificationKind) *NotificationKind { return &k }

	for _, token := range strings.Fields(value) {
		switch token {
		case "is:seen":
			filter.Seen = seen(true)
		case "is:unseen":
			filter.Seen = seen(false)
		case "is:issue":
			filter.Kind = kind(KindIssue)
		case "is:patch":
			filter.Kind = kind(KindPatch)
		case "is:branch":
			filter.Kind = kind(KindBranch)
		default:
			if dids, ok, err := parseDidList(token, "authors"); ok {
				if err != nil {
					return filter, err
				}
				filter.Authors = append(filter.Authors, dids...)
			} else {
				search = append(search, token)
			}
		}
	}

	filter.Search = strings.Join(search, " ")
	return filter, nil
}

// Matches applies the filter to an item.
func (f *NotificationFilter) Matches(n *NotificationItem) bool {
	if f.Seen != nil && n.Seen != *f.Seen {
		return false
	}
	if f.Kind != nil && n.Kind != *f.Kind {
		return false
	}
	if len(f.Authors) > 0 && !n.Author.matchesAny(f.Authors) {
		return false
	}
	return fuzzyMatches(f.Search, n.Summary)
}

// String renders the filter back into the search line grammar.
func (f *NotificationFilter) String() string {
	var tokens []string
	if f.Seen != nil {
		if *f.Seen {
			tokens = append(tokens, "is:seen")
		} else {
			tokens = append(tokens, "is:unseen")
		}
	}
	if f.Kind != nil {
		tokens = append(tokens, "is:"+string(*f.Kind))
	}
	if len(f.Authors) > 0 {
		tokens = append(tokens, formatDidList("authors", f.Authors))
	}
	if f.Search != "" {
		tokens = append(tokens, f.Search)
	}
	return strings.Join(tokens, " ")
}

// Apply returns the items accepted by the filter.
func (f *NotificationFilter) Apply(items []NotificationItem) []NotificationItem {
	var filtered []NotificationItem
	for i := range items {
		if f.Matches(&items[i]) {
			filtered = append(filtered, items[i])
		}
	}
	return filtered
}
