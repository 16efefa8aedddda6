package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/radicle-dev/rad-tui/internal/cob"
	"github.com/radicle-dev/rad-tui/internal/keybinds"
	"github.com/radicle-dev/rad-tui/internal/radicle"
)

// IssueBrowser lists the issues of a repository with a discussion
// preview.
type IssueBrowser struct {
	client  *radicle.Client
	rid     string
	selfDID string
	theme   Theme

	mu       sync.RWMutex
	all      []cob.IssueItem
	filtered []cob.IssueItem
	filter   cob.IssueFilter
}

// NewIssueBrowser creates the browser. Items load on the first Load.
func NewIssueBrowser(client *radicle.Client, rid, selfDID string, theme Theme) *IssueBrowser {
	return &IssueBrowser{
		client:  client,
		rid:     rid,
		selfDID: selfDID,
		theme:   theme,
	}
}

func (b *IssueBrowser) Kind() string              { return "issue" }
func (b *IssueBrowser) Context() keybinds.Context { return keybinds.ContextIssues }
func (b *IssueBrowser) HasPreview() bool          { return true }

// Load fetches all issues from the node.
func (b *IssueBrowser) Load(ctx context.Context) error {
	issues, err := b.client.Issues(ctx, b.rid)
	if err != nil {
		return fmt.Errorf("failed to load issues: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = cob.NewIssueItems(issues, b.selfDID)
	b.filtered = b.filter.Apply(b.all)
	return nil
}

// SetFilter parses and applies a search line. A parse error keeps the
// previous filter.
func (b *IssueBrowser) SetFilter(line string) error {
	filter, err := cob.ParseIssueFilter(line)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter = filter
	b.filtered = b.filter.Apply(b.all)
	return nil
}

func (b *IssueBrowser) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.filtered)
}

func (b *IssueBrowser) ID(i int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.filtered) {
		return ""
	}
	return b.filtered[i].ID
}

func (b *IssueBrowser) Columns() []Column {
	return []Column{
		{Title: "●", Width: 1},
		{Title: "ID", Width: 7},
		{Title: "Title", Width: 0},
		{Title: "Author", Width: 18},
		{Title: "Labels", Width: 14},
		{Title: "Assignees", Width: 18},
		{Title: "Opened", Width: 13},
	}
}

func (b *IssueBrowser) Row(i int) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.filtered) {
		return nil
	}
	issue := b.filtered[i]

	return []string{
		b.theme.StateStyle(string(issue.State)).Render("●"),
		cob.ShortID(issue.ID),
		issue.Title,
		issue.Author.Label(),
		cob.Labels(issue.Labels),
		cob.Authors(issue.Assignees),
		cob.Timestamp(issue.Timestamp),
	}
}

// Preview renders the issue details and its discussion thread.
func (b *IssueBrowser) Preview(i int, width int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.filtered) {
		return ""
	}
	issue := b.filtered[i]

	var sb strings.Builder
	sb.WriteString(b.theme.Title.Render(issue.Title))
	sb.WriteString("\n\n")

	field := func(name, value string) {
		if value == "" {
			return
		}
		sb.WriteString(b.theme.Subtle.Render(name+" ") + value + "\n")
	}
	field("ID       ", cob.ShortID(issue.ID))
	field("Author   ", issue.Author.Label())
	field("State    ", b.theme.StateStyle(string(issue.State)).Render(string(issue.State)))
	field("Labels   ", cob.Labels(issue.Labels))
	field("Assignees", cob.Authors(issue.Assignees))
	field("Opened   ", cob.Timestamp(issue.Timestamp))

	if description := issue.Description(); description != "" {
		sb.WriteString("\n" + description + "\n")
	}

	for _, reply := range issue.Replies() {
		sb.WriteString("\n")
		header := reply.Author.Label() + " · " + cob.Timestamp(reply.Timestamp)
		sb.WriteString(b.theme.Subtle.Render(header) + "\n")
		sb.WriteString(reply.Body + "\n")
		if len(reply.Reactions) > 0 {
			sb.WriteString(b.theme.Subtle.Render(strings.Join(reply.Reactions, " ")) + "\n")
		}
	}

	return sb.String()
}

// Operation maps keybind actions to the operations `rad issue` runs.
func (b *IssueBrowser) Operation(action keybinds.Action) (string, bool) {
	switch action {
	case keybinds.ActionSelect:
		return "show", true
	case keybinds.ActionEdit:
		return "edit", true
	default:
		return "", false
	}
}
