package tui

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/radicle-dev/rad-tui/internal/cob"
	"github.com/radicle-dev/rad-tui/internal/keybinds"
	"github.com/radicle-dev/rad-tui/internal/radicle"
)

// InboxBrowser lists the notifications of a repository. Notifications
// come from the node's local store; issue and patch titles are resolved
// through the API.
type InboxBrowser struct {
	store   *radicle.NotificationStore
	client  *radicle.Client
	rid     string
	selfDID string
	sortBy  radicle.SortBy
	theme   Theme

	mu       sync.RWMutex
	all      []cob.NotificationItem
	filtered []cob.NotificationItem
	filter   cob.NotificationFilter
}

// NewInboxBrowser creates the browser. Items load on the first Load.
func NewInboxBrowser(store *radicle.NotificationStore, client *radicle.Client, rid, selfDID string, sortBy radicle.SortBy, theme Theme) *InboxBrowser {
	return &InboxBrowser{
		store:   store,
		client:  client,
		rid:     rid,
		selfDID: selfDID,
		sortBy:  sortBy,
		theme:   theme,
	}
}

func (b *InboxBrowser) Kind() string              { return "notification" }
func (b *InboxBrowser) Context() keybinds.Context { return keybinds.ContextInbox }
func (b *InboxBrowser) HasPreview() bool          { return false }

// Load reads notifications from the store and resolves the objects they
// reference. Repo metadata, issues and patches are fetched in parallel.
func (b *InboxBrowser) Load(ctx context.Context) error {
	notifications, err := b.store.ByRepo(b.rid, b.sortBy)
	if err != nil {
		return fmt.Errorf("failed to load notifications: %w", err)
	}

	// Each goroutine fills only its own variable; the shared maps are
	// built after Wait.
	var (
		repoName string
		issues   []radicle.Issue
		patches  []radicle.Patch
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		repo, err := b.client.Repo(groupCtx, b.rid)
		if err != nil {
			return err
		}
		repoName = repo.Project.Name
		return nil
	})
	group.Go(func() error {
		var err error
		issues, err = b.client.Issues(groupCtx, b.rid)
		return err
	})
	group.Go(func() error {
		var err error
		patches, err = b.client.Patches(groupCtx, b.rid)
		return err
	})
	if err := group.Wait(); err != nil {
		return fmt.Errorf("failed to resolve notifications: %w", err)
	}

	resolve := cob.NotificationContext{
		RepoName: repoName,
		SelfDID:  b.selfDID,
		Issues:   make(map[string]radicle.Issue, len(issues)),
		Patches:  make(map[string]radicle.Patch, len(patches)),
		Aliases:  make(map[string]string),
	}
	for _, issue := range issues {
		resolve.Issues[issue.ID] = issue
		resolve.Aliases[trimDid(issue.Author.ID)] = issue.Author.Alias
	}
	for _, patch := range patches {
		resolve.Patches[patch.ID] = patch
		resolve.Aliases[trimDid(patch.Author.ID)] = patch.Author.Alias
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = cob.NewNotificationItems(notifications, resolve)
	b.filtered = b.filter.Apply(b.all)
	return nil
}

// trimDid reduces a DID to the bare node id used as remote name in the
// notification store.
func trimDid(did string) string {
	const prefix = "did:key:"
	if len(did) > len(prefix) && did[:len(prefix)] == prefix {
		return did[len(prefix):]
	}
	return did
}

// SetFilter parses and applies a search line. A parse error keeps the
// previous filter.
func (b *InboxBrowser) SetFilter(line string) error {
	filter, err := cob.ParseNotificationFilter(line)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter = filter
	b.filtered = b.filter.Apply(b.all)
	return nil
}

func (b *InboxBrowser) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.filtered)
}

func (b *InboxBrowser) ID(i int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.filtered) {
		return ""
	}
	return fmt.Sprintf("%d", b.filtered[i].ID)
}

func (b *InboxBrowser) Columns() []Column {
	return []Column{
		{Title: "#", Width: 4},
		{Title: " ", Width: 1},
		{Title: "Type", Width: 8},
		{Title: "Summary", Width: 0},
		{Title: "ID", Width: 7},
		{Title: "Status", Width: 8},
		{Title: "Author", Width: 18},
		{Title: "Updated", Width: 13},
	}
}

func (b *InboxBrowser) Row(i int) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.filtered) {
		return nil
	}
	n := b.filtered[i]

	seen := b.theme.Unseen.Render("●")
	if n.Seen {
		seen = b.theme.Seen.Render("○")
	}

	return []string{
		fmt.Sprintf("%d", n.ID),
		seen,
		string(n.Kind),
		n.Summary,
		cob.ShortID(n.KindID),
		b.theme.StateStyle(n.Status).Render(n.Status),
		n.Author.Label(),
		cob.Timestamp(n.Timestamp),
	}
}

// Preview is unused; the inbox is a plain table.
func (b *InboxBrowser) Preview(i int, width int) string {
	return ""
}

// Operation maps keybind actions to the operations `rad inbox` runs.
func (b *InboxBrowser) Operation(action keybinds.Action) (string, bool) {
	switch action {
	case keybinds.ActionSelect:
		return "show", true
	case keybinds.ActionClear:
		return "clear", true
	default:
		return "", false
	}
}
