package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/radicle-dev/rad-tui/internal/cob"
	"github.com/radicle-dev/rad-tui/internal/keybinds"
	"github.com/radicle-dev/rad-tui/internal/radicle"
)

// diffFetchLimit bounds concurrent diff requests against the local
// httpd during a reload.
const diffFetchLimit = 4

// PatchBrowser lists the patches of a repository with a diff preview.
type PatchBrowser struct {
	client  *radicle.Client
	rid     string
	selfDID string
	theme   Theme

	mu       sync.RWMutex
	all      []cob.PatchItem
	filtered []cob.PatchItem
	filter   cob.PatchFilter
	diffs    map[string]radicle.Diff // patch id -> latest revision diff
}

// NewPatchBrowser creates the browser. Items load on the first Load.
func NewPatchBrowser(client *radicle.Client, rid, selfDID string, theme Theme) *PatchBrowser {
	return &PatchBrowser{
		client:  client,
		rid:     rid,
		selfDID: selfDID,
		theme:   theme,
		diffs:   make(map[string]radicle.Diff),
	}
}

func (b *PatchBrowser) Kind() string              { return "patch" }
func (b *PatchBrowser) Context() keybinds.Context { return keybinds.ContextPatches }
func (b *PatchBrowser) HasPreview() bool          { return true }

// Load fetches all patches, then their latest-revision diffs in
// parallel for the stat columns and the preview.
func (b *PatchBrowser) Load(ctx context.Context) error {
	patches, err := b.client.Patches(ctx, b.rid)
	if err != nil {
		return fmt.Errorf("failed to load patches: %w", err)
	}

	items := cob.NewPatchItems(patches, b.selfDID)
	diffs := make(map[string]radicle.Diff, len(items))

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(diffFetchLimit)

	for i := range items {
		item := &items[i]
		if item.Base == "" || item.Head == "" {
			continue
		}
		group.Go(func() error {
			diff, err := b.client.Diff(groupCtx, b.rid, item.Base, item.Head)
			if err != nil {
				// A patch whose commits were pruned just loses
				// its stats; the list stays usable.
				return nil
			}
			item.Added = diff.Stats.Insertions
			item.Removed = diff.Stats.Deletions
			mu.Lock()
			diffs[item.ID] = *diff
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = items
	b.diffs = diffs
	b.filtered = b.filter.Apply(b.all)
	return nil
}

// SetFilter parses and applies a search line. A parse error keeps the
// previous filter.
func (b *PatchBrowser) SetFilter(line string) error {
	filter, err := cob.ParsePatchFilter(line)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter = filter
	b.filtered = b.filter.Apply(b.all)
	return nil
}

func (b *PatchBrowser) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.filtered)
}

func (b *PatchBrowser) ID(i int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.filtered) {
		return ""
	}
	return b.filtered[i].ID
}

func (b *PatchBrowser) Columns() []Column {
	return []Column{
		{Title: "●", Width: 1},
		{Title: "ID", Width: 7},
		{Title: "Title", Width: 0},
		{Title: "Author", Width: 18},
		{Title: "Head", Width: 7},
		{Title: "+", Width: 5},
		{Title: "-", Width: 5},
		{Title: "Updated", Width: 13},
	}
}

func (b *PatchBrowser) Row(i int) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.filtered) {
		return nil
	}
	patch := b.filtered[i]

	return []string{
		b.theme.StateStyle(string(patch.State)).Render("●"),
		cob.ShortID(patch.ID),
		patch.Title,
		patch.Author.Label(),
		cob.ShortID(patch.Head),
		b.theme.Open.Render(fmt.Sprintf("+%d", patch.Added)),
		b.theme.Closed.Render(fmt.Sprintf("-%d", patch.Removed)),
		cob.Timestamp(patch.Timestamp),
	}
}

// Preview renders the patch details and the highlighted diff of its
// latest revision.
func (b *PatchBrowser) Preview(i int, width int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.filtered) {
		return ""
	}
	patch := b.filtered[i]

	var sb strings.Builder
	sb.WriteString(b.theme.Title.Render(patch.Title))
	sb.WriteString("\n\n")

	field := func(name, value string) {
		if value == "" {
			return
		}
		sb.WriteString(b.theme.Subtle.Render(name+" ") + value + "\n")
	}
	field("ID     ", cob.ShortID(patch.ID))
	field("Author ", patch.Author.Label())
	field("State  ", b.theme.StateStyle(string(patch.State)).Render(string(patch.State)))
	field("Commits", cob.ShortID(patch.Base)+".."+cob.ShortID(patch.Head))
	field("Updated", cob.Timestamp(patch.Timestamp))

	if patch.Description != "" {
		sb.WriteString("\n" + patch.Description + "\n")
	}

	if diff, ok := b.diffs[patch.ID]; ok {
		sb.WriteString("\n" + b.theme.Subtle.Render(DiffStatLine(diff.Stats)) + "\n\n")
		sb.WriteString(HighlightDiff(diff))
	}

	return sb.String()
}

// Operation maps keybind actions to the operations `rad patch` runs.
func (b *PatchBrowser) Operation(action keybinds.Action) (string, bool) {
	switch action {
	case keybinds.ActionSelect:
		return "show", true
	case keybinds.ActionEdit:
		return "edit", true
	case keybinds.ActionCheckout:
		return "checkout", true
	case keybinds.ActionComment:
		return "comment", true
	case keybinds.ActionDelete:
		return "delete", true
	default:
		return "", false
	}
}
