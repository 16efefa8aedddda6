package tui

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"

	"github.com/radicle-dev/rad-tui/internal/radicle"
)

// UnifiedDiff renders a structured diff back into unified diff text,
// the form both reviewers and the highlighter understand.
func UnifiedDiff(diff radicle.Diff) string {
	var sb strings.Builder

	for _, file := range diff.Files {
		oldPath := file.OldPath
		if oldPath == "" {
			oldPath = file.Path
		}
		switch file.Status {
		case "added":
			fmt.Fprintf(&sb, "--- /dev/null\n+++ b/%s\n", file.Path)
		case "deleted":
			fmt.Fprintf(&sb, "--- a/%s\n+++ /dev/null\n", oldPath)
		default:
			fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", oldPath, file.Path)
		}

		for _, hunk := range file.Hunks {
			sb.WriteString(hunk.Header)
			if !strings.HasSuffix(hunk.Header, "\n") {
				sb.WriteByte('\n')
			}
			for _, line := range hunk.Lines {
				switch line.Type {
				case radicle.DiffAddition:
					sb.WriteByte('+')
				case radicle.DiffDeletion:
					sb.WriteByte('-')
				default:
					sb.WriteByte(' ')
				}
				sb.WriteString(line.Line)
				if !strings.HasSuffix(line.Line, "\n") {
					sb.WriteByte('\n')
				}
			}
		}
	}

	return sb.String()
}

// HighlightDiff renders a diff with syntax highlighting. Falls back to
// the plain text when the highlighter fails.
func HighlightDiff(diff radicle.Diff) string {
	text := UnifiedDiff(diff)
	if text == "" {
		return ""
	}

	style := "monokai"
	if !termenv.HasDarkBackground() {
		style = "github"
	}

	var buffer strings.Builder
	if err := quick.Highlight(&buffer, text, "diff", "terminal256", style); err != nil {
		return text
	}
	return buffer.String()
}

// DiffStatLine summarizes a diff for a footer or preview header.
func DiffStatLine(stats radicle.DiffStats) string {
	return fmt.Sprintf("+%d -%d", stats.Insertions, stats.Deletions)
}
