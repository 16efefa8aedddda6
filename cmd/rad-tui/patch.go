package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/radicle-dev/rad-tui/internal/cli"
)

var patchCmd = &cobra.Command{
	Use:   "patch",
	Short: "Browse the patches of a repository",
}

var patchSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select a patch and an operation to run on it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Select(cli.Options{
			Kind:   "patch",
			Mode:   flagMode,
			Filter: patchFilterLine(),
			Repo:   flagRepo,
		})
	},
}

var patchListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the patches as a table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.List(cli.Options{
			Kind:   "patch",
			Filter: patchFilterLine(),
			Repo:   flagRepo,
		})
	},
}

// Patch filter flags.
var (
	patchAll      bool
	patchOpen     bool
	patchDraft    bool
	patchMerged   bool
	patchArchived bool
	patchAuthored bool
	patchAuthors  []string
)

// patchFilterLine translates flags into a search line. Patches are open
// by default; --all clears the state filter.
func patchFilterLine() string {
	var tokens []string
	switch {
	case patchAll:
	case patchDraft:
		tokens = append(tokens, "is:draft")
	case patchMerged:
		tokens = append(tokens, "is:merged")
	case patchArchived:
		tokens = append(tokens, "is:archived")
	default:
		tokens = append(tokens, "is:open")
	}
	if patchAuthored {
		tokens = append(tokens, "is:authored")
	}
	if len(patchAuthors) > 0 {
		tokens = append(tokens, "authors:["+strings.Join(patchAuthors, ",")+"]")
	}
	return strings.Join(tokens, " ")
}

func init() {
	for _, cmd := range []*cobra.Command{patchSelectCmd, patchListCmd} {
		cmd.Flags().BoolVar(&patchAll, "all", false, "Show patches in any state")
		cmd.Flags().BoolVar(&patchOpen, "open", false, "Show open patches (default)")
		cmd.Flags().BoolVar(&patchDraft, "draft", false, "Show draft patches")
		cmd.Flags().BoolVar(&patchMerged, "merged", false, "Show merged patches")
		cmd.Flags().BoolVar(&patchArchived, "archived", false, "Show archived patches")
		cmd.Flags().BoolVar(&patchAuthored, "authored", false, "Show patches you authored")
		cmd.Flags().StringArrayVar(&patchAuthors, "author", nil, "Show patches by author DID, can be repeated")
	}

	patchCmd.AddCommand(patchSelectCmd)
	patchCmd.AddCommand(patchListCmd)
}
