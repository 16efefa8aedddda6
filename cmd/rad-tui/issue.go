package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/radicle-dev/rad-tui/internal/cli"
)

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Browse the issues of a repository",
}

var issueSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select an issue and an operation to run on it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Select(cli.Options{
			Kind:   "issue",
			Mode:   flagMode,
			Filter: issueFilterLine(),
			Repo:   flagRepo,
		})
	},
}

var issueListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the issues as a table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.List(cli.Options{
			Kind:   "issue",
			Filter: issueFilterLine(),
			Repo:   flagRepo,
		})
	},
}

// Issue filter flags. They translate into the search line grammar so
// the browser shows and edits the active filter.
var (
	issueAll      bool
	issueOpen     bool
	issueClosed   bool
	issueSolved   bool
	issueAssigned string
)

// issueFilterLine translates flags into a search line. Issues are open
// by default; --all clears the state filter.
func issueFilterLine() string {
	var tokens []string
	switch {
	case issueAll:
	case issueClosed:
		tokens = append(tokens, "is:closed")
	case issueSolved:
		tokens = append(tokens, "is:solved")
	default:
		tokens = append(tokens, "is:open")
	}
	switch issueAssigned {
	case "":
	case "me":
		tokens = append(tokens, "is:assigned")
	default:
		tokens = append(tokens, "assignees:["+issueAssigned+"]")
	}
	return strings.Join(tokens, " ")
}

func init() {
	for _, cmd := range []*cobra.Command{issueSelectCmd, issueListCmd} {
		cmd.Flags().BoolVar(&issueAll, "all", false, "Show issues in any state")
		cmd.Flags().BoolVar(&issueOpen, "open", false, "Show open issues (default)")
		cmd.Flags().BoolVar(&issueClosed, "closed", false, "Show closed issues")
		cmd.Flags().BoolVar(&issueSolved, "solved", false, "Show solved issues")
		cmd.Flags().StringVar(&issueAssigned, "assigned", "", "Show issues assigned to a DID, or to you without a value")
		cmd.Flags().Lookup("assigned").NoOptDefVal = "me"
	}

	issueCmd.AddCommand(issueSelectCmd)
	issueCmd.AddCommand(issueListCmd)
}
