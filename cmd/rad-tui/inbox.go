package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radicle-dev/rad-tui/internal/cli"
	"github.com/radicle-dev/rad-tui/internal/radicle"
)

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Browse the notifications of a repository",
}

var inboxSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select a notification and an operation to run on it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sortBy, err := inboxSortBy(cmd.Flags().Changed("sort-by"))
		if err != nil {
			return err
		}
		return cli.Select(cli.Options{
			Kind:   "inbox",
			Mode:   flagMode,
			Repo:   flagRepo,
			SortBy: sortBy,
		})
	},
}

var inboxListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the notifications as a table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sortBy, err := inboxSortBy(cmd.Flags().Changed("sort-by"))
		if err != nil {
			return err
		}
		return cli.List(cli.Options{
			Kind:   "inbox",
			Repo:   flagRepo,
			SortBy: sortBy,
		})
	},
}

// Inbox ordering flags.
var (
	inboxSortField string
	inboxReverse   bool
)

// inboxSortBy translates the ordering flags. Without flags the inbox
// shows the newest notifications first; an explicit --sort-by orders
// ascending unless --reverse is given.
func inboxSortBy(sortFieldSet bool) (radicle.SortBy, error) {
	switch inboxSortField {
	case "timestamp", "id":
	default:
		return radicle.SortBy{}, fmt.Errorf("unknown sort field %q", inboxSortField)
	}

	if !sortFieldSet {
		sortBy := radicle.DefaultSortBy()
		if inboxReverse {
			sortBy.Reverse = !sortBy.Reverse
		}
		return sortBy, nil
	}
	return radicle.SortBy{Field: inboxSortField, Reverse: inboxReverse}, nil
}

func init() {
	for _, cmd := range []*cobra.Command{inboxSelectCmd, inboxListCmd} {
		cmd.Flags().StringVar(&inboxSortField, "sort-by", "timestamp", "Sort field (timestamp/id)")
		cmd.Flags().BoolVar(&inboxReverse, "reverse", false, "Reverse the sort order")
	}

	inboxCmd.AddCommand(inboxSelectCmd)
	inboxCmd.AddCommand(inboxListCmd)
}
