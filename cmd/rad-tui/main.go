package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rad-tui <command>",
	Short: "Terminal interfaces for Radicle",
	Long: `rad-tui provides the terminal interfaces used by the rad CLI to browse
and select collaborative objects: issues, patches and inbox notifications.

A browser never mutates anything. It prints a JSON selection to stderr on
exit and the invoking command performs the chosen operation:

  {"operation":"show","ids":["f1f0d3e"],"args":[]}

Run it from inside a Radicle working copy, or pass --repo. The issue and
patch browsers read from the local radicle-httpd API; the inbox reads the
node's notification store.

Examples:
  rad-tui issue select                 # Browse issues, return an operation
  rad-tui issue select --mode id       # Return only the selected id
  rad-tui patch select --merged        # Browse merged patches
  rad-tui patch list --author <did>    # Non-interactive listing
  rad-tui inbox select --sort-by id    # Browse notifications`,
	Version:      version,
	SilenceUsage: true,
}

// Flags shared by all select/list commands.
var (
	flagMode string
	flagRepo string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "operation", "Selection mode (operation/id)")
	rootCmd.PersistentFlags().StringVar(&flagRepo, "repo", "", "Repository id (defaults to the working copy)")

	rootCmd.AddCommand(issueCmd)
	rootCmd.AddCommand(patchCmd)
	rootCmd.AddCommand(inboxCmd)
}
