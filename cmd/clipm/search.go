// Search command: full-text search over the history.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/idavidov/clipm/internal/render"
)

var (
	searchLimit int
	searchDays  int
	searchType  string
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Full-text search clipboard history",
	Long: `Search matches the query against the full-text index, best match
first. Password entries match only on their label, never their content.

Example:
  clipm search invoice
  clipm search token --type password
  clipm search "error log" --days 3`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of results")
	searchCmd.Flags().IntVarP(&searchDays, "days", "d", 0, "only entries from the last N days")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "", "only entries of this content type")
}

func runSearch(cmd *cobra.Command, args []string) error {
	filter, err := filterFrom(cmd, "", searchDays, searchType)
	if err != nil {
		return err
	}

	svc, closeStore, err := openService()
	if err != nil {
		return err
	}
	defer closeStore()

	entries, err := svc.Search(args[0], searchLimit, filter)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("No results for %q.\n", args[0])
		return nil
	}

	render.Table(os.Stdout, entries)
	return nil
}
