// List command: show clipboard history as a table.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/idavidov/clipm/internal/render"
)

var (
	listLimit  int
	listOffset int
	listLabel  string
	listDays   int
	listType   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show clipboard history as a table",
	Long: `List shows history entries newest first. Filters are optional and
combine with AND.

Example:
  clipm list
  clipm list --limit 50 --offset 50
  clipm list --label snippet --days 7 --type text`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "maximum number of entries to show")
	listCmd.Flags().IntVarP(&listOffset, "offset", "o", 0, "number of entries to skip")
	listCmd.Flags().StringVarP(&listLabel, "label", "l", "", "only entries with this label")
	listCmd.Flags().IntVarP(&listDays, "days", "d", 0, "only entries from the last N days")
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "only entries of this content type")
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := filterFrom(cmd, listLabel, listDays, listType)
	if err != nil {
		return err
	}

	svc, closeStore, err := openService()
	if err != nil {
		return err
	}
	defer closeStore()

	entries, err := svc.List(listLimit, listOffset, filter)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No entries in clipboard history.")
		return nil
	}

	render.Table(os.Stdout, entries)
	return nil
}
