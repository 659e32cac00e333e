// Store command: capture the current clipboard value into history.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idavidov/clipm/internal/render"
)

var (
	storeLabel string
	storeType  string
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Save the current clipboard to history",
	Long: `Store captures the current clipboard text as a new history entry.

Text content identical to the most recent entry is skipped. Password
content is always stored, masked in listings, and kept out of the
content side of the search index.

Example:
  clipm store
  clipm store --label snippet
  clipm store --type password --label github-token`,
	Args: cobra.NoArgs,
	RunE: runStore,
}

func init() {
	storeCmd.Flags().StringVarP(&storeLabel, "label", "l", "", "label for the entry")
	storeCmd.Flags().StringVarP(&storeType, "type", "t", "text", "content type (text|password)")
}

func runStore(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := openService()
	if err != nil {
		return err
	}
	defer closeStore()

	var label *string
	if cmd.Flags().Changed("label") {
		label = &storeLabel
	}

	res, err := svc.Store(label, storeType)
	if err != nil {
		return err
	}
	if res.Skipped {
		fmt.Println("Skipped: content matches most recent entry.")
		return nil
	}

	if res.Label != nil {
		fmt.Printf("Stored as entry #%d (%s, label: %q).\n", res.ID, render.FormatSize(res.ByteSize), *res.Label)
	} else {
		fmt.Printf("Stored as entry #%d (%s).\n", res.ID, render.FormatSize(res.ByteSize))
	}
	return nil
}
