// Get command: copy a stored entry back onto the clipboard.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idavidov/clipm/internal/render"
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Copy an entry to the clipboard (default: most recent)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	var id *int64
	if len(args) == 1 {
		parsed, err := parseID(args[0])
		if err != nil {
			return err
		}
		id = &parsed
	}

	svc, closeStore, err := openService()
	if err != nil {
		return err
	}
	defer closeStore()

	entry, err := svc.Get(id)
	if err != nil {
		return err
	}

	fmt.Printf("Copied entry #%d to clipboard (%s).\n", entry.ID, render.FormatSize(entry.ByteSize))
	return nil
}
