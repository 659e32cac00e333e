// Label command: add, change, or remove an entry's label.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var labelCmd = &cobra.Command{
	Use:   "label ID [LABEL]",
	Short: "Add or update a label on an entry (omit LABEL to remove)",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runLabel,
}

func runLabel(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var label *string
	if len(args) == 2 {
		label = &args[1]
	}

	svc, closeStore, err := openService()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := svc.Label(id, label); err != nil {
		return err
	}

	if label != nil {
		fmt.Printf("Entry #%d labeled %q.\n", id, *label)
	} else {
		fmt.Printf("Label removed from entry #%d.\n", id)
	}
	return nil
}
