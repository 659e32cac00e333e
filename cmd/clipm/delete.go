// Delete command: remove a single entry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a single entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if !deleteForce {
		ok, err := confirm(fmt.Sprintf("Delete entry #%d?", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	svc, closeStore, err := openService()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := svc.Delete(id); err != nil {
		return err
	}

	fmt.Printf("Deleted entry #%d.\n", id)
	return nil
}
