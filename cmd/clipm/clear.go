// Clear command: wipe the whole history.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all clipboard history",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "skip confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearForce {
		ok, err := confirm("Delete all clipboard history?")
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

	count, err := svc.Clear()
	if err != nil {
		return err
	}

	fmt.Printf("Cleared %d entries.\n", count)
	return nil
}
