// Info command: describe the history store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idavidov/clipm/internal/render"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show store location and statistics",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := openService()
	if err != nil {
		return err
	}
	defer closeStore()

	info, err := svc.Info()
	if err != nil {
		return err
	}

	fmt.Printf("Database:       %s\n", info.DBPath)
	fmt.Printf("Schema version: %d\n", info.SchemaVersion)
	fmt.Printf("Entries:        %d (%s)\n", info.EntryCount, render.FormatSize(info.TotalBytes))
	fmt.Printf("Install id:     %s\n", info.InstallID)
	return nil
}
