// Export command: back up the history as JSONL.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the history as JSONL",
	Long: `Export writes every entry as one JSON line, oldest first, preceded
by a header line with the install id, schema version, and entry count.
Without --output the export goes to stdout.

Example:
  clipm export > backup.jsonl
  clipm export --output backup.jsonl`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := openService()
	if err != nil {
		return err
	}
	defer closeStore()

	if exportOutput == "" {
		_, err := svc.Export(os.Stdout)
		return err
	}

	count, err := svc.ExportToFile(exportOutput)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d entries to %s.\n", count, exportOutput)
	return nil
}
