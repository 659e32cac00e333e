// Shared helpers for clipm subcommands.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idavidov/clipm/internal/clip"
	"github.com/idavidov/clipm/internal/history"
	"github.com/idavidov/clipm/internal/sqlite"
	"github.com/idavidov/clipm/pkg/types"
)

// openService resolves the data directory, opens the store, and wires the
// command layer. The caller must call the returned close function.
func openService() (*history.Service, func(), error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, nil, err
	}

	svc := history.New(store, clip.NewSystem())
	return svc, func() { store.Close() }, nil
}

// parseID parses a positional entry id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid entry id %q", types.ErrInvalidInput, arg)
	}
	return id, nil
}

// filterFrom builds a history filter from the common --label/--days/--type
// flags, only including a condition when its flag was actually set.
func filterFrom(cmd *cobra.Command, label string, days int, typeStr string) (history.Filter, error) {
	var f history.Filter
	if cmd.Flags().Changed("label") {
		f.Label = &label
	}
	if cmd.Flags().Changed("days") {
		f.Days = &days
	}
	if cmd.Flags().Changed("type") {
		ct, err := types.ParseContentType(typeStr)
		if err != nil {
			return f, err
		}
		f.ContentType = &ct
	}
	return f, nil
}

// confirm prompts on stdout and reads a y/N answer from stdin.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
