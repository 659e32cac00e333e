// Package render formats entries for human-readable output. Password
// content is masked here and only here; query and filter logic upstream
// always operates on real data.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/idavidov/clipm/pkg/types"
)

// PasswordPlaceholder replaces password content in any rendered output.
const PasswordPlaceholder = "********"

// previewWidth is the maximum preview length in characters.
const previewWidth = 60

// Table writes entries as a table with ID, Preview, Label, and Created
// columns.
func Table(w io.Writer, entries []types.ClipEntry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Preview", "Label", "Created"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	for _, e := range entries {
		table.Append([]string{
			fmt.Sprintf("%d", e.ID),
			Preview(&e),
			e.LabelOrEmpty(),
			FormatTimestamp(e.CreatedAt),
		})
	}
	table.Render()
}

// Preview returns the entry's display content: the placeholder for
// password entries, otherwise the content truncated to a single line.
func Preview(e *types.ClipEntry) string {
	if e.ContentType == types.ContentTypePassword {
		return PasswordPlaceholder
	}
	return truncate(e.Content, previewWidth)
}

// truncate flattens newlines to spaces and cuts the string to max
// characters, ending with an ellipsis when shortened. Counts runes, not
// bytes, so multibyte text truncates cleanly.
func truncate(s string, max int) string {
	singleLine := strings.Map(func(r rune) rune {
		if r == '\n' {
			return ' '
		}
		return r
	}, s)

	runes := []rune(singleLine)
	if len(runes) <= max {
		return singleLine
	}
	return string(runes[:max-1]) + "…"
}

// FormatSize renders a byte count as B, KB, or MB.
func FormatSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}

// FormatTimestamp renders an RFC 3339 timestamp in local time as
// "2006-01-02 15:04". Unparseable input is returned as-is.
func FormatTimestamp(rfc3339 string) string {
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		return rfc3339
	}
	return t.Local().Format("2006-01-02 15:04")
}
