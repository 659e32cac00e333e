// Package clip wraps the OS clipboard behind a small capability interface
// so the command layer can be tested without a display server.
package clip

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/idavidov/clipm/pkg/types"
)

// Clipboard is the platform clipboard capability. An empty string from
// ReadText is not an error here; the caller decides what empty means.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// System is the real OS clipboard.
type System struct{}

// NewSystem returns the OS-backed clipboard.
func NewSystem() *System {
	return &System{}
}

// ReadText returns the current clipboard text.
func (*System) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrClipboard, err)
	}
	return text, nil
}

// WriteText replaces the clipboard contents with text.
func (*System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", types.ErrClipboard, err)
	}
	return nil
}
