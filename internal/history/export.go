// JSONL export of the clipboard history, one record per line, preceded by
// a header record identifying the source store.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// exportHeader is the first line of an export stream.
type exportHeader struct {
	InstallID     string `json:"install_id"`
	SchemaVersion int    `json:"schema_version"`
	EntryCount    int    `json:"entry_count"`
	ExportedAt    string `json:"exported_at"`
}

// exportRecord is one exported entry. Content is exported as stored;
// masking is a display concern, not a backup concern.
type exportRecord struct {
	ID          int64   `json:"id"`
	Content     string  `json:"content"`
	ContentType string  `json:"content_type"`
	ByteSize    int64   `json:"byte_size"`
	CreatedAt   string  `json:"created_at"`
	Label       *string `json:"label,omitempty"`
}

// Export writes the full history as JSONL to w, oldest entry first, and
// returns the number of entries written.
func (s *Service) Export(w io.Writer) (int, error) {
	entries, err := s.store.Snapshot()
	if err != nil {
		return 0, err
	}
	version, err := s.store.SchemaVersion()
	if err != nil {
		return 0, err
	}
	installID, err := s.store.InstallID()
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	header := exportHeader{
		InstallID:     installID,
		SchemaVersion: version,
		EntryCount:    len(entries),
		ExportedAt:    s.now().UTC().Format(time.RFC3339),
	}
	if err := enc.Encode(header); err != nil {
		return 0, fmt.Errorf("writing export header: %w", err)
	}

	for _, e := range entries {
		rec := exportRecord{
			ID:          e.ID,
			Content:     e.Content,
			ContentType: e.ContentType.String(),
			ByteSize:    e.ByteSize,
			CreatedAt:   e.CreatedAt,
			Label:       e.Label,
		}
		if err := enc.Encode(rec); err != nil {
			return 0, fmt.Errorf("writing export record %d: %w", e.ID, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("flushing export: %w", err)
	}
	return len(entries), nil
}

// ExportToFile writes the export atomically using the temp-file, fsync,
// rename pattern, so a crash never leaves a partial export behind.
func (s *Service) ExportToFile(path string) (int, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".export-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	count, err := s.Export(tmp)
	if err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return 0, err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return 0, fmt.Errorf("syncing export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("closing export: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("renaming export: %w", err)
	}
	return count, nil
}
