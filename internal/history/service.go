// Package history applies the business rules of the clipm commands on top
// of the storage engine and the clipboard capability: duplicate
// suppression, password auto-labeling, and most-recent fallback.
package history

import (
	"log/slog"
	"time"

	"github.com/idavidov/clipm/internal/clip"
	"github.com/idavidov/clipm/internal/sqlite"
	"github.com/idavidov/clipm/pkg/types"
)

// Filter re-exports the storage filter for callers of List and Search.
type Filter = sqlite.Filter

// AutoPasswordLabel is assigned to password entries stored without an
// explicit label.
const AutoPasswordLabel = "password"

// Service executes user intents against the store and the clipboard.
type Service struct {
	store     *sqlite.Store
	clipboard clip.Clipboard
	now       func() time.Time
}

// New returns a Service over the given store and clipboard.
func New(store *sqlite.Store, clipboard clip.Clipboard) *Service {
	return &Service{
		store:     store,
		clipboard: clipboard,
		now:       time.Now,
	}
}

// StoreResult reports what Store did.
type StoreResult struct {
	ID       int64
	ByteSize int64
	Label    *string
	// Skipped is true when the content matched the most recent entry and
	// insertion was suppressed. A skip is a no-op, not an error.
	Skipped bool
}

// Store captures the current clipboard text as a new entry.
//
// An empty clipboard is ErrEmptyClipboard. A malformed content type string
// is ErrInvalidInput, raised before storage is touched. Text content equal
// to the most recent entry is skipped; password content never is, since a
// re-captured changed password must still be recorded. Password entries
// stored without a label get the label "password".
func (s *Service) Store(label *string, contentTypeStr string) (StoreResult, error) {
	content, err := s.clipboard.ReadText()
	if err != nil {
		return StoreResult{}, err
	}
	if content == "" {
		return StoreResult{}, types.ErrEmptyClipboard
	}

	ct, err := types.ParseContentType(contentTypeStr)
	if err != nil {
		return StoreResult{}, err
	}

	if ct != types.ContentTypePassword {
		dup, err := s.store.IsDuplicate(content)
		if err != nil {
			return StoreResult{}, err
		}
		if dup {
			slog.Debug("skipping duplicate of most recent entry")
			return StoreResult{Skipped: true}, nil
		}
	}

	if label == nil && ct == types.ContentTypePassword {
		auto := AutoPasswordLabel
		label = &auto
	}

	entry := &types.ClipEntry{
		Content:     content,
		ContentType: ct,
		ByteSize:    int64(len(content)),
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
		Label:       label,
	}
	id, err := s.store.Insert(entry)
	if err != nil {
		return StoreResult{}, err
	}
	slog.Debug("stored entry", "id", id, "bytes", entry.ByteSize, "type", ct)

	return StoreResult{ID: id, ByteSize: entry.ByteSize, Label: label}, nil
}

// Get resolves an entry by id, or the most recent one when id is nil, and
// writes its content back to the clipboard.
func (s *Service) Get(id *int64) (*types.ClipEntry, error) {
	var entry *types.ClipEntry
	var err error
	if id != nil {
		entry, err = s.store.GetByID(*id)
	} else {
		entry, err = s.store.GetMostRecent()
	}
	if err != nil {
		return nil, err
	}

	if err := s.clipboard.WriteText(entry.Content); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns entries newest first, paginated, narrowed by the filter.
func (s *Service) List(limit, offset int, f Filter) ([]types.ClipEntry, error) {
	return s.store.List(limit, offset, f)
}

// Search runs a full-text query, best match first, narrowed by the filter.
func (s *Service) Search(query string, limit int, f Filter) ([]types.ClipEntry, error) {
	return s.store.Search(query, limit, f)
}

// Label sets the entry's label; nil clears it.
func (s *Service) Label(id int64, label *string) error {
	return s.store.UpdateLabel(id, label)
}

// Delete removes one entry. Interactive confirmation is the caller's job.
func (s *Service) Delete(id int64) error {
	return s.store.Delete(id)
}

// Clear removes the whole history and returns how many entries it held.
func (s *Service) Clear() (int64, error) {
	return s.store.Clear()
}

// Info describes the store for the info command.
type Info struct {
	DBPath        string
	SchemaVersion int
	EntryCount    int64
	TotalBytes    int64
	InstallID     string
}

// Info collects store statistics.
func (s *Service) Info() (Info, error) {
	version, err := s.store.SchemaVersion()
	if err != nil {
		return Info{}, err
	}
	count, err := s.store.Count()
	if err != nil {
		return Info{}, err
	}
	total, err := s.store.TotalBytes()
	if err != nil {
		return Info{}, err
	}
	installID, err := s.store.InstallID()
	if err != nil {
		return Info{}, err
	}
	return Info{
		DBPath:        s.store.Path(),
		SchemaVersion: version,
		EntryCount:    count,
		TotalBytes:    total,
		InstallID:     installID,
	}, nil
}
