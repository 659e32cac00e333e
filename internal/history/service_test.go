package history

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idavidov/clipm/internal/sqlite"
	"github.com/idavidov/clipm/pkg/types"
)

// fakeClipboard is an in-memory Clipboard for tests.
type fakeClipboard struct {
	text     string
	readErr  error
	writeErr error
	written  []string
}

func (f *fakeClipboard) ReadText() (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.text, nil
}

func (f *fakeClipboard) WriteText(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.written = append(f.written, text)
	return nil
}

func newService(t *testing.T, cb *fakeClipboard) (*Service, *sqlite.Store) {
	t.Helper()
	store, err := sqlite.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store, cb), store
}

func strptr(s string) *string { return &s }

func TestStoreText(t *testing.T) {
	cb := &fakeClipboard{text: "hello world"}
	svc, store := newService(t, cb)

	res, err := svc.Store(nil, "text")
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, int64(len("hello world")), res.ByteSize)
	assert.Nil(t, res.Label)

	got, err := store.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got.Content)
	assert.Equal(t, types.ContentTypeText, got.ContentType)
}

func TestStoreEmptyClipboard(t *testing.T) {
	cb := &fakeClipboard{text: ""}
	svc, _ := newService(t, cb)

	_, err := svc.Store(nil, "text")
	assert.ErrorIs(t, err, types.ErrEmptyClipboard)
}

func TestStoreClipboardFailure(t *testing.T) {
	cb := &fakeClipboard{readErr: types.ErrClipboard}
	svc, _ := newService(t, cb)

	_, err := svc.Store(nil, "text")
	assert.ErrorIs(t, err, types.ErrClipboard)
}

func TestStoreMalformedTypeFailsBeforeStorage(t *testing.T) {
	cb := &fakeClipboard{text: "hello"}
	svc, store := newService(t, cb)

	_, err := svc.Store(nil, "bogus")
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestStoreTextDuplicateSkipped(t *testing.T) {
	cb := &fakeClipboard{text: "same content"}
	svc, store := newService(t, cb)

	first, err := svc.Store(nil, "text")
	require.NoError(t, err)
	assert.False(t, first.Skipped)

	second, err := svc.Store(nil, "text")
	require.NoError(t, err)
	assert.True(t, second.Skipped, "identical text twice in a row inserts once")

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestStorePasswordBypassesDuplicateSuppression(t *testing.T) {
	cb := &fakeClipboard{text: "hunter2"}
	svc, store := newService(t, cb)

	_, err := svc.Store(nil, "password")
	require.NoError(t, err)
	res, err := svc.Store(nil, "password")
	require.NoError(t, err)
	assert.False(t, res.Skipped)

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "identical password twice inserts two rows")
}

func TestStorePasswordAutoLabel(t *testing.T) {
	cb := &fakeClipboard{text: "hunter2"}
	svc, store := newService(t, cb)

	res, err := svc.Store(nil, "password")
	require.NoError(t, err)
	require.NotNil(t, res.Label)
	assert.Equal(t, AutoPasswordLabel, *res.Label)

	got, err := store.GetByID(res.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Label)
	assert.Equal(t, "password", *got.Label)
}

func TestStorePasswordExplicitLabelKept(t *testing.T) {
	cb := &fakeClipboard{text: "hunter2"}
	svc, store := newService(t, cb)

	res, err := svc.Store(strptr("github-token"), "password")
	require.NoError(t, err)

	got, err := store.GetByID(res.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Label)
	assert.Equal(t, "github-token", *got.Label)
}

func TestGetByID(t *testing.T) {
	cb := &fakeClipboard{text: "first"}
	svc, _ := newService(t, cb)

	res, err := svc.Store(nil, "text")
	require.NoError(t, err)

	entry, err := svc.Get(&res.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", entry.Content)
	require.Len(t, cb.written, 1)
	assert.Equal(t, "first", cb.written[0])
}

func TestGetFallsBackToMostRecent(t *testing.T) {
	cb := &fakeClipboard{text: "first"}
	svc, _ := newService(t, cb)

	_, err := svc.Store(nil, "text")
	require.NoError(t, err)
	cb.text = "second"
	_, err = svc.Store(nil, "text")
	require.NoError(t, err)

	entry, err := svc.Get(nil)
	require.NoError(t, err)
	assert.Equal(t, "second", entry.Content)
	assert.Equal(t, "second", cb.written[len(cb.written)-1])
}

func TestGetNotFound(t *testing.T) {
	cb := &fakeClipboard{}
	svc, _ := newService(t, cb)

	missing := int64(42)
	_, err := svc.Get(&missing)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = svc.Get(nil)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestLabelSetAndClear(t *testing.T) {
	cb := &fakeClipboard{text: "content"}
	svc, store := newService(t, cb)

	res, err := svc.Store(nil, "text")
	require.NoError(t, err)

	require.NoError(t, svc.Label(res.ID, strptr("keep")))
	got, err := store.GetByID(res.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Label)
	assert.Equal(t, "keep", *got.Label)

	require.NoError(t, svc.Label(res.ID, nil))
	got, err = store.GetByID(res.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Label)
}

func TestDeleteAndClear(t *testing.T) {
	cb := &fakeClipboard{text: "one"}
	svc, _ := newService(t, cb)

	res, err := svc.Store(nil, "text")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(res.ID))
	assert.ErrorIs(t, svc.Delete(res.ID), types.ErrNotFound)

	cb.text = "two"
	_, err = svc.Store(nil, "text")
	require.NoError(t, err)
	cb.text = "three"
	_, err = svc.Store(nil, "text")
	require.NoError(t, err)

	count, err := svc.Clear()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = svc.Clear()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestInfo(t *testing.T) {
	cb := &fakeClipboard{text: "12345"}
	svc, store := newService(t, cb)

	_, err := svc.Store(nil, "text")
	require.NoError(t, err)

	info, err := svc.Info()
	require.NoError(t, err)
	assert.Equal(t, store.Path(), info.DBPath)
	assert.Equal(t, sqlite.LatestSchemaVersion, info.SchemaVersion)
	assert.Equal(t, int64(1), info.EntryCount)
	assert.Equal(t, int64(5), info.TotalBytes)
	assert.NotEmpty(t, info.InstallID)
}

func TestExport(t *testing.T) {
	cb := &fakeClipboard{text: "first"}
	svc, _ := newService(t, cb)

	_, err := svc.Store(nil, "text")
	require.NoError(t, err)
	cb.text = "hunter2"
	_, err = svc.Store(strptr("token"), "password")
	require.NoError(t, err)

	var buf bytes.Buffer
	count, err := svc.Export(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	scanner := bufio.NewScanner(&buf)

	require.True(t, scanner.Scan())
	var header exportHeader
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &header))
	assert.Equal(t, 2, header.EntryCount)
	assert.Equal(t, sqlite.LatestSchemaVersion, header.SchemaVersion)
	assert.NotEmpty(t, header.InstallID)
	assert.NotEmpty(t, header.ExportedAt)

	require.True(t, scanner.Scan())
	var first exportRecord
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &first))
	assert.Equal(t, "first", first.Content)
	assert.Equal(t, "text", first.ContentType)

	require.True(t, scanner.Scan())
	var second exportRecord
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &second))
	assert.Equal(t, "hunter2", second.Content)
	assert.Equal(t, "password", second.ContentType)
	require.NotNil(t, second.Label)
	assert.Equal(t, "token", *second.Label)

	assert.False(t, scanner.Scan())
}

func TestExportToFile(t *testing.T) {
	cb := &fakeClipboard{text: "content"}
	svc, _ := newService(t, cb)

	_, err := svc.Store(nil, "text")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "backup.jsonl")
	count, err := svc.ExportToFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := bytes.Count(data, []byte("\n"))
	assert.Equal(t, 2, lines, "header plus one record")

	// No leftover temp files.
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".export-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
