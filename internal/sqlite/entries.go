// Entry CRUD and search over the clips table. Every mutating operation
// updates the clips_fts index in the same transaction as the row change.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/idavidov/clipm/pkg/types"
)

const entryColumns = "id, content, content_type, byte_size, created_at, label"

// Insert writes the entry and its search-index row in one transaction and
// returns the assigned id. The entry's Content must be non-empty; CreatedAt
// and ByteSize are stored as given.
func (s *Store) Insert(e *types.ClipEntry) (int64, error) {
	if e.Content == "" {
		return 0, fmt.Errorf("%w: entry content must not be empty", types.ErrInvalidInput)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, dbError("beginning insert", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO clips (content, content_type, byte_size, created_at, label) VALUES (?, ?, ?, ?, ?)",
		e.Content, e.ContentType.String(), e.ByteSize, e.CreatedAt, e.Label,
	)
	if err != nil {
		return 0, dbError("inserting entry", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, dbError("reading inserted id", err)
	}

	if _, err := tx.Exec(
		"INSERT INTO clips_fts (rowid, content, label) VALUES (?, ?, ?)",
		id, indexedContent(e.ContentType, e.Content), e.Label,
	); err != nil {
		return 0, dbError("indexing entry", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, dbError("committing insert", err)
	}
	return id, nil
}

// GetByID returns the entry with the given id, or ErrNotFound.
func (s *Store) GetByID(id int64) (*types.ClipEntry, error) {
	row := s.db.QueryRow("SELECT "+entryColumns+" FROM clips WHERE id = ?", id)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no entry with id %d: %w", id, types.ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

// GetMostRecent returns the entry with the maximal id, or ErrNotFound when
// the history is empty.
func (s *Store) GetMostRecent() (*types.ClipEntry, error) {
	row := s.db.QueryRow("SELECT " + entryColumns + " FROM clips ORDER BY id DESC LIMIT 1")
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no entries in history: %w", types.ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

// IsDuplicate reports whether the most recent entry's content equals
// content byte for byte. An empty history is never a duplicate.
func (s *Store) IsDuplicate(content string) (bool, error) {
	var one int
	err := s.db.QueryRow(
		"SELECT 1 FROM clips WHERE id = (SELECT MAX(id) FROM clips) AND content = ?",
		content,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, dbError("checking duplicate", err)
	}
	return true, nil
}

// UpdateLabel sets or clears the entry's label and reindexes the row,
// re-applying the password content substitution. A nil label clears it.
// Returns ErrNotFound if no row has the id.
func (s *Store) UpdateLabel(id int64, label *string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return dbError("beginning label update", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("UPDATE clips SET label = ? WHERE id = ?", label, id)
	if err != nil {
		return dbError("updating label", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError("checking label update", err)
	}
	if n == 0 {
		return fmt.Errorf("no entry with id %d: %w", id, types.ErrNotFound)
	}

	if err := reindexRow(tx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return dbError("committing label update", err)
	}
	return nil
}

// Delete removes the entry and its index row atomically.
// Returns ErrNotFound if no row has the id.
func (s *Store) Delete(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return dbError("beginning delete", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM clips WHERE id = ?", id)
	if err != nil {
		return dbError("deleting entry", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError("checking delete", err)
	}
	if n == 0 {
		return fmt.Errorf("no entry with id %d: %w", id, types.ErrNotFound)
	}

	if _, err := tx.Exec("DELETE FROM clips_fts WHERE rowid = ?", id); err != nil {
		return dbError("deindexing entry", err)
	}

	if err := tx.Commit(); err != nil {
		return dbError("committing delete", err)
	}
	return nil
}

// Clear removes all entries and all index rows atomically and returns the
// number of entries removed. An empty history clears to 0 without error.
func (s *Store) Clear() (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, dbError("beginning clear", err)
	}
	defer tx.Rollback()

	var count int64
	if err := tx.QueryRow("SELECT COUNT(*) FROM clips").Scan(&count); err != nil {
		return 0, dbError("counting entries", err)
	}
	if _, err := tx.Exec("DELETE FROM clips"); err != nil {
		return 0, dbError("clearing entries", err)
	}
	if _, err := tx.Exec("DELETE FROM clips_fts"); err != nil {
		return 0, dbError("clearing index", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, dbError("committing clear", err)
	}
	return count, nil
}

// List returns entries newest first, paginated by limit and offset, with
// the filter's conditions ANDed in.
func (s *Store) List(limit, offset int, f Filter) ([]types.ClipEntry, error) {
	conds, args := f.predicates("", time.Now())
	query := "SELECT " + entryColumns + " FROM clips" +
		whereClause(conds, true) +
		" ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, dbError("listing entries", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// Search matches the trimmed query against the FTS5 index, best match
// first, then narrows by the filter. An empty trimmed query is
// ErrInvalidInput.
func (s *Store) Search(query string, limit int, f Filter) ([]types.ClipEntry, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty search query", types.ErrInvalidInput)
	}
	escaped := escapeMatchQuery(trimmed)

	conds, args := f.predicates("c.", time.Now())
	sqlQuery := "SELECT c.id, c.content, c.content_type, c.byte_size, c.created_at, c.label" +
		" FROM clips_fts f JOIN clips c ON c.id = f.rowid" +
		" WHERE clips_fts MATCH ?" +
		whereClause(conds, false) +
		" ORDER BY bm25(clips_fts) LIMIT ?"

	allArgs := append([]any{escaped}, args...)
	allArgs = append(allArgs, limit)

	rows, err := s.db.Query(sqlQuery, allArgs...)
	if err != nil {
		return nil, dbError("searching entries", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// Count returns the number of stored entries.
func (s *Store) Count() (int64, error) {
	var count int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM clips").Scan(&count); err != nil {
		return 0, dbError("counting entries", err)
	}
	return count, nil
}

// TotalBytes returns the sum of all entries' byte sizes.
func (s *Store) TotalBytes() (int64, error) {
	var total int64
	if err := s.db.QueryRow("SELECT COALESCE(SUM(byte_size), 0) FROM clips").Scan(&total); err != nil {
		return 0, dbError("summing entry sizes", err)
	}
	return total, nil
}

// Snapshot returns every entry ordered by id ascending, for export.
func (s *Store) Snapshot() ([]types.ClipEntry, error) {
	rows, err := s.db.Query("SELECT " + entryColumns + " FROM clips ORDER BY id ASC")
	if err != nil {
		return nil, dbError("reading snapshot", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// escapeMatchQuery turns user input into an FTS5 query that cannot break
// out of string syntax: each whitespace-separated term becomes a quoted
// string with literal quotes doubled, and terms combine with implicit AND.
// FTS operators in the input (OR, NEAR, -) are matched literally, never
// interpreted.
func escapeMatchQuery(query string) string {
	terms := strings.Fields(query)
	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = `"` + strings.ReplaceAll(term, `"`, `""`) + `"`
	}
	return strings.Join(quoted, " ")
}

// reindexRow replaces the entry's search-index row from the current table
// row, applying the password content substitution.
func reindexRow(tx *sql.Tx, id int64) error {
	if _, err := tx.Exec("DELETE FROM clips_fts WHERE rowid = ?", id); err != nil {
		return dbError("deindexing entry", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO clips_fts (rowid, content, label)
		 SELECT id,
		        CASE WHEN content_type = ? THEN '' ELSE content END,
		        label
		 FROM clips WHERE id = ?`,
		types.ContentTypePassword.String(), id,
	); err != nil {
		return dbError("reindexing entry", err)
	}
	return nil
}

// indexedContent returns the content as it appears in the search index:
// empty for password entries, so secret material never enters the index.
func indexedContent(ct types.ContentType, content string) string {
	if ct == types.ContentTypePassword {
		return ""
	}
	return content
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanEntry hydrates one row into a ClipEntry. An unrecognized stored
// content type is a corruption error, not a silent default.
func scanEntry(sc scanner) (*types.ClipEntry, error) {
	var e types.ClipEntry
	var contentType string
	var label sql.NullString
	if err := sc.Scan(&e.ID, &e.Content, &contentType, &e.ByteSize, &e.CreatedAt, &label); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, dbError("scanning entry", err)
	}

	ct, err := types.ParseContentType(contentType)
	if err != nil {
		return nil, fmt.Errorf("entry %d has corrupt content type %q: %w", e.ID, contentType, types.ErrDatabase)
	}
	e.ContentType = ct

	if label.Valid {
		e.Label = &label.String
	}
	return &e, nil
}

func collectEntries(rows *sql.Rows) ([]types.ClipEntry, error) {
	var entries []types.ClipEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("iterating entries", err)
	}
	return entries, nil
}
