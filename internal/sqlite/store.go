// Package sqlite implements the clipboard history store on an embedded
// SQLite database. The primary clips table and its FTS5 search index are
// kept consistent by an explicit write-through inside each mutating
// operation's transaction; there is no trigger machinery and no window
// where the index disagrees with the table.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/idavidov/clipm/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "history.db"

// Store owns the on-disk database. Open it, use it, Close it; there is no
// process-wide instance. Concurrent invocations from separate processes are
// serialized by SQLite's WAL journaling and the busy timeout below.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates the data directory if needed, opens the database inside it,
// and brings the schema to the latest version. Pragmas: WAL journaling,
// a 5 s busy wait before a lock error, NORMAL synchronous, foreign keys on.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFileName)
	dsn := "file:" + dbPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=foreign_keys(ON)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, dbError("opening database", err)
	}

	// A single connection keeps the pragma set and transaction scope
	// predictable; cross-process concurrency is handled by WAL.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database connection. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return dbError("closing database", err)
	}
	return nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// dbError wraps an underlying storage fault so callers can classify it with
// errors.Is(err, types.ErrDatabase). Lookup misses never pass through here.
func dbError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, types.ErrDatabase, err)
}
