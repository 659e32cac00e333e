package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// migration is one ordered schema step. The version recorded in
// PRAGMA user_version after a step equals the step's version.
type migration struct {
	version int
	name    string
	apply   func(tx *sql.Tx) error
}

// migrations run in order on open; only steps above the stored version are
// applied, each inside its own transaction together with the version bump.
// Every step is safe to run twice.
var migrations = []migration{
	{version: 1, name: "initial schema", apply: migrateInitialSchema},
	{version: 2, name: "password-aware search index", apply: migratePasswordIndex},
}

// LatestSchemaVersion is the version a fresh database is brought to.
var LatestSchemaVersion = migrations[len(migrations)-1].version

func (s *Store) migrate() error {
	version, err := s.SchemaVersion()
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= version {
			continue
		}
		tx, err := s.db.Begin()
		if err != nil {
			return dbError("beginning migration "+m.name, err)
		}
		if err := m.apply(tx); err != nil {
			tx.Rollback()
			return dbError("applying migration "+m.name, err)
		}
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
			tx.Rollback()
			return dbError("recording schema version", err)
		}
		if err := tx.Commit(); err != nil {
			return dbError("committing migration "+m.name, err)
		}
	}
	return nil
}

// SchemaVersion returns the stored schema version. A fresh database is 0.
func (s *Store) SchemaVersion() (int, error) {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, dbError("reading schema version", err)
	}
	return version, nil
}

// InstallID returns the identifier generated when this database was first
// created. It is stamped into export headers.
func (s *Store) InstallID() (string, error) {
	var id string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = 'install_id'").Scan(&id)
	if err != nil {
		return "", dbError("reading install id", err)
	}
	return id, nil
}

// migrateInitialSchema creates the clips table, its label index, the FTS5
// search index, and the meta table holding the install identifier.
func migrateInitialSchema(tx *sql.Tx) error {
	const schema = `
CREATE TABLE IF NOT EXISTS clips (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    content      TEXT NOT NULL,
    content_type TEXT NOT NULL DEFAULT 'text',
    byte_size    INTEGER NOT NULL,
    created_at   TEXT NOT NULL,
    label        TEXT
);

CREATE INDEX IF NOT EXISTS idx_clips_label ON clips(label);

CREATE VIRTUAL TABLE IF NOT EXISTS clips_fts USING fts5(content, label);

CREATE TABLE IF NOT EXISTS meta (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
	if _, err := tx.Exec(schema); err != nil {
		return err
	}
	_, err := tx.Exec(
		"INSERT OR IGNORE INTO meta (key, value) VALUES ('install_id', ?)",
		newInstallID(),
	)
	return err
}

// migratePasswordIndex adds the content_type index and rebuilds the search
// index so password rows carry an empty content field, leaving only their
// label searchable.
func migratePasswordIndex(tx *sql.Tx) error {
	const rebuild = `
CREATE INDEX IF NOT EXISTS idx_clips_content_type ON clips(content_type);

DELETE FROM clips_fts;

INSERT INTO clips_fts (rowid, content, label)
SELECT id,
       CASE WHEN content_type = 'password' THEN '' ELSE content END,
       label
FROM clips;`
	_, err := tx.Exec(rebuild)
	return err
}

// newInstallID generates a UUID v7, falling back to v4 if v7 generation fails.
func newInstallID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
