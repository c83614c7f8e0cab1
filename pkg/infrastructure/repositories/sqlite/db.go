package sqlite

import (
	"crypto/rand"
	"database/sql"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 1

// Init opens the SQLite database at the given path and applies schema
// migrations. The path parameter allows tests to use t.TempDir().
func Init(path string) (*sql.DB, error) {
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// migrate applies schema migrations based on user_version.
func migrate(db *sql.DB) error {
	version, err := getUserVersion(db)
	if err != nil {
		return err
	}

	// Migration 0 -> 1: Initial schema
	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS capture_groups (
		  id                TEXT PRIMARY KEY,
		  employee_label    TEXT,
		  extraction_status TEXT NOT NULL DEFAULT 'absent',
		  activity_count    INTEGER NOT NULL DEFAULT 0,
		  item_count        INTEGER NOT NULL DEFAULT 0,
		  cost              TEXT,
		  created_at        TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS line_items (
		  id            TEXT PRIMARY KEY,
		  group_id      TEXT NOT NULL REFERENCES capture_groups(id) ON DELETE CASCADE,
		  product_code  TEXT NOT NULL,
		  quantity      INTEGER NOT NULL,
		  activity_code TEXT NOT NULL DEFAULT '',
		  description   TEXT,
		  position      INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_line_items_group ON line_items(group_id);

		CREATE TABLE IF NOT EXISTS stations (
		  id             TEXT PRIMARY KEY,
		  product_code   TEXT,
		  status         TEXT NOT NULL DEFAULT 'pending',
		  sign_blob_url  TEXT,
		  stock_blob_url TEXT,
		  on_hand_qty    INTEGER,
		  min_qty        INTEGER,
		  max_qty        INTEGER,
		  created_at     TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_stations_product ON stations(product_code);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("failed to apply schema v1: %w", err)
		}
		if err := setUserVersion(db, 1); err != nil {
			return err
		}
	}

	return nil
}

// getUserVersion reads the SQLite user_version pragma.
func getUserVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read user_version: %w", err)
	}
	return version, nil
}

// setUserVersion writes the SQLite user_version pragma.
func setUserVersion(db *sql.DB, version int) error {
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}

// newID generates a new ULID for row identifiers.
func newID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
