// ABOUTME: SQLite database connection and lifecycle management.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required) behind sqlx.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// DefaultDBPath is where the consuming app keeps its state, relative to the
// repository root the tool is run from.
const DefaultDBPath = "src/data/state.db"

// DB wraps the SQLite database connection.
type DB struct {
	db     *sqlx.DB
	dbPath string
	log    zerolog.Logger
}

// Open opens or creates a SQLite database at the given path and ensures the
// users and events tables exist.
func Open(dbPath string) (*DB, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One connection, owned by this process for the whole run.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}

	d := newDB(db, dbPath)

	if err := d.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}

	if err := d.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return d, nil
}

func newDB(db *sqlx.DB, dbPath string) *DB {
	return &DB{db: db, dbPath: dbPath, log: zerolog.Nop()}
}

// WithLogger attaches a logger used for per-step debug output.
func (d *DB) WithLogger(log zerolog.Logger) *DB {
	d.log = log.With().Str("db", d.dbPath).Logger()
	return d
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.dbPath
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// configurePragmas leaves the journal mode alone: the file belongs to the
// consuming app and WAL would persist past this run.
func (d *DB) configurePragmas() error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := d.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}
