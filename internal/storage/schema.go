// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Mirrors the users and events tables of the consuming app exactly.
package storage

import (
	"context"
	"fmt"
)

const (
	createEventsTable = `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tag TEXT,
		comment TEXT,
		value TEXT,
		recordedAt TEXT,
		recordedBy TEXT
	);`

	createUsersTable = `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT,
		email TEXT
	);`
)

// InitSchema creates the users and events tables if absent. Existing tables and
// their rows are left as they are.
func (d *DB) InitSchema(ctx context.Context) error {
	for _, stmt := range []string{createUsersTable, createEventsTable} {
		if _, err := d.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	d.log.Debug().Msg("schema ready")
	return nil
}

func (d *DB) initSchema() error {
	return d.InitSchema(context.Background())
}
