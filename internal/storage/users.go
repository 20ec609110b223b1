// ABOUTME: Read operations for the users table.
// ABOUTME: Used by verify, stats, export, and the MCP server.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/models"
)

type userRow struct {
	ID       int64          `db:"id"`
	Username sql.NullString `db:"username"`
	Email    sql.NullString `db:"email"`
}

// ListUsers returns all users in insertion order.
func (d *DB) ListUsers(ctx context.Context) ([]*models.User, error) {
	query, args, err := sq.Select("id", "username", "email").
		From("users").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build users query: %w", err)
	}

	var rows []userRow
	if err := d.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]*models.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, &models.User{
			ID:       r.ID,
			Username: r.Username.String,
			Email:    r.Email.String,
		})
	}
	return users, nil
}

// CountUsers returns the number of rows in the users table.
func (d *DB) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := d.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM users"); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
