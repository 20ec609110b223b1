// ABOUTME: Bulk writer that persists seeded users and events in one transaction.
// ABOUTME: Builds multi-row INSERT statements with squirrel.
package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/models"
)

// EventGenerator produces the events to insert for the given users.
type EventGenerator func(users []models.User) []*models.Event

// SeedResult holds counts of rows written by one Seed call.
type SeedResult struct {
	Users  int
	Events int
}

// Seed inserts users, asks generate for their events, inserts those, and
// commits once. On any error the transaction is rolled back and nothing from
// this call is visible to other readers.
func (d *DB) Seed(ctx context.Context, users []models.User, generate EventGenerator) (*SeedResult, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertUsers(ctx, tx, users); err != nil {
		d.log.Error().Err(err).Msg("insert users failed")
		return nil, err
	}
	d.log.Debug().Int("users", len(users)).Msg("users inserted")

	events := generate(users)
	d.log.Debug().Int("events", len(events)).Msg("events generated")

	if err := insertEvents(ctx, tx, events); err != nil {
		d.log.Error().Err(err).Msg("insert events failed")
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		d.log.Error().Err(err).Msg("commit failed")
		return nil, fmt.Errorf("commit seed: %w", err)
	}
	d.log.Debug().Msg("seed committed")

	return &SeedResult{Users: len(users), Events: len(events)}, nil
}

func insertUsers(ctx context.Context, tx *sqlx.Tx, users []models.User) error {
	if len(users) == 0 {
		return nil
	}

	q := sq.Insert("users").Columns("username", "email")
	for _, u := range users {
		q = q.Values(u.Username, u.Email)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build users insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert users: %w", err)
	}
	return nil
}

func insertEvents(ctx context.Context, tx *sqlx.Tx, events []*models.Event) error {
	if len(events) == 0 {
		return nil
	}

	q := sq.Insert("events").Columns("tag", "comment", "value", "recordedAt", "recordedBy")
	for _, e := range events {
		q = q.Values(string(e.Tag), e.Comment, e.Value, e.RecordedAt, e.RecordedBy)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build events insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}
