// ABOUTME: Read operations for the events table.
// ABOUTME: Resolves usernames by email the way the consuming app displays events.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/models"
)

// EventFilter narrows ListEvents. Zero values mean no filter; Limit <= 0 means
// no limit.
type EventFilter struct {
	Tag        *models.Tag
	RecordedBy string
	Limit      int
}

// EventEntry is an event together with the username its email resolves to.
// Username is empty when no user has that email.
type EventEntry struct {
	models.Event
	Username string `json:"username"`
}

type eventRow struct {
	ID         int64          `db:"id"`
	Tag        sql.NullString `db:"tag"`
	Comment    sql.NullString `db:"comment"`
	Value      sql.NullString `db:"value"`
	RecordedAt sql.NullString `db:"recordedAt"`
	RecordedBy sql.NullString `db:"recordedBy"`
	Username   string         `db:"username"`
}

func (r eventRow) entry() *EventEntry {
	return &EventEntry{
		Event: models.Event{
			ID:         r.ID,
			Tag:        models.Tag(r.Tag.String),
			Comment:    r.Comment.String,
			Value:      r.Value.String,
			RecordedAt: r.RecordedAt.String,
			RecordedBy: r.RecordedBy.String,
		},
		Username: r.Username,
	}
}

// ListEvents returns events sorted by recordedAt descending (most recent
// first). Duplicate user rows from repeated seeding do not duplicate events;
// the oldest matching user supplies the username.
func (d *DB) ListEvents(ctx context.Context, filter EventFilter) ([]*EventEntry, error) {
	q := sq.Select(
		"e.id", "e.tag", "e.comment", "e.value", "e.recordedAt", "e.recordedBy",
		"COALESCE((SELECT u.username FROM users u WHERE u.email = e.recordedBy ORDER BY u.id LIMIT 1), '') AS username",
	).
		From("events e").
		OrderBy("e.recordedAt DESC", "e.id")

	if filter.Tag != nil {
		q = q.Where(sq.Eq{"e.tag": string(*filter.Tag)})
	}
	if filter.RecordedBy != "" {
		q = q.Where(sq.Eq{"e.recordedBy": filter.RecordedBy})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build events query: %w", err)
	}

	var rows []eventRow
	if err := d.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	entries := make([]*EventEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.entry())
	}
	return entries, nil
}

// CountEvents returns the number of rows in the events table.
func (d *DB) CountEvents(ctx context.Context) (int, error) {
	var n int
	if err := d.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM events"); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}
