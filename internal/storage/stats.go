// ABOUTME: Aggregate counts over the seeded tables.
// ABOUTME: Backs the stats command and the MCP get_stats tool.
package storage

import (
	"context"
	"fmt"
)

// Stats summarizes the users and events tables.
type Stats struct {
	Users  int            `json:"users" yaml:"users"`
	Events int            `json:"events" yaml:"events"`
	ByTag  map[string]int `json:"by_tag" yaml:"by_tag"`
	ByUser map[string]int `json:"by_user" yaml:"by_user"`
}

type groupCount struct {
	Key   string `db:"k"`
	Count int    `db:"n"`
}

// Stats counts rows overall, events per tag, and events per recordedBy email.
func (d *DB) Stats(ctx context.Context) (*Stats, error) {
	users, err := d.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	events, err := d.CountEvents(ctx)
	if err != nil {
		return nil, err
	}

	byTag, err := d.groupEvents(ctx, "tag")
	if err != nil {
		return nil, err
	}
	byUser, err := d.groupEvents(ctx, "recordedBy")
	if err != nil {
		return nil, err
	}

	return &Stats{
		Users:  users,
		Events: events,
		ByTag:  byTag,
		ByUser: byUser,
	}, nil
}

// groupEvents only takes column names from this file.
func (d *DB) groupEvents(ctx context.Context, column string) (map[string]int, error) {
	query := fmt.Sprintf(
		"SELECT COALESCE(%[1]s, '') AS k, COUNT(*) AS n FROM events GROUP BY COALESCE(%[1]s, '')",
		column)

	var rows []groupCount
	if err := d.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("count events by %s: %w", column, err)
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Key] = r.Count
	}
	return counts, nil
}
