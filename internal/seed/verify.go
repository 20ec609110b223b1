// ABOUTME: Verifies a store against the invariants of seeded data.
// ABOUTME: Reports every offending row instead of stopping at the first.
package seed

import (
	"context"
	"fmt"
	"strconv"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/models"
	"github.com/erkannt/rechenschaftspflicht-seed/internal/storage"
)

// Problem is one violated invariant.
type Problem struct {
	Table   string `json:"table"`
	ID      int64  `json:"id,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	if p.ID == 0 {
		return fmt.Sprintf("%s.%s: %s", p.Table, p.Field, p.Message)
	}
	return fmt.Sprintf("%s[%d].%s: %s", p.Table, p.ID, p.Field, p.Message)
}

// Report is the outcome of Verify.
type Report struct {
	Users    int       `json:"users"`
	Events   int       `json:"events"`
	Problems []Problem `json:"problems"`
}

// OK reports whether no problems were found.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

func (r *Report) add(table string, id int64, field, format string, args ...any) {
	r.Problems = append(r.Problems, Problem{
		Table:   table,
		ID:      id,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// Verify reads every user and event and checks them against what a seeding run
// produces. Rows written by other tools are checked too and will usually show
// up as problems.
func Verify(ctx context.Context, repo storage.Repository) (*Report, error) {
	users, err := repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	events, err := repo.ListEvents(ctx, storage.EventFilter{})
	if err != nil {
		return nil, err
	}

	report := &Report{
		Users:    len(users),
		Events:   len(events),
		Problems: []Problem{},
	}

	userRows := make(map[string]int)
	for _, u := range users {
		userRows[u.Email]++
	}

	perEmail := make(map[string]int)
	for _, e := range events {
		perEmail[e.RecordedBy]++
		checkEvent(report, &e.Event)
	}

	// Each run adds one row per seeded user and EventsPerUser events for it.
	for _, u := range models.SeedUsers() {
		want := userRows[u.Email] * EventsPerUser
		if got := perEmail[u.Email]; got != want {
			report.add("events", 0, "recordedBy",
				"%s has %d events, want %d for %d user rows", u.Email, got, want, userRows[u.Email])
		}
	}

	return report, nil
}

func checkEvent(report *Report, e *models.Event) {
	if !models.IsSeedEmail(e.RecordedBy) {
		report.add("events", e.ID, "recordedBy", "%q is not a seeded email", e.RecordedBy)
	}

	switch e.Tag {
	case models.TagExercise:
		if e.Value != "" {
			report.add("events", e.ID, "value", "exercise event has value %q", e.Value)
		}
	case models.TagWeight, models.TagPushups:
		r := models.TagRanges[e.Tag]
		v, err := strconv.Atoi(e.Value)
		if err != nil {
			report.add("events", e.ID, "value", "%s value %q is not an integer", e.Tag, e.Value)
		} else if !r.Contains(v) {
			report.add("events", e.ID, "value", "%s value %d outside [%d, %d]", e.Tag, v, r.Min, r.Max)
		}
	default:
		report.add("events", e.ID, "tag", "unknown tag %q", e.Tag)
	}

	t, err := e.RecordedTime()
	if err != nil {
		report.add("events", e.ID, "recordedAt", "%q is not a YYYY-MM-DD HH:MM:SS timestamp", e.RecordedAt)
		return
	}
	if t.Before(models.RecordedFrom) || t.After(models.RecordedTo) {
		report.add("events", e.ID, "recordedAt", "%s outside the seeding window", e.RecordedAt)
	}
}
