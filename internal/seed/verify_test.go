// ABOUTME: Tests for store verification.
// ABOUTME: Feeds crafted rows through a stub repository to hit each check.
package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/models"
	"github.com/erkannt/rechenschaftspflicht-seed/internal/storage"
)

type stubRepo struct {
	storage.Repository
	users  []*models.User
	events []*storage.EventEntry
}

func (s stubRepo) ListUsers(context.Context) ([]*models.User, error) {
	return s.users, nil
}

func (s stubRepo) ListEvents(context.Context, storage.EventFilter) ([]*storage.EventEntry, error) {
	return s.events, nil
}

// seededRows returns one run's worth of valid rows.
func seededRows() ([]*models.User, []*storage.EventEntry) {
	var users []*models.User
	for i, u := range models.SeedUsers() {
		u.ID = int64(i + 1)
		users = append(users, &u)
	}

	var entries []*storage.EventEntry
	for i, e := range NewSeededGenerator(5).Events(models.SeedUsers()) {
		e.ID = int64(i + 1)
		entries = append(entries, &storage.EventEntry{Event: *e})
	}
	return users, entries
}

func TestVerifyCleanRows(t *testing.T) {
	users, events := seededRows()

	report, err := Verify(context.Background(), stubRepo{users: users, events: events})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !report.OK() {
		t.Errorf("expected no problems, got %v", report.Problems)
	}
	if report.Users != 5 || report.Events != 500 {
		t.Errorf("report counts = %d / %d", report.Users, report.Events)
	}
}

func TestVerifyFlagsBadRows(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *models.Event)
		field  string
	}{
		{
			name:   "foreign email",
			mutate: func(e *models.Event) { e.RecordedBy = "mallory@example.com" },
			field:  "recordedBy",
		},
		{
			name: "exercise with value",
			mutate: func(e *models.Event) {
				e.Tag = models.TagExercise
				e.Value = "12"
			},
			field: "value",
		},
		{
			name: "weight out of range",
			mutate: func(e *models.Event) {
				e.Tag = models.TagWeight
				e.Value = "121"
			},
			field: "value",
		},
		{
			name: "pushups not numeric",
			mutate: func(e *models.Event) {
				e.Tag = models.TagPushups
				e.Value = "lots"
			},
			field: "value",
		},
		{
			name:   "unknown tag",
			mutate: func(e *models.Event) { e.Tag = "steps" },
			field:  "tag",
		},
		{
			name:   "timestamp layout",
			mutate: func(e *models.Event) { e.RecordedAt = "2026-03-01T10:00:00Z" },
			field:  "recordedAt",
		},
		{
			name:   "timestamp outside window",
			mutate: func(e *models.Event) { e.RecordedAt = "2026-08-01 00:00:00" },
			field:  "recordedAt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, events := seededRows()
			tt.mutate(&events[0].Event)

			report, err := Verify(context.Background(), stubRepo{users: users, events: events})
			if err != nil {
				t.Fatalf("Verify failed: %v", err)
			}
			if report.OK() {
				t.Fatal("expected problems")
			}

			found := false
			for _, p := range report.Problems {
				if p.Field == tt.field && p.ID == events[0].ID {
					found = true
				}
			}
			if !found {
				t.Errorf("no %s problem for event %d in %v", tt.field, events[0].ID, report.Problems)
			}
		})
	}
}

func TestVerifyFlagsMissingEvents(t *testing.T) {
	users, events := seededRows()

	report, err := Verify(context.Background(), stubRepo{users: users, events: events[:499]})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if report.OK() {
		t.Fatal("expected a count problem")
	}
	p := report.Problems[0]
	if p.ID != 0 || !strings.Contains(p.String(), "eve@example.com has 99 events, want 100") {
		t.Errorf("unexpected problem: %s", p)
	}
}

func TestProblemString(t *testing.T) {
	p := Problem{Table: "events", ID: 7, Field: "value", Message: "bad"}
	if got := p.String(); got != "events[7].value: bad" {
		t.Errorf("String() = %q", got)
	}
}
