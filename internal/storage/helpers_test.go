// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestDB and a fixed event generator.
package storage

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "data", "state.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// fixedEvents returns a generator that writes n events per user, cycling
// through the tags with predictable values and timestamps.
func fixedEvents(n int) EventGenerator {
	return func(users []models.User) []*models.Event {
		var events []*models.Event
		base := models.RecordedFrom
		for ui, u := range users {
			for i := 0; i < n; i++ {
				tag := models.AllTags[i%len(models.AllTags)]
				e := models.NewEvent(tag, u.Email).
					WithRecordedAt(base.Add(time.Duration(ui*n+i) * time.Hour))
				switch tag {
				case models.TagExercise:
					e.WithComment(models.ExerciseComments[i%len(models.ExerciseComments)])
				case models.TagWeight:
					e.WithValue(fmt.Sprint(60 + i)).WithComment("Weight recorded")
				case models.TagPushups:
					e.WithValue(fmt.Sprint(20 + i))
				}
				events = append(events, e)
			}
		}
		return events
	}
}
