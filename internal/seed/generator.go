// ABOUTME: Randomized event generator for seeded users.
// ABOUTME: Draws from an injectable source so a fixed seed reproduces a run.
package seed

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/models"
)

// EventsPerUser is how many events each seeded user receives per run.
const EventsPerUser = 100

// Generator produces synthetic events. It is not safe for concurrent use.
type Generator struct {
	rng     *rand.Rand
	perUser int
	from    time.Time
	to      time.Time
}

// NewGenerator creates a generator drawing from src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{
		rng:     rand.New(src),
		perUser: EventsPerUser,
		from:    models.RecordedFrom,
		to:      models.RecordedTo,
	}
}

// NewSeededGenerator creates a generator whose output is fully determined by seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed))
}

// Events generates EventsPerUser events for each user, grouped by user in
// input order.
func (g *Generator) Events(users []models.User) []*models.Event {
	events := make([]*models.Event, 0, len(users)*g.perUser)
	for _, u := range users {
		for i := 0; i < g.perUser; i++ {
			events = append(events, g.Event(u.Email))
		}
	}
	return events
}

// Event draws a single event recorded by email.
func (g *Generator) Event(email string) *models.Event {
	tag := models.AllTags[g.rng.IntN(len(models.AllTags))]
	e := models.NewEvent(tag, email)

	if tag == models.TagExercise {
		e.WithComment(pick(g.rng, models.ExerciseComments))
	} else {
		r := models.TagRanges[tag]
		e.WithValue(strconv.Itoa(r.Min + g.rng.IntN(r.Max-r.Min+1)))
		e.WithComment(pick(g.rng, models.MeasurementComments(tag)))
	}

	return e.WithRecordedAt(g.recordedAt())
}

// recordedAt draws a whole-second offset uniformly over [from, to].
func (g *Generator) recordedAt() time.Time {
	span := int64(g.to.Sub(g.from) / time.Second)
	return g.from.Add(time.Duration(g.rng.Int64N(span+1)) * time.Second)
}

func pick(rng *rand.Rand, choices []string) string {
	return choices[rng.IntN(len(choices))]
}
