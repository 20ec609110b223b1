// ABOUTME: Seed runner tying schema init, user list, generator, and bulk writer.
// ABOUTME: Produces the one-line summary printed after a successful run.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/models"
	"github.com/erkannt/rechenschaftspflicht-seed/internal/storage"
)

// Summary describes a completed run.
type Summary struct {
	RunID  uuid.UUID
	Users  int
	Events int
	Path   string
}

// String renders the human-readable report line.
func (s *Summary) String() string {
	return fmt.Sprintf("Inserted %d users and %d events into %s", s.Users, s.Events, s.Path)
}

// Runner performs one seeding pass against a repository.
type Runner struct {
	repo storage.Repository
	gen  *Generator
	log  zerolog.Logger
}

// NewRunner creates a runner. The generator's source decides reproducibility.
func NewRunner(repo storage.Repository, gen *Generator, log zerolog.Logger) *Runner {
	return &Runner{repo: repo, gen: gen, log: log}
}

// Run ensures the schema, inserts the seed users and their generated events in
// one transaction, and returns what was written. Rows are always appended.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.New()
	log := r.log.With().Str("run_id", runID.String()).Logger()

	if err := r.repo.InitSchema(ctx); err != nil {
		log.Error().Err(err).Msg("schema init failed")
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	log.Debug().Msg("schema ready")

	users := models.SeedUsers()
	result, err := r.repo.Seed(ctx, users, r.gen.Events)
	if err != nil {
		log.Error().Err(err).Msg("seed failed")
		return nil, err
	}

	summary := &Summary{
		RunID:  runID,
		Users:  result.Users,
		Events: result.Events,
		Path:   r.repo.Path(),
	}
	log.Debug().Int("users", summary.Users).Int("events", summary.Events).Msg("seed complete")

	return summary, nil
}
