// ABOUTME: Repository interface for the seeded store.
// ABOUTME: Defines the contract the seed runner, CLI, and MCP server depend on.
package storage

import (
	"context"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/models"
)

// Repository defines the storage interface for seeded data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Schema
	InitSchema(ctx context.Context) error

	// Writes
	Seed(ctx context.Context, users []models.User, generate EventGenerator) (*SeedResult, error)

	// Reads
	ListUsers(ctx context.Context) ([]*models.User, error)
	ListEvents(ctx context.Context, filter EventFilter) ([]*EventEntry, error)
	CountUsers(ctx context.Context) (int, error)
	CountEvents(ctx context.Context) (int, error)
	Stats(ctx context.Context) (*Stats, error)

	// Lifecycle
	Path() string
	Close() error
}

var _ Repository = (*DB)(nil)
