package storage

import (
	"context"

	"github.com/pwnflow/pwnflow-cli/internal/models"
)

//go:generate moq -out snapshot_mock.go . SnapshotStorage

// SnapshotStorage defines interface for caching project state on client.
// Snapshots make the CLI usable offline and seed the in-memory cache
// before the first fetch completes.
type SnapshotStorage interface {
	// SaveSnapshot stores or replaces the cached snapshot for a project
	SaveSnapshot(ctx context.Context, snapshot *models.ProjectSnapshot) error

	// GetSnapshot retrieves the cached snapshot for a project
	// Returns ErrSnapshotNotFound if no snapshot exists
	GetSnapshot(ctx context.Context, projectID string) (*models.ProjectSnapshot, error)

	// ListSnapshots returns the project IDs that have cached snapshots
	ListSnapshots(ctx context.Context) ([]string, error)

	// DeleteSnapshot removes the cached snapshot for a project
	DeleteSnapshot(ctx context.Context, projectID string) error

	// Clear removes all cached snapshots
	// Used on logout so another account doesn't see stale data
	Clear(ctx context.Context) error
}
