package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastRefreshTimestamp saves the timestamp of the last applied live event
	SaveLastRefreshTimestamp(ctx context.Context, timestamp int64) error

	// GetLastRefreshTimestamp retrieves the timestamp of the last applied live event
	// Returns 0 if no event has been applied yet
	GetLastRefreshTimestamp(ctx context.Context) (int64, error)

	// SaveActiveProject remembers the project the client last worked with
	SaveActiveProject(ctx context.Context, projectID string) error

	// GetActiveProject returns the last active project, empty string if none
	GetActiveProject(ctx context.Context) (string, error)
}
