package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

const (
	keyLastRefreshTimestamp = "last_refresh_timestamp"
	keyActiveProject        = "active_project"
)

// SaveLastRefreshTimestamp saves the timestamp of the last applied live event
func (s *Storage) SaveLastRefreshTimestamp(ctx context.Context, timestamp int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(timestamp))

		// Сохраняем timestamp
		if err := bucket.Put([]byte(keyLastRefreshTimestamp), timestampBytes); err != nil {
			return fmt.Errorf("failed to save last refresh timestamp: %w", err)
		}

		return nil
	})
}

// GetLastRefreshTimestamp retrieves the timestamp of the last applied live event
// Returns 0 if no event has been applied yet
func (s *Storage) GetLastRefreshTimestamp(ctx context.Context) (int64, error) {
	var timestamp int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Получаем timestamp
		timestampBytes := bucket.Get([]byte(keyLastRefreshTimestamp))
		if timestampBytes == nil {
			// Если timestamp не найден, возвращаем 0 (еще не было событий)
			timestamp = 0
			return nil
		}

		// Конвертируем bytes в int64
		timestamp = int64(binary.BigEndian.Uint64(timestampBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get last refresh timestamp: %w", err)
	}

	return timestamp, nil
}

// SaveActiveProject remembers the project the client last worked with
func (s *Storage) SaveActiveProject(ctx context.Context, projectID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyActiveProject), []byte(projectID)); err != nil {
			return fmt.Errorf("failed to save active project: %w", err)
		}

		return nil
	})
}

// GetActiveProject returns the last active project, empty string if none
func (s *Storage) GetActiveProject(ctx context.Context) (string, error) {
	var projectID string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		projectID = string(bucket.Get([]byte(keyActiveProject)))
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get active project: %w", err)
	}

	return projectID, nil
}
