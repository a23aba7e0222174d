package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/pwnflow/pwnflow-cli/internal/client/storage"
	"github.com/pwnflow/pwnflow-cli/internal/models"
)

// SaveSnapshot stores or replaces the cached snapshot for a project
func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *models.ProjectSnapshot) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем snapshot в JSON
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		// Ключ - ID проекта
		if err := bucket.Put([]byte(snapshot.Project.ID), data); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetSnapshot retrieves the cached snapshot for a project
func (s *Storage) GetSnapshot(ctx context.Context, projectID string) (*models.ProjectSnapshot, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var snapshot *models.ProjectSnapshot

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return storage.ErrSnapshotNotFound
		}

		data := bucket.Get([]byte(projectID))
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		// Десериализуем
		snapshot = &models.ProjectSnapshot{}
		if err := json.Unmarshal(data, snapshot); err != nil {
			return fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// ListSnapshots returns the project IDs that have cached snapshots
func (s *Storage) ListSnapshots(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ids []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	return ids, nil
}

// DeleteSnapshot removes the cached snapshot for a project
func (s *Storage) DeleteSnapshot(ctx context.Context, projectID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return storage.ErrSnapshotNotFound
		}

		if bucket.Get([]byte(projectID)) == nil {
			return storage.ErrSnapshotNotFound
		}

		if err := bucket.Delete([]byte(projectID)); err != nil {
			return fmt.Errorf("failed to delete snapshot: %w", err)
		}

		return nil
	})
}

// Clear removes all cached snapshots
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		// Проще пересоздать bucket целиком
		if err := tx.DeleteBucket(bucketSnapshots); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete snapshots bucket: %w", err)
		}

		if _, err := tx.CreateBucketIfNotExists(bucketSnapshots); err != nil {
			return fmt.Errorf("failed to recreate snapshots bucket: %w", err)
		}

		return nil
	})
}
