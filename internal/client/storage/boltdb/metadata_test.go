package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestMetadataStorage создает временное BoltDB хранилище и инициализирует buckets
func createTestMetadataStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "metadata_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func TestSaveAndGetLastRefreshTimestamp(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestMetadataStorage(t)
	defer cleanup()

	// Изначально, если timestamp не сохранён — ожидаем 0
	ts, err := store.GetLastRefreshTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ts)

	// Сохраняем timestamp
	var expectedTS int64 = 1234567890
	err = store.SaveLastRefreshTimestamp(ctx, expectedTS)
	require.NoError(t, err)

	// Получаем и проверяем
	gotTS, err := store.GetLastRefreshTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, expectedTS, gotTS)

	// Перезапись новым значением
	err = store.SaveLastRefreshTimestamp(ctx, expectedTS+100)
	require.NoError(t, err)

	gotTS, err = store.GetLastRefreshTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, expectedTS+100, gotTS)
}

func TestSaveAndGetActiveProject(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestMetadataStorage(t)
	defer cleanup()

	// Изначально активного проекта нет
	projectID, err := store.GetActiveProject(ctx)
	require.NoError(t, err)
	assert.Empty(t, projectID)

	// Сохраняем активный проект
	err = store.SaveActiveProject(ctx, "project-abc")
	require.NoError(t, err)

	projectID, err = store.GetActiveProject(ctx)
	require.NoError(t, err)
	assert.Equal(t, "project-abc", projectID)
}
