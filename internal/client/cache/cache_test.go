package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

func TestStore_SetGet(t *testing.T) {
	store := New()

	key := NodeKey("project-1", "node-1")
	_, ok := store.Get(key)
	assert.False(t, ok)

	node := api.Node{ID: "node-1", Title: "Recon Phase"}
	store.Set(key, node)

	got, ok := store.Get(key)
	require.True(t, ok)
	assert.Equal(t, node, got)
}

func TestStore_Invalidate(t *testing.T) {
	store := New()
	key := NodeListKey("project-1")

	store.Set(key, []api.Node{{ID: "node-1"}})
	store.Invalidate(key)

	_, ok := store.Get(key)
	assert.False(t, ok)
}

func TestStore_Watch(t *testing.T) {
	store := New()
	key := NodeListKey("project-1")

	ch, cancel := store.Watch(key)
	defer cancel()

	store.Invalidate(key)

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected invalidation notification")
	}

	// После отписки уведомления не приходят
	cancel()
	store.Set(key, []api.Node{})
	select {
	case <-ch:
		t.Fatal("unexpected notification after unsubscribe")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestTx_RollbackRestoresExactSnapshot(t *testing.T) {
	store := New()

	detailKey := NodeKey("project-1", "node-1")
	listKey := NodeListKey("project-1")

	original := api.Node{ID: "node-1", Title: "Recon Phase", Status: api.NodeStatusNotStarted}
	originalList := []api.Node{original}
	store.Set(detailKey, original)
	store.Set(listKey, originalList)

	tx := store.Begin(detailKey, listKey)

	// Оптимистичное значение
	optimistic := original
	optimistic.Status = api.NodeStatusInProgress
	store.Set(detailKey, optimistic)
	store.Set(listKey, []api.Node{optimistic})

	// Мутация не удалась - откат
	tx.Rollback()

	got, ok := store.Get(detailKey)
	require.True(t, ok)
	assert.Equal(t, original, got)

	gotList, ok := store.Get(listKey)
	require.True(t, ok)
	assert.Equal(t, originalList, gotList)
}

func TestTx_RollbackRemovesKeysAbsentAtBegin(t *testing.T) {
	store := New()
	key := NodeKey("project-1", "node-new")

	tx := store.Begin(key)
	store.Set(key, api.Node{ID: "node-new"})
	tx.Rollback()

	// Ключа не было на момент Begin - после отката его снова нет
	_, ok := store.Get(key)
	assert.False(t, ok)
}

func TestTx_CommitKeepsServerValue(t *testing.T) {
	store := New()
	key := NodeKey("project-1", "node-1")
	store.Set(key, api.Node{ID: "node-1", Title: "old"})

	tx := store.Begin(key)
	store.Set(key, api.Node{ID: "node-1", Title: "optimistic"})

	// Сервер подтвердил - кладем серверную правду и закрываем транзакцию
	server := api.Node{ID: "node-1", Title: "server truth"}
	store.Set(key, server)
	tx.Commit()

	// Rollback после Commit ничего не делает
	tx.Rollback()

	got, ok := store.Get(key)
	require.True(t, ok)
	assert.Equal(t, server, got)
}

func TestStore_CancelRefetch(t *testing.T) {
	store := New()
	key := NodeListKey("project-1")

	ctx, cancel := context.WithCancel(context.Background())
	store.RegisterRefetch(key, cancel)

	store.CancelRefetch(key)

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("expected in-flight refetch to be cancelled")
	}

	// Повторная отмена того же ключа безопасна
	store.CancelRefetch(key)
}

func TestStore_RegisterRefetch_CancelsPrevious(t *testing.T) {
	store := New()
	key := NodeListKey("project-1")

	first, cancelFirst := context.WithCancel(context.Background())
	store.RegisterRefetch(key, cancelFirst)

	_, cancelSecond := context.WithCancel(context.Background())
	store.RegisterRefetch(key, cancelSecond)

	select {
	case <-first.Done():
	case <-time.After(time.Second):
		t.Fatal("expected previous refetch to be cancelled")
	}
}
