package editing

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwnflow/pwnflow-cli/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// committedValue потокобезопасно собирает коммиты для проверок
type committedValue struct {
	mu     sync.Mutex
	values map[models.FieldRef]string
	calls  int
}

func newCommittedValue() *committedValue {
	return &committedValue{values: make(map[models.FieldRef]string)}
}

func (c *committedValue) commit(ctx context.Context, ref models.FieldRef, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[ref] = value
	c.calls++
	return nil
}

func (c *committedValue) get(ref models.FieldRef) (string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[ref], c.calls
}

func TestStore_StartAndCommit(t *testing.T) {
	committed := newCommittedValue()
	store := NewStore(committed.commit, testLogger())

	store.StartEditing("node-1", models.FieldTitle, "Recon Phase")
	assert.Equal(t, StateEditing, store.SessionState("node-1", models.FieldTitle))
	assert.False(t, store.IsDirty("node-1", models.FieldTitle))

	store.UpdateValue("node-1", models.FieldTitle, "Recon Phase 2", false)
	assert.True(t, store.IsDirty("node-1", models.FieldTitle))

	ok := store.CommitEdit(context.Background(), "node-1", models.FieldTitle)
	assert.True(t, ok)

	value, calls := committed.get(models.FieldRef{EntityID: "node-1", Field: models.FieldTitle})
	assert.Equal(t, "Recon Phase 2", value)
	assert.Equal(t, 1, calls)

	// Сессия закрыта после успешного коммита
	assert.Equal(t, StateIdle, store.SessionState("node-1", models.FieldTitle))
}

func TestStore_CommitWithoutChanges_NoRequest(t *testing.T) {
	committed := newCommittedValue()
	store := NewStore(committed.commit, testLogger())

	store.StartEditing("node-1", models.FieldTitle, "Recon Phase")

	ok := store.CommitEdit(context.Background(), "node-1", models.FieldTitle)
	assert.True(t, ok)

	_, calls := committed.get(models.FieldRef{EntityID: "node-1", Field: models.FieldTitle})
	assert.Equal(t, 0, calls)
}

func TestStore_CommitFailure_PreservesLocalValue(t *testing.T) {
	var notified models.FieldRef
	store := NewStore(func(ctx context.Context, ref models.FieldRef, value string) error {
		return errors.New("network error")
	}, testLogger())
	store.OnCommitError = func(ref models.FieldRef, err error) {
		notified = ref
	}

	store.StartEditing("node-1", models.FieldStatus, "NOT_STARTED")
	store.UpdateValue("node-1", models.FieldStatus, "IN_PROGRESS", false)

	ok := store.CommitEdit(context.Background(), "node-1", models.FieldStatus)
	assert.False(t, ok)

	// Локальное значение сохранено для повтора
	value, active := store.Value("node-1", models.FieldStatus)
	assert.True(t, active)
	assert.Equal(t, "IN_PROGRESS", value)
	assert.True(t, store.IsDirty("node-1", models.FieldStatus))
	assert.Equal(t, StateEditing, store.SessionState("node-1", models.FieldStatus))

	// Об ошибке сообщили
	assert.Equal(t, models.FieldRef{EntityID: "node-1", Field: models.FieldStatus}, notified)
}

func TestStore_CancelEdit_Idempotent(t *testing.T) {
	store := NewStore(nil, testLogger())

	// Отмена без сессии - no-op, сколько бы раз ни вызывали
	store.CancelEdit("node-1", models.FieldTitle)
	store.CancelEdit("node-1", models.FieldTitle)
	assert.Equal(t, StateIdle, store.SessionState("node-1", models.FieldTitle))

	store.StartEditing("node-1", models.FieldTitle, "Recon Phase")
	store.UpdateValue("node-1", models.FieldTitle, "Recon Phase 2", false)
	store.CancelEdit("node-1", models.FieldTitle)

	_, active := store.Value("node-1", models.FieldTitle)
	assert.False(t, active)

	store.CancelEdit("node-1", models.FieldTitle)
	assert.Equal(t, StateIdle, store.SessionState("node-1", models.FieldTitle))
}

func TestStore_AutoSave_Debounced(t *testing.T) {
	committed := newCommittedValue()
	store := NewStoreWithDebounce(committed.commit, 20*time.Millisecond, testLogger())

	store.StartEditing("node-1", models.FieldDescription, "")

	// Несколько быстрых вводов - коммитится только последнее значение
	store.UpdateValue("node-1", models.FieldDescription, "f", true)
	store.UpdateValue("node-1", models.FieldDescription, "fo", true)
	store.UpdateValue("node-1", models.FieldDescription, "foothold via SMB", true)

	require.Eventually(t, func() bool {
		_, calls := committed.get(models.FieldRef{EntityID: "node-1", Field: models.FieldDescription})
		return calls == 1
	}, time.Second, 5*time.Millisecond)

	value, calls := committed.get(models.FieldRef{EntityID: "node-1", Field: models.FieldDescription})
	assert.Equal(t, "foothold via SMB", value)
	assert.Equal(t, 1, calls)
}

func TestStore_ConcurrentCommit_Rejected(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	store := NewStore(func(ctx context.Context, ref models.FieldRef, value string) error {
		close(started)
		<-release
		return nil
	}, testLogger())

	store.StartEditing("node-1", models.FieldTitle, "a")
	store.UpdateValue("node-1", models.FieldTitle, "b", false)

	done := make(chan bool)
	go func() {
		done <- store.CommitEdit(context.Background(), "node-1", models.FieldTitle)
	}()

	<-started
	// Пока первый коммит в полете, второй отклоняется
	assert.False(t, store.CommitEdit(context.Background(), "node-1", models.FieldTitle))
	close(release)

	assert.True(t, <-done)
}

func TestStore_TypingDuringCommit_KeepsSession(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	store := NewStore(func(ctx context.Context, ref models.FieldRef, value string) error {
		close(started)
		<-release
		return nil
	}, testLogger())

	store.StartEditing("node-1", models.FieldTitle, "a")
	store.UpdateValue("node-1", models.FieldTitle, "ab", false)

	done := make(chan bool)
	go func() {
		done <- store.CommitEdit(context.Background(), "node-1", models.FieldTitle)
	}()

	<-started
	// Пользователь продолжает печатать, пока запрос в полете
	store.UpdateValue("node-1", models.FieldTitle, "abc", false)
	close(release)
	assert.True(t, <-done)

	// Сессия не закрыта: есть несохраненное значение abc
	value, active := store.Value("node-1", models.FieldTitle)
	assert.True(t, active)
	assert.Equal(t, "abc", value)
	assert.True(t, store.IsDirty("node-1", models.FieldTitle))
}
