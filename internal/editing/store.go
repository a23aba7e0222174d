package editing

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pwnflow/pwnflow-cli/internal/models"
)

// DefaultDebounce - задержка перед автосохранением поля после последнего ввода
const DefaultDebounce = 750 * time.Millisecond

// State представляет состояние сессии редактирования поля
type State int

const (
	// StateIdle - поле не редактируется
	StateIdle State = iota
	// StateEditing - есть локальное значение, отличающееся от серверного
	StateEditing
	// StateCommitting - значение отправляется на сервер
	StateCommitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateCommitting:
		return "committing"
	default:
		return "unknown"
	}
}

// CommitFunc выполняет сетевую мутацию для одного поля сущности.
// Регистрируется владельцем сущности (node service и т.д.).
type CommitFunc func(ctx context.Context, ref models.FieldRef, value string) error

// session хранит состояние редактирования одного поля
type session struct {
	timer       *time.Timer // таймер автосохранения, nil если не запланировано
	value       string      // локально введенное значение
	serverValue string      // последнее известное серверное значение
	state       State
}

// dirty возвращает true, если локальное значение отличается от серверного
func (s *session) dirty() bool {
	return s.value != s.serverValue
}

// Store отслеживает сессии редактирования по ключу (entityID, field) и
// решает, когда входящее серверное значение может перезаписать видимое.
// Сессии живут только в памяти, на время работы клиента.
type Store struct {
	commit      CommitFunc
	logger      *slog.Logger
	sessions    map[models.FieldRef]*session
	focused     map[models.FieldRef]bool
	lastApplied map[models.FieldRef]string // защита от повторного применения того же значения

	// OnCommitError вызывается при неудачном коммите (аналог toast-уведомления).
	// Локальное значение при этом сохраняется для повтора.
	OnCommitError func(ref models.FieldRef, err error)

	debounce time.Duration
	mu       sync.Mutex
}

// NewStore создает новый store сессий редактирования
func NewStore(commit CommitFunc, logger *slog.Logger) *Store {
	return NewStoreWithDebounce(commit, DefaultDebounce, logger)
}

// NewStoreWithDebounce создает store с заданной задержкой автосохранения.
// Используется в тестах для ускорения таймеров.
func NewStoreWithDebounce(commit CommitFunc, debounce time.Duration, logger *slog.Logger) *Store {
	return &Store{
		commit:      commit,
		logger:      logger,
		sessions:    make(map[models.FieldRef]*session),
		focused:     make(map[models.FieldRef]bool),
		lastApplied: make(map[models.FieldRef]string),
		debounce:    debounce,
	}
}

// StartEditing открывает сессию редактирования поля и запоминает
// серверное значение на момент начала ввода.
func (s *Store) StartEditing(entityID, field, initialValue string) {
	ref := models.FieldRef{EntityID: entityID, Field: field}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[ref]; ok {
		// Сессия уже открыта - не затираем введенное значение
		if existing.state != StateIdle {
			return
		}
	}

	s.sessions[ref] = &session{
		value:       initialValue,
		serverValue: initialValue,
		state:       StateEditing,
	}
}

// UpdateValue обновляет локальное значение поля. При autoSave планируется
// отложенный коммит; каждый новый ввод сдвигает таймер.
func (s *Store) UpdateValue(entityID, field, value string, autoSave bool) {
	ref := models.FieldRef{EntityID: entityID, Field: field}

	s.mu.Lock()
	sess, ok := s.sessions[ref]
	if !ok {
		// Редактирование без StartEditing - открываем сессию неявно
		sess = &session{serverValue: value, state: StateEditing}
		s.sessions[ref] = sess
	}
	sess.value = value

	if autoSave {
		if sess.timer != nil {
			sess.timer.Stop()
		}
		sess.timer = time.AfterFunc(s.debounce, func() {
			// Отложенный коммит выполняется вне UI-потока вызова
			s.CommitEdit(context.Background(), entityID, field)
		})
	}
	s.mu.Unlock()
}

// CommitEdit отправляет локальное значение поля через зарегистрированную
// мутацию. Возвращает true при успехе. При ошибке сессия и локальное
// значение сохраняются, чтобы пользователь мог повторить попытку.
func (s *Store) CommitEdit(ctx context.Context, entityID, field string) bool {
	ref := models.FieldRef{EntityID: entityID, Field: field}

	s.mu.Lock()
	sess, ok := s.sessions[ref]
	if !ok {
		// Нечего коммитить
		s.mu.Unlock()
		return true
	}
	if sess.state == StateCommitting {
		// Уже есть in-flight коммит этого поля
		s.mu.Unlock()
		return false
	}
	if sess.timer != nil {
		sess.timer.Stop()
		sess.timer = nil
	}
	if !sess.dirty() {
		// Значение не менялось - закрываем сессию без запроса
		delete(s.sessions, ref)
		s.mu.Unlock()
		return true
	}
	sess.state = StateCommitting
	value := sess.value
	commit := s.commit
	s.mu.Unlock()

	if commit == nil {
		s.logger.Warn("No commit function registered", "entity_id", entityID, "field", field)
		s.failCommit(ref, errNoCommitFunc)
		return false
	}

	err := commit(ctx, ref, value)

	s.mu.Lock()
	sess, ok = s.sessions[ref]
	if !ok {
		// Сессию отменили, пока шел запрос
		s.mu.Unlock()
		return err == nil
	}

	if err != nil {
		// Оставляем сессию dirty для повтора
		sess.state = StateEditing
		s.mu.Unlock()

		s.logger.Warn("Field commit failed",
			"entity_id", entityID,
			"field", field,
			"error", err)
		if s.OnCommitError != nil {
			s.OnCommitError(ref, err)
		}
		return false
	}

	if sess.value != value {
		// Во время запроса пользователь продолжил ввод - сессия остается
		// открытой с новым значением, подтвержденное становится серверным
		sess.serverValue = value
		sess.state = StateEditing
		s.mu.Unlock()
		return true
	}

	delete(s.sessions, ref)
	s.lastApplied[ref] = value
	s.mu.Unlock()

	s.logger.Debug("Field committed", "entity_id", entityID, "field", field)
	return true
}

// CancelEdit отменяет сессию редактирования и отбрасывает локальное
// значение. Вызов без активной сессии - no-op.
func (s *Store) CancelEdit(entityID, field string) {
	ref := models.FieldRef{EntityID: entityID, Field: field}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[ref]
	if !ok {
		return
	}
	if sess.timer != nil {
		sess.timer.Stop()
	}
	delete(s.sessions, ref)
}

// SetFocused отмечает, что поле находится (или перестало находиться)
// в фокусе ввода. Фокус учитывается правилом подавления серверных обновлений.
func (s *Store) SetFocused(entityID, field string, focused bool) {
	ref := models.FieldRef{EntityID: entityID, Field: field}

	s.mu.Lock()
	defer s.mu.Unlock()

	if focused {
		s.focused[ref] = true
	} else {
		delete(s.focused, ref)
	}
}

// Value возвращает локальное значение поля и признак активной сессии
func (s *Store) Value(entityID, field string) (string, bool) {
	ref := models.FieldRef{EntityID: entityID, Field: field}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[ref]
	if !ok {
		return "", false
	}
	return sess.value, true
}

// IsDirty возвращает true, если у поля есть несохраненное локальное значение
func (s *Store) IsDirty(entityID, field string) bool {
	ref := models.FieldRef{EntityID: entityID, Field: field}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[ref]
	return ok && sess.dirty()
}

// SessionState возвращает состояние сессии поля
func (s *Store) SessionState(entityID, field string) State {
	ref := models.FieldRef{EntityID: entityID, Field: field}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[ref]
	if !ok {
		return StateIdle
	}
	return sess.state
}

// failCommit переводит сессию обратно в editing и сообщает об ошибке
func (s *Store) failCommit(ref models.FieldRef, err error) {
	s.mu.Lock()
	if sess, ok := s.sessions[ref]; ok {
		sess.state = StateEditing
	}
	s.mu.Unlock()

	if s.OnCommitError != nil {
		s.OnCommitError(ref, err)
	}
}
