package cache

import (
	"context"
	"fmt"
	"sync"
)

// Key идентифицирует закэшированное представление данных.
// Одна сущность может присутствовать в нескольких представлениях
// (детальном, списочном), и мутация обязана обновить все.
type Key string

// ProjectKey возвращает ключ детального представления проекта
func ProjectKey(projectID string) Key {
	return Key("project:" + projectID)
}

// ProjectListKey возвращает ключ списка проектов
func ProjectListKey() Key {
	return Key("projects")
}

// NodeListKey возвращает ключ списка узлов проекта
func NodeListKey(projectID string) Key {
	return Key(fmt.Sprintf("project:%s:nodes", projectID))
}

// NodeKey возвращает ключ детального представления узла
func NodeKey(projectID, nodeID string) Key {
	return Key(fmt.Sprintf("project:%s:node:%s", projectID, nodeID))
}

// ContextListKey возвращает ключ списка контекстов проекта
func ContextListKey(projectID string) Key {
	return Key(fmt.Sprintf("project:%s:contexts", projectID))
}

// ScopeKey возвращает ключ списка scope-активов проекта
func ScopeKey(projectID string) Key {
	return Key(fmt.Sprintf("project:%s:scope", projectID))
}

// Store - in-memory кэш представлений, разделяемый всеми частями клиента.
// Значения считаются неизменяемыми: чтение возвращает то, что было
// положено, а для модификации кладется новое значение целиком.
type Store struct {
	entries  map[Key]any
	refetch  map[Key]context.CancelFunc // in-flight загрузки по ключу
	watchers map[Key][]chan struct{}
	mu       sync.Mutex
}

// New создает пустой кэш
func New() *Store {
	return &Store{
		entries:  make(map[Key]any),
		refetch:  make(map[Key]context.CancelFunc),
		watchers: make(map[Key][]chan struct{}),
	}
}

// Get возвращает закэшированное значение по ключу
func (s *Store) Get(key Key) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.entries[key]
	return value, ok
}

// Set кладет значение в кэш и уведомляет подписчиков ключа
func (s *Store) Set(key Key, value any) {
	s.mu.Lock()
	s.entries[key] = value
	watchers := append([]chan struct{}(nil), s.watchers[key]...)
	s.mu.Unlock()

	notifyAll(watchers)
}

// Invalidate удаляет значение из кэша и уведомляет подписчиков.
// Подписчик сам решает, когда перезагрузить данные с сервера.
func (s *Store) Invalidate(key Key) {
	s.mu.Lock()
	delete(s.entries, key)
	watchers := append([]chan struct{}(nil), s.watchers[key]...)
	s.mu.Unlock()

	notifyAll(watchers)
}

// Watch подписывает на изменения ключа. Возвращает канал уведомлений
// и функцию отписки. Уведомления не накапливаются: канал с буфером 1.
func (s *Store) Watch(key Key) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	s.mu.Lock()
	s.watchers[key] = append(s.watchers[key], ch)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		watchers := s.watchers[key]
		for i, w := range watchers {
			if w == ch {
				s.watchers[key] = append(watchers[:i], watchers[i+1:]...)
				break
			}
		}
	}
	return ch, cancel
}

// RegisterRefetch регистрирует cancel-функцию фоновой загрузки ключа.
// Предыдущая загрузка того же ключа отменяется.
func (s *Store) RegisterRefetch(key Key, cancel context.CancelFunc) {
	s.mu.Lock()
	prev := s.refetch[key]
	s.refetch[key] = cancel
	s.mu.Unlock()

	if prev != nil {
		prev()
	}
}

// CancelRefetch отменяет in-flight загрузки перечисленных ключей.
// Вызывается перед optimistic-мутацией, чтобы устаревший ответ
// не затер оптимистичное значение.
func (s *Store) CancelRefetch(keys ...Key) {
	s.mu.Lock()
	cancels := make([]context.CancelFunc, 0, len(keys))
	for _, key := range keys {
		if cancel, ok := s.refetch[key]; ok {
			cancels = append(cancels, cancel)
			delete(s.refetch, key)
		}
	}
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

func notifyAll(watchers []chan struct{}) {
	for _, ch := range watchers {
		select {
		case ch <- struct{}{}:
		default:
			// Подписчик еще не прочитал прошлое уведомление
		}
	}
}
